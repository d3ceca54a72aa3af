package shell

import "strings"

// SplitWords splits a command line into words the way a POSIX shell would
// tokenise a simple command, but without interpreting anything: operators
// such as ;, |, &&, > and $(...) are ordinary characters and end up inside
// words. Single quotes preserve everything literally; inside double quotes a
// backslash escapes only " and \; outside quotes a backslash escapes the next
// character.
func SplitWords(command string) ([]string, error) {
	var (
		words  []string
		cur    strings.Builder
		inWord bool
		quote  rune
		escape bool
	)

	for _, r := range command {
		switch {
		case escape:
			if quote == '"' && r != '"' && r != '\\' {
				cur.WriteRune('\\')
			}
			cur.WriteRune(r)
			escape = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escape = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escape = true
			inWord = true
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if escape {
		return nil, &SyntaxError{Command: command, Reason: "trailing backslash"}
	}
	if quote != 0 {
		return nil, &SyntaxError{Command: command, Reason: "unterminated " + string(quote) + " quote"}
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
