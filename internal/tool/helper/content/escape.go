package content

import (
	"regexp"
	"strings"
)

// escapeGuard reports a reason to leave content exactly as written.
type escapeGuard func(s string) bool

var structuralWord = regexp.MustCompile(`\b(import|def|class|function|interface)\b`)

var structuralTokens = []string{"#include", "<?php", "<!DOCTYPE", "---", "public class", `{\`}

var commentMarkers = []string{"#", "//", "/*", "--", "TODO:", "FIXME:", "NOTE:"}

// escapeGuards is checked in order; the first guard that fires keeps the
// content literal.
var escapeGuards = []escapeGuard{
	hasCodeFence,
	hasLatexEnvironment,
	hasManyDoubledBackslashes,
	hasStructuralToken,
	hasCommentMarker,
	hasEscapedQuoteOrBackslash,
}

func hasCodeFence(s string) bool {
	return strings.Contains(s, "```")
}

func hasLatexEnvironment(s string) bool {
	return strings.Contains(s, `\begin{`) || strings.Contains(s, `\end{`)
}

func hasManyDoubledBackslashes(s string) bool {
	return strings.Count(s, `\\`) > 2
}

func hasStructuralToken(s string) bool {
	if structuralWord.MatchString(s) {
		return true
	}
	for _, tok := range structuralTokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

func hasCommentMarker(s string) bool {
	for _, m := range commentMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func hasEscapedQuoteOrBackslash(s string) bool {
	return strings.Contains(s, `\"`) || strings.Contains(s, `\'`) || strings.Contains(s, `\\`)
}

// HasEscapeSequences reports whether s contains a literal backslash-n or
// backslash-t.
func HasEscapeSequences(s string) bool {
	return strings.Contains(s, `\n`) || strings.Contains(s, `\t`)
}

// KeepLiteral reports whether any guard marks s as text whose backslashes
// must survive untouched, such as source code or LaTeX.
func KeepLiteral(s string) bool {
	for _, guard := range escapeGuards {
		if guard(s) {
			return true
		}
	}
	return false
}

// NormalizeEscapes turns literal \n and \t into newline and tab when the
// text shows no sign of being code or markup. Anything ambiguous is returned
// unchanged.
func NormalizeEscapes(s string) string {
	if !HasEscapeSequences(s) || KeepLiteral(s) {
		return s
	}
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}
