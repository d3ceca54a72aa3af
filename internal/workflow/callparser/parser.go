// Package callparser extracts tool calls embedded in model text.
//
// A call is written [TOOL: name(arguments)]. Arguments are either a simple
// list of key=value pairs or contain one triple-quoted value:
//
//	[TOOL: read_file(file_path='main.py')]
//	[TOOL: write_file(file_path='main.py', content='''print("a, b = 1")''')]
package callparser

import (
	"regexp"
	"strings"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// callPattern matches lazily, so a body never extends past the first ")]".
var callPattern = regexp.MustCompile(`(?s)\[TOOL:\s*(\w+)\((.*?)\)\]`)

// paramPattern finds "name =" occurrences in the text before a triple quote.
var paramPattern = regexp.MustCompile(`(\w+)\s*=`)

var tripleMarkers = []string{`'''`, `"""`}

// Parse returns the calls in text in order of appearance. Text without calls
// yields an empty result.
func Parse(text string) []tool.Call {
	matches := callPattern.FindAllStringSubmatch(text, -1)
	calls := make([]tool.Call, 0, len(matches))
	for _, m := range matches {
		calls = append(calls, tool.Call{Name: m[1], Args: ParseArgs(m[2])})
	}
	return calls
}

// ParseArgs parses one argument body.
func ParseArgs(body string) tool.Args {
	if args, ok := parseTripleQuoted(body); ok {
		return args
	}
	return parseSimple(body)
}

// parseTripleQuoted handles a body containing a triple-quoted value. The
// marker that occurs first wins and only its first two occurrences delimit
// the value, which is taken verbatim.
func parseTripleQuoted(body string) (tool.Args, bool) {
	marker, start := "", -1
	for _, mk := range tripleMarkers {
		if i := strings.Index(body, mk); i >= 0 && (start < 0 || i < start) {
			marker, start = mk, i
		}
	}
	if start < 0 {
		return nil, false
	}
	end := strings.Index(body[start+len(marker):], marker)
	if end < 0 {
		return nil, false
	}
	end += start + len(marker)

	prefix := body[:start]
	value := body[start+len(marker) : end]
	suffix := body[end+len(marker):]

	names := paramPattern.FindAllStringSubmatch(prefix, -1)
	if len(names) == 0 {
		return nil, false
	}
	key := names[len(names)-1][1]

	args := parseSimple(prefix)
	args.Set(key, value)
	for _, a := range parseSimple(suffix) {
		if a.Key != key {
			args.Set(a.Key, a.Value)
		}
	}
	return args, true
}

// parseSimple parses comma separated key=value pairs. Commas inside quotes do
// not split; tokens without "=" are dropped.
func parseSimple(body string) tool.Args {
	var args tool.Args
	for _, token := range splitOutsideQuotes(body) {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		args.Set(key, unquote(strings.TrimSpace(value)))
	}
	return args
}

func splitOutsideQuotes(s string) []string {
	var (
		tokens []string
		quote  rune
		last   int
	)
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ',':
			tokens = append(tokens, s[last:i])
			last = i + 1
		}
	}
	return append(tokens, s[last:])
}

// unquote strips one pair of matching surrounding quotes.
func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '\'' || v[0] == '"') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
