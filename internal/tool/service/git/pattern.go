package git

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// PatternMatcher matches paths against gitignore-style glob patterns using
// go-git's matcher. Patterns support "*", "?", character classes, "**" and a
// trailing "/" that restricts a pattern to directories.
type PatternMatcher struct {
	matcher gitignore.Matcher
}

// NewPatternMatcher builds a matcher from one or more patterns. Several
// patterns may also be given in one string separated by commas or
// whitespace. Blank patterns are skipped; with none left the matcher
// matches everything.
func NewPatternMatcher(patterns ...string) *PatternMatcher {
	var parsed []gitignore.Pattern
	for _, p := range patterns {
		for _, field := range strings.FieldsFunc(p, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			parsed = append(parsed, gitignore.ParsePattern(field, nil))
		}
	}
	if len(parsed) == 0 {
		return &PatternMatcher{}
	}
	return &PatternMatcher{matcher: gitignore.NewMatcher(parsed)}
}

// Match reports whether the slash-separated relative path matches.
func (m *PatternMatcher) Match(relativePath string, isDir bool) bool {
	if m.matcher == nil {
		return true
	}
	return m.matcher.Match(splitPath(relativePath), isDir)
}

// splitPath splits a path into segments for gitignore matching,
// dropping empty and "." segments.
func splitPath(path string) []string {
	var segments []string
	for _, part := range strings.Split(path, "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
