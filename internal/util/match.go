package util

import (
	"strings"

	"github.com/gobwas/glob"
)

// TitleMatcher matches product titles case-insensitively.
type TitleMatcher struct {
	g glob.Glob
}

// CompileTitleMatcher compiles pattern as a case-insensitive glob. A pattern
// without glob syntax matches as a substring, so "lolli" finds "HEX lollipop".
func CompileTitleMatcher(pattern string) (*TitleMatcher, error) {
	expr := strings.ToLower(strings.TrimSpace(pattern))
	if !strings.ContainsAny(expr, "*?[{") {
		expr = "*" + expr + "*"
	}
	g, err := glob.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &TitleMatcher{g: g}, nil
}

// Match reports whether title matches.
func (m *TitleMatcher) Match(title string) bool {
	return m.g.Match(strings.ToLower(title))
}
