// Package util provides terminal text helpers shared by the views and the CLI.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text. It is one cell wide.
const Ellipsis = "…"

// Truncate shortens s to maxWidth visual columns, ending with an ellipsis
// when anything was cut. ANSI escape codes and wide characters are handled.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// Wrap breaks s into lines no wider than width, preferring word boundaries.
// Words longer than width are split.
func Wrap(s string, width int) []string {
	if width <= 0 || s == "" {
		return nil
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// PadRight pads s with spaces to width visual columns.
// Wider strings are returned unchanged.
func PadRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
