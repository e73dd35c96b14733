package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// TruncateString shortens s to at most maxWidth cells, ending in Ellipsis
// when anything was cut. ANSI sequences are preserved.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(Ellipsis) {
		return strings.Repeat(".", maxWidth)
	}
	return truncate.StringWithTail(s, uint(maxWidth), Ellipsis)
}

// FirstLine returns the first non-empty line of s.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
