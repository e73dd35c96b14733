package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a rounded box with its title set into the top edge:
//
//	╭─ Title ─────╮
//	│content      │
//	╰─────────────╯
type Panel struct {
	Title   string
	Width   int // outer width including borders
	Height  int // outer height including borders
	Focused bool

	// TitleColor defaults to OverlayTitleColor, FocusColor to
	// BorderHighlightFocusColor.
	TitleColor lipgloss.TerminalColor
	FocusColor lipgloss.TerminalColor
}

// Render draws content inside the panel. Content is wrapped to the inner
// width and cut at the inner height.
func (p Panel) Render(content string) string {
	inner := max(p.Width-2, 1)
	rows := max(p.Height-2, 1)

	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if p.Focused {
		borderColor = BorderHighlightFocusColor
		if p.FocusColor != nil {
			borderColor = p.FocusColor
		}
	}
	var titleColor lipgloss.TerminalColor = OverlayTitleColor
	if p.TitleColor != nil {
		titleColor = p.TitleColor
	}
	edge := lipgloss.NewStyle().Foreground(borderColor)

	body := strings.Split(lipgloss.NewStyle().Width(inner).Render(content), "\n")

	lines := make([]string, 0, rows+2)
	lines = append(lines, p.topEdge(inner, edge, lipgloss.NewStyle().Foreground(titleColor)))
	for i := range rows {
		var line string
		if i < len(body) {
			line = body[i]
		}
		if w := lipgloss.Width(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		lines = append(lines, edge.Render("│")+line+edge.Render("│"))
	}
	lines = append(lines, edge.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(lines, "\n")
}

// topEdge renders "╭─ Title ───╮". The title is dropped when fewer than four
// cells remain around it and truncated when it does not fit.
func (p Panel) topEdge(inner int, edge, title lipgloss.Style) string {
	if p.Title == "" || inner < 5 {
		return edge.Render("╭" + strings.Repeat("─", inner) + "╮")
	}
	text := TruncateString(p.Title, inner-4)
	fill := max(inner-3-lipgloss.Width(text), 0)
	return edge.Render("╭─ ") + title.Render(text) + edge.Render(" "+strings.Repeat("─", fill)+"╮")
}
