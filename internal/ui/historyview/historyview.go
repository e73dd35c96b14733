// Package historyview shows the undo history and a diff of what the next
// undo would change.
package historyview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/pagesmith/internal/session"
	"github.com/zjrosen/pagesmith/internal/shared"
	"github.com/zjrosen/pagesmith/internal/ui/overlay"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
)

// CloseMsg is sent when the view is dismissed.
type CloseMsg struct{}

const (
	boxMaxWidth       = 76
	boxMinWidth       = 36
	viewportMaxHeight = 24
	viewportMinHeight = 4
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)
	labelStyle   = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	undoneStyle  = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Strikethrough(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	addStyle     = lipgloss.NewStyle().Foreground(styles.DiffAdditionColor)
	delStyle     = lipgloss.NewStyle().Foreground(styles.DiffDeletionColor)
)

// Model holds the history view state.
type Model struct {
	items   []session.HistoryItem
	preview string
	clock   shared.Clock

	viewport viewport.Model
	width    int
	height   int
}

// New creates an empty history view. clock drives the relative timestamps.
func New(clock shared.Clock) Model {
	if clock == nil {
		clock = shared.RealClock{}
	}
	return Model{clock: clock}
}

// SetContent replaces the entries and the undo preview and scrolls to the top.
func (m Model) SetContent(items []session.HistoryItem, preview string) Model {
	m.items = items
	m.preview = preview
	m = m.refresh()
	m.viewport.GotoTop()
	return m
}

// SetSize updates the screen size.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m.refresh()
}

// Update handles scrolling and dismissal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "esc", "q", "H":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		m.viewport.ScrollDown(1)
	case "k", "up":
		m.viewport.ScrollUp(1)
	case "g":
		m.viewport.GotoTop()
	case "G":
		m.viewport.GotoBottom()
	}
	return m, nil
}

// View renders the box.
func (m Model) View() string {
	width := m.boxWidth()
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", width))

	body := strings.Join([]string{
		titleStyle.Render("Undo history") + mutedStyle.Render("  "+Summary(m.items)),
		divider,
		m.viewport.View(),
		divider,
		mutedStyle.Render(" j/k scroll · esc close"),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(body)
}

// Overlay renders the box centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

func (m Model) refresh() Model {
	if m.width == 0 || m.height == 0 {
		return m
	}
	// Title, footer, dividers and borders take six lines.
	h := max(min(viewportMaxHeight, m.height-6), viewportMinHeight)
	inner := m.boxWidth() - 2
	offset := m.viewport.YOffset
	m.viewport = viewport.New(inner, h)
	m.viewport.SetContent(m.content(inner))
	m.viewport.SetYOffset(offset)
	return m
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

// content lists entries newest first, then the undo preview.
func (m Model) content(width int) string {
	var lines []string
	if len(m.items) == 0 {
		lines = append(lines, mutedStyle.Italic(true).Render("No changes yet"))
	}

	// The newest undo entry is the one the next undo reverts.
	next := -1
	for i, it := range m.items {
		if !it.Undone {
			next = i
		}
	}
	for i := len(m.items) - 1; i >= 0; i-- {
		it := m.items[i]
		marker := "  "
		style := labelStyle
		switch {
		case it.Undone:
			style = undoneStyle
		case i == next:
			marker = styles.SelectionIndicatorStyle.Render("> ")
		}
		when := shared.FormatRelativeTime(it.At, m.clock)
		room := max(width-2-lipgloss.Width(when)-1, 1)
		label := ansi.Truncate(it.Label, room, "...")
		pad := max(room-lipgloss.Width(label), 0)
		lines = append(lines, marker+style.Render(label)+strings.Repeat(" ", pad+1)+mutedStyle.Render(when))
	}

	lines = append(lines, "", sectionStyle.Render("Next undo changes"))
	if m.preview == "" {
		lines = append(lines, mutedStyle.Render("Nothing to undo"))
	}
	for _, line := range strings.Split(strings.TrimRight(m.preview, "\n"), "\n") {
		if line == "" {
			continue
		}
		line = ansi.Truncate(line, width, "...")
		switch {
		case strings.HasPrefix(line, "+ "):
			line = addStyle.Render(line)
		case strings.HasPrefix(line, "- "):
			line = delStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Summary is a one-line description of the history, e.g. "3 undo · 1 redo".
func Summary(items []session.HistoryItem) string {
	undo, redo := 0, 0
	for _, it := range items {
		if it.Undone {
			redo++
		} else {
			undo++
		}
	}
	return fmt.Sprintf("%d undo · %d redo", undo, redo)
}
