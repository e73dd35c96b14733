// Package logoverlay shows recent debug log entries over the editor.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/ui/overlay"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
)

const (
	// MaxEntries bounds the entries kept; older ones are dropped.
	MaxEntries = 500

	viewportMaxHeight = 25
	viewportMinHeight = 5
	boxMaxWidth       = 160
	boxMinWidth       = 40
)

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// Model is the log overlay state.
type Model struct {
	visible  bool
	minLevel log.Level
	entries  []string
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden overlay.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Append records a log line.
func (m Model) Append(entry string) Model {
	entry = strings.TrimSuffix(entry, "\n")
	m.entries = append(m.entries, entry)
	if over := len(m.entries) - MaxEntries; over > 0 {
		m.entries = append([]string(nil), m.entries[over:]...)
	}
	if m.visible {
		m = m.refresh()
		m.viewport.GotoBottom()
	}
	return m
}

// Entries returns the entries at or above the current level filter.
func (m Model) Entries() []string {
	var out []string
	for _, e := range m.entries {
		if levelOf(e) >= m.minLevel {
			out = append(out, e)
		}
	}
	return out
}

// Update handles keys while visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "c":
		m.entries = nil
	case "d":
		m.minLevel = log.LevelDebug
	case "i":
		m.minLevel = log.LevelInfo
	case "w":
		m.minLevel = log.LevelWarn
	case "e":
		m.minLevel = log.LevelError
	case "j", "down":
		m.viewport.ScrollDown(1)
		return m, nil
	case "k", "up":
		m.viewport.ScrollUp(1)
		return m, nil
	case "g":
		m.viewport.GotoTop()
		return m, nil
	case "G":
		m.viewport.GotoBottom()
		return m, nil
	case "esc", "ctrl+l":
		m.visible = false
		return m, func() tea.Msg { return CloseMsg{} }
	default:
		return m, nil
	}
	return m.refresh(), nil
}

// View renders the overlay box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	width := m.boxWidth()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1)
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", width))

	body := strings.Join([]string{
		titleStyle.Render("Logs"),
		divider,
		m.viewport.View(),
		divider,
		m.filterHint(),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(body)
}

// Overlay renders the box centered on bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

func (m Model) Visible() bool { return m.visible }

// Toggle shows or hides the overlay.
func (m Model) Toggle() Model {
	m.visible = !m.visible
	if m.visible {
		m = m.refresh()
		m.viewport.GotoBottom()
	}
	return m
}

// Hide closes the overlay.
func (m Model) Hide() Model {
	m.visible = false
	return m
}

// SetSize updates the screen size.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m.refresh()
}

func (m Model) refresh() Model {
	if m.width == 0 || m.height == 0 {
		return m
	}
	// Header, footer and borders take six lines.
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

func (m Model) content(width int) string {
	entries := m.Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render("No logs to display")
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		if ansi.StringWidth(e) > width {
			e = ansi.Truncate(e, width-3, "...")
		}
		lines[i] = lipgloss.NewStyle().Foreground(levelColor(levelOf(e))).Render(e)
	}
	return strings.Join(lines, "\n")
}

func (m Model) filterHint() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{hint.Render("[c] Clear")}
	for _, f := range []struct {
		level log.Level
		label string
	}{
		{log.LevelDebug, "[d] Debug"},
		{log.LevelInfo, "[i] Info"},
		{log.LevelWarn, "[w] Warn"},
		{log.LevelError, "[e] Error"},
	} {
		if f.level == m.minLevel {
			parts = append(parts, active.Render(f.label))
		} else {
			parts = append(parts, hint.Render(f.label))
		}
	}
	return strings.Join(parts, "  ")
}

// levelOf reads the level tag of a formatted entry. Untagged lines count as
// errors so that no filter hides them.
func levelOf(entry string) log.Level {
	switch {
	case strings.Contains(entry, "[DEBUG]"):
		return log.LevelDebug
	case strings.Contains(entry, "[INFO]"):
		return log.LevelInfo
	case strings.Contains(entry, "[WARN]"):
		return log.LevelWarn
	default:
		return log.LevelError
	}
}

func levelColor(l log.Level) lipgloss.TerminalColor {
	switch l {
	case log.LevelDebug:
		return styles.TextMutedColor
	case log.LevelInfo:
		return styles.ToastBorderInfoColor
	case log.LevelWarn:
		return styles.StatusWarningColor
	default:
		return styles.StatusErrorColor
	}
}
