// Package toaster shows short-lived notifications ("Undid Delete block",
// "Exported site.json") in the corner of the editor.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pagesmith/internal/ui/overlay"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 2500 * time.Millisecond

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	// seq identifies the current toast so a stale dismissal does not hide a
	// newer one.
	seq int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message until Hide or a matching DismissMsg.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m
}

// Flash shows message and schedules its dismissal after d.
func (m Model) Flash(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m = m.Show(message, style)
	return m, ScheduleDismiss(m.seq, d)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.Seq == m.seq {
		return m.Hide()
	}
	return m
}

func (m Model) Visible() bool   { return m.visible }
func (m Model) Message() string { return m.message }

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		icon = "✗"
	case StyleInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
		icon = "i"
	case StyleWarn:
		style = style.BorderForeground(styles.ToastBorderWarnColor)
		icon = "!"
	default:
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		icon = "✓"
	}

	return style.Render(icon + " " + m.message)
}

// Overlay renders the toast in the bottom right corner of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.BottomRight,
		PadX:     1,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg hides the toast whose sequence number is Seq.
type DismissMsg struct{ Seq int }

// ScheduleDismiss returns a command that dismisses toast seq after d.
func ScheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}
