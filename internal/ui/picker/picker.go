// Package picker is the "add block" menu: block types from the registry,
// grouped by category, shown as an overlay.
package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pagesmith/internal/blocks"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/ui/overlay"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
)

// SelectMsg is sent when a block type is chosen.
type SelectMsg struct {
	Type document.BlockType
}

// CancelMsg is sent when the picker is cancelled.
type CancelMsg struct{}

// Option is one selectable block type.
type Option struct {
	Type        document.BlockType
	Label       string
	Description string
	Category    blocks.Category
}

// Model holds the picker state.
type Model struct {
	title          string
	options        []Option
	selected       int
	boxWidth       int
	viewportWidth  int
	viewportHeight int
}

// New builds a picker listing every definition in reg.
func New(reg *blocks.Registry) Model {
	defs := reg.List()
	opts := make([]Option, 0, len(defs))
	// Group by category, keeping menu order inside each group.
	for _, cat := range reg.Categories() {
		for _, def := range defs {
			if def.Category != cat {
				continue
			}
			opts = append(opts, Option{
				Type:        def.Type,
				Label:       def.Label,
				Description: def.Description,
				Category:    def.Category,
			})
		}
	}
	return Model{title: "Add block", options: opts, boxWidth: 44}
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.viewportWidth = width
	m.viewportHeight = height
	return m
}

// Options returns the options in display order.
func (m Model) Options() []Option { return m.options }

// Selected returns the highlighted option.
func (m Model) Selected() (Option, bool) {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected], true
	}
	return Option{}, false
}

// SetSelected highlights the option for t, if present.
func (m Model) SetSelected(t document.BlockType) Model {
	for i, opt := range m.options {
		if opt.Type == t {
			m.selected = i
		}
	}
	return m
}

// Update handles key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "j", "down", "ctrl+n":
		if m.selected < len(m.options)-1 {
			m.selected++
		}
	case "k", "up", "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
	case "g", "home":
		m.selected = 0
	case "G", "end":
		m.selected = max(len(m.options)-1, 0)
	case "enter":
		if opt, ok := m.Selected(); ok {
			return m, func() tea.Msg { return SelectMsg{Type: opt.Type} }
		}
	case "esc", "q":
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, nil
}

// View renders the picker box (without positioning).
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextDescriptionColor)

	var body strings.Builder
	var category blocks.Category
	for i, opt := range m.options {
		if opt.Category != category {
			category = opt.Category
			if i > 0 {
				body.WriteString("\n")
			}
			body.WriteString(lipgloss.NewStyle().
				Bold(true).
				Foreground(styles.CategoryColor(category)).
				Render(string(category)))
			body.WriteString("\n")
		}

		label := opt.Label
		if i == m.selected {
			body.WriteString(styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(label))
			if opt.Description != "" {
				room := m.boxWidth - lipgloss.Width(label) - 4
				body.WriteString("  " + descStyle.Render(styles.TruncateString(opt.Description, room)))
			}
		} else {
			body.WriteString(" " + label)
		}
		body.WriteString("\n")
	}

	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", m.boxWidth))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(m.boxWidth).
		Render(titleStyle.Render(m.title) + "\n" + divider + "\n" + strings.TrimSuffix(body.String(), "\n"))
}

// Overlay renders the picker centered on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.View()
	if background == "" {
		return lipgloss.Place(m.viewportWidth, m.viewportHeight, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{
		Width:    m.viewportWidth,
		Height:   m.viewportHeight,
		Position: overlay.Center,
	}, box, background)
}
