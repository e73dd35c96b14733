// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pagesmith/internal/keys"
	"github.com/zjrosen/pagesmith/internal/ui/overlay"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
)

// sectionTitles name the groups returned by keys.KeyMap.FullHelp, in order.
var sectionTitles = []string{"Navigation", "Blocks", "Clipboard & History", "General"}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(10)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextDescriptionColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	width  int
	height int
}

// New creates a help view for the given keymap.
func New(km keys.KeyMap) Model {
	return Model{keys: km}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetKeys replaces the keymap, e.g. after a config reload.
func (m Model) SetKeys(km keys.KeyMap) Model {
	m.keys = km
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	groups := m.keys.FullHelp()
	cols := make([]string, 0, len(groups)+1)
	for i, group := range groups {
		var col strings.Builder
		title := "More"
		if i < len(sectionTitles) {
			title = sectionTitles[i]
		}
		col.WriteString(sectionStyle.Render(title))
		col.WriteString("\n")
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			col.WriteString(renderBinding(b))
		}
		cols = append(cols, columnStyle.Render(col.String()))
	}

	var mouse strings.Builder
	mouse.WriteString(sectionStyle.Render("Mouse"))
	mouse.WriteString("\n")
	mouse.WriteString(renderKeyDesc("click", "select block"))
	mouse.WriteString(renderKeyDesc("drag", "reorder blocks"))
	cols = append(cols, mouse.String())

	// Two sections per row keep the box inside an 80 column terminal.
	var rows []string
	for i := 0; i < len(cols); i += 2 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols[i:min(i+2, len(cols))]...))
	}
	columns := lipgloss.JoinVertical(lipgloss.Left, rows...)

	boxWidth := lipgloss.Width(columns) + 4

	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or Esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(help.Key, help.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
}
