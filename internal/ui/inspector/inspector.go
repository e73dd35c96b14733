// Package inspector edits the fields of the selected block, or the site
// settings when no block is selected.
package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pagesmith/internal/command"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
)

// ContentMsg asks for a tracked content update.
type ContentMsg struct {
	BlockID string
	Partial map[string]any
}

// StyleMsg asks for a tracked style update.
type StyleMsg struct {
	BlockID string
	Partial map[string]any
}

// StylePreviewMsg asks for an untracked style change while the user types.
type StylePreviewMsg struct {
	BlockID string
	Partial map[string]any
}

// PreviewCancelMsg asks to drop any untracked style preview.
type PreviewCancelMsg struct{}

// SettingsMsg asks for a site settings update.
type SettingsMsg struct {
	Partial map[string]any
}

// RenameMsg asks to rename the site.
type RenameMsg struct {
	Name string
}

// CloseMsg is sent when the inspector is dismissed.
type CloseMsg struct{}

const keyWidth = 18

// Model holds the inspector state.
type Model struct {
	blockID string
	title   string
	rows    []row
	cursor  int

	editing   bool
	previewed bool
	input     textinput.Model
	area      textarea.Model

	width  int
	height int
}

// ForBlock inspects b. label is the display name of its type.
func ForBlock(b document.Block, label string) Model {
	m := newModel()
	m.blockID = b.ID
	m.title = fmt.Sprintf("Edit %s", label)
	m.rows = blockRows(b)
	return m
}

// ForSite inspects the site name and settings.
func ForSite(w document.Website) Model {
	m := newModel()
	m.title = "Site settings"
	m.rows = siteRows(w)
	return m
}

func newModel() Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 500

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(4)

	return Model{input: ti, area: ta}
}

// BlockID returns the inspected block, empty for the site inspector.
func (m Model) BlockID() string { return m.blockID }

// Editing reports whether a field input has focus.
func (m Model) Editing() bool { return m.editing }

// Target reports the focus target for shortcut dispatch.
func (m Model) Target() command.Target {
	if !m.editing {
		return command.TargetCanvas
	}
	if m.current().kind() == kindMultiline {
		return command.TargetTextArea
	}
	return command.TargetTextInput
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	inputWidth := max(width-4, 10)
	m.input.Width = inputWidth
	m.area.SetWidth(inputWidth)
	return m
}

// Refresh reloads field values after the document changed underneath, e.g.
// on undo. The cursor is kept; an open input is left alone.
func (m Model) Refresh(b document.Block) Model {
	if m.editing || b.ID != m.blockID {
		return m
	}
	m.rows = blockRows(b)
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
	return m
}

// RefreshSite reloads site values.
func (m Model) RefreshSite(w document.Website) Model {
	if m.editing || m.blockID != "" {
		return m
	}
	m.rows = siteRows(w)
	return m
}

func (m Model) current() row {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor]
	}
	return row{value: nil}
}

// Update handles key messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			return m.forward(msg)
		}
		return m, nil
	}
	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch keyMsg.String() {
	case "j", "down", "tab":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		return m.activate()
	case "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// activate starts editing the current row or toggles it.
func (m Model) activate() (Model, tea.Cmd) {
	r := m.current()
	switch r.kind() {
	case kindReadOnly:
		return m, nil
	case kindToggle:
		v, _ := r.value.(bool)
		m.rows[m.cursor].value = !v
		return m, m.commitCmd(r, !v)
	case kindMultiline:
		m.area.SetValue(editValue(r.value))
		m.editing = true
		return m, m.area.Focus()
	default:
		m.input.SetValue(editValue(r.value))
		m.input.CursorEnd()
		m.editing = true
		return m, m.input.Focus()
	}
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	r := m.current()
	multiline := r.kind() == kindMultiline

	switch msg.String() {
	case "esc":
		m = m.stopEditing()
		if m.previewed {
			m.previewed = false
			return m, func() tea.Msg { return PreviewCancelMsg{} }
		}
		return m, nil
	case "ctrl+s":
		return m.commit()
	case "enter":
		if !multiline {
			return m.commit()
		}
	}

	before := m.value()
	m, cmd := m.forward(msg)
	if r.section == SectionStyle && m.value() != before {
		m.previewed = true
		preview := StylePreviewMsg{BlockID: m.blockID, Partial: r.partial(m.value())}
		return m, tea.Batch(cmd, func() tea.Msg { return preview })
	}
	return m, cmd
}

func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.current().kind() == kindMultiline {
		m.area, cmd = m.area.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) value() string {
	if m.current().kind() == kindMultiline {
		return m.area.Value()
	}
	return m.input.Value()
}

func (m Model) commit() (Model, tea.Cmd) {
	r := m.current()
	text := m.value()
	m = m.stopEditing()
	m.previewed = false

	var v any = text
	if _, isInt := r.value.(int); !isInt {
		m.rows[m.cursor].value = text
	}
	return m, m.commitCmd(r, v)
}

func (m Model) stopEditing() Model {
	m.editing = false
	m.input.Blur()
	m.area.Blur()
	return m
}

func (m Model) commitCmd(r row, v any) tea.Cmd {
	id := m.blockID
	switch r.section {
	case SectionContent:
		return func() tea.Msg { return ContentMsg{BlockID: id, Partial: r.partial(v)} }
	case SectionStyle:
		return func() tea.Msg { return StyleMsg{BlockID: id, Partial: r.partial(v)} }
	default:
		if r.group == "" && r.key == "name" {
			name, _ := v.(string)
			return func() tea.Msg { return RenameMsg{Name: name} }
		}
		return func() tea.Msg { return SettingsMsg{Partial: r.partial(v)} }
	}
}

// View renders the inspector panel.
func (m Model) View() string {
	inner := max(m.width-2, 10)
	keyStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Width(keyWidth)
	valueStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	mutedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor)

	var lines []string
	cursorLine := 0
	var section Section = -1
	for i, r := range m.rows {
		if r.section != section {
			section = r.section
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, sectionStyle.Render(section.String()))
		}

		indicator := " "
		if i == m.cursor {
			indicator = styles.SelectionIndicatorStyle.Render(">")
			cursorLine = len(lines)
		}
		value := formatValue(r.value)
		vs := valueStyle
		if r.kind() == kindReadOnly {
			value += " (read-only)"
			vs = mutedStyle
		}
		room := max(inner-keyWidth-1, 1)
		lines = append(lines, indicator+keyStyle.Render(styles.TruncateString(r.label(), keyWidth-1))+vs.Render(styles.TruncateString(value, room)))

		if i == m.cursor && m.editing {
			if r.kind() == kindMultiline {
				lines = append(lines, strings.Split(m.area.View(), "\n")...)
			} else {
				lines = append(lines, " "+m.input.View())
			}
		}
	}

	hint := "enter edit · esc close"
	if m.editing {
		hint = "enter save · esc cancel"
		if m.current().kind() == kindMultiline {
			hint = "ctrl+s save · esc cancel"
		}
	}

	rows := max(m.height-3, 1)
	lines = window(lines, cursorLine, rows)
	body := strings.Join(lines, "\n") + "\n" + mutedStyle.Render(hint)

	return styles.Panel{
		Title:   m.title,
		Width:   m.width,
		Height:  m.height,
		Focused: true,
	}.Render(body)
}

// window returns at most n lines of lines, keeping focus visible.
func window(lines []string, focus, n int) []string {
	if len(lines) <= n {
		return lines
	}
	start := max(min(focus-n/2, len(lines)-n), 0)
	return lines[start : start+n]
}
