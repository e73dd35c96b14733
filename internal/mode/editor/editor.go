// Package editor implements the editor mode controller: the block canvas,
// the field inspector, the add-block picker, the undo history and the help
// overlay, all bound to one editing session.
package editor

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/pagesmith/internal/command"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/mode"
	"github.com/zjrosen/pagesmith/internal/pubsub"
	"github.com/zjrosen/pagesmith/internal/session"
	"github.com/zjrosen/pagesmith/internal/ui/canvas"
	"github.com/zjrosen/pagesmith/internal/ui/help"
	"github.com/zjrosen/pagesmith/internal/ui/historyview"
	"github.com/zjrosen/pagesmith/internal/ui/inspector"
	"github.com/zjrosen/pagesmith/internal/ui/picker"
	"github.com/zjrosen/pagesmith/internal/ui/styles"
	"github.com/zjrosen/pagesmith/internal/ui/toaster"
)

// ViewMode determines which view has the keyboard.
type ViewMode int

const (
	ViewCanvas ViewMode = iota
	ViewInspector
	ViewPicker
	ViewHelp
	ViewHistory
)

// inspectorWidthPercent is the share of the screen the inspector panel takes.
const inspectorWidthPercent = 40

// Model is the editor mode state.
type Model struct {
	services mode.Services
	sess     *session.Session

	dispatcher *command.Dispatcher
	notice     *notice
	drag       *command.DragTracker
	listener   *pubsub.ContinuousListener[session.Change]

	canvas    canvas.Model
	inspector inspector.Model
	picker    picker.Model
	help      help.Model
	history   historyview.Model

	view ViewMode
	// inspecting is true while the inspector panel is shown, including when
	// the picker or help overlay sits on top of it.
	inspecting bool

	width  int
	height int

	showStatusBar bool
	showHelpBar   bool
}

// New creates the editor mode controller. Session changes are received
// until ctx is cancelled.
func New(ctx context.Context, services mode.Services) Model {
	sess := services.Session
	out := &notice{}

	markdownStyle := ""
	showStatusBar, showHelpBar := true, true
	if services.Config != nil {
		markdownStyle = services.Config.UI.MarkdownStyle
		showStatusBar = services.Config.UI.ShowStatusBar
		showHelpBar = services.Config.UI.ShowHelpBar
	}

	m := Model{
		services:      services,
		sess:          sess,
		dispatcher:    newDispatcher(services.Keys, sess, out),
		notice:        out,
		drag:          &command.DragTracker{},
		listener:      pubsub.NewContinuousListener[session.Change](ctx, sess),
		canvas:        canvas.New(sess.Registry(), services.Previews, markdownStyle),
		picker:        picker.New(sess.Registry()),
		help:          help.New(services.Keys),
		history:       historyview.New(services.Clock),
		view:          ViewCanvas,
		showStatusBar: showStatusBar,
		showHelpBar:   showHelpBar,
	}
	return m.sync()
}

// Init starts listening for session changes.
func (m Model) Init() tea.Cmd {
	return m.listener.Listen()
}

// ViewMode returns the view that has the keyboard.
func (m Model) ViewMode() ViewMode { return m.view }

// Inspecting reports whether the inspector panel is open.
func (m Model) Inspecting() bool { return m.inspecting }

// Inspector returns the inspector model.
func (m Model) Inspector() inspector.Model { return m.inspector }

// Canvas returns the canvas model.
func (m Model) Canvas() canvas.Model { return m.canvas }

// Picker returns the add-block picker model.
func (m Model) Picker() picker.Model { return m.picker }

// Dragging reports whether a block drag is in progress.
func (m Model) Dragging() bool { return m.drag.State() == command.DragDragging }

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m = m.layout()
	m.picker = m.picker.SetSize(width, height)
	m.help = m.help.SetSize(width, height)
	m.history = m.history.SetSize(width, height)
	return m
}

// layout sizes the canvas and inspector for the current panel state.
func (m Model) layout() Model {
	canvasWidth := m.width
	if m.inspecting {
		panel := m.inspectorWidth()
		canvasWidth = m.width - panel
		m.inspector = m.inspector.SetSize(panel, m.bodyHeight())
	}
	m.canvas = m.canvas.SetSize(canvasWidth, m.bodyHeight())
	return m
}

func (m Model) inspectorWidth() int {
	return max(m.width*inspectorWidthPercent/100, 30)
}

// bodyHeight is the height left after the status and help bars.
func (m Model) bodyHeight() int {
	h := m.height
	if m.showStatusBar {
		h--
	}
	if m.showHelpBar {
		h--
	}
	return max(h, 0)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case session.ChangeEvent:
		// Changes made from this model were synced already; this catches
		// the ones that were not, such as a template reload.
		m = m.sync()
		return m, m.listener.Listen()

	case picker.SelectMsg:
		return m.handleAddBlock(msg.Type)

	case picker.CancelMsg:
		m = m.closeOverlay()
		return m, nil

	case inspector.ContentMsg:
		return m.handleEditResult(m.sess.UpdateBlockContent(msg.BlockID, msg.Partial), "updating content")

	case inspector.StyleMsg:
		return m.handleEditResult(m.sess.UpdateBlockStyle(msg.BlockID, msg.Partial), "updating style")

	case inspector.StylePreviewMsg:
		// Previews fail quietly; the commit reports the error.
		if err := m.sess.PreviewBlockStyle(msg.BlockID, msg.Partial); err != nil {
			log.Debug(log.CatMode, "style preview rejected", "block", msg.BlockID, "error", err)
		}
		return m.sync(), nil

	case inspector.PreviewCancelMsg:
		m.sess.CancelPreview()
		return m.sync(), nil

	case inspector.SettingsMsg:
		return m.handleEditResult(m.sess.UpdateSettings(msg.Partial), "updating settings")

	case inspector.RenameMsg:
		if strings.TrimSpace(msg.Name) == "" {
			m.inspector = m.inspector.RefreshSite(m.sess.Document())
			return m, toast("Site name cannot be empty", toaster.StyleError)
		}
		m.sess.Rename(msg.Name)
		return m.sync(), nil

	case historyview.CloseMsg:
		m = m.closeOverlay()
		return m, nil

	case inspector.CloseMsg:
		m = m.closeInspector()
		return m, nil

	case templateLoadedMsg:
		return m.handleTemplateLoaded(msg)
	}

	// Everything else (cursor blink, paste) belongs to an open field input.
	if m.inspecting && m.inspector.Editing() {
		var cmd tea.Cmd
		m.inspector, cmd = m.inspector.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEditResult reports a failed inspector commit and resyncs.
func (m Model) handleEditResult(err error, action string) (Model, tea.Cmd) {
	m = m.sync()
	if err != nil {
		log.ErrorErr(log.CatMode, "edit failed", err, "action", action)
		return m, toast(fmt.Sprintf("Error %s: %v", action, err), toaster.StyleError)
	}
	return m, nil
}

// handleAddBlock inserts a block of type t and selects it.
func (m Model) handleAddBlock(t document.BlockType) (Model, tea.Cmd) {
	b := m.sess.AddBlock(t)
	m = m.closeOverlay()
	m = m.sync()
	if b.ID == "" {
		return m, toast("Could not add block", toaster.StyleError)
	}
	return m, toast(fmt.Sprintf("Added %s block", b.Type.Label()), toaster.StyleSuccess)
}

// openPicker shows the add-block menu, highlighting the selected block's type.
func (m Model) openPicker() Model {
	m.picker = picker.New(m.sess.Registry()).SetSize(m.width, m.height)
	if b, ok := m.sess.Selected(); ok {
		m.picker = m.picker.SetSelected(b.Type)
	}
	m.view = ViewPicker
	return m
}

// openInspector inspects the selected block, or the site when nothing is
// selected.
func (m Model) openInspector() Model {
	if b, ok := m.sess.Selected(); ok {
		m.inspector = inspector.ForBlock(b, m.blockLabel(b.Type))
	} else {
		m.inspector = inspector.ForSite(m.sess.Document())
	}
	m.inspecting = true
	m.view = ViewInspector
	return m.layout()
}

func (m Model) closeInspector() Model {
	m.sess.CancelPreview()
	m.inspecting = false
	m.view = ViewCanvas
	return m.sync().layout()
}

// openHistory shows the undo history over the current view.
func (m Model) openHistory() Model {
	m.history = m.history.SetContent(m.sess.History(), m.sess.UndoPreview())
	m.view = ViewHistory
	return m
}

// closeOverlay returns from an overlay to whatever it covered.
func (m Model) closeOverlay() Model {
	if m.inspecting {
		m.view = ViewInspector
	} else {
		m.view = ViewCanvas
	}
	return m
}

func (m Model) blockLabel(t document.BlockType) string {
	if def, ok := m.sess.Registry().Lookup(t); ok && def.Label != "" {
		return def.Label
	}
	return t.Label()
}

// sync copies session state into the views.
func (m Model) sync() Model {
	doc := m.sess.Document()
	selected := m.sess.SelectedID()

	clipID := ""
	if b, ok := m.sess.Clipboard(); ok {
		clipID = b.ID
	}

	m.canvas = m.canvas.
		SetBlocks(doc.Blocks()).
		SetSelected(selected).
		SetClipboard(clipID)

	if m.view == ViewHistory {
		m.history = m.history.SetContent(m.sess.History(), m.sess.UndoPreview())
	}

	if !m.inspecting {
		return m
	}

	id := m.inspector.BlockID()
	switch {
	case id == "":
		m.inspector = m.inspector.RefreshSite(doc)
	case id == selected:
		if b, ok := doc.Block(id); ok {
			m.inspector = m.inspector.Refresh(b)
		}
	case selected != "":
		// The inspector follows the selection.
		b, _ := doc.Block(selected)
		m.inspector = inspector.ForBlock(b, m.blockLabel(b.Type))
		m = m.layout()
	default:
		m.inspecting = false
		if m.view == ViewInspector {
			m.view = ViewCanvas
		}
		m = m.layout()
	}
	return m
}

// View renders the editor.
func (m Model) View() string {
	base := m.renderBase()
	switch m.view {
	case ViewPicker:
		return m.picker.Overlay(base)
	case ViewHelp:
		return m.help.Overlay(base)
	case ViewHistory:
		return m.history.Overlay(base)
	default:
		return base
	}
}

func (m Model) renderBase() string {
	body := m.canvas.View()
	if m.inspecting {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.inspector.View())
	}

	lines := []string{body}
	if m.showStatusBar {
		lines = append(lines, m.renderStatusBar())
	}
	if m.showHelpBar {
		lines = append(lines, m.renderHelpBar())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	doc := m.sess.Document()

	parts := []string{doc.Name(), blockCount(doc.Len())}
	if b, ok := m.sess.Selected(); ok {
		parts = append(parts, fmt.Sprintf("#%d %s", doc.IndexOf(b.ID)+1, m.blockLabel(b.Type)))
	}
	if label := m.sess.UndoLabel(); label != "" {
		parts = append(parts, "undo: "+label)
	}
	if b, ok := m.sess.Clipboard(); ok {
		parts = append(parts, "clipboard: "+m.blockLabel(b.Type))
	}
	if m.sess.Previewing() {
		parts = append(parts, "previewing")
	}

	content := styles.TruncateString(strings.Join(parts, " · "), max(m.width-2, 0))
	return styles.StatusBarStyle.Width(m.width).Render(content)
}

func (m Model) renderHelpBar() string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	var parts []string
	for _, b := range m.services.Keys.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, keyStyle.Render(b.Help().Key)+" "+descStyle.Render(b.Help().Desc))
	}
	line := strings.Join(parts, descStyle.Render(" • "))
	return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Render(line)
}

func blockCount(n int) string {
	if n == 1 {
		return "1 block"
	}
	return fmt.Sprintf("%d blocks", n)
}
