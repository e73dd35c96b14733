package editor

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/pagesmith/internal/command"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/export"
	"github.com/zjrosen/pagesmith/internal/keys"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/mode"
	"github.com/zjrosen/pagesmith/internal/shared"
	"github.com/zjrosen/pagesmith/internal/templates"
	"github.com/zjrosen/pagesmith/internal/ui/toaster"
)

// templateLoadedMsg carries a reloaded template document.
type templateLoadedMsg struct {
	doc document.Website
	err error
}

// toast returns a command asking the app to show a toast.
func toast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return mode.ShowToastMsg{Message: message, Style: style}
	}
}

// handleKey routes key messages to the appropriate handler based on view mode.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.view {
	case ViewHelp:
		switch msg.String() {
		case "esc", "?":
			m = m.closeOverlay()
		}
		return m, nil
	case ViewPicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case ViewHistory:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	case ViewInspector:
		return m.handleInspectorKey(msg)
	}
	return m.handleCanvasKey(msg)
}

func (m Model) handleCanvasKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" && m.drag.State() == command.DragDragging {
		m = m.cancelDrag()
		return m, nil
	}
	res := m.dispatcher.Dispatch(command.Event{Key: msg, Target: command.TargetCanvas})
	return m.afterDispatch(res)
}

// inspectorKeys are the keys the inspector handles while no field is open.
var inspectorKeys = map[string]bool{
	"j": true, "down": true, "tab": true,
	"k": true, "up": true, "shift+tab": true,
	"enter": true, "esc": true, "q": true,
}

func (m Model) handleInspectorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.inspector.Editing() && inspectorKeys[msg.String()] {
		var cmd tea.Cmd
		m.inspector, cmd = m.inspector.Update(msg)
		return m, cmd
	}

	// A field input has focus: Dispatch sees an editable target and leaves
	// the key alone, so it reaches the input.
	res := m.dispatcher.Dispatch(command.Event{Key: msg, Target: m.inspector.Target()})
	if !res.Handled {
		var cmd tea.Cmd
		m.inspector, cmd = m.inspector.Update(msg)
		return m, cmd
	}
	return m.afterDispatch(res)
}

// afterDispatch handles shortcuts that open views, then resyncs and shows any
// notice the shortcut's action left.
func (m Model) afterDispatch(res command.Result) (Model, tea.Cmd) {
	if !res.Handled {
		return m, nil
	}

	var cmd tea.Cmd
	switch res.Name {
	case keys.ActionAdd:
		m = m.openPicker()
	case keys.ActionEdit:
		m = m.openInspector()
	case keys.ActionHelp:
		m.help = m.help.SetSize(m.width, m.height)
		m.view = ViewHelp
	case keys.ActionHistory:
		m = m.openHistory()
	case keys.ActionExport:
		cmd = m.exportCmd()
	case keys.ActionYank:
		cmd = m.yankCmd()
	case keys.ActionQuit:
		return m, tea.Quit
	}

	m = m.sync()
	if n, ok := m.notice.take(); ok {
		return m, tea.Batch(cmd, toast(n.message, n.style))
	}
	return m, cmd
}

// exportCmd writes the live document to the configured export path.
func (m Model) exportCmd() tea.Cmd {
	path := "site.json"
	if m.services.Config != nil && m.services.Config.ExportPath != "" {
		path = m.services.Config.ExportPath
	}
	doc := m.sess.Document()
	return func() tea.Msg {
		if err := export.WriteFile(path, doc); err != nil {
			log.ErrorErr(log.CatExport, "export failed", err, "path", path)
			return mode.ShowToastMsg{Message: "Export failed: " + err.Error(), Style: toaster.StyleError}
		}
		return mode.ShowToastMsg{Message: "Exported " + path, Style: toaster.StyleSuccess}
	}
}

// yankCmd copies the selected block's JSON to the system clipboard.
func (m Model) yankCmd() tea.Cmd {
	b, ok := m.sess.Selected()
	if !ok {
		return toast("Select a block first", toaster.StyleInfo)
	}
	clip := m.services.Clipboard
	if clip == nil {
		clip = shared.SystemClipboard{}
	}
	return func() tea.Msg {
		text, err := export.BlockJSON(b)
		if err == nil {
			err = clip.Copy(text)
		}
		if err != nil {
			log.ErrorErr(log.CatMode, "yank failed", err, "block", b.ID)
			return mode.ShowToastMsg{Message: "Copy failed: " + err.Error(), Style: toaster.StyleError}
		}
		return mode.ShowToastMsg{Message: fmt.Sprintf("Copied %s JSON", b.Type.Label()), Style: toaster.StyleSuccess}
	}
}

// HandleTemplateChanged reloads the watched template file. It is called by
// the app when the watcher reports a change; the app re-subscribes.
func (m Model) HandleTemplateChanged() (Model, tea.Cmd) {
	path := m.services.TemplatePath
	if path == "" {
		return m, nil
	}
	reg := m.sess.Registry()
	ids := m.services.IDs
	if ids == nil {
		ids = shared.UUIDGenerator{}
	}
	return m, func() tea.Msg {
		tpl, err := templates.LoadFile(path)
		if err != nil {
			return templateLoadedMsg{err: err}
		}
		doc, err := templates.Build(tpl, reg, ids)
		return templateLoadedMsg{doc: doc, err: err}
	}
}

func (m Model) handleTemplateLoaded(msg templateLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		log.ErrorErr(log.CatTemplate, "template reload failed", msg.err, "path", m.services.TemplatePath)
		return m, toast("Template reload failed: "+msg.err.Error(), toaster.StyleError)
	}
	if err := m.sess.Load(msg.doc); err != nil {
		log.ErrorErr(log.CatTemplate, "template rejected", err, "path", m.services.TemplatePath)
		return m, toast("Template reload failed: "+err.Error(), toaster.StyleError)
	}

	m.drag.Cancel()
	m.canvas = m.canvas.SetDragging("").SetDropTarget("")
	m.inspecting = false
	m = m.closeOverlay()
	m = m.sync().layout()
	log.Info(log.CatTemplate, "template reloaded", "path", m.services.TemplatePath, "blocks", msg.doc.Len())
	return m, toast("Template reloaded", toaster.StyleInfo)
}
