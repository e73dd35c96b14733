// Package app contains the root application model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/mode"
	"github.com/zjrosen/pagesmith/internal/mode/editor"
	"github.com/zjrosen/pagesmith/internal/ui/logoverlay"
	"github.com/zjrosen/pagesmith/internal/ui/toaster"
	"github.com/zjrosen/pagesmith/internal/watcher"
)

// toggleLogs shows the log overlay in debug mode.
var toggleLogs = key.NewBinding(
	key.WithKeys("ctrl+l"),
	key.WithHelp("ctrl+l", "toggle logs"),
)

// templateChangedMsg is sent when the watched template file changes.
type templateChangedMsg struct{}

// Model is the root application state.
type Model struct {
	editor   editor.Model
	services mode.Services

	width  int
	height int

	// Centralized toaster - owned by app, not the mode
	toaster toaster.Model

	debugMode   bool
	logOverlay  logoverlay.Model
	logListener *log.LogListener

	ctx    context.Context
	cancel context.CancelFunc

	// Template file watcher, nil for built-in templates
	watcherHandle *watcher.Watcher
	changes       <-chan struct{}
}

// New creates the application model. When services.TemplatePath is set the
// file is watched and reloaded on change. debugMode enables the log overlay.
func New(services mode.Services, debugMode bool) Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		editor:     editor.New(ctx, services),
		services:   services,
		toaster:    toaster.New(),
		debugMode:  debugMode,
		logOverlay: logoverlay.New(),
		ctx:        ctx,
		cancel:     cancel,
	}

	if services.TemplatePath != "" {
		w, changes, err := startWatcher(services.TemplatePath)
		if err != nil {
			// The editor works without live reload.
			log.Warn(log.CatWatcher, "template watcher unavailable", "path", services.TemplatePath, "error", err)
		} else {
			m.watcherHandle = w
			m.changes = changes
		}
	}

	if debugMode {
		m.logListener = log.NewListener(ctx)
	}
	return m
}

func startWatcher(path string) (*watcher.Watcher, <-chan struct{}, error) {
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		return nil, nil, err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return nil, nil, err
	}
	return w, changes, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.editor.Init()}
	if m.changes != nil {
		cmds = append(cmds, m.waitForChange())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks until the watcher signals or the app shuts down.
func (m Model) waitForChange() tea.Cmd {
	ctx, changes := m.ctx, m.changes
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			return templateChangedMsg{}
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor = m.editor.SetSize(msg.Width, msg.Height)
		m.logOverlay = m.logOverlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		m.logOverlay = m.logOverlay.Append(msg.Payload)
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case tea.KeyMsg:
		if m.debugMode && key.Matches(msg, toggleLogs) {
			m.logOverlay = m.logOverlay.Toggle()
			return m, nil
		}
		// The log overlay takes keys while it is open.
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}

	case logoverlay.CloseMsg:
		m.logOverlay = m.logOverlay.Hide()
		return m, nil

	case templateChangedMsg:
		log.Debug(log.CatWatcher, "template changed, reloading", "path", m.services.TemplatePath)
		if m.services.Previews != nil {
			if err := m.services.Previews.Flush(m.ctx); err != nil {
				log.Warn(log.CatCache, "failed to flush previews on reload", "error", err)
			}
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.HandleTemplateChanged()
		return m, tea.Batch(cmd, m.waitForChange())

	case mode.ShowToastMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Flash(msg.Message, msg.Style, toaster.DefaultDuration)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.editor.View()

	// Overlay toaster on top of the editor
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}

	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}

	// Zones are registered here, once per frame, for mouse hit testing.
	return zone.Scan(view)
}

// Editor returns the editor mode controller.
func (m Model) Editor() editor.Model { return m.editor }

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.cancel()
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
