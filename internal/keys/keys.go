// Package keys contains keybinding definitions.
package keys

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
)

// Action names used in the keys section of the config file.
const (
	ActionUndo      = "undo"
	ActionRedo      = "redo"
	ActionCopy      = "copy"
	ActionCut       = "cut"
	ActionPaste     = "paste"
	ActionDuplicate = "duplicate"
	ActionDelete    = "delete"
	ActionMoveUp    = "move_up"
	ActionMoveDown  = "move_down"
	ActionUp        = "up"
	ActionDown      = "down"
	ActionAdd       = "add"
	ActionEdit      = "edit"
	ActionEscape    = "escape"
	ActionHelp      = "help"
	ActionHistory   = "history"
	ActionExport    = "export"
	ActionYank      = "yank"
	ActionQuit      = "quit"
)

// KeyMap defines the keybindings for the editor.
type KeyMap struct {
	// History
	Undo key.Binding
	Redo key.Binding

	// Clipboard
	Copy  key.Binding
	Cut   key.Binding
	Paste key.Binding

	// Blocks
	Duplicate key.Binding
	Delete    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Add       key.Binding
	Edit      key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// General
	Escape  key.Binding
	Help    key.Binding
	History key.Binding
	Export  key.Binding
	Yank    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),

		Copy: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "copy block"),
		),
		Cut: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "cut block"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste block"),
		),

		Duplicate: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "duplicate block"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del", "delete block"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("alt+up", "K"),
			key.WithHelp("alt+↑/K", "move block up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("alt+down", "J"),
			key.WithHelp("alt+↓/J", "move block down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add block"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit block"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "select previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "select next"),
		),

		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "undo history"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "export json"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy block json"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// bindings maps config action names to the bindings they control.
func (k *KeyMap) bindings() map[string]*key.Binding {
	return map[string]*key.Binding{
		ActionUndo:      &k.Undo,
		ActionRedo:      &k.Redo,
		ActionCopy:      &k.Copy,
		ActionCut:       &k.Cut,
		ActionPaste:     &k.Paste,
		ActionDuplicate: &k.Duplicate,
		ActionDelete:    &k.Delete,
		ActionMoveUp:    &k.MoveUp,
		ActionMoveDown:  &k.MoveDown,
		ActionUp:        &k.Up,
		ActionDown:      &k.Down,
		ActionAdd:       &k.Add,
		ActionEdit:      &k.Edit,
		ActionEscape:    &k.Escape,
		ActionHelp:      &k.Help,
		ActionHistory:   &k.History,
		ActionExport:    &k.Export,
		ActionYank:      &k.Yank,
		ActionQuit:      &k.Quit,
	}
}

// Actions returns every configurable action name, sorted.
func Actions() []string {
	var k KeyMap
	names := make([]string, 0, len(k.bindings()))
	for name := range k.bindings() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithOverrides returns a copy of k with the keys of the named actions
// replaced. The help description is kept; the help key becomes the first
// override. An empty key list disables the action.
func (k KeyMap) WithOverrides(overrides map[string][]string) (KeyMap, error) {
	out := k
	table := out.bindings()
	for action, keys := range overrides {
		b, ok := table[action]
		if !ok {
			return k, fmt.Errorf("unknown key action %q", action)
		}
		if len(keys) == 0 {
			b.SetEnabled(false)
			continue
		}
		desc := b.Help().Desc
		*b = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], desc),
		)
	}
	return out, nil
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Undo, k.Redo, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveUp, k.MoveDown},                // Navigation
		{k.Add, k.Edit, k.Duplicate, k.Delete},              // Blocks
		{k.Copy, k.Cut, k.Paste, k.Undo, k.Redo, k.History}, // Clipboard and history
		{k.Export, k.Yank, k.Help, k.Escape, k.Quit},        // General
	}
}
