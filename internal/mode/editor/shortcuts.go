package editor

import (
	"fmt"

	"github.com/zjrosen/pagesmith/internal/command"
	"github.com/zjrosen/pagesmith/internal/keys"
	"github.com/zjrosen/pagesmith/internal/session"
	"github.com/zjrosen/pagesmith/internal/ui/toaster"
)

// notice carries the toast a shortcut action wants shown. Actions run inside
// Dispatch; the editor reads the notice back once Dispatch returns.
type notice struct {
	message string
	style   toaster.Style
}

func (n *notice) set(style toaster.Style, format string, args ...any) {
	n.message = fmt.Sprintf(format, args...)
	n.style = style
}

// take returns the pending notice and clears it.
func (n *notice) take() (notice, bool) {
	out := *n
	*n = notice{}
	return out, out.message != ""
}

// newDispatcher builds the shortcut table. Shortcuts that only touch the
// session carry their action here; shortcuts that open views (add, edit,
// help, history, export, yank, quit) have no action and are handled by name.
func newDispatcher(km keys.KeyMap, sess *session.Session, out *notice) *command.Dispatcher {
	// withSelection runs fn on the selected block, or reports that nothing is
	// selected.
	withSelection := func(fn func(id string)) func() {
		return func() {
			id := sess.SelectedID()
			if id == "" {
				out.set(toaster.StyleInfo, "Select a block first")
				return
			}
			fn(id)
		}
	}

	return command.NewDispatcher(
		// History
		command.Shortcut{Name: keys.ActionUndo, Binding: km.Undo, Action: func() {
			label := sess.UndoLabel()
			if !sess.Undo() {
				out.set(toaster.StyleInfo, "Nothing to undo")
				return
			}
			out.set(toaster.StyleSuccess, "Undid %s", label)
		}},
		command.Shortcut{Name: keys.ActionRedo, Binding: km.Redo, Action: func() {
			label := sess.RedoLabel()
			if !sess.Redo() {
				out.set(toaster.StyleInfo, "Nothing to redo")
				return
			}
			out.set(toaster.StyleSuccess, "Redid %s", label)
		}},

		// Clipboard
		command.Shortcut{Name: keys.ActionCopy, Binding: km.Copy, AllowShift: true, Action: withSelection(func(id string) {
			if sess.Copy(id) {
				out.set(toaster.StyleSuccess, "Copied block")
			}
		})},
		command.Shortcut{Name: keys.ActionCut, Binding: km.Cut, AllowShift: true, Action: withSelection(func(id string) {
			if sess.Cut(id) {
				out.set(toaster.StyleSuccess, "Cut block")
			}
		})},
		command.Shortcut{Name: keys.ActionPaste, Binding: km.Paste, AllowShift: true, Action: func() {
			b, ok := sess.Paste()
			if !ok {
				out.set(toaster.StyleInfo, "Clipboard is empty")
				return
			}
			out.set(toaster.StyleSuccess, "Pasted %s block", b.Type.Label())
		}},

		// Blocks
		command.Shortcut{Name: keys.ActionDuplicate, Binding: km.Duplicate, Action: withSelection(func(id string) {
			if _, ok := sess.DuplicateBlock(id); ok {
				out.set(toaster.StyleSuccess, "Duplicated block")
			}
		})},
		command.Shortcut{Name: keys.ActionDelete, Binding: km.Delete, Action: withSelection(func(id string) {
			if sess.DeleteBlock(id) {
				out.set(toaster.StyleWarn, "Deleted block (%s to undo)", km.Undo.Help().Key)
			}
		})},
		command.Shortcut{Name: keys.ActionMoveUp, Binding: km.MoveUp, Action: withSelection(func(id string) {
			sess.MoveUp(id)
		})},
		command.Shortcut{Name: keys.ActionMoveDown, Binding: km.MoveDown, Action: withSelection(func(id string) {
			sess.MoveDown(id)
		})},

		// Navigation
		command.Shortcut{Name: keys.ActionUp, Binding: km.Up, Action: func() { sess.SelectOffset(-1) }},
		command.Shortcut{Name: keys.ActionDown, Binding: km.Down, Action: func() { sess.SelectOffset(1) }},
		command.Shortcut{Name: keys.ActionEscape, Binding: km.Escape, Action: sess.ClearSelection},

		// Views
		command.Shortcut{Name: keys.ActionAdd, Binding: km.Add, AllowShift: true},
		command.Shortcut{Name: keys.ActionEdit, Binding: km.Edit},
		command.Shortcut{Name: keys.ActionHelp, Binding: km.Help},
		command.Shortcut{Name: keys.ActionHistory, Binding: km.History},
		command.Shortcut{Name: keys.ActionExport, Binding: km.Export},
		command.Shortcut{Name: keys.ActionYank, Binding: km.Yank, AllowShift: true},
		command.Shortcut{Name: keys.ActionQuit, Binding: km.Quit},
	)
}
