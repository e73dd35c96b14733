// Package command maps input to editor actions: a first-match shortcut table
// that stays out of the way of text entry, and a tracker that turns pointer
// press and release into block drops.
package command

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/pagesmith/internal/log"
)

// Target is the element that has focus when a key arrives.
type Target int

const (
	TargetCanvas Target = iota
	TargetTextInput
	TargetTextArea
	TargetContentEditable
)

// Editable reports whether keys typed into t are text.
func (t Target) Editable() bool {
	return t == TargetTextInput || t == TargetTextArea || t == TargetContentEditable
}

func (t Target) String() string {
	switch t {
	case TargetCanvas:
		return "canvas"
	case TargetTextInput:
		return "text-input"
	case TargetTextArea:
		return "text-area"
	case TargetContentEditable:
		return "content-editable"
	default:
		return "unknown"
	}
}

// Shortcut binds keys to an action.
type Shortcut struct {
	Name    string
	Binding key.Binding
	// AllowShift also accepts the shifted form of letter keys ("D" for "d")
	// and shift+ variants of named keys.
	AllowShift bool
	Action     func()
}

// Event is one key press and where it landed.
type Event struct {
	Key    tea.KeyMsg
	Target Target
}

// Result reports what Dispatch did. Handled means the key was consumed and
// must not reach any other handler.
type Result struct {
	Handled bool
	Name    string
}

// Dispatcher scans shortcuts in registration order; the first match wins.
type Dispatcher struct {
	shortcuts []Shortcut
}

// NewDispatcher returns a dispatcher holding shortcuts.
func NewDispatcher(shortcuts ...Shortcut) *Dispatcher {
	d := &Dispatcher{}
	d.Register(shortcuts...)
	return d
}

// Register appends shortcuts to the table.
func (d *Dispatcher) Register(shortcuts ...Shortcut) {
	d.shortcuts = append(d.shortcuts, shortcuts...)
}

// Shortcuts returns the table in match order.
func (d *Dispatcher) Shortcuts() []Shortcut {
	out := make([]Shortcut, len(d.shortcuts))
	copy(out, d.shortcuts)
	return out
}

// Dispatch runs the action of the first shortcut matching ev. Keys aimed at
// an editable target are never matched.
func (d *Dispatcher) Dispatch(ev Event) Result {
	if ev.Target.Editable() {
		return Result{}
	}
	for _, sc := range d.shortcuts {
		if !Matches(sc, ev.Key) {
			continue
		}
		log.Debug(log.CatKeys, "shortcut", "name", sc.Name, "key", ev.Key.String())
		if sc.Action != nil {
			sc.Action()
		}
		return Result{Handled: true, Name: sc.Name}
	}
	return Result{}
}

// Matches reports whether msg triggers sc. Modifiers must match exactly:
// "ctrl+z" never fires on "z" and "d" never fires on "alt+d".
func Matches(sc Shortcut, msg tea.KeyMsg) bool {
	if !sc.Binding.Enabled() {
		return false
	}
	if hasKey(sc.Binding, msg.String()) {
		return true
	}
	if sc.AllowShift {
		if unshifted, ok := withoutShift(msg); ok {
			return hasKey(sc.Binding, unshifted)
		}
	}
	return false
}

func hasKey(b key.Binding, s string) bool {
	for _, k := range b.Keys() {
		if k == s {
			return true
		}
	}
	return false
}

// withoutShift returns msg's key string with shift removed, if shift was held.
func withoutShift(msg tea.KeyMsg) (string, bool) {
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsUpper(msg.Runes[0]) {
		s := string(unicode.ToLower(msg.Runes[0]))
		if msg.Alt {
			s = "alt+" + s
		}
		return s, true
	}
	s := msg.String()
	if rest, ok := strings.CutPrefix(s, "shift+"); ok {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(s, "ctrl+shift+"); ok {
		return "ctrl+" + rest, true
	}
	return "", false
}
