package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Assignments(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Undo uses ctrl+z", k.Undo, []string{"ctrl+z"}},
		{"Redo uses ctrl+y", k.Redo, []string{"ctrl+y"}},
		{"Copy uses ctrl+c", k.Copy, []string{"ctrl+c"}},
		{"Cut uses ctrl+x", k.Cut, []string{"ctrl+x"}},
		{"Paste uses ctrl+v", k.Paste, []string{"ctrl+v"}},
		{"Duplicate uses ctrl+d", k.Duplicate, []string{"ctrl+d"}},
		{"Delete uses delete and backspace", k.Delete, []string{"delete", "backspace"}},
		{"MoveUp uses alt+up and K", k.MoveUp, []string{"alt+up", "K"}},
		{"History uses H", k.History, []string{"H"}},
		{"Quit does not use ctrl+c", k.Quit, []string{"q", "ctrl+q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	k := DefaultKeyMap()
	for _, group := range k.FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
		}
	}
}

func TestDefaultKeyMap_NoDuplicateKeys(t *testing.T) {
	k := DefaultKeyMap()
	seen := map[string]string{}
	for action, b := range k.bindings() {
		for _, s := range b.Keys() {
			prev, dup := seen[s]
			require.False(t, dup, "key %q bound to %s and %s", s, prev, action)
			seen[s] = action
		}
	}
}

func TestWithOverrides(t *testing.T) {
	base := DefaultKeyMap()

	k, err := base.WithOverrides(map[string][]string{
		ActionUndo:  {"u", "ctrl+z"},
		ActionYank:  {},
		ActionPaste: {"p"},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"u", "ctrl+z"}, k.Undo.Keys())
	require.Equal(t, "u", k.Undo.Help().Key)
	require.Equal(t, "undo", k.Undo.Help().Desc)
	require.False(t, k.Yank.Enabled())
	require.Equal(t, []string{"p"}, k.Paste.Keys())

	// The receiver is untouched.
	require.Equal(t, []string{"ctrl+z"}, base.Undo.Keys())
	require.True(t, base.Yank.Enabled())
}

func TestWithOverrides_UnknownAction(t *testing.T) {
	base := DefaultKeyMap()
	k, err := base.WithOverrides(map[string][]string{"teleport": {"t"}})
	require.ErrorContains(t, err, "teleport")
	require.Equal(t, base.Undo.Keys(), k.Undo.Keys())
}

func TestActions_Sorted(t *testing.T) {
	actions := Actions()
	require.Len(t, actions, 19)
	require.IsIncreasing(t, actions)
	require.Contains(t, actions, ActionMoveDown)
}
