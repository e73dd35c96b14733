package historyview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagesmith/internal/session"
	"github.com/zjrosen/pagesmith/internal/shared"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func items() []session.HistoryItem {
	return []session.HistoryItem{
		{Label: "Add block", At: now.Add(-10 * time.Minute)},
		{Label: "Delete block", At: now.Add(-2 * time.Minute)},
		{Label: "Reorder blocks", At: now.Add(-time.Minute), Undone: true},
	}
}

func newView(t *testing.T) Model {
	t.Helper()
	return New(shared.NewFixedClock(now)).SetSize(100, 40)
}

func TestView_ListsNewestFirstAndMarksNextUndo(t *testing.T) {
	m := newView(t).SetContent(items(), "- #2 hero b\n+ #2 text c\n")
	view := m.View()

	reorder := strings.Index(view, "Reorder blocks")
	del := strings.Index(view, "Delete block")
	add := strings.Index(view, "Add block")
	require.True(t, reorder >= 0 && reorder < del && del < add, view)

	for _, line := range strings.Split(view, "\n") {
		switch {
		case strings.Contains(line, "Delete block"):
			require.Contains(t, line, ">")
		case strings.Contains(line, "Add block"), strings.Contains(line, "Reorder blocks"):
			require.NotContains(t, line, ">")
		}
	}
	require.Contains(t, view, "2m ago")
	require.Contains(t, view, "2 undo · 1 redo")
	require.Contains(t, view, "- #2 hero b")
	require.Contains(t, view, "+ #2 text c")
}

func TestView_Empty(t *testing.T) {
	view := newView(t).SetContent(nil, "").View()
	require.Contains(t, view, "No changes yet")
	require.Contains(t, view, "Nothing to undo")
}

func TestUpdate_CloseKeys(t *testing.T) {
	m := newView(t).SetContent(items(), "")
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyRunes, Runes: []rune("H")},
	} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd, k.String())
		require.Equal(t, CloseMsg{}, cmd())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Nil(t, cmd)
}

func TestOverlay_KeepsScreenHeight(t *testing.T) {
	m := newView(t).SetContent(items(), "")
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 100)+"\n", 40), "\n")
	require.Len(t, strings.Split(m.Overlay(bg), "\n"), 40)
}

func TestSummary(t *testing.T) {
	require.Equal(t, "0 undo · 0 redo", Summary(nil))
	require.Equal(t, "2 undo · 1 redo", Summary(items()))
}
