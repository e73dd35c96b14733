package inspector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagesmith/internal/command"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/testutil"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens batches into messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func heroBlock(t *testing.T) document.Block {
	t.Helper()
	doc := testutil.NewBuilder(t).WithBlock("hero", document.TypeHero, testutil.Heading("Hi")).Build()
	b, ok := doc.Block("hero")
	require.True(t, ok)
	return b
}

// moveTo puts the cursor on the row with the given section and key.
func moveTo(t *testing.T, m Model, section Section, k string) Model {
	t.Helper()
	for i, r := range m.rows {
		if r.section == section && r.key == k {
			m.cursor = i
			return m
		}
	}
	t.Fatalf("no row %s.%s", section, k)
	return m
}

func TestForBlock_Rows(t *testing.T) {
	m := ForBlock(heroBlock(t), "Hero").SetSize(50, 30)
	require.Equal(t, "hero", m.BlockID())
	require.Equal(t, "heading", m.rows[0].key)
	require.Equal(t, SectionContent, m.rows[0].section)

	view := m.View()
	require.Contains(t, view, "Edit Hero")
	require.Contains(t, view, "Content")
	require.Contains(t, view, "Style")
	require.Contains(t, view, "Hi")
}

func TestEditText_Commits(t *testing.T) {
	m := ForBlock(heroBlock(t), "Hero").SetSize(50, 30)

	m, _ = m.Update(key("enter"))
	require.True(t, m.Editing())
	require.Equal(t, command.TargetTextInput, m.Target())

	m, _ = m.Update(key("!"))
	m, cmd := m.Update(key("enter"))
	require.False(t, m.Editing())
	require.Equal(t, command.TargetCanvas, m.Target())

	msgs := collect(cmd)
	require.Equal(t, []tea.Msg{ContentMsg{BlockID: "hero", Partial: map[string]any{"heading": "Hi!"}}}, msgs)
}

func TestEditStyle_PreviewsThenCommits(t *testing.T) {
	m := moveTo(t, ForBlock(heroBlock(t), "Hero").SetSize(50, 30), SectionStyle, "text_color")

	m, _ = m.Update(key("enter"))
	m, cmd := m.Update(key("#"))
	require.Contains(t, collect(cmd), tea.Msg(StylePreviewMsg{BlockID: "hero", Partial: map[string]any{"text_color": "#"}}))

	m, cmd = m.Update(key("enter"))
	require.Equal(t, []tea.Msg{StyleMsg{BlockID: "hero", Partial: map[string]any{"text_color": "#"}}}, collect(cmd))
	require.False(t, m.previewed)
}

func TestEditStyle_EscCancelsPreview(t *testing.T) {
	m := moveTo(t, ForBlock(heroBlock(t), "Hero").SetSize(50, 30), SectionStyle, "padding")

	m, _ = m.Update(key("enter"))
	m, _ = m.Update(key("x"))
	m, cmd := m.Update(key("esc"))
	require.False(t, m.Editing())
	require.Equal(t, []tea.Msg{PreviewCancelMsg{}}, collect(cmd))
}

func TestEditContent_EscWithoutPreview(t *testing.T) {
	m := ForBlock(heroBlock(t), "Hero").SetSize(50, 30)
	m, _ = m.Update(key("enter"))
	m, _ = m.Update(key("x"))
	m, cmd := m.Update(key("esc"))
	require.False(t, m.Editing())
	require.Nil(t, cmd)
}

func TestEditMultiline_UsesTextArea(t *testing.T) {
	doc := testutil.NewBuilder(t).WithBlock("t", document.TypeText, testutil.Body("one")).Build()
	b, _ := doc.Block("t")
	m := ForBlock(b, "Text").SetSize(50, 30)

	m, _ = m.Update(key("enter"))
	require.Equal(t, command.TargetTextArea, m.Target())

	// Enter inserts a newline instead of saving.
	m, _ = m.Update(key("enter"))
	require.True(t, m.Editing())
	m, _ = m.Update(key("two"))

	m, cmd := m.Update(key("ctrl+s"))
	require.False(t, m.Editing())
	require.Equal(t, []tea.Msg{ContentMsg{BlockID: "t", Partial: map[string]any{"body": "one\ntwo"}}}, collect(cmd))
}

func TestToggle(t *testing.T) {
	doc := testutil.NewBuilder(t).WithBlock("v", document.TypeVideo).Build()
	b, _ := doc.Block("v")
	m := moveTo(t, ForBlock(b, "Video").SetSize(50, 30), SectionContent, "autoplay")

	m, cmd := m.Update(key("enter"))
	require.False(t, m.Editing())
	require.Equal(t, []tea.Msg{ContentMsg{BlockID: "v", Partial: map[string]any{"autoplay": true}}}, collect(cmd))
	require.Equal(t, true, m.current().value)
}

func TestReadOnlyList(t *testing.T) {
	doc := testutil.NewBuilder(t).Landing().Build()
	b, _ := doc.Block("features")
	m := moveTo(t, ForBlock(b, "Features").SetSize(60, 30), SectionContent, "items")

	m, cmd := m.Update(key("enter"))
	require.False(t, m.Editing())
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "2 items (read-only)")
}

func TestForSite(t *testing.T) {
	doc := testutil.NewBuilder(t).Landing().Build()
	m := ForSite(doc).SetSize(60, 30)
	require.Empty(t, m.BlockID())
	require.Contains(t, m.View(), "Site settings")

	// Rename.
	m, _ = m.Update(key("enter"))
	m, _ = m.Update(key("ctrl+u"))
	m, _ = m.Update(key("Shop"))
	m, cmd := m.Update(key("enter"))
	require.Equal(t, []tea.Msg{RenameMsg{Name: "Shop"}}, collect(cmd))

	// Nested settings field.
	m = moveTo(t, m, SectionSite, "primary_color")
	m, _ = m.Update(key("enter"))
	m, _ = m.Update(key("ctrl+u"))
	m, _ = m.Update(key("#fff"))
	_, cmd = m.Update(key("enter"))
	require.Equal(t, []tea.Msg{SettingsMsg{Partial: map[string]any{
		"theme": map[string]any{"primary_color": "#fff"},
	}}}, collect(cmd))
}

func TestNavigationAndClose(t *testing.T) {
	m := ForBlock(heroBlock(t), "Hero").SetSize(50, 30)
	m, _ = m.Update(key("k"))
	require.Equal(t, 0, m.cursor)
	m, _ = m.Update(key("j"))
	require.Equal(t, 1, m.cursor)

	_, cmd := m.Update(key("esc"))
	require.Equal(t, []tea.Msg{CloseMsg{}}, collect(cmd))
}

func TestRefresh(t *testing.T) {
	b := heroBlock(t)
	m := ForBlock(b, "Hero").SetSize(50, 30)

	next, err := document.MergeContent(b.Content, map[string]any{"heading": "Updated"})
	require.NoError(t, err)
	b.Content = next

	m = m.Refresh(b)
	require.Equal(t, "Updated", m.rows[0].value)

	// Other blocks are ignored.
	other := b
	other.ID = "other"
	require.Equal(t, m.rows, m.Refresh(other).rows)
}
