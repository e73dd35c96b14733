package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/pubsub"
	"github.com/zjrosen/pagesmith/internal/shared"
	"github.com/zjrosen/pagesmith/internal/testutil"
)

var epoch = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

// newTestSession returns a session over doc with a fixed clock and
// sequential ids (new-1, new-2, ...).
func newTestSession(t *testing.T, doc document.Website, opts ...Option) (*Session, *shared.FixedClock) {
	t.Helper()
	clock := shared.NewFixedClock(epoch)
	base := []Option{
		WithClock(clock),
		WithIDGenerator(shared.NewSequenceGenerator("new")),
	}
	s := New(doc, append(base, opts...)...)
	t.Cleanup(s.Close)
	return s, clock
}

func abc(t *testing.T) document.Website {
	return testutil.NewBuilder(t).ABC().Build()
}

// ============================================================================
// Scenarios
// ============================================================================

// TestScenario_ReorderLastOntoFirst drops C onto A in [A B C].
func TestScenario_ReorderLastOntoFirst(t *testing.T) {
	s, _ := newTestSession(t, abc(t))

	require.True(t, s.ReorderBlocks("c", "a"))

	doc := s.Document()
	require.Equal(t, []string{"c", "a", "b"}, doc.IDs())
	for i, b := range doc.Blocks() {
		require.Equal(t, i, b.Order)
	}
}

// TestScenario_UndoDelete restores a deleted block exactly.
func TestScenario_UndoDelete(t *testing.T) {
	doc := testutil.NewBuilder(t).WithBlock("a", document.TypeHero, testutil.Heading("Hello")).Build()
	s, _ := newTestSession(t, doc)
	original, _ := doc.Block("a")

	require.True(t, s.DeleteBlock("a"))
	require.Zero(t, s.Document().Len())

	require.True(t, s.Undo())
	restored := s.Document()
	require.Equal(t, 1, restored.Len())
	got, ok := restored.Block("a")
	require.True(t, ok)
	require.Equal(t, original, got)
	require.Equal(t, doc, restored)
}

// TestScenario_PasteEmptyClipboard is a no-op.
func TestScenario_PasteEmptyClipboard(t *testing.T) {
	doc := abc(t)
	s, _ := newTestSession(t, doc)

	_, ok := s.Paste()
	require.False(t, ok)
	require.Equal(t, doc, s.Document())
	require.False(t, s.CanUndo())
}

// TestScenario_PasteTwice yields two distinct copies.
func TestScenario_PasteTwice(t *testing.T) {
	doc := testutil.NewBuilder(t).
		WithBlock("a1", document.TypeHero, testutil.Heading("Hi"), testutil.Padding(document.PaddingLarge)).
		Build()
	s, _ := newTestSession(t, doc)
	orig, _ := doc.Block("a1")

	require.True(t, s.Copy("a1"))
	first, ok := s.Paste()
	require.True(t, ok)
	second, ok := s.Paste()
	require.True(t, ok)

	require.NotEqual(t, first.ID, second.ID)
	for _, b := range []document.Block{first, second} {
		require.NotEqual(t, "a1", b.ID)
		require.Equal(t, orig.Content, b.Content)
		require.Equal(t, orig.Style, b.Style)
	}
	require.Equal(t, 3, s.Document().Len())
	require.NoError(t, s.Document().Validate())
}

// TestScenario_NewMutationClearsRedo undoes twice and then adds a block.
func TestScenario_NewMutationClearsRedo(t *testing.T) {
	s, _ := newTestSession(t, abc(t))
	require.True(t, s.DeleteBlock("a"))
	require.True(t, s.DeleteBlock("b"))

	require.True(t, s.Undo())
	require.True(t, s.Undo())
	require.True(t, s.CanRedo())

	s.AddBlock(document.TypeHero)
	require.False(t, s.CanRedo())
}

// ============================================================================
// Mutations
// ============================================================================

func TestAddBlock(t *testing.T) {
	s, clock := newTestSession(t, abc(t))
	clock.Advance(time.Hour)

	b := s.AddBlock(document.TypeGallery)
	require.Equal(t, "new-1", b.ID)
	require.Equal(t, 3, b.Order)
	require.Equal(t, "Gallery", b.Content.(*document.GalleryContent).Heading)

	require.Equal(t, "new-1", s.SelectedID())
	require.Equal(t, "Add Gallery block", s.UndoLabel())
	require.Equal(t, epoch.Add(time.Hour), s.Document().UpdatedAt())
}

func TestAddBlock_EmptyDocument(t *testing.T) {
	s, _ := newTestSession(t, document.New("s", "s", "S"))
	b := s.AddBlock(document.TypeText)
	require.Equal(t, 0, b.Order)
}

func TestDeleteBlock_SelectionFollows(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		deleted  string
		want     string
	}{
		{"selected middle moves to next", "b", "b", "c"},
		{"selected last clears", "c", "c", ""},
		{"other block keeps selection", "a", "c", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, abc(t))
			require.True(t, s.Select(tt.selected))
			require.True(t, s.DeleteBlock(tt.deleted))
			require.Equal(t, tt.want, s.SelectedID())
		})
	}
}

func TestMissingIDsAreNoOps(t *testing.T) {
	doc := abc(t)
	s, _ := newTestSession(t, doc)

	require.False(t, s.DeleteBlock("zz"))
	_, ok := s.DuplicateBlock("zz")
	require.False(t, ok)
	require.False(t, s.ReorderBlocks("zz", "a"))
	require.False(t, s.MoveBlock("zz", 0))
	require.False(t, s.MoveUp("zz"))
	require.False(t, s.MoveDown("zz"))
	require.NoError(t, s.UpdateBlockContent("zz", map[string]any{"body": "x"}))
	require.NoError(t, s.UpdateBlockStyle("zz", map[string]any{"padding": "none"}))
	require.False(t, s.Copy("zz"))
	require.False(t, s.Cut("zz"))
	require.False(t, s.Select("zz"))

	require.Equal(t, doc, s.Document())
	require.False(t, s.CanUndo())
	require.False(t, s.HasClipboard())
}

func TestDuplicateBlock_SelectsCopy(t *testing.T) {
	s, _ := newTestSession(t, abc(t))

	dup, ok := s.DuplicateBlock("a")
	require.True(t, ok)
	require.Equal(t, []string{"a", dup.ID, "b", "c"}, s.Document().IDs())
	require.Equal(t, dup.ID, s.SelectedID())
	require.Equal(t, LabelDuplicate, s.UndoLabel())
}

func TestMoveUpDown(t *testing.T) {
	s, _ := newTestSession(t, abc(t))

	require.False(t, s.MoveUp("a"), "first block cannot move up")
	require.False(t, s.MoveDown("c"), "last block cannot move down")

	require.True(t, s.MoveDown("a"))
	require.Equal(t, []string{"b", "a", "c"}, s.Document().IDs())
	require.True(t, s.MoveUp("c"))
	require.Equal(t, []string{"b", "c", "a"}, s.Document().IDs())

	require.True(t, s.MoveBlock("a", 0))
	require.Equal(t, []string{"a", "b", "c"}, s.Document().IDs())
}

func TestUpdateBlockContent(t *testing.T) {
	s, _ := newTestSession(t, abc(t))

	require.NoError(t, s.UpdateBlockContent("a", map[string]any{"body": "new"}))
	b, _ := s.Document().Block("a")
	require.Equal(t, "new", b.Content.(*document.TextContent).Body)
	require.Equal(t, LabelContent, s.UndoLabel())

	require.NoError(t, s.UpdateBlockContent("a", map[string]any{"body": "new"}))
	undo := len(s.History())
	require.Equal(t, 1, undo, "unchanged edit records nothing")
}

func TestUpdateBlockContent_ErrorLeavesDocument(t *testing.T) {
	doc := testutil.NewBuilder(t).WithBlock("sp", document.TypeSpacer).Build()
	s, _ := newTestSession(t, doc)

	err := s.UpdateBlockContent("sp", map[string]any{"height": "tall"})
	require.Error(t, err)
	require.Equal(t, doc, s.Document())
	require.False(t, s.CanUndo())
}

func TestUpdateSettings(t *testing.T) {
	s, _ := newTestSession(t, abc(t))

	require.NoError(t, s.UpdateSettings(map[string]any{"theme": map[string]any{"mode": "dark"}}))
	require.Equal(t, "dark", s.Document().Settings().Theme.Mode)
	require.Equal(t, LabelSettings, s.UndoLabel())

	require.True(t, s.Undo())
	require.Empty(t, s.Document().Settings().Theme.Mode)
}

func TestRename(t *testing.T) {
	s, _ := newTestSession(t, abc(t))
	require.False(t, s.Rename(""))
	require.False(t, s.Rename("Test Site"))
	require.True(t, s.Rename("New Name"))
	require.Equal(t, "New Name", s.Document().Name())
}

// ============================================================================
// Style preview
// ============================================================================

func TestPreviewBlockStyle_Untracked(t *testing.T) {
	doc := abc(t)
	s, _ := newTestSession(t, doc)

	require.NoError(t, s.PreviewBlockStyle("a", map[string]any{"background_color": "#f00"}))
	require.NoError(t, s.PreviewBlockStyle("a", map[string]any{"background_color": "#0f0"}))
	require.False(t, s.CanUndo())
	require.True(t, s.Previewing())

	b, _ := s.Document().Block("a")
	require.Equal(t, "#0f0", b.Style.BackgroundColor)

	require.True(t, s.CancelPreview())
	require.Equal(t, doc, s.Document())
	require.False(t, s.CancelPreview())
}

func TestPreviewBlockStyle_CommitRecordsOriginal(t *testing.T) {
	doc := abc(t)
	s, _ := newTestSession(t, doc)

	require.NoError(t, s.PreviewBlockStyle("a", map[string]any{"background_color": "#f00"}))
	require.NoError(t, s.UpdateBlockStyle("a", map[string]any{"background_color": "#f00"}))
	require.False(t, s.Previewing())
	require.Equal(t, LabelStyle, s.UndoLabel())

	require.True(t, s.Undo())
	require.Equal(t, doc, s.Document(), "undo skips the preview state")
}

func TestUndo_DropsPreview(t *testing.T) {
	s, _ := newTestSession(t, abc(t))
	require.True(t, s.DeleteBlock("c"))
	afterDelete := s.Document()

	require.NoError(t, s.PreviewBlockStyle("a", map[string]any{"padding": "none"}))
	require.True(t, s.Undo())
	require.Equal(t, []string{"a", "b", "c"}, s.Document().IDs())

	require.True(t, s.Redo())
	require.Equal(t, afterDelete, s.Document())
}

// ============================================================================
// Clipboard
// ============================================================================

func TestCut_SingleHistoryEntry(t *testing.T) {
	doc := abc(t)
	s, _ := newTestSession(t, doc)

	require.True(t, s.Cut("b"))
	require.Equal(t, []string{"a", "c"}, s.Document().IDs())
	require.True(t, s.HasClipboard())
	require.Len(t, s.History(), 1)
	require.Equal(t, LabelCut, s.UndoLabel())

	require.True(t, s.Undo())
	require.Equal(t, doc, s.Document())
	require.True(t, s.HasClipboard(), "undo leaves the clipboard alone")
}

func TestPaste_Position(t *testing.T) {
	t.Run("after selection", func(t *testing.T) {
		s, _ := newTestSession(t, abc(t))
		require.True(t, s.Copy("c"))
		require.True(t, s.Select("a"))

		p, ok := s.Paste()
		require.True(t, ok)
		require.Equal(t, []string{"a", p.ID, "b", "c"}, s.Document().IDs())
		require.Equal(t, 1, p.Order)
		require.Equal(t, p.ID, s.SelectedID())
	})

	t.Run("end without selection", func(t *testing.T) {
		s, _ := newTestSession(t, abc(t))
		require.True(t, s.Copy("a"))

		p, _ := s.Paste()
		require.Equal(t, []string{"a", "b", "c", p.ID}, s.Document().IDs())
	})

	t.Run("end configured", func(t *testing.T) {
		s, _ := newTestSession(t, abc(t), WithPastePosition(PasteAtEnd))
		require.True(t, s.Copy("c"))
		require.True(t, s.Select("a"))

		p, _ := s.Paste()
		require.Equal(t, []string{"a", "b", "c", p.ID}, s.Document().IDs())
	})
}

func TestParsePastePosition(t *testing.T) {
	p, err := ParsePastePosition("end")
	require.NoError(t, err)
	require.Equal(t, PasteAtEnd, p)

	p, err = ParsePastePosition("")
	require.NoError(t, err)
	require.Equal(t, PasteAfterSelection, p)

	_, err = ParsePastePosition("top")
	require.Error(t, err)
}

// ============================================================================
// History and selection
// ============================================================================

func TestUndo_SelectionPreservedOrCleared(t *testing.T) {
	s, _ := newTestSession(t, abc(t))

	added := s.AddBlock(document.TypeHero)
	require.Equal(t, added.ID, s.SelectedID())
	require.True(t, s.Undo())
	require.Empty(t, s.SelectedID(), "block no longer exists")

	require.True(t, s.Select("b"))
	require.True(t, s.MoveDown("b"))
	require.True(t, s.Undo())
	require.Equal(t, "b", s.SelectedID())
}

func TestUndoRedo_Empty(t *testing.T) {
	s, _ := newTestSession(t, abc(t))
	require.False(t, s.Undo())
	require.False(t, s.Redo())
	require.Empty(t, s.UndoPreview())
}

func TestUndoRedo_EmptyKeepsPreview(t *testing.T) {
	s, _ := newTestSession(t, abc(t))
	require.NoError(t, s.PreviewBlockStyle("a", map[string]any{"padding": "large"}))

	require.False(t, s.Undo())
	require.False(t, s.Redo())
	require.True(t, s.Previewing())
	b, _ := s.Document().Block("a")
	require.Equal(t, "large", b.Style.Padding)
}

func TestHistoryLimit(t *testing.T) {
	s, _ := newTestSession(t, abc(t), WithHistoryLimit(2))
	s.AddBlock(document.TypeText)
	s.AddBlock(document.TypeText)
	s.AddBlock(document.TypeText)

	require.Len(t, s.History(), 2)
	require.True(t, s.Undo())
	require.True(t, s.Undo())
	require.False(t, s.Undo())
	require.Equal(t, 4, s.Document().Len(), "oldest entry was evicted")
}

func TestHistory_Items(t *testing.T) {
	s, clock := newTestSession(t, abc(t))
	require.True(t, s.DeleteBlock("a"))
	clock.Advance(time.Minute)
	require.True(t, s.MoveUp("c"))
	require.True(t, s.Undo())

	items := s.History()
	require.Len(t, items, 2)
	require.Equal(t, HistoryItem{Label: LabelDelete, At: epoch}, items[0])
	require.Equal(t, LabelMove, items[1].Label)
	require.True(t, items[1].Undone)
}

func TestUndoPreview(t *testing.T) {
	s, _ := newTestSession(t, abc(t))
	require.NoError(t, s.UpdateBlockContent("b", map[string]any{"body": "edited"}))

	preview := s.UndoPreview()
	require.Contains(t, preview, "-   body: edited\n")
	require.Contains(t, preview, "+   body: text b\n")
	require.NotContains(t, preview, "text a")
}

func TestLoad_ClearsHistoryAndSelection(t *testing.T) {
	s, _ := newTestSession(t, abc(t))
	require.True(t, s.Select("a"))
	require.True(t, s.Copy("a"))
	require.True(t, s.DeleteBlock("b"))

	next := testutil.NewBuilder(t).Landing().Build()
	require.NoError(t, s.Load(next))
	require.Equal(t, next, s.Document())
	require.False(t, s.CanUndo())
	require.Empty(t, s.SelectedID())
	require.True(t, s.HasClipboard())
}

func TestSelectOffset(t *testing.T) {
	s, _ := newTestSession(t, abc(t))

	require.True(t, s.SelectOffset(1))
	require.Equal(t, "a", s.SelectedID())
	require.True(t, s.SelectOffset(1))
	require.Equal(t, "b", s.SelectedID())
	require.True(t, s.SelectOffset(5))
	require.Equal(t, "c", s.SelectedID())
	require.False(t, s.SelectOffset(1))

	s.ClearSelection()
	require.True(t, s.SelectOffset(-1))
	require.Equal(t, "c", s.SelectedID())

	sel, ok := s.Selected()
	require.True(t, ok)
	require.Equal(t, "c", sel.ID)
}

// ============================================================================
// Events
// ============================================================================

func TestSubscribe_ReceivesChanges(t *testing.T) {
	s, _ := newTestSession(t, abc(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := s.Subscribe(ctx)

	s.AddBlock(document.TypeFAQ)
	require.True(t, s.Undo())

	ev := <-ch
	require.Equal(t, pubsub.CreatedEvent, ev.Type)
	require.Equal(t, "new-1", ev.Payload.BlockID)
	require.Equal(t, "Add FAQ block", ev.Payload.Label)

	ev = <-ch
	require.Equal(t, pubsub.RestoredEvent, ev.Type)
	require.Equal(t, "Add FAQ block", ev.Payload.Label)
}
