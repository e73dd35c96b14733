package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newSite builds a website with one text block per id, in order.
func newSite(t *testing.T, ids ...string) Website {
	t.Helper()
	w := New("site-1", "my-site", "My Site")
	for _, id := range ids {
		var ok bool
		w, ok = w.Append(Block{
			ID:      id,
			Type:    TypeText,
			Content: &TextContent{Body: "body " + id},
			Style:   DefaultStyle(),
		})
		require.True(t, ok, "append %s", id)
	}
	require.NoError(t, w.Validate())
	return w
}

// requireSequence asserts ids and dense order values.
func requireSequence(t *testing.T, w Website, ids ...string) {
	t.Helper()
	require.Equal(t, ids, w.IDs())
	for i, b := range w.Blocks() {
		require.Equal(t, i, b.Order, "order of %s", b.ID)
	}
	require.NoError(t, w.Validate())
}

// ============================================================================
// Append / Insert
// ============================================================================

func TestAppend_AssignsNextOrder(t *testing.T) {
	w := New("s", "s", "S")
	require.Equal(t, 0, w.Len())

	w, ok := w.Append(Block{ID: "a", Type: TypeHero})
	require.True(t, ok)
	b, found := w.Block("a")
	require.True(t, found)
	require.Equal(t, 0, b.Order)
	require.IsType(t, &HeroContent{}, b.Content, "nil content is filled from the type")

	w, _ = w.Append(Block{ID: "b", Type: TypeAbout, Order: 42})
	b, _ = w.Block("b")
	require.Equal(t, 1, b.Order, "caller supplied order is ignored")
}

func TestAppend_RejectsBadBlocks(t *testing.T) {
	w := newSite(t, "a")

	tests := []struct {
		name  string
		block Block
	}{
		{"empty id", Block{Type: TypeText}},
		{"duplicate id", Block{ID: "a", Type: TypeText}},
		{"unknown type", Block{ID: "x", Type: BlockType("carousel")}},
		{"content of another type", Block{ID: "x", Type: TypeText, Content: &HeroContent{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := w.Append(tt.block)
			require.False(t, ok)
			require.Equal(t, w, next)
		})
	}
}

func TestInsert_ClampsIndex(t *testing.T) {
	w := newSite(t, "a", "b")

	front, ok := w.Insert(Block{ID: "x", Type: TypeDivider}, -5)
	require.True(t, ok)
	requireSequence(t, front, "x", "a", "b")

	middle, _ := w.Insert(Block{ID: "x", Type: TypeDivider}, 1)
	requireSequence(t, middle, "a", "x", "b")

	end, _ := w.Insert(Block{ID: "x", Type: TypeDivider}, 99)
	requireSequence(t, end, "a", "b", "x")
}

// ============================================================================
// Delete / Duplicate
// ============================================================================

func TestDelete_Renormalizes(t *testing.T) {
	w := newSite(t, "a", "b", "c")

	next, ok := w.Delete("b")
	require.True(t, ok)
	requireSequence(t, next, "a", "c")
	require.False(t, next.Has("b"))
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	w := newSite(t, "a", "b")

	next, ok := w.Delete("nope")
	require.False(t, ok)
	require.Equal(t, w, next)
}

func TestDuplicate_InsertsAfterSource(t *testing.T) {
	w := newSite(t, "a", "b", "c")

	next, dup, ok := w.Duplicate("a", "a2")
	require.True(t, ok)
	requireSequence(t, next, "a", "a2", "b", "c")
	require.Equal(t, "a2", dup.ID)
	require.Equal(t, 1, dup.Order)

	src, _ := next.Block("a")
	require.Equal(t, src.Content, dup.Content)
	require.Equal(t, src.Style, dup.Style)

	// The copy is deep: editing it leaves the source alone.
	next, _, err := next.UpdateContent("a2", map[string]any{"body": "changed"})
	require.NoError(t, err)
	src, _ = next.Block("a")
	require.Equal(t, "body a", src.Content.(*TextContent).Body)
}

func TestDuplicate_MissingOrTakenID(t *testing.T) {
	w := newSite(t, "a", "b")

	next, _, ok := w.Duplicate("nope", "z")
	require.False(t, ok)
	require.Equal(t, w, next)

	next, _, ok = w.Duplicate("a", "b")
	require.False(t, ok)
	require.Equal(t, w, next)
}

// ============================================================================
// Reorder / Move
// ============================================================================

func TestReorder(t *testing.T) {
	tests := []struct {
		name          string
		moved, target string
		want          []string
		changed       bool
	}{
		{"last onto first", "c", "a", []string{"c", "a", "b"}, true},
		{"first onto last", "a", "c", []string{"b", "c", "a"}, true},
		{"adjacent down", "a", "b", []string{"b", "a", "c"}, true},
		{"adjacent up", "c", "b", []string{"a", "c", "b"}, true},
		{"same id", "b", "b", []string{"a", "b", "c"}, false},
		{"missing moved", "x", "a", []string{"a", "b", "c"}, false},
		{"missing target", "a", "x", []string{"a", "b", "c"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newSite(t, "a", "b", "c")
			next, changed := w.Reorder(tt.moved, tt.target)
			require.Equal(t, tt.changed, changed)
			requireSequence(t, next, tt.want...)
		})
	}
}

func TestMove_ClampsAndRenormalizes(t *testing.T) {
	w := newSite(t, "a", "b", "c", "d")

	next, ok := w.Move("a", 2)
	require.True(t, ok)
	requireSequence(t, next, "b", "c", "a", "d")

	next, ok = w.Move("d", -1)
	require.True(t, ok)
	requireSequence(t, next, "d", "a", "b", "c")

	next, ok = w.Move("b", 100)
	require.True(t, ok)
	requireSequence(t, next, "a", "c", "d", "b")

	_, ok = w.Move("b", 1)
	require.False(t, ok, "moving to the current position changes nothing")

	_, ok = w.Move("nope", 0)
	require.False(t, ok)
}

// ============================================================================
// Updates
// ============================================================================

func TestUpdateContent_MergesShallow(t *testing.T) {
	w := New("s", "s", "S")
	w, _ = w.Append(Block{ID: "h", Type: TypeHero, Content: &HeroContent{
		Heading:    "Hello",
		Subheading: "World",
	}})

	next, ok, err := w.UpdateContent("h", map[string]any{"heading": "Hi", "unknown": 1})
	require.NoError(t, err)
	require.True(t, ok)

	b, _ := next.Block("h")
	require.Equal(t, &HeroContent{Heading: "Hi", Subheading: "World"}, b.Content)

	old, _ := w.Block("h")
	require.Equal(t, "Hello", old.Content.(*HeroContent).Heading, "previous value is untouched")
}

func TestUpdateContent_NoChange(t *testing.T) {
	w := newSite(t, "a")

	next, ok, err := w.UpdateContent("a", map[string]any{"body": "body a"})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, w, next)

	next, ok, err = w.UpdateContent("missing", map[string]any{"body": "x"})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, w, next)
}

func TestUpdateContent_TypeMismatch(t *testing.T) {
	w := New("s", "s", "S")
	w, _ = w.Append(Block{ID: "sp", Type: TypeSpacer, Content: &SpacerContent{Height: 4}})

	next, ok, err := w.UpdateContent("sp", map[string]any{"height": "tall"})
	require.Error(t, err)
	require.False(t, ok)
	require.Equal(t, w, next)
}

func TestUpdateStyle(t *testing.T) {
	w := newSite(t, "a")

	next, ok, err := w.UpdateStyle("a", map[string]any{"padding": PaddingLarge, "text_color": "#333"})
	require.NoError(t, err)
	require.True(t, ok)

	b, _ := next.Block("a")
	require.Equal(t, PaddingLarge, b.Style.Padding)
	require.Equal(t, "#333", b.Style.TextColor)
	require.Equal(t, "left", b.Style.Alignment)
}

func TestUpdateSettings_MergesSections(t *testing.T) {
	w := New("s", "s", "S").WithSettings(Settings{
		Theme: Theme{Preset: "minimal", Mode: "light"},
		SEO:   SEO{Title: "Old", Keywords: []string{"a", "b"}},
	})

	next, ok, err := w.UpdateSettings(map[string]any{
		"theme": map[string]any{"mode": "dark"},
		"seo":   map[string]any{"keywords": []any{"c"}},
	})
	require.NoError(t, err)
	require.True(t, ok)

	s := next.Settings()
	require.Equal(t, Theme{Preset: "minimal", Mode: "dark"}, s.Theme)
	require.Equal(t, "Old", s.SEO.Title)
	require.Equal(t, []string{"c"}, s.SEO.Keywords)
	require.Equal(t, []string{"a", "b"}, w.Settings().SEO.Keywords)
}

// ============================================================================
// Value semantics
// ============================================================================

func TestWebsite_AccessorsReturnCopies(t *testing.T) {
	w := New("s", "s", "S")
	w, _ = w.Append(Block{ID: "f", Type: TypeFeatures, Content: &FeaturesContent{
		Items: []Feature{{Title: "Fast"}},
	}})

	b, _ := w.Block("f")
	b.Content.(*FeaturesContent).Items[0].Title = "Slow"
	b.Style.Padding = PaddingNone

	again, _ := w.Block("f")
	require.Equal(t, "Fast", again.Content.(*FeaturesContent).Items[0].Title)
	require.NotEqual(t, PaddingNone, again.Style.Padding)

	s := w.Settings()
	s.Social = append(s.Social, SocialLink{Platform: "x"})
	require.Empty(t, w.Settings().Social)
}

func TestWebsite_OperationsLeaveReceiverIntact(t *testing.T) {
	w := newSite(t, "a", "b", "c")
	snapshot := w.Blocks()

	_, _ = w.Delete("a")
	_, _, _ = w.Duplicate("b", "b2")
	_, _ = w.Reorder("c", "a")
	_, _ = w.Move("a", 2)
	_, _, _ = w.UpdateContent("b", map[string]any{"body": "x"})

	require.Equal(t, snapshot, w.Blocks())
	requireSequence(t, w, "a", "b", "c")
}

func TestTouch(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w := New("s", "s", "S")

	touched := w.Touch(now)
	require.Equal(t, now, touched.UpdatedAt())
	require.True(t, w.UpdatedAt().IsZero())
}

func TestValidate_ReportsCorruption(t *testing.T) {
	w := newSite(t, "a", "b")

	dup := w.mutable()
	dup.order = append(dup.order, "a")
	require.ErrorContains(t, dup.Validate(), "duplicate")

	missing := w.mutable()
	delete(missing.arena, "b")
	require.ErrorContains(t, missing.Validate(), "missing")

	stray := w.mutable()
	stray.arena["z"] = &Block{ID: "z", Type: TypeText}
	require.ErrorContains(t, stray.Validate(), "ordered")

	mismatched := w.mutable()
	mismatched.arena["b"] = &Block{ID: "b", Type: TypeText, Content: &HeroContent{}}
	require.ErrorContains(t, mismatched.Validate(), "mismatched content")
}
