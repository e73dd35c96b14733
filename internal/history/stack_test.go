package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/pagesmith/internal/shared"
)

func TestStack_Empty(t *testing.T) {
	s := NewStack[string](0)

	_, ok := s.Undo("live")
	require.False(t, ok)
	_, ok = s.Redo("live")
	require.False(t, ok)
	require.False(t, s.CanUndo())
	require.False(t, s.CanRedo())
	require.Empty(t, s.UndoLabel())
	require.Empty(t, s.RedoLabel())
}

func TestStack_UndoRedo(t *testing.T) {
	s := NewStack[string](0)
	s.Push("v1", "Add block")

	got, ok := s.Undo("v2")
	require.True(t, ok)
	require.Equal(t, "v1", got)
	require.True(t, s.CanRedo())
	require.Equal(t, "Add block", s.RedoLabel())

	got, ok = s.Redo("v1")
	require.True(t, ok)
	require.Equal(t, "v2", got)
	require.Equal(t, "Add block", s.UndoLabel())
	require.False(t, s.CanRedo())
}

func TestStack_PushClearsRedo(t *testing.T) {
	s := NewStack[int](0)
	s.Push(1, "a")
	s.Push(2, "b")

	cur := 3
	cur, _ = s.Undo(cur)
	cur, _ = s.Undo(cur)
	require.Equal(t, 1, cur)
	_, redo := s.Len()
	require.Equal(t, 2, redo)

	s.Push(cur, "c")
	require.False(t, s.CanRedo())
	undo, redo := s.Len()
	require.Equal(t, 1, undo)
	require.Equal(t, 0, redo)
}

func TestStack_LimitEvictsOldest(t *testing.T) {
	s := NewStack[int](3)
	for i := 1; i <= 5; i++ {
		s.Push(i, fmt.Sprintf("step %d", i))
	}

	entries := s.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, 3, entries[0].Snapshot)
	require.Equal(t, "step 5", entries[2].Label)
}

func TestStack_EntriesTimestamped(t *testing.T) {
	clock := shared.NewFixedClock(time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC))
	s := NewStack[string](0)
	s.SetClock(clock)

	s.Push("a", "first")
	clock.Advance(time.Minute)
	s.Push("b", "second")

	entries := s.Entries()
	require.Equal(t, time.Minute, entries[1].At.Sub(entries[0].At))

	top, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, "b", top.Snapshot)
}

func TestStack_RedoEntriesOrder(t *testing.T) {
	s := NewStack[int](0)
	s.Push(1, "a")
	s.Push(2, "b")
	cur, _ := s.Undo(3)
	_, _ = s.Undo(cur)

	redo := s.RedoEntries()
	require.Len(t, redo, 2)
	require.Equal(t, "a", redo[0].Label)
	require.Equal(t, 2, redo[0].Snapshot)
	require.Equal(t, "b", redo[1].Label)
}

func TestStack_Clear(t *testing.T) {
	s := NewStack[int](0)
	s.Push(1, "a")
	_, _ = s.Undo(2)
	s.Push(3, "b")
	s.Clear()
	require.False(t, s.CanUndo())
	require.False(t, s.CanRedo())
}

// TestProperty_UndoRedoInverse drives the stack the way the editor does and
// checks that redo after undo returns to the exact prior state.
func TestProperty_UndoRedoInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewStack[int](rapid.IntRange(0, 5).Draw(t, "limit"))
		live := 0
		next := 1

		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				s.Push(live, "mutate")
				live = next
				next++
			case 1:
				before := live
				prev, ok := s.Undo(live)
				if !ok {
					continue
				}
				live = prev
				back, ok := s.Redo(live)
				if !ok || back != before {
					t.Fatalf("redo(undo(%d)) = %d, %v", before, back, ok)
				}
				live = back
			case 2:
				if prev, ok := s.Undo(live); ok {
					live = prev
				}
			}
		}
	})
}
