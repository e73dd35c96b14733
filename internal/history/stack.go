// Package history is a linear undo/redo stack of labelled snapshots.
//
// The stack stores whatever value the caller hands it. Snapshots must not be
// mutated after they are pushed; the editor pushes immutable document values,
// so no copying happens here.
package history

import (
	"slices"
	"sync"
	"time"

	"github.com/zjrosen/pagesmith/internal/shared"
)

// DefaultLimit is the number of undo entries kept when no limit is configured.
const DefaultLimit = 100

// Entry is one snapshot with the label of the action it precedes.
type Entry[T any] struct {
	Label    string
	Snapshot T
	At       time.Time
}

// Stack manages undo and redo entries. A fresh push invalidates redo.
type Stack[T any] struct {
	mu    sync.Mutex
	undo  []Entry[T]
	redo  []Entry[T]
	limit int
	clock shared.Clock
}

// NewStack returns an empty stack keeping at most limit undo entries. The
// oldest entry is evicted when the limit is exceeded; 0 means unbounded.
func NewStack[T any](limit int) *Stack[T] {
	if limit < 0 {
		limit = 0
	}
	return &Stack[T]{limit: limit, clock: shared.RealClock{}}
}

// SetClock replaces the clock used to timestamp entries.
func (s *Stack[T]) SetClock(c shared.Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c != nil {
		s.clock = c
	}
}

// Limit returns the configured undo depth.
func (s *Stack[T]) Limit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limit
}

// Push records current, the state before the action named label, and clears
// the redo entries.
func (s *Stack[T]) Push(current T, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.undo = append(s.undo, Entry[T]{Label: label, Snapshot: current, At: s.clock.Now()})
	if s.limit > 0 && len(s.undo) > s.limit {
		s.undo = slices.Delete(s.undo, 0, len(s.undo)-s.limit)
	}
	s.redo = nil
}

// Undo pops the most recent snapshot and files current under redo with the
// same label. It reports false when there is nothing to undo.
func (s *Stack[T]) Undo(current T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if len(s.undo) == 0 {
		return zero, false
	}
	top := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, Entry[T]{Label: top.Label, Snapshot: current, At: s.clock.Now()})
	return top.Snapshot, true
}

// Redo is the inverse of Undo.
func (s *Stack[T]) Redo(current T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if len(s.redo) == 0 {
		return zero, false
	}
	top := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, Entry[T]{Label: top.Label, Snapshot: current, At: s.clock.Now()})
	return top.Snapshot, true
}

// Peek returns the snapshot Undo would restore.
func (s *Stack[T]) Peek() (Entry[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.undo) == 0 {
		return Entry[T]{}, false
	}
	return s.undo[len(s.undo)-1], true
}

func (s *Stack[T]) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo) > 0
}

func (s *Stack[T]) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redo) > 0
}

// UndoLabel names the action Undo would revert, or "".
func (s *Stack[T]) UndoLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.undo) == 0 {
		return ""
	}
	return s.undo[len(s.undo)-1].Label
}

// RedoLabel names the action Redo would reapply, or "".
func (s *Stack[T]) RedoLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.redo) == 0 {
		return ""
	}
	return s.redo[len(s.redo)-1].Label
}

// Len returns the number of undo and redo entries.
func (s *Stack[T]) Len() (undo, redo int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo), len(s.redo)
}

// Entries returns the undo entries, oldest first.
func (s *Stack[T]) Entries() []Entry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.undo)
}

// RedoEntries returns the redo entries, next to be redone first.
func (s *Stack[T]) RedoEntries() []Entry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.redo)
	slices.Reverse(out)
	return out
}

// Clear drops all entries.
func (s *Stack[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undo = nil
	s.redo = nil
}
