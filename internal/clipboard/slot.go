// Package clipboard is the editor's single-slot block clipboard. It is
// independent of undo history: undo never restores or clears it.
package clipboard

import (
	"sync"

	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/shared"
)

// Slot holds at most one block.
type Slot struct {
	mu    sync.Mutex
	block *document.Block
	ids   shared.IDGenerator
}

// NewSlot returns an empty slot that names pasted blocks with ids.
func NewSlot(ids shared.IDGenerator) *Slot {
	if ids == nil {
		ids = shared.UUIDGenerator{}
	}
	return &Slot{ids: ids}
}

// Copy stores a deep copy of b, replacing the previous contents.
func (s *Slot) Copy(b document.Block) {
	cp := b.Clone()
	s.mu.Lock()
	s.block = &cp
	s.mu.Unlock()
}

// Paste returns a deep copy of the stored block under a new id. Each call
// generates a different id. It reports false when the slot is empty.
func (s *Slot) Paste() (document.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.block == nil {
		return document.Block{}, false
	}
	return s.block.WithID(s.ids.NewID()), true
}

// Peek returns a copy of the stored block with its original id.
func (s *Slot) Peek() (document.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.block == nil {
		return document.Block{}, false
	}
	return s.block.Clone(), true
}

// Has reports whether the slot holds a block.
func (s *Slot) Has() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.block != nil
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.mu.Lock()
	s.block = nil
	s.mu.Unlock()
}
