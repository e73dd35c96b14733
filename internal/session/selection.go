package session

import (
	"github.com/zjrosen/pagesmith/internal/document"
)

// Selected returns the selected block.
func (s *Session) Selected() (document.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return document.Block{}, false
	}
	return s.doc.Block(s.selected)
}

// SelectedID returns the selected block id, or "".
func (s *Session) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Select selects the block with id. Unknown ids leave the selection as is.
func (s *Session) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.doc.Has(id) {
		return false
	}
	s.selected = id
	return true
}

// SelectOffset moves the selection delta positions, clamped to the document.
// With nothing selected it selects the first or last block.
func (s *Session) SelectOffset(delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.doc.Len()
	if n == 0 {
		return false
	}
	idx := s.doc.IndexOf(s.selected)
	switch {
	case idx < 0 && delta >= 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = max(0, min(n-1, idx+delta))
	}
	b, _ := s.doc.At(idx)
	if b.ID == s.selected {
		return false
	}
	s.selected = b.ID
	return true
}

// ClearSelection deselects.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	s.selected = ""
	s.mu.Unlock()
}

// fixSelection drops a selection whose block no longer exists. Callers hold
// s.mu.
func (s *Session) fixSelection() {
	if s.selected != "" && !s.doc.Has(s.selected) {
		s.selected = ""
	}
}
