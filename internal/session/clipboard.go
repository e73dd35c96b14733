package session

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/pubsub"
	"github.com/zjrosen/pagesmith/internal/tracing"
)

// Copy puts a copy of the block with id on the clipboard. The document and
// history are untouched.
func (s *Session) Copy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("copy", attribute.String(tracing.AttrBlockID, id))
	b, ok := s.doc.Block(id)
	if !ok {
		tracing.EndOperation(span, false, nil)
		return false
	}
	s.clip.Copy(b)
	span.AddEvent(tracing.EventClipboardStored)
	tracing.EndOperation(span, false, nil)
	log.Debug(log.CatClipboard, "copied", "id", id, "type", b.Type)
	return true
}

// Cut copies the block with id and deletes it as a single undoable action.
func (s *Session) Cut(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("cut", attribute.String(tracing.AttrBlockID, id))
	b, ok := s.doc.Block(id)
	if !ok {
		tracing.EndOperation(span, false, nil)
		return false
	}
	s.clip.Copy(b)
	span.AddEvent(tracing.EventClipboardStored)
	s.deleteLocked(span, id, LabelCut)
	tracing.EndOperation(span, true, nil)

	log.Debug(log.CatClipboard, "cut", "id", id, "type", b.Type)
	s.publish(pubsub.DeletedEvent, LabelCut, id)
	return true
}

// Paste inserts a copy of the clipboard block under a fresh id and selects
// it. With PasteAfterSelection the copy lands right after the selected block,
// otherwise at the end.
func (s *Session) Paste() (document.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("paste")
	b, ok := s.clip.Paste()
	if !ok {
		tracing.EndOperation(span, false, nil)
		return document.Block{}, false
	}

	at := s.doc.Len()
	if s.paste == PasteAfterSelection {
		if idx := s.doc.IndexOf(s.selected); idx >= 0 {
			at = idx + 1
		}
	}
	next, ok := s.doc.Insert(b, at)
	if !ok {
		log.Warn(log.CatClipboard, "paste rejected", "id", b.ID)
		tracing.EndOperation(span, false, nil)
		return document.Block{}, false
	}
	s.commit(span, LabelPaste, next)
	s.selected = b.ID
	span.SetAttributes(attribute.String(tracing.AttrBlockID, b.ID))
	tracing.EndOperation(span, true, nil)

	pasted, _ := s.doc.Block(b.ID)
	log.Debug(log.CatClipboard, "pasted", "id", b.ID, "order", pasted.Order)
	s.publish(pubsub.CreatedEvent, LabelPaste, b.ID)
	return pasted, true
}

// HasClipboard reports whether Paste would insert a block.
func (s *Session) HasClipboard() bool {
	return s.clip.Has()
}

// Clipboard returns the block on the clipboard without pasting it.
func (s *Session) Clipboard() (document.Block, bool) {
	return s.clip.Peek()
}
