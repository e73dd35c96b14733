package session

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/pubsub"
	"github.com/zjrosen/pagesmith/internal/tracing"
)

// History labels.
const (
	LabelDelete    = "Delete block"
	LabelDuplicate = "Duplicate block"
	LabelReorder   = "Reorder blocks"
	LabelMove      = "Move block"
	LabelContent   = "Edit content"
	LabelStyle     = "Edit style"
	LabelSettings  = "Update settings"
	LabelCut       = "Cut block"
	LabelPaste     = "Paste block"
)

func addLabel(t document.BlockType) string {
	return fmt.Sprintf("Add %s block", t.Label())
}

// AddBlock appends a block of type t with the catalog defaults and selects it.
func (s *Session) AddBlock(t document.BlockType) document.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("add_block", attribute.String(tracing.AttrBlockType, string(t)))
	b := s.registry.NewBlock(t, s.ids.NewID())
	next, ok := s.doc.Append(b)
	if !ok {
		log.Warn(log.CatSession, "add block rejected", "type", t, "id", b.ID)
		tracing.EndOperation(span, false, nil)
		return document.Block{}
	}
	s.commit(span, addLabel(t), next)
	s.selected = b.ID
	tracing.EndOperation(span, true, nil)

	added, _ := s.doc.Block(b.ID)
	log.Debug(log.CatSession, "block added", "id", b.ID, "type", t, "order", added.Order)
	s.publish(pubsub.CreatedEvent, addLabel(t), b.ID)
	return added
}

// DeleteBlock removes the block with id. If it was selected, the selection
// moves to the block that takes its place, or clears when none does.
func (s *Session) DeleteBlock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("delete_block", attribute.String(tracing.AttrBlockID, id))
	if !s.deleteLocked(span, id, LabelDelete) {
		tracing.EndOperation(span, false, nil)
		return false
	}
	tracing.EndOperation(span, true, nil)
	s.publish(pubsub.DeletedEvent, LabelDelete, id)
	return true
}

func (s *Session) deleteLocked(span trace.Span, id, label string) bool {
	idx := s.doc.IndexOf(id)
	next, ok := s.doc.Delete(id)
	if !ok {
		return false
	}
	s.commit(span, label, next)
	if s.selected == id {
		s.selected = ""
		if b, found := s.doc.At(idx); found {
			s.selected = b.ID
		}
	}
	log.Debug(log.CatSession, "block deleted", "id", id, "index", idx)
	return true
}

// DuplicateBlock inserts a copy of the block with id right after it and
// selects the copy.
func (s *Session) DuplicateBlock(id string) (document.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("duplicate_block", attribute.String(tracing.AttrBlockID, id))
	next, dup, ok := s.doc.Duplicate(id, s.ids.NewID())
	if !ok {
		tracing.EndOperation(span, false, nil)
		return document.Block{}, false
	}
	s.commit(span, LabelDuplicate, next)
	s.selected = dup.ID
	tracing.EndOperation(span, true, nil)

	log.Debug(log.CatSession, "block duplicated", "source", id, "copy", dup.ID)
	s.publish(pubsub.CreatedEvent, LabelDuplicate, dup.ID)
	return dup, true
}

// ReorderBlocks applies a drag and drop: movedID takes the position targetID
// holds now.
func (s *Session) ReorderBlocks(movedID, targetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("reorder_blocks",
		attribute.String(tracing.AttrBlockID, movedID),
		attribute.String(tracing.AttrTargetID, targetID),
	)
	next, ok := s.doc.Reorder(movedID, targetID)
	if !ok {
		tracing.EndOperation(span, false, nil)
		return false
	}
	s.commit(span, LabelReorder, next)
	tracing.EndOperation(span, true, nil)

	log.Debug(log.CatSession, "blocks reordered", "moved", movedID, "target", targetID)
	s.publish(pubsub.MovedEvent, LabelReorder, movedID)
	return true
}

// MoveBlock relocates the block with id to position index.
func (s *Session) MoveBlock(id string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveLocked(id, index)
}

// MoveUp moves the block with id one position earlier.
func (s *Session) MoveUp(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.doc.IndexOf(id)
	if idx <= 0 {
		return false
	}
	return s.moveLocked(id, idx-1)
}

// MoveDown moves the block with id one position later.
func (s *Session) MoveDown(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.doc.IndexOf(id)
	if idx < 0 || idx >= s.doc.Len()-1 {
		return false
	}
	return s.moveLocked(id, idx+1)
}

func (s *Session) moveLocked(id string, index int) bool {
	span := s.start("move_block", attribute.String(tracing.AttrBlockID, id))
	next, ok := s.doc.Move(id, index)
	if !ok {
		tracing.EndOperation(span, false, nil)
		return false
	}
	s.commit(span, LabelMove, next)
	tracing.EndOperation(span, true, nil)

	log.Debug(log.CatSession, "block moved", "id", id, "index", index)
	s.publish(pubsub.MovedEvent, LabelMove, id)
	return true
}

// UpdateBlockContent merges partial into the block's content. An unknown id
// or a merge that changes nothing records no history. A merge error leaves
// the document untouched.
func (s *Session) UpdateBlockContent(id string, partial map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("update_block_content", attribute.String(tracing.AttrBlockID, id))
	next, changed, err := s.doc.UpdateContent(id, partial)
	if err != nil {
		log.ErrorErr(log.CatSession, "content update failed", err, "id", id)
		tracing.EndOperation(span, false, err)
		return err
	}
	if changed {
		s.commit(span, LabelContent, next)
		s.publish(pubsub.UpdatedEvent, LabelContent, id)
	}
	tracing.EndOperation(span, changed, nil)
	return nil
}

// UpdateBlockStyle merges partial into the block's style. It also commits
// any pending style preview.
func (s *Session) UpdateBlockStyle(id string, partial map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("update_block_style", attribute.String(tracing.AttrBlockID, id))
	next, changed, err := s.doc.UpdateStyle(id, partial)
	if err != nil {
		log.ErrorErr(log.CatSession, "style update failed", err, "id", id)
		tracing.EndOperation(span, false, err)
		return err
	}
	if changed || s.previewBase != nil {
		s.commit(span, LabelStyle, next)
		s.publish(pubsub.UpdatedEvent, LabelStyle, id)
		changed = true
	}
	tracing.EndOperation(span, changed, nil)
	return nil
}

// PreviewBlockStyle applies partial without recording history, for live
// previews while a style value is being chosen. The next tracked mutation
// records the state from before the first preview, so the preview is undone
// together with it. CancelPreview reverts.
func (s *Session) PreviewBlockStyle(id string, partial map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("preview_block_style", attribute.String(tracing.AttrBlockID, id))
	next, changed, err := s.doc.UpdateStyle(id, partial)
	if err != nil {
		tracing.EndOperation(span, false, err)
		return err
	}
	if changed {
		if s.previewBase == nil {
			base := s.doc
			s.previewBase = &base
		}
		s.doc = next
		s.publish(pubsub.UpdatedEvent, "Preview style", id)
	}
	tracing.EndOperation(span, changed, nil)
	return nil
}

// CancelPreview reverts any uncommitted style preview.
func (s *Session) CancelPreview() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.previewBase == nil {
		return false
	}
	s.doc = *s.previewBase
	s.previewBase = nil
	s.publish(pubsub.RestoredEvent, "Cancel preview", "")
	return true
}

// Previewing reports whether an uncommitted style preview is shown.
func (s *Session) Previewing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewBase != nil
}

// UpdateSettings merges partial into the site settings.
func (s *Session) UpdateSettings(partial map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("update_settings")
	next, changed, err := s.doc.UpdateSettings(partial)
	if err != nil {
		log.ErrorErr(log.CatSession, "settings update failed", err)
		tracing.EndOperation(span, false, err)
		return err
	}
	if changed {
		s.commit(span, LabelSettings, next)
		s.publish(pubsub.UpdatedEvent, LabelSettings, "")
	}
	tracing.EndOperation(span, changed, nil)
	return nil
}

// Rename changes the site name.
func (s *Session) Rename(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name == "" || name == s.doc.Name() {
		return false
	}
	span := s.start("rename")
	s.commit(span, "Rename site", s.doc.Rename(name))
	tracing.EndOperation(span, true, nil)
	s.publish(pubsub.UpdatedEvent, "Rename site", "")
	return true
}
