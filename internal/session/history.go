package session

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/pubsub"
	"github.com/zjrosen/pagesmith/internal/tracing"
)

// HistoryItem is one row of the history panel.
type HistoryItem struct {
	Label string
	At    time.Time
	// Undone marks entries on the redo side.
	Undone bool
}

// Undo restores the document from before the last tracked action. Snapshots
// are installed as they were recorded, UpdatedAt included. The selection
// survives when its block exists in the restored document. The clipboard is
// not affected.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restoreLocked("undo", s.history.CanUndo, s.history.Undo)
}

// Redo reapplies the last undone action.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restoreLocked("redo", s.history.CanRedo, s.history.Redo)
}

func (s *Session) restoreLocked(op string, can func() bool, step func(document.Website) (document.Website, bool)) bool {
	span := s.start(op)
	// An empty stack leaves the document and any pending preview alone.
	if !can() {
		tracing.EndOperation(span, false, nil)
		return false
	}
	if s.previewBase != nil {
		s.doc = *s.previewBase
		s.previewBase = nil
	}

	var label string
	if op == "undo" {
		label = s.history.UndoLabel()
	} else {
		label = s.history.RedoLabel()
	}
	prev, ok := step(s.doc)
	if !ok {
		tracing.EndOperation(span, false, nil)
		return false
	}
	s.doc = prev
	s.fixSelection()

	undo, redo := s.history.Len()
	span.AddEvent(tracing.EventHistoryRestored, trace.WithAttributes(
		attribute.String(tracing.AttrHistoryName, label),
		attribute.Int(tracing.AttrUndoDepth, undo),
		attribute.Int(tracing.AttrRedoDepth, redo),
	))
	tracing.EndOperation(span, true, nil)

	log.Debug(log.CatHistory, op, "label", label, "undo", undo, "redo", redo)
	s.publish(pubsub.RestoredEvent, label, "")
	return true
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// UndoLabel names the action Undo would revert.
func (s *Session) UndoLabel() string { return s.history.UndoLabel() }

// RedoLabel names the action Redo would reapply.
func (s *Session) RedoLabel() string { return s.history.RedoLabel() }

// History lists undo entries oldest first, followed by redo entries in the
// order Redo would apply them.
func (s *Session) History() []HistoryItem {
	var items []HistoryItem
	for _, e := range s.history.Entries() {
		items = append(items, HistoryItem{Label: e.Label, At: e.At})
	}
	for _, e := range s.history.RedoEntries() {
		items = append(items, HistoryItem{Label: e.Label, At: e.At, Undone: true})
	}
	return items
}

// UndoPreview returns a line diff from the live document to the one Undo
// would restore, or "" when there is nothing to undo.
func (s *Session) UndoPreview() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.history.Peek()
	if !ok {
		return ""
	}
	current := s.doc
	if s.previewBase != nil {
		current = *s.previewBase
	}
	return DiffOutlines(Outline(current), Outline(entry.Snapshot))
}
