// Package session is the editing session controller. It owns the live
// document, the selection, undo history and the block clipboard, and exposes
// the mutation operations the UI calls.
//
// All methods are serialized by one mutex, so each operation sees the latest
// committed document and runs to completion before the next one starts.
package session

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/pagesmith/internal/blocks"
	"github.com/zjrosen/pagesmith/internal/clipboard"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/history"
	"github.com/zjrosen/pagesmith/internal/log"
	"github.com/zjrosen/pagesmith/internal/pubsub"
	"github.com/zjrosen/pagesmith/internal/shared"
	"github.com/zjrosen/pagesmith/internal/tracing"
)

// PastePosition decides where pasted blocks go.
type PastePosition string

const (
	// PasteAfterSelection inserts after the selected block, or at the end
	// when nothing is selected.
	PasteAfterSelection PastePosition = "after-selection"
	// PasteAtEnd always appends.
	PasteAtEnd PastePosition = "end"
)

// ParsePastePosition validates a configured paste position.
func ParsePastePosition(s string) (PastePosition, error) {
	switch p := PastePosition(s); p {
	case PasteAfterSelection, PasteAtEnd:
		return p, nil
	case "":
		return PasteAfterSelection, nil
	default:
		return "", fmt.Errorf("invalid paste position %q (want %q or %q)", s, PasteAfterSelection, PasteAtEnd)
	}
}

// Session is one editing session over a single Website.
type Session struct {
	mu sync.Mutex

	doc      document.Website
	selected string
	// previewBase is the document as it was before the first untracked
	// style preview; nil when no preview is active.
	previewBase *document.Website

	history  *history.Stack[document.Website]
	clip     *clipboard.Slot
	registry *blocks.Registry
	ids      shared.IDGenerator
	clock    shared.Clock
	tracer   trace.Tracer
	broker   *pubsub.Broker[Change]
	paste    PastePosition
	limit    int
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source for UpdatedAt and history entries.
func WithClock(c shared.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithIDGenerator sets the generator for new block ids.
func WithIDGenerator(g shared.IDGenerator) Option {
	return func(s *Session) { s.ids = g }
}

// WithRegistry sets the block catalog used by AddBlock.
func WithRegistry(r *blocks.Registry) Option {
	return func(s *Session) { s.registry = r }
}

// WithHistoryLimit caps the undo depth; 0 is unbounded.
func WithHistoryLimit(n int) Option {
	return func(s *Session) { s.limit = n }
}

// WithTracer sets the tracer for operation spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) { s.tracer = t }
}

// WithPastePosition sets where Paste inserts.
func WithPastePosition(p PastePosition) Option {
	return func(s *Session) { s.paste = p }
}

// New starts a session editing doc.
func New(doc document.Website, opts ...Option) *Session {
	s := &Session{
		doc:   doc,
		ids:   shared.UUIDGenerator{},
		clock: shared.RealClock{},
		paste: PasteAfterSelection,
		limit: history.DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = blocks.NewRegistry()
	}
	s.history = history.NewStack[document.Website](s.limit)
	s.history.SetClock(s.clock)
	s.clip = clipboard.NewSlot(s.ids)
	s.broker = pubsub.NewBroker[Change]()
	return s
}

// Close releases subscribers.
func (s *Session) Close() {
	s.broker.Close()
}

// Document returns the live document. Website values are immutable, so the
// result can be kept and read freely.
func (s *Session) Document() document.Website {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Registry returns the block catalog.
func (s *Session) Registry() *blocks.Registry {
	return s.registry
}

// Subscribe returns a channel of change events, closed when ctx ends.
func (s *Session) Subscribe(ctx context.Context) <-chan pubsub.Event[Change] {
	return s.broker.Subscribe(ctx)
}

// Load replaces the document, as when a template is opened. History, the
// selection and any style preview are discarded; the clipboard is kept.
func (s *Session) Load(doc document.Website) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := s.start("load", attribute.Int(tracing.AttrBlockCount, doc.Len()))
	if err := doc.Validate(); err != nil {
		err = fmt.Errorf("load document: %w", err)
		tracing.EndOperation(span, false, err)
		return err
	}
	s.doc = doc
	s.selected = ""
	s.previewBase = nil
	s.history.Clear()
	tracing.EndOperation(span, true, nil)

	log.Info(log.CatSession, "document loaded", "id", doc.ID(), "blocks", doc.Len())
	s.publish(pubsub.ReloadedEvent, "Load document", "")
	return nil
}

// start opens the span for op. Callers hold s.mu.
func (s *Session) start(op string, attrs ...attribute.KeyValue) trace.Span {
	_, span := tracing.StartOperation(context.Background(), s.tracer, op, attrs...)
	return span
}

// commit installs next as the live document, recording the state before it
// under label. Callers hold s.mu.
func (s *Session) commit(span trace.Span, label string, next document.Website) {
	prev := s.doc
	if s.previewBase != nil {
		prev = *s.previewBase
		s.previewBase = nil
	}
	s.history.Push(prev, label)
	s.doc = next.Touch(s.clock.Now())

	undo, _ := s.history.Len()
	span.AddEvent(tracing.EventHistoryPushed, trace.WithAttributes(
		attribute.String(tracing.AttrHistoryName, label),
		attribute.Int(tracing.AttrUndoDepth, undo),
	))
	log.Debug(log.CatHistory, "pushed", "label", label, "depth", undo)
}

func (s *Session) publish(kind pubsub.EventType, label, blockID string) {
	s.broker.Publish(kind, Change{Kind: kind, Label: label, BlockID: blockID})
}
