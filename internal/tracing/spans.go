package tracing

// Span attribute keys for session operations.
const (
	AttrBlockID     = "block.id"
	AttrBlockType   = "block.type"
	AttrTargetID    = "block.target_id"
	AttrBlockCount  = "document.block_count"
	AttrHistoryName = "history.label"
	AttrUndoDepth   = "history.undo_depth"
	AttrRedoDepth   = "history.redo_depth"
	AttrChanged     = "session.changed"
)

// SpanPrefixSession prefixes every session span name.
const SpanPrefixSession = "session."

// Span events.
const (
	EventHistoryPushed   = "history.pushed"
	EventHistoryRestored = "history.restored"
	EventClipboardStored = "clipboard.stored"
	EventSelectionMoved  = "selection.moved"
)
