package command

import "github.com/zjrosen/pagesmith/internal/log"

// DragState is the state of a DragTracker.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// Drop is a completed drag: MovedID was released over TargetID.
type Drop struct {
	MovedID  string
	TargetID string
}

// DragTracker follows one pointer drag over blocks.
type DragTracker struct {
	state  DragState
	source string
	over   string
}

// Press starts dragging the block id. An empty id is ignored.
func (d *DragTracker) Press(id string) {
	if id == "" {
		return
	}
	d.state = DragDragging
	d.source = id
	d.over = id
}

// Over records the block under the pointer while dragging.
func (d *DragTracker) Over(id string) {
	if d.state == DragDragging {
		d.over = id
	}
}

// Release ends the drag over the block id. It yields a Drop only when a drag
// was in progress and id names a different block.
func (d *DragTracker) Release(id string) (Drop, bool) {
	if d.state != DragDragging {
		return Drop{}, false
	}
	source := d.source
	d.reset()
	if id == "" || id == source {
		return Drop{}, false
	}
	log.Debug(log.CatKeys, "drop", "moved", source, "target", id)
	return Drop{MovedID: source, TargetID: id}, true
}

// Cancel abandons the drag.
func (d *DragTracker) Cancel() {
	d.reset()
}

func (d *DragTracker) reset() {
	d.state = DragIdle
	d.source = ""
	d.over = ""
}

func (d *DragTracker) State() DragState { return d.state }

// Source returns the block being dragged, or "".
func (d *DragTracker) Source() string { return d.source }

// Hover returns the block under the pointer during a drag, or "".
func (d *DragTracker) Hover() string { return d.over }
