package document

import (
	"reflect"
	"slices"
)

// Every operation below returns the resulting Website and whether it differs
// from the receiver. Operations on an unknown id leave the document as is.

// Append adds b at the end. Blocks with an empty or already used id, an
// unknown type, or content of another type are rejected.
func (w Website) Append(b Block) (Website, bool) {
	return w.Insert(b, len(w.order))
}

// Insert places b at index, clamped into [0, Len()].
func (w Website) Insert(b Block, index int) (Website, bool) {
	if b.ID == "" || w.Has(b.ID) || !b.Type.Valid() {
		return w, false
	}
	if b.Content != nil && b.Content.Type() != b.Type {
		return w, false
	}
	index = clamp(index, 0, len(w.order))
	next := w.mutable()
	next.arena[b.ID] = store(b)
	next.order = slices.Insert(next.order, index, b.ID)
	return next, true
}

// Delete removes the block with id.
func (w Website) Delete(id string) (Website, bool) {
	i := w.IndexOf(id)
	if i < 0 {
		return w, false
	}
	next := w.mutable()
	delete(next.arena, id)
	next.order = slices.Delete(next.order, i, i+1)
	return next, true
}

// Duplicate inserts a deep copy of the block with id directly after it, under
// newID. It returns the copy as stored.
func (w Website) Duplicate(id, newID string) (Website, Block, bool) {
	i := w.IndexOf(id)
	if i < 0 || newID == "" || w.Has(newID) {
		return w, Block{}, false
	}
	dup := w.arena[id].WithID(newID)
	next, ok := w.Insert(dup, i+1)
	if !ok {
		return w, Block{}, false
	}
	cp, _ := next.At(i + 1)
	return next, cp, true
}

// Reorder moves movedID to the position targetID holds now. The other blocks
// keep their relative order: [A B C] with C dropped on A becomes [C A B], and
// A dropped on C becomes [B C A].
func (w Website) Reorder(movedID, targetID string) (Website, bool) {
	if movedID == targetID {
		return w, false
	}
	from, to := w.IndexOf(movedID), w.IndexOf(targetID)
	if from < 0 || to < 0 {
		return w, false
	}
	return w.shift(from, to)
}

// Move relocates the block with id to position index, clamped into range.
func (w Website) Move(id string, index int) (Website, bool) {
	from := w.IndexOf(id)
	if from < 0 {
		return w, false
	}
	return w.shift(from, clamp(index, 0, len(w.order)-1))
}

func (w Website) shift(from, to int) (Website, bool) {
	if from == to {
		return w, false
	}
	id := w.order[from]
	next := w
	next.order = slices.Delete(slices.Clone(w.order), from, from+1)
	next.order = slices.Insert(next.order, to, id)
	return next, true
}

// UpdateContent merges partial into the content of the block with id.
// A merge error leaves the document unchanged.
func (w Website) UpdateContent(id string, partial map[string]any) (Website, bool, error) {
	b, ok := w.arena[id]
	if !ok {
		return w, false, nil
	}
	content := b.Content
	if content == nil {
		content = NewContent(b.Type)
	}
	merged, err := MergeContent(content, partial)
	if err != nil {
		return w, false, err
	}
	if reflect.DeepEqual(merged, b.Content) {
		return w, false, nil
	}
	return w.replace(id, func(nb *Block) { nb.Content = merged }), true, nil
}

// UpdateStyle merges partial into the style of the block with id.
func (w Website) UpdateStyle(id string, partial map[string]any) (Website, bool, error) {
	b, ok := w.arena[id]
	if !ok {
		return w, false, nil
	}
	merged, err := MergeStyle(b.Style, partial)
	if err != nil {
		return w, false, err
	}
	if merged == b.Style {
		return w, false, nil
	}
	return w.replace(id, func(nb *Block) { nb.Style = merged }), true, nil
}

// UpdateSettings merges partial into the site settings.
func (w Website) UpdateSettings(partial map[string]any) (Website, bool, error) {
	merged, err := MergeSettings(w.settings, partial)
	if err != nil {
		return w, false, err
	}
	if reflect.DeepEqual(merged, w.settings) {
		return w, false, nil
	}
	w.settings = merged
	return w, true, nil
}

// replace stores a modified copy of the block with id. The block currently in
// the arena is left alone, since older Website values may still hold it.
func (w Website) replace(id string, edit func(*Block)) Website {
	next := w.mutable()
	nb := next.arena[id].Clone()
	edit(&nb)
	next.arena[id] = &nb
	return next
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
