package document

import (
	"fmt"
	"slices"
	"time"
)

// Website is the document being edited: identity, settings and the ordered
// blocks. The zero value is an empty, untitled website.
//
// Websites are values. Methods never modify the receiver; operations that
// change the document return a new Website.
type Website struct {
	id        string
	slug      string
	name      string
	settings  Settings
	updatedAt time.Time

	// arena maps block id to block. Entries are never written after insertion,
	// so the map may be shared between Website values until one of them needs
	// to change membership or content.
	arena map[string]*Block
	// order is the visual sequence of block ids.
	order []string
}

// New returns an empty website.
func New(id, slug, name string) Website {
	return Website{
		id:    id,
		slug:  slug,
		name:  name,
		arena: map[string]*Block{},
	}
}

func (w Website) ID() string           { return w.id }
func (w Website) Slug() string         { return w.slug }
func (w Website) Name() string         { return w.name }
func (w Website) UpdatedAt() time.Time { return w.updatedAt }

// Settings returns a copy of the site settings.
func (w Website) Settings() Settings { return w.settings.Clone() }

// Len returns the number of blocks.
func (w Website) Len() int { return len(w.order) }

// IDs returns the block ids in order.
func (w Website) IDs() []string { return slices.Clone(w.order) }

// Blocks returns copies of all blocks in order.
func (w Website) Blocks() []Block {
	out := make([]Block, len(w.order))
	for i, id := range w.order {
		out[i] = w.read(id, i)
	}
	return out
}

// Block returns a copy of the block with id.
func (w Website) Block(id string) (Block, bool) {
	i := w.IndexOf(id)
	if i < 0 {
		return Block{}, false
	}
	return w.read(id, i), true
}

// At returns a copy of the block at index i.
func (w Website) At(i int) (Block, bool) {
	if i < 0 || i >= len(w.order) {
		return Block{}, false
	}
	return w.read(w.order[i], i), true
}

// Has reports whether a block with id exists.
func (w Website) Has(id string) bool {
	_, ok := w.arena[id]
	return ok
}

// IndexOf returns the position of id, or -1.
func (w Website) IndexOf(id string) int {
	if !w.Has(id) {
		return -1
	}
	return slices.Index(w.order, id)
}

// Rename returns w with a new display name.
func (w Website) Rename(name string) Website {
	w.name = name
	return w
}

// WithSettings returns w with settings replaced.
func (w Website) WithSettings(s Settings) Website {
	w.settings = s.Clone()
	return w
}

// Touch returns w with UpdatedAt set to now.
func (w Website) Touch(now time.Time) Website {
	w.updatedAt = now
	return w
}

// Validate checks the structural invariants: every id in the sequence is
// unique and backed by a block whose content matches its type, and no block
// is outside the sequence.
func (w Website) Validate() error {
	seen := make(map[string]struct{}, len(w.order))
	for i, id := range w.order {
		if id == "" {
			return fmt.Errorf("block at position %d has empty id", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate block id %q at position %d", id, i)
		}
		seen[id] = struct{}{}
		b, ok := w.arena[id]
		if !ok {
			return fmt.Errorf("block %q at position %d is missing", id, i)
		}
		if b.ID != id {
			return fmt.Errorf("block %q stored under id %q", b.ID, id)
		}
		if b.Content == nil || b.Content.Type() != b.Type {
			return fmt.Errorf("block %q of type %s has mismatched content", id, b.Type)
		}
	}
	if len(w.arena) != len(w.order) {
		return fmt.Errorf("%d blocks stored but %d ordered", len(w.arena), len(w.order))
	}
	return nil
}

func (w Website) read(id string, i int) Block {
	b := w.arena[id].Clone()
	b.Order = i
	return b
}

// mutable returns a copy of w whose arena and sequence can be written.
func (w Website) mutable() Website {
	arena := make(map[string]*Block, len(w.arena)+1)
	for id, b := range w.arena {
		arena[id] = b
	}
	w.arena = arena
	w.order = slices.Clone(w.order)
	return w
}

// store prepares b for the arena: a private deep copy with content present.
func store(b Block) *Block {
	cp := b.Clone()
	cp.Order = 0
	if cp.Content == nil {
		cp.Content = NewContent(cp.Type)
	}
	return &cp
}
