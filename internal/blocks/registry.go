// Package blocks is the catalog of block types the editor can add: default
// content and style for each type, plus the labels shown in the picker.
package blocks

import (
	"slices"
	"sync"

	"github.com/zjrosen/pagesmith/internal/document"
)

// Category groups block types in the picker.
type Category string

const (
	CategoryLayout   Category = "Layout"
	CategoryContent  Category = "Content"
	CategoryMedia    Category = "Media"
	CategoryPersonal Category = "Personal"
	CategoryBusiness Category = "Business"
)

// Definition describes one block type.
type Definition struct {
	Type           document.BlockType
	Label          string
	Description    string
	Category       Category
	DefaultContent func() document.Content
	DefaultStyle   document.Style
}

// Registry stores block definitions keyed by type.
type Registry struct {
	mu      sync.RWMutex
	entries map[document.BlockType]Definition
}

// NewRegistry returns a registry holding the built-in definitions.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[document.BlockType]Definition)}
	for _, def := range builtins() {
		r.Register(def)
	}
	return r
}

// Register records def, replacing any definition for the same type.
// Definitions with an unknown type are ignored.
func (r *Registry) Register(def Definition) {
	if r == nil || !def.Type.Valid() {
		return
	}
	if def.Label == "" {
		def.Label = def.Type.Label()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[def.Type] = def
}

// Lookup returns the definition for t.
func (r *Registry) Lookup(t document.BlockType) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.entries[t]
	return def, ok
}

// List returns the registered definitions in menu order.
func (r *Registry) List() []Definition {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, 0, len(r.entries))
	for _, t := range document.AllBlockTypes() {
		if def, ok := r.entries[t]; ok {
			out = append(out, def)
		}
	}
	return out
}

// Categories returns the categories in use, in first-seen menu order.
func (r *Registry) Categories() []Category {
	var out []Category
	for _, def := range r.List() {
		if !slices.Contains(out, def.Category) {
			out = append(out, def.Category)
		}
	}
	return out
}

// NewBlock builds a block of type t with the registered defaults. Types without
// a definition get zero content and document.DefaultStyle.
func (r *Registry) NewBlock(t document.BlockType, id string) document.Block {
	b := document.Block{
		ID:    id,
		Type:  t,
		Style: document.DefaultStyle(),
	}
	def, ok := r.Lookup(t)
	if !ok {
		b.Content = document.NewContent(t)
		return b
	}
	b.Style = def.DefaultStyle
	if def.DefaultContent != nil {
		b.Content = def.DefaultContent()
	}
	if b.Content == nil || b.Content.Type() != t {
		b.Content = document.NewContent(t)
	}
	return b
}
