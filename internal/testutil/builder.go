// Package testutil builds documents for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagesmith/internal/document"
)

// Builder accumulates blocks and settings and produces a Website.
type Builder struct {
	t        testing.TB
	id       string
	slug     string
	name     string
	settings *document.Settings
	blocks   []document.Block
}

// NewBuilder starts a website called "Test Site".
func NewBuilder(t testing.TB) *Builder {
	t.Helper()
	return &Builder{t: t, id: "site-1", slug: "test-site", name: "Test Site"}
}

// Named sets the site identity.
func (b *Builder) Named(id, slug, name string) *Builder {
	b.id, b.slug, b.name = id, slug, name
	return b
}

// WithBlock adds a block of type bt with optional configuration.
func (b *Builder) WithBlock(id string, bt document.BlockType, opts ...BlockOption) *Builder {
	block := defaultBlock(id, bt)
	for _, opt := range opts {
		opt(&block)
	}
	b.blocks = append(b.blocks, block)
	return b
}

// WithTextBlocks adds one text block per id whose body names the id.
func (b *Builder) WithTextBlocks(ids ...string) *Builder {
	for _, id := range ids {
		b.WithBlock(id, document.TypeText, Body("text "+id))
	}
	return b
}

// WithSettings sets the site settings.
func (b *Builder) WithSettings(s document.Settings) *Builder {
	b.settings = &s
	return b
}

// Build assembles the website and fails the test if any block is rejected.
func (b *Builder) Build() document.Website {
	b.t.Helper()
	w := document.New(b.id, b.slug, b.name)
	if b.settings != nil {
		w = w.WithSettings(*b.settings)
	}
	for _, block := range b.blocks {
		var ok bool
		w, ok = w.Append(block)
		require.True(b.t, ok, "block %q rejected", block.ID)
	}
	require.NoError(b.t, w.Validate())
	return w
}
