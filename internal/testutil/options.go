package testutil

import "github.com/zjrosen/pagesmith/internal/document"

// BlockOption configures a block during builder setup.
type BlockOption func(*document.Block)

func defaultBlock(id string, bt document.BlockType) document.Block {
	return document.Block{
		ID:      id,
		Type:    bt,
		Content: document.NewContent(bt),
		Style:   document.DefaultStyle(),
	}
}

// Content replaces the block content.
func Content(c document.Content) BlockOption {
	return func(b *document.Block) { b.Content = c }
}

// Style replaces the block style.
func Style(s document.Style) BlockOption {
	return func(b *document.Block) { b.Style = s }
}

// Heading sets the heading on content types that have one.
func Heading(h string) BlockOption {
	return func(b *document.Block) {
		if next, err := document.MergeContent(b.Content, map[string]any{"heading": h}); err == nil {
			b.Content = next
		}
	}
}

// Body sets the body of text, about and call-to-action blocks.
func Body(text string) BlockOption {
	return func(b *document.Block) {
		if next, err := document.MergeContent(b.Content, map[string]any{"body": text}); err == nil {
			b.Content = next
		}
	}
}

// Padding sets the style padding.
func Padding(p string) BlockOption {
	return func(b *document.Block) { b.Style.Padding = p }
}
