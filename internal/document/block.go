package document

// Block is one content section of a Website.
//
// Order is the position of the block in its Website. It is filled in when a
// block is read from a Website and ignored when one is handed to it.
type Block struct {
	ID      string
	Type    BlockType
	Content Content
	Style   Style
	Order   int
}

// Clone returns a deep copy of b.
func (b Block) Clone() Block {
	cp := b
	if b.Content != nil {
		cp.Content = b.Content.Clone()
	}
	return cp
}

// WithID returns a deep copy of b carrying id.
func (b Block) WithID(id string) Block {
	cp := b.Clone()
	cp.ID = id
	return cp
}
