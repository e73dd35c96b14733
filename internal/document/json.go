package document

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

type blockJSON struct {
	ID      string          `json:"id"`
	Type    BlockType       `json:"type"`
	Order   int             `json:"order"`
	Content json.RawMessage `json:"content"`
	Style   Style           `json:"style"`
}

type websiteJSON struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Settings  Settings  `json:"settings"`
	UpdatedAt time.Time `json:"updated_at"`
	Blocks    []Block   `json:"blocks"`
}

// MarshalJSON encodes a block with its content tagged by type.
func (b Block) MarshalJSON() ([]byte, error) {
	content, err := json.Marshal(b.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal block %s content: %w", b.ID, err)
	}
	return json.Marshal(blockJSON{
		ID:      b.ID,
		Type:    b.Type,
		Order:   b.Order,
		Content: content,
		Style:   b.Style,
	})
}

// UnmarshalJSON decodes a block, choosing the content struct from its type.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := ParseBlockType(string(raw.Type))
	if err != nil {
		return fmt.Errorf("block %s: %w", raw.ID, err)
	}
	content := NewContent(t)
	if len(raw.Content) > 0 && string(raw.Content) != "null" {
		if err := json.Unmarshal(raw.Content, content); err != nil {
			return fmt.Errorf("block %s %s content: %w", raw.ID, t, err)
		}
	}
	*b = Block{
		ID:      raw.ID,
		Type:    t,
		Content: content,
		Style:   raw.Style,
		Order:   raw.Order,
	}
	return nil
}

// MarshalJSON encodes the website with its blocks in order.
func (w Website) MarshalJSON() ([]byte, error) {
	out := websiteJSON{
		ID:        w.id,
		Slug:      w.slug,
		Name:      w.name,
		Settings:  w.settings,
		UpdatedAt: w.updatedAt,
		Blocks:    w.Blocks(),
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a website. Blocks are sequenced by their order field;
// ties keep input order and the result is renumbered from zero.
func (w *Website) UnmarshalJSON(data []byte) error {
	var raw websiteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode website: %w", err)
	}
	sort.SliceStable(raw.Blocks, func(i, j int) bool {
		return raw.Blocks[i].Order < raw.Blocks[j].Order
	})

	next := New(raw.ID, raw.Slug, raw.Name).WithSettings(raw.Settings).Touch(raw.UpdatedAt)
	for _, b := range raw.Blocks {
		var ok bool
		next, ok = next.Append(b)
		if !ok {
			return fmt.Errorf("decode website: block %q is empty or duplicated", b.ID)
		}
	}
	*w = next
	return nil
}
