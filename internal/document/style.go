package document

import (
	"fmt"
)

// Padding presets.
const (
	PaddingNone   = "none"
	PaddingSmall  = "small"
	PaddingMedium = "medium"
	PaddingLarge  = "large"
)

// Style holds the presentational knobs of a block. Nothing in the editor
// depends on these values; they are carried through to the export.
type Style struct {
	Padding         string `mapstructure:"padding" json:"padding,omitempty" yaml:"padding,omitempty"`
	Alignment       string `mapstructure:"alignment" json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Width           string `mapstructure:"width" json:"width,omitempty" yaml:"width,omitempty"`
	BackgroundColor string `mapstructure:"background_color" json:"background_color,omitempty" yaml:"background_color,omitempty"`
	TextColor       string `mapstructure:"text_color" json:"text_color,omitempty" yaml:"text_color,omitempty"`
	Animation       string `mapstructure:"animation" json:"animation,omitempty" yaml:"animation,omitempty"`
}

// DefaultStyle is the style given to blocks whose type defines none.
func DefaultStyle() Style {
	return Style{
		Padding:   PaddingMedium,
		Alignment: "left",
		Width:     "contained",
	}
}

// MergeStyle shallow-merges partial into a copy of s.
func MergeStyle(s Style, partial map[string]any) (Style, error) {
	next := s
	if len(partial) == 0 {
		return next, nil
	}
	if err := decodeInto(&next, partial); err != nil {
		return s, fmt.Errorf("merge style: %w", err)
	}
	return next, nil
}

// StyleFields lists the style fields in declaration order.
func StyleFields(s Style) []Field {
	return structFields(&s)
}
