package document

import (
	"fmt"
	"slices"
)

// Theme selects the colour scheme of the site.
type Theme struct {
	Preset         string `mapstructure:"preset" json:"preset,omitempty" yaml:"preset,omitempty"`
	PrimaryColor   string `mapstructure:"primary_color" json:"primary_color,omitempty" yaml:"primary_color,omitempty"`
	SecondaryColor string `mapstructure:"secondary_color" json:"secondary_color,omitempty" yaml:"secondary_color,omitempty"`
	Mode           string `mapstructure:"mode" json:"mode,omitempty" yaml:"mode,omitempty"` // light or dark
}

// Fonts names the heading and body font families.
type Fonts struct {
	Heading string `mapstructure:"heading" json:"heading,omitempty" yaml:"heading,omitempty"`
	Body    string `mapstructure:"body" json:"body,omitempty" yaml:"body,omitempty"`
}

// SEO carries page metadata.
type SEO struct {
	Title       string   `mapstructure:"title" json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    []string `mapstructure:"keywords" json:"keywords,omitempty" yaml:"keywords,omitempty"`
	OGImage     string   `mapstructure:"og_image" json:"og_image,omitempty" yaml:"og_image,omitempty"`
}

// Settings are the site-wide settings of a Website.
type Settings struct {
	Theme  Theme        `mapstructure:"theme" json:"theme" yaml:"theme"`
	Fonts  Fonts        `mapstructure:"fonts" json:"fonts" yaml:"fonts"`
	SEO    SEO          `mapstructure:"seo" json:"seo" yaml:"seo"`
	Social []SocialLink `mapstructure:"social" json:"social,omitempty" yaml:"social,omitempty"`
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	cp := s
	cp.SEO.Keywords = slices.Clone(s.SEO.Keywords)
	cp.Social = slices.Clone(s.Social)
	return cp
}

// MergeSettings merges partial into a copy of s. Sections are matched by their
// top-level key; fields inside a section that partial leaves out are kept and
// lists are replaced.
func MergeSettings(s Settings, partial map[string]any) (Settings, error) {
	next := s.Clone()
	if len(partial) == 0 {
		return next, nil
	}
	if err := decodeInto(&next, partial); err != nil {
		return s, fmt.Errorf("merge settings: %w", err)
	}
	return next, nil
}
