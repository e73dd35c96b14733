// Package document defines the website document edited in a session: the
// Website aggregate, its ordered blocks, typed block content, styles and site
// settings.
//
// A Website is an immutable value. Blocks live in an id-keyed arena next to an
// ordered id list, and every operation returns a new Website that shares the
// untouched blocks with its predecessor. Keeping an old value around is
// therefore a complete, cheap snapshot of the document.
package document

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownBlockType is returned when parsing a block type outside the closed set.
var ErrUnknownBlockType = errors.New("unknown block type")

// BlockType identifies the kind of a block. The set is closed.
type BlockType string

const (
	TypeHero         BlockType = "hero"
	TypeAbout        BlockType = "about"
	TypeFeatures     BlockType = "features"
	TypeGallery      BlockType = "gallery"
	TypeTestimonials BlockType = "testimonials"
	TypeContact      BlockType = "contact"
	TypeCTA          BlockType = "cta"
	TypeText         BlockType = "text"
	TypeImage        BlockType = "image"
	TypeVideo        BlockType = "video"
	TypeSpacer       BlockType = "spacer"
	TypeDivider      BlockType = "divider"
	TypeSocialLinks  BlockType = "social-links"
	TypeSkills       BlockType = "skills"
	TypeExperience   BlockType = "experience"
	TypeProjects     BlockType = "projects"
	TypePricing      BlockType = "pricing"
	TypeFAQ          BlockType = "faq"
	TypeFooter       BlockType = "footer"
)

// blockTypes is the menu order used by pickers and help text.
var blockTypes = []BlockType{
	TypeHero,
	TypeAbout,
	TypeFeatures,
	TypeGallery,
	TypeTestimonials,
	TypePricing,
	TypeFAQ,
	TypeContact,
	TypeCTA,
	TypeText,
	TypeImage,
	TypeVideo,
	TypeSkills,
	TypeExperience,
	TypeProjects,
	TypeSocialLinks,
	TypeSpacer,
	TypeDivider,
	TypeFooter,
}

// AllBlockTypes returns every block type in menu order.
func AllBlockTypes() []BlockType {
	return slices.Clone(blockTypes)
}

// Valid reports whether t belongs to the closed set.
func (t BlockType) Valid() bool {
	return slices.Contains(blockTypes, t)
}

// Label returns a human readable name, e.g. "Social Links" for social-links.
func (t BlockType) Label() string {
	switch t {
	case TypeCTA:
		return "Call to Action"
	case TypeFAQ:
		return "FAQ"
	}
	words := strings.Split(string(t), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseBlockType converts s (case-insensitive, "_" accepted for "-") to a BlockType.
func ParseBlockType(s string) (BlockType, error) {
	t := BlockType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBlockType, s)
	}
	return t, nil
}
