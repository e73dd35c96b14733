package document

import "slices"

// HeroContent is the page-opening banner.
type HeroContent struct {
	Heading         string `mapstructure:"heading" json:"heading" yaml:"heading"`
	Subheading      string `mapstructure:"subheading" json:"subheading,omitempty" yaml:"subheading,omitempty"`
	CTAText         string `mapstructure:"cta_text" json:"cta_text,omitempty" yaml:"cta_text,omitempty"`
	CTALink         string `mapstructure:"cta_link" json:"cta_link,omitempty" yaml:"cta_link,omitempty"`
	BackgroundImage string `mapstructure:"background_image" json:"background_image,omitempty" yaml:"background_image,omitempty"`
}

func (*HeroContent) Type() BlockType  { return TypeHero }
func (c *HeroContent) Clone() Content { cp := *c; return &cp }

// AboutContent introduces the site owner.
type AboutContent struct {
	Heading string `mapstructure:"heading" json:"heading" yaml:"heading"`
	Body    string `mapstructure:"body" json:"body,omitempty" yaml:"body,omitempty"`
	Image   string `mapstructure:"image" json:"image,omitempty" yaml:"image,omitempty"`
}

func (*AboutContent) Type() BlockType  { return TypeAbout }
func (c *AboutContent) Clone() Content { cp := *c; return &cp }

// Feature is one entry of a features grid.
type Feature struct {
	Title       string `mapstructure:"title" json:"title" yaml:"title"`
	Description string `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `mapstructure:"icon" json:"icon,omitempty" yaml:"icon,omitempty"`
}

// FeaturesContent is a grid of features.
type FeaturesContent struct {
	Heading string    `mapstructure:"heading" json:"heading" yaml:"heading"`
	Items   []Feature `mapstructure:"items" json:"items,omitempty" yaml:"items,omitempty"`
}

func (*FeaturesContent) Type() BlockType { return TypeFeatures }
func (c *FeaturesContent) Clone() Content {
	cp := *c
	cp.Items = slices.Clone(c.Items)
	return &cp
}

// Image is a picture reference shared by several block types.
type Image struct {
	URL     string `mapstructure:"url" json:"url" yaml:"url"`
	Alt     string `mapstructure:"alt" json:"alt,omitempty" yaml:"alt,omitempty"`
	Caption string `mapstructure:"caption" json:"caption,omitempty" yaml:"caption,omitempty"`
}

// GalleryContent is a grid of images.
type GalleryContent struct {
	Heading string  `mapstructure:"heading" json:"heading" yaml:"heading"`
	Images  []Image `mapstructure:"images" json:"images,omitempty" yaml:"images,omitempty"`
	Columns int     `mapstructure:"columns" json:"columns,omitempty" yaml:"columns,omitempty"`
}

func (*GalleryContent) Type() BlockType { return TypeGallery }
func (c *GalleryContent) Clone() Content {
	cp := *c
	cp.Images = slices.Clone(c.Images)
	return &cp
}

// Testimonial is a single quote.
type Testimonial struct {
	Quote  string `mapstructure:"quote" json:"quote" yaml:"quote"`
	Author string `mapstructure:"author" json:"author,omitempty" yaml:"author,omitempty"`
	Role   string `mapstructure:"role" json:"role,omitempty" yaml:"role,omitempty"`
	Avatar string `mapstructure:"avatar" json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// TestimonialsContent is a list of quotes.
type TestimonialsContent struct {
	Heading string        `mapstructure:"heading" json:"heading" yaml:"heading"`
	Items   []Testimonial `mapstructure:"items" json:"items,omitempty" yaml:"items,omitempty"`
}

func (*TestimonialsContent) Type() BlockType { return TypeTestimonials }
func (c *TestimonialsContent) Clone() Content {
	cp := *c
	cp.Items = slices.Clone(c.Items)
	return &cp
}

// ContactContent shows contact details and an optional form.
type ContactContent struct {
	Heading  string `mapstructure:"heading" json:"heading" yaml:"heading"`
	Email    string `mapstructure:"email" json:"email,omitempty" yaml:"email,omitempty"`
	Phone    string `mapstructure:"phone" json:"phone,omitempty" yaml:"phone,omitempty"`
	Address  string `mapstructure:"address" json:"address,omitempty" yaml:"address,omitempty"`
	ShowForm bool   `mapstructure:"show_form" json:"show_form,omitempty" yaml:"show_form,omitempty"`
}

func (*ContactContent) Type() BlockType  { return TypeContact }
func (c *ContactContent) Clone() Content { cp := *c; return &cp }

// CTAContent is a call-to-action banner.
type CTAContent struct {
	Heading    string `mapstructure:"heading" json:"heading" yaml:"heading"`
	Body       string `mapstructure:"body" json:"body,omitempty" yaml:"body,omitempty"`
	ButtonText string `mapstructure:"button_text" json:"button_text,omitempty" yaml:"button_text,omitempty"`
	ButtonLink string `mapstructure:"button_link" json:"button_link,omitempty" yaml:"button_link,omitempty"`
}

func (*CTAContent) Type() BlockType  { return TypeCTA }
func (c *CTAContent) Clone() Content { cp := *c; return &cp }

// TextContent is free-form markdown.
type TextContent struct {
	Body string `mapstructure:"body" json:"body" yaml:"body"`
}

func (*TextContent) Type() BlockType  { return TypeText }
func (c *TextContent) Clone() Content { cp := *c; return &cp }

// ImageContent is a single image.
type ImageContent struct {
	URL     string `mapstructure:"url" json:"url" yaml:"url"`
	Alt     string `mapstructure:"alt" json:"alt,omitempty" yaml:"alt,omitempty"`
	Caption string `mapstructure:"caption" json:"caption,omitempty" yaml:"caption,omitempty"`
}

func (*ImageContent) Type() BlockType  { return TypeImage }
func (c *ImageContent) Clone() Content { cp := *c; return &cp }

// VideoContent embeds a video by URL.
type VideoContent struct {
	URL      string `mapstructure:"url" json:"url" yaml:"url"`
	Caption  string `mapstructure:"caption" json:"caption,omitempty" yaml:"caption,omitempty"`
	Autoplay bool   `mapstructure:"autoplay" json:"autoplay,omitempty" yaml:"autoplay,omitempty"`
}

func (*VideoContent) Type() BlockType  { return TypeVideo }
func (c *VideoContent) Clone() Content { cp := *c; return &cp }

// SpacerContent is vertical whitespace.
type SpacerContent struct {
	Height int `mapstructure:"height" json:"height" yaml:"height"`
}

func (*SpacerContent) Type() BlockType  { return TypeSpacer }
func (c *SpacerContent) Clone() Content { cp := *c; return &cp }

// DividerContent is a horizontal rule.
type DividerContent struct {
	Variant string `mapstructure:"variant" json:"variant,omitempty" yaml:"variant,omitempty"`
}

func (*DividerContent) Type() BlockType  { return TypeDivider }
func (c *DividerContent) Clone() Content { cp := *c; return &cp }

// SocialLink points at a profile on another platform.
type SocialLink struct {
	Platform string `mapstructure:"platform" json:"platform" yaml:"platform"`
	URL      string `mapstructure:"url" json:"url" yaml:"url"`
}

// SocialLinksContent is a row of social profile links.
type SocialLinksContent struct {
	Heading string       `mapstructure:"heading" json:"heading,omitempty" yaml:"heading,omitempty"`
	Links   []SocialLink `mapstructure:"links" json:"links,omitempty" yaml:"links,omitempty"`
}

func (*SocialLinksContent) Type() BlockType { return TypeSocialLinks }
func (c *SocialLinksContent) Clone() Content {
	cp := *c
	cp.Links = slices.Clone(c.Links)
	return &cp
}

// Skill is a named skill with a 0-100 level.
type Skill struct {
	Name  string `mapstructure:"name" json:"name" yaml:"name"`
	Level int    `mapstructure:"level" json:"level,omitempty" yaml:"level,omitempty"`
}

// SkillsContent lists skills.
type SkillsContent struct {
	Heading string  `mapstructure:"heading" json:"heading" yaml:"heading"`
	Skills  []Skill `mapstructure:"skills" json:"skills,omitempty" yaml:"skills,omitempty"`
}

func (*SkillsContent) Type() BlockType { return TypeSkills }
func (c *SkillsContent) Clone() Content {
	cp := *c
	cp.Skills = slices.Clone(c.Skills)
	return &cp
}

// ExperienceEntry is one position in a work history.
type ExperienceEntry struct {
	Role    string `mapstructure:"role" json:"role" yaml:"role"`
	Company string `mapstructure:"company" json:"company,omitempty" yaml:"company,omitempty"`
	Period  string `mapstructure:"period" json:"period,omitempty" yaml:"period,omitempty"`
	Summary string `mapstructure:"summary" json:"summary,omitempty" yaml:"summary,omitempty"`
}

// ExperienceContent is a work history timeline.
type ExperienceContent struct {
	Heading string            `mapstructure:"heading" json:"heading" yaml:"heading"`
	Entries []ExperienceEntry `mapstructure:"entries" json:"entries,omitempty" yaml:"entries,omitempty"`
}

func (*ExperienceContent) Type() BlockType { return TypeExperience }
func (c *ExperienceContent) Clone() Content {
	cp := *c
	cp.Entries = slices.Clone(c.Entries)
	return &cp
}

// Project is a portfolio item.
type Project struct {
	Title       string `mapstructure:"title" json:"title" yaml:"title"`
	Description string `mapstructure:"description" json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `mapstructure:"url" json:"url,omitempty" yaml:"url,omitempty"`
	Image       string `mapstructure:"image" json:"image,omitempty" yaml:"image,omitempty"`
}

// ProjectsContent is a portfolio grid.
type ProjectsContent struct {
	Heading  string    `mapstructure:"heading" json:"heading" yaml:"heading"`
	Projects []Project `mapstructure:"projects" json:"projects,omitempty" yaml:"projects,omitempty"`
}

func (*ProjectsContent) Type() BlockType { return TypeProjects }
func (c *ProjectsContent) Clone() Content {
	cp := *c
	cp.Projects = slices.Clone(c.Projects)
	return &cp
}

// Plan is one pricing tier.
type Plan struct {
	Name        string   `mapstructure:"name" json:"name" yaml:"name"`
	Price       string   `mapstructure:"price" json:"price" yaml:"price"`
	Period      string   `mapstructure:"period" json:"period,omitempty" yaml:"period,omitempty"`
	Features    []string `mapstructure:"features" json:"features,omitempty" yaml:"features,omitempty"`
	Highlighted bool     `mapstructure:"highlighted" json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
}

// PricingContent compares pricing tiers.
type PricingContent struct {
	Heading string `mapstructure:"heading" json:"heading" yaml:"heading"`
	Plans   []Plan `mapstructure:"plans" json:"plans,omitempty" yaml:"plans,omitempty"`
}

func (*PricingContent) Type() BlockType { return TypePricing }
func (c *PricingContent) Clone() Content {
	cp := *c
	cp.Plans = make([]Plan, len(c.Plans))
	for i, p := range c.Plans {
		p.Features = slices.Clone(p.Features)
		cp.Plans[i] = p
	}
	if c.Plans == nil {
		cp.Plans = nil
	}
	return &cp
}

// Question is a FAQ entry.
type Question struct {
	Question string `mapstructure:"question" json:"question" yaml:"question"`
	Answer   string `mapstructure:"answer" json:"answer" yaml:"answer"`
}

// FAQContent is a list of questions and answers.
type FAQContent struct {
	Heading string     `mapstructure:"heading" json:"heading" yaml:"heading"`
	Items   []Question `mapstructure:"items" json:"items,omitempty" yaml:"items,omitempty"`
}

func (*FAQContent) Type() BlockType { return TypeFAQ }
func (c *FAQContent) Clone() Content {
	cp := *c
	cp.Items = slices.Clone(c.Items)
	return &cp
}

// Link is a labelled URL.
type Link struct {
	Label string `mapstructure:"label" json:"label" yaml:"label"`
	URL   string `mapstructure:"url" json:"url" yaml:"url"`
}

// FooterContent closes the page.
type FooterContent struct {
	Text  string `mapstructure:"text" json:"text" yaml:"text"`
	Links []Link `mapstructure:"links" json:"links,omitempty" yaml:"links,omitempty"`
}

func (*FooterContent) Type() BlockType { return TypeFooter }
func (c *FooterContent) Clone() Content {
	cp := *c
	cp.Links = slices.Clone(c.Links)
	return &cp
}
