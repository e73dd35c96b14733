package document

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Content is the type-specific payload of a block. Each BlockType has exactly
// one implementation; Type reports which.
//
// Content values stored in a Website are never modified in place. Changes go
// through MergeContent, which works on a clone.
type Content interface {
	Type() BlockType
	Clone() Content
}

// Field is one top-level content or style entry, in declaration order.
type Field struct {
	Key   string
	Value any
}

// NewContent returns the zero content for t, or nil when t is not a known type.
func NewContent(t BlockType) Content {
	switch t {
	case TypeHero:
		return &HeroContent{}
	case TypeAbout:
		return &AboutContent{}
	case TypeFeatures:
		return &FeaturesContent{}
	case TypeGallery:
		return &GalleryContent{}
	case TypeTestimonials:
		return &TestimonialsContent{}
	case TypeContact:
		return &ContactContent{}
	case TypeCTA:
		return &CTAContent{}
	case TypeText:
		return &TextContent{}
	case TypeImage:
		return &ImageContent{}
	case TypeVideo:
		return &VideoContent{}
	case TypeSpacer:
		return &SpacerContent{}
	case TypeDivider:
		return &DividerContent{}
	case TypeSocialLinks:
		return &SocialLinksContent{}
	case TypeSkills:
		return &SkillsContent{}
	case TypeExperience:
		return &ExperienceContent{}
	case TypeProjects:
		return &ProjectsContent{}
	case TypePricing:
		return &PricingContent{}
	case TypeFAQ:
		return &FAQContent{}
	case TypeFooter:
		return &FooterContent{}
	default:
		return nil
	}
}

// MergeContent shallow-merges partial into a copy of c and returns the copy.
// Keys are matched against the content's field tags; unknown keys are ignored
// and list values replace the existing list. On a type mismatch an error is
// returned and c is untouched.
func MergeContent(c Content, partial map[string]any) (Content, error) {
	if c == nil {
		return nil, fmt.Errorf("merge content: nil content")
	}
	next := c.Clone()
	if len(partial) == 0 {
		return next, nil
	}
	if err := decodeInto(next, partial); err != nil {
		return nil, fmt.Errorf("merge %s content: %w", c.Type(), err)
	}
	return next, nil
}

// Fields lists the top-level fields of c in declaration order.
func Fields(c Content) []Field {
	if c == nil {
		return nil
	}
	return structFields(c)
}

// decodeInto writes partial onto the struct pointed to by target.
func decodeInto(target any, partial map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(partial)
}

// structFields reads exported, tagged fields of the struct behind v.
func structFields(v any) []Field {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()
	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}
		fields = append(fields, Field{Key: tag, Value: rv.Field(i).Interface()})
	}
	return fields
}
