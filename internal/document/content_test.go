package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContent_CoversEveryType(t *testing.T) {
	for _, bt := range AllBlockTypes() {
		c := NewContent(bt)
		require.NotNil(t, c, "no content for %s", bt)
		require.Equal(t, bt, c.Type())
		require.Equal(t, c, c.Clone())
	}
	require.Nil(t, NewContent(BlockType("marquee")))
}

func TestParseBlockType(t *testing.T) {
	tests := []struct {
		in      string
		want    BlockType
		wantErr bool
	}{
		{"hero", TypeHero, false},
		{"  Gallery ", TypeGallery, false},
		{"social_links", TypeSocialLinks, false},
		{"SOCIAL-LINKS", TypeSocialLinks, false},
		{"carousel", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBlockType(tt.in)
			if tt.wantErr {
				require.True(t, errors.Is(err, ErrUnknownBlockType))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBlockType_Label(t *testing.T) {
	require.Equal(t, "Hero", TypeHero.Label())
	require.Equal(t, "Social Links", TypeSocialLinks.Label())
	require.Equal(t, "Call to Action", TypeCTA.Label())
	require.Equal(t, "FAQ", TypeFAQ.Label())
}

func TestMergeContent_ReplacesLists(t *testing.T) {
	orig := &GalleryContent{
		Heading: "Work",
		Images:  []Image{{URL: "a.png"}, {URL: "b.png"}, {URL: "c.png"}},
		Columns: 3,
	}

	merged, err := MergeContent(orig, map[string]any{
		"images": []map[string]any{{"url": "z.png", "alt": "Z"}},
	})
	require.NoError(t, err)

	g := merged.(*GalleryContent)
	require.Equal(t, []Image{{URL: "z.png", Alt: "Z"}}, g.Images)
	require.Equal(t, "Work", g.Heading)
	require.Equal(t, 3, g.Columns)
	require.Len(t, orig.Images, 3, "original keeps its list")
}

func TestMergeContent_WeakTyping(t *testing.T) {
	merged, err := MergeContent(&SpacerContent{Height: 1}, map[string]any{"height": "12"})
	require.NoError(t, err)
	require.Equal(t, 12, merged.(*SpacerContent).Height)

	merged, err = MergeContent(&ContactContent{}, map[string]any{"show_form": "true"})
	require.NoError(t, err)
	require.True(t, merged.(*ContactContent).ShowForm)
}

func TestMergeContent_Errors(t *testing.T) {
	_, err := MergeContent(nil, map[string]any{"body": "x"})
	require.Error(t, err)

	orig := &SkillsContent{Skills: []Skill{{Name: "Go", Level: 90}}}
	_, err = MergeContent(orig, map[string]any{"skills": []map[string]any{{"level": "expert"}}})
	require.ErrorContains(t, err, "merge skills content")
	require.Equal(t, 90, orig.Skills[0].Level)
}

func TestClone_IsDeep(t *testing.T) {
	orig := &PricingContent{Plans: []Plan{{Name: "Pro", Features: []string{"SSL"}}}}
	cp := orig.Clone().(*PricingContent)
	cp.Plans[0].Features[0] = "CDN"
	cp.Plans[0].Name = "Team"

	require.Equal(t, "SSL", orig.Plans[0].Features[0])
	require.Equal(t, "Pro", orig.Plans[0].Name)

	var empty PricingContent
	require.Nil(t, empty.Clone().(*PricingContent).Plans)
}

func TestFields_DeclarationOrder(t *testing.T) {
	fields := Fields(&CTAContent{Heading: "Join", ButtonText: "Go"})
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	require.Equal(t, []string{"heading", "body", "button_text", "button_link"}, keys)
	require.Equal(t, "Join", fields[0].Value)

	require.Nil(t, Fields(nil))
	require.Len(t, StyleFields(DefaultStyle()), 6)
}

func TestMergeStyle_ErrorKeepsOriginal(t *testing.T) {
	s := DefaultStyle()
	got, err := MergeStyle(s, map[string]any{"padding": []int{1, 2}})
	require.Error(t, err)
	require.Equal(t, s, got)
}
