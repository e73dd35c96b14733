package testutil

import "github.com/zjrosen/pagesmith/internal/document"

// ABC returns a site with text blocks a, b and c.
func (b *Builder) ABC() *Builder {
	return b.WithTextBlocks("a", "b", "c")
}

// Landing adds a typical landing page: hero, features, pricing, footer.
func (b *Builder) Landing() *Builder {
	return b.
		WithBlock("hero", document.TypeHero, Heading("Ship faster")).
		WithBlock("features", document.TypeFeatures, Content(&document.FeaturesContent{
			Heading: "Why us",
			Items: []document.Feature{
				{Title: "Fast", Description: "Really fast"},
				{Title: "Cheap", Description: "Really cheap"},
			},
		})).
		WithBlock("pricing", document.TypePricing, Content(&document.PricingContent{
			Heading: "Plans",
			Plans:   []document.Plan{{Name: "Free", Price: "$0"}},
		})).
		WithBlock("footer", document.TypeFooter, Content(&document.FooterContent{Text: "© Test"})).
		WithSettings(document.Settings{
			Theme: document.Theme{Preset: "ocean", Mode: "light", PrimaryColor: "#0077cc"},
			Fonts: document.Fonts{Heading: "Inter", Body: "Inter"},
			SEO:   document.SEO{Title: "Test Site"},
		})
}
