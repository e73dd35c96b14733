package blocks

import "github.com/zjrosen/pagesmith/internal/document"

func builtins() []Definition {
	style := document.DefaultStyle()
	centered := style
	centered.Alignment = "center"
	wide := centered
	wide.Width = "full"
	wide.Padding = document.PaddingLarge

	return []Definition{
		{
			Type:        document.TypeHero,
			Description: "Large heading with a call to action",
			Category:    CategoryLayout,
			DefaultContent: func() document.Content {
				return &document.HeroContent{
					Heading:    "Welcome to my site",
					Subheading: "A short line about what you do",
					CTAText:    "Get started",
					CTALink:    "#contact",
				}
			},
			DefaultStyle: wide,
		},
		{
			Type:        document.TypeAbout,
			Description: "A few paragraphs about you",
			Category:    CategoryPersonal,
			DefaultContent: func() document.Content {
				return &document.AboutContent{Heading: "About me", Body: "Tell visitors who you are."}
			},
			DefaultStyle: style,
		},
		{
			Type:        document.TypeFeatures,
			Description: "Grid of features or services",
			Category:    CategoryContent,
			DefaultContent: func() document.Content {
				return &document.FeaturesContent{
					Heading: "Features",
					Items: []document.Feature{
						{Title: "Fast", Description: "Loads in a blink"},
						{Title: "Simple", Description: "Nothing to configure"},
						{Title: "Flexible", Description: "Fits any project"},
					},
				}
			},
			DefaultStyle: centered,
		},
		{
			Type:        document.TypeGallery,
			Description: "Grid of images",
			Category:    CategoryMedia,
			DefaultContent: func() document.Content {
				return &document.GalleryContent{Heading: "Gallery", Columns: 3}
			},
			DefaultStyle: centered,
		},
		{
			Type:        document.TypeTestimonials,
			Description: "Quotes from happy customers",
			Category:    CategoryBusiness,
			DefaultContent: func() document.Content {
				return &document.TestimonialsContent{
					Heading: "What people say",
					Items:   []document.Testimonial{{Quote: "Wonderful to work with.", Author: "A. Client"}},
				}
			},
			DefaultStyle: centered,
		},
		{
			Type:        document.TypePricing,
			Description: "Compare plans side by side",
			Category:    CategoryBusiness,
			DefaultContent: func() document.Content {
				return &document.PricingContent{
					Heading: "Pricing",
					Plans: []document.Plan{
						{Name: "Starter", Price: "$0", Period: "month", Features: []string{"1 project"}},
						{Name: "Pro", Price: "$12", Period: "month", Features: []string{"Unlimited projects"}, Highlighted: true},
					},
				}
			},
			DefaultStyle: centered,
		},
		{
			Type:        document.TypeFAQ,
			Description: "Questions and answers",
			Category:    CategoryContent,
			DefaultContent: func() document.Content {
				return &document.FAQContent{
					Heading: "FAQ",
					Items:   []document.Question{{Question: "How does it work?", Answer: "Like this."}},
				}
			},
			DefaultStyle: style,
		},
		{
			Type:        document.TypeContact,
			Description: "Contact details and a form",
			Category:    CategoryBusiness,
			DefaultContent: func() document.Content {
				return &document.ContactContent{Heading: "Get in touch", Email: "hello@example.com", ShowForm: true}
			},
			DefaultStyle: centered,
		},
		{
			Type:        document.TypeCTA,
			Description: "Banner asking visitors to act",
			Category:    CategoryLayout,
			DefaultContent: func() document.Content {
				return &document.CTAContent{Heading: "Ready to start?", ButtonText: "Contact me", ButtonLink: "#contact"}
			},
			DefaultStyle: wide,
		},
		{
			Type:        document.TypeText,
			Description: "Free-form markdown",
			Category:    CategoryContent,
			DefaultContent: func() document.Content {
				return &document.TextContent{Body: "Write something **great**."}
			},
			DefaultStyle: style,
		},
		{
			Type:           document.TypeImage,
			Description:    "A single image",
			Category:       CategoryMedia,
			DefaultContent: func() document.Content { return &document.ImageContent{} },
			DefaultStyle:   centered,
		},
		{
			Type:           document.TypeVideo,
			Description:    "Embedded video",
			Category:       CategoryMedia,
			DefaultContent: func() document.Content { return &document.VideoContent{} },
			DefaultStyle:   centered,
		},
		{
			Type:        document.TypeSkills,
			Description: "Skills with levels",
			Category:    CategoryPersonal,
			DefaultContent: func() document.Content {
				return &document.SkillsContent{Heading: "Skills"}
			},
			DefaultStyle: style,
		},
		{
			Type:        document.TypeExperience,
			Description: "Work history timeline",
			Category:    CategoryPersonal,
			DefaultContent: func() document.Content {
				return &document.ExperienceContent{Heading: "Experience"}
			},
			DefaultStyle: style,
		},
		{
			Type:        document.TypeProjects,
			Description: "Portfolio of projects",
			Category:    CategoryPersonal,
			DefaultContent: func() document.Content {
				return &document.ProjectsContent{Heading: "Projects"}
			},
			DefaultStyle: centered,
		},
		{
			Type:           document.TypeSocialLinks,
			Description:    "Links to your profiles",
			Category:       CategoryPersonal,
			DefaultContent: func() document.Content { return &document.SocialLinksContent{} },
			DefaultStyle:   centered,
		},
		{
			Type:           document.TypeSpacer,
			Description:    "Vertical whitespace",
			Category:       CategoryLayout,
			DefaultContent: func() document.Content { return &document.SpacerContent{Height: 2} },
			DefaultStyle:   document.Style{Padding: document.PaddingNone},
		},
		{
			Type:           document.TypeDivider,
			Description:    "Horizontal rule",
			Category:       CategoryLayout,
			DefaultContent: func() document.Content { return &document.DividerContent{Variant: "solid"} },
			DefaultStyle:   document.Style{Padding: document.PaddingSmall},
		},
		{
			Type:        document.TypeFooter,
			Description: "Closing line and links",
			Category:    CategoryLayout,
			DefaultContent: func() document.Content {
				return &document.FooterContent{Text: "© Your Name"}
			},
			DefaultStyle: centered,
		},
	}
}
