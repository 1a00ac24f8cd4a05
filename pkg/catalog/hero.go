package catalog

import "github.com/commercekit/blockforge/pkg/schema"

func heroSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:              "hero",
		Name:              "Hero Banner",
		Description:       "Full-width banner with headline, supporting copy, and calls to action.",
		Icon:              "layout-banner",
		Category:          CategoryHero,
		Thumbnail:         "/thumbnails/blocks/hero.png",
		IncludeBaseFields: true,
		MaxPerPage:        1,
		AllowedSections:   []string{"header", "main"},
		DefaultVariant:    "classic",
		Fields: []schema.FieldSchema{
			{
				Name:        "headline",
				Type:        schema.FieldTypeString,
				Label:       "Headline",
				Placeholder: "Summer Sale Is Live",
				Required:    true,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 90, Message: "Headline cannot exceed 90 characters"},
				},
			},
			{
				Name:  "subheadline",
				Type:  schema.FieldTypeString,
				Label: "Subheadline",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 160, Message: "Subheadline cannot exceed 160 characters"},
				},
			},
			{
				Name:  "ctaLabel",
				Type:  schema.FieldTypeString,
				Label: "Primary Button Label",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 30, Message: "Button label cannot exceed 30 characters"},
				},
			},
			{
				Name:  "ctaUrl",
				Type:  schema.FieldTypeURL,
				Label: "Primary Button Link",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleURL, Message: "Primary button link must be a valid URL"},
				},
				ShowWhen: []schema.Condition{
					{Field: "ctaLabel", Operator: schema.OperatorIsNotEmpty},
				},
			},
			{
				Name:  "secondaryCtaLabel",
				Type:  schema.FieldTypeString,
				Label: "Secondary Button Label",
				ShowWhen: []schema.Condition{
					{Field: "ctaLabel", Operator: schema.OperatorIsNotEmpty},
				},
			},
			{
				Name:  "secondaryCtaUrl",
				Type:  schema.FieldTypeURL,
				Label: "Secondary Button Link",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleURL, Message: "Secondary button link must be a valid URL"},
				},
				ShowWhen: []schema.Condition{
					{Field: "secondaryCtaLabel", Operator: schema.OperatorIsNotEmpty},
				},
			},
			{
				Name:  "heroImage",
				Type:  schema.FieldTypeMedia,
				Label: "Hero Image",
			},
			{
				Name:    "overlayOpacity",
				Type:    schema.FieldTypeNumber,
				Label:   "Image Overlay Opacity",
				Default: 0.35,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMin, Value: 0, Message: "Overlay opacity must be between 0 and 1"},
					{Kind: schema.RuleMax, Value: 1, Message: "Overlay opacity must be between 0 and 1"},
				},
			},
			{
				Name:    "height",
				Type:    schema.FieldTypeSelect,
				Label:   "Section Height",
				Default: "medium",
				Options: []schema.SelectOption{
					{Label: "Compact", Value: "compact"},
					{Label: "Medium", Value: "medium"},
					{Label: "Tall", Value: "tall"},
					{Label: "Full Screen", Value: "full"},
				},
			},
		},
		Variants: []schema.Variant{
			{
				ID:          "classic",
				Name:        "Classic",
				Description: "Copy centered over the hero image.",
			},
			{
				ID:          "split",
				Name:        "Split",
				Description: "Copy on one side, image on the other.",
				AdditionalFields: []schema.FieldSchema{
					{
						Name:    "imagePosition",
						Type:    schema.FieldTypeSelect,
						Label:   "Image Position",
						Default: "right",
						Options: []schema.SelectOption{
							{Label: "Left", Value: "left"},
							{Label: "Right", Value: "right"},
						},
					},
				},
			},
			{
				ID:          "video",
				Name:        "Video",
				Description: "Looping background video behind the copy.",
				AdditionalFields: []schema.FieldSchema{
					{
						Name:     "videoUrl",
						Type:     schema.FieldTypeURL,
						Label:    "Video URL",
						Required: true,
						Validation: []schema.ValidationRule{
							{Kind: schema.RuleURL, Message: "Video URL must be a valid URL"},
						},
					},
					{
						Name:    "muted",
						Type:    schema.FieldTypeBoolean,
						Label:   "Mute Video",
						Default: true,
					},
				},
				HiddenFields: []string{"heroImage", "overlayOpacity"},
			},
		},
		DefaultConfig: map[string]any{
			"headline":       "Welcome to our store",
			"height":         "medium",
			"overlayOpacity": 0.35,
		},
	}
}
