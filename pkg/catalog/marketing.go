package catalog

import "github.com/commercekit/blockforge/pkg/schema"

func newsletterSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:              "newsletter",
		Name:              "Newsletter Signup",
		Description:       "Email capture form wired to a mailing list.",
		Icon:              "mail",
		Category:          CategoryMarketing,
		Thumbnail:         "/thumbnails/blocks/newsletter.png",
		IncludeBaseFields: true,
		DefaultVariant:    "card",
		Fields: []schema.FieldSchema{
			{
				Name:    "heading",
				Type:    schema.FieldTypeString,
				Label:   "Heading",
				Default: "Stay in the loop",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 80, Message: "Heading cannot exceed 80 characters"},
				},
			},
			{
				Name:  "subheading",
				Type:  schema.FieldTypeString,
				Label: "Subheading",
			},
			{
				Name:    "placeholderText",
				Type:    schema.FieldTypeString,
				Label:   "Input Placeholder",
				Default: "you@example.com",
			},
			{
				Name:    "buttonLabel",
				Type:    schema.FieldTypeString,
				Label:   "Button Label",
				Default: "Subscribe",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 30, Message: "Button label cannot exceed 30 characters"},
				},
			},
			{
				Name:    "successMessage",
				Type:    schema.FieldTypeString,
				Label:   "Success Message",
				Default: "Thanks for subscribing!",
			},
			{
				Name:        "listId",
				Type:        schema.FieldTypeString,
				Label:       "Mailing List ID",
				Description: "Identifier of the target list in the email provider.",
				Required:    true,
			},
			{
				Name:        "notifyEmail",
				Type:        schema.FieldTypeString,
				Label:       "Notification Email",
				Description: "Optional address notified about new signups.",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleEmail, Message: "Notification email must be a valid email address"},
				},
			},
			{
				Name:  "consentText",
				Type:  schema.FieldTypeRichText,
				Label: "Consent Text",
			},
		},
		Variants: []schema.Variant{
			{
				ID:          "card",
				Name:        "Card",
				Description: "Boxed card with heading above the form.",
			},
			{
				ID:          "inline",
				Name:        "Inline",
				Description: "Single-row form for footers and banners.",
				HiddenFields: []string{
					"subheading",
					"consentText",
				},
			},
		},
		DefaultConfig: map[string]any{
			"heading":         "Stay in the loop",
			"placeholderText": "you@example.com",
			"buttonLabel":     "Subscribe",
			"successMessage":  "Thanks for subscribing!",
		},
	}
}

func testimonialsSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:              "testimonials",
		Name:              "Testimonials",
		Description:       "Customer quotes with optional ratings and avatars.",
		Icon:              "quote",
		Category:          CategoryMarketing,
		Thumbnail:         "/thumbnails/blocks/testimonials.png",
		IncludeBaseFields: true,
		Fields: []schema.FieldSchema{
			{
				Name:    "heading",
				Type:    schema.FieldTypeString,
				Label:   "Heading",
				Default: "What our customers say",
			},
			{
				Name:     "testimonials",
				Type:     schema.FieldTypeArray,
				Label:    "Testimonials",
				Required: true,
				MinItems: intPtr(1),
				MaxItems: intPtr(12),
				ItemSchema: &schema.FieldSchema{
					Name:  "testimonial",
					Type:  schema.FieldTypeObject,
					Label: "Testimonial",
					Fields: []schema.FieldSchema{
						{
							Name:     "quote",
							Type:     schema.FieldTypeRichText,
							Label:    "Quote",
							Required: true,
						},
						{
							Name:  "author",
							Type:  schema.FieldTypeString,
							Label: "Author",
						},
						{
							Name:  "role",
							Type:  schema.FieldTypeString,
							Label: "Role",
						},
						{
							Name:  "avatar",
							Type:  schema.FieldTypeMedia,
							Label: "Avatar",
						},
						{
							Name:  "rating",
							Type:  schema.FieldTypeNumber,
							Label: "Rating",
							Validation: []schema.ValidationRule{
								{Kind: schema.RuleMin, Value: 1, Message: "Rating must be between 1 and 5"},
								{Kind: schema.RuleMax, Value: 5, Message: "Rating must be between 1 and 5"},
							},
						},
					},
				},
			},
			{
				Name:    "layout",
				Type:    schema.FieldTypeSelect,
				Label:   "Layout",
				Default: "carousel",
				Options: []schema.SelectOption{
					{Label: "Carousel", Value: "carousel"},
					{Label: "Grid", Value: "grid"},
					{Label: "Single", Value: "single"},
				},
			},
			{
				Name:    "autoRotate",
				Type:    schema.FieldTypeBoolean,
				Label:   "Auto Rotate",
				Default: true,
				ShowWhen: []schema.Condition{
					{Field: "layout", Operator: schema.OperatorEquals, Value: "carousel"},
				},
			},
		},
		DefaultConfig: map[string]any{
			"heading": "What our customers say",
			"layout":  "carousel",
		},
	}
}

func servicePromosSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:              "service-promos",
		Name:              "Service Promos",
		Description:       "Row of service highlights such as free shipping or returns.",
		Icon:              "badge",
		Category:          CategoryMarketing,
		Thumbnail:         "/thumbnails/blocks/service-promos.png",
		IncludeBaseFields: true,
		Fields: []schema.FieldSchema{
			{
				Name:     "promos",
				Type:     schema.FieldTypeArray,
				Label:    "Promos",
				Required: true,
				MinItems: intPtr(1),
				MaxItems: intPtr(6),
				ItemSchema: &schema.FieldSchema{
					Name:  "promo",
					Type:  schema.FieldTypeObject,
					Label: "Promo",
					Fields: []schema.FieldSchema{
						{
							Name:  "icon",
							Type:  schema.FieldTypeIcon,
							Label: "Icon",
						},
						{
							Name:     "title",
							Type:     schema.FieldTypeString,
							Label:    "Title",
							Required: true,
						},
						{
							Name:  "description",
							Type:  schema.FieldTypeString,
							Label: "Description",
						},
						{
							Name:  "linkUrl",
							Type:  schema.FieldTypeURL,
							Label: "Link",
							Validation: []schema.ValidationRule{
								{Kind: schema.RuleURL, Message: "Promo link must be a valid URL"},
							},
						},
					},
				},
			},
			{
				Name:    "columns",
				Type:    schema.FieldTypeSelect,
				Label:   "Columns",
				Default: "4",
				Options: []schema.SelectOption{
					{Label: "2", Value: "2"},
					{Label: "3", Value: "3"},
					{Label: "4", Value: "4"},
					{Label: "6", Value: "6"},
				},
			},
		},
		DefaultConfig: map[string]any{
			"columns": "4",
		},
	}
}

func bannerStripSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:              "banner-strip",
		Name:              "Banner Strip",
		Description:       "Slim announcement bar, usually pinned above the header.",
		Icon:              "megaphone",
		Category:          CategoryMarketing,
		Thumbnail:         "/thumbnails/blocks/banner-strip.png",
		IncludeBaseFields: true,
		MaxPerPage:        1,
		AllowedSections:   []string{"header"},
		Fields: []schema.FieldSchema{
			{
				Name:     "message",
				Type:     schema.FieldTypeString,
				Label:    "Message",
				Required: true,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 140, Message: "Message cannot exceed 140 characters"},
				},
			},
			{
				Name:  "linkLabel",
				Type:  schema.FieldTypeString,
				Label: "Link Label",
			},
			{
				Name:  "linkUrl",
				Type:  schema.FieldTypeURL,
				Label: "Link",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleURL, Message: "Banner link must be a valid URL"},
				},
				ShowWhen: []schema.Condition{
					{Field: "linkLabel", Operator: schema.OperatorIsNotEmpty},
				},
			},
			{
				Name:    "dismissible",
				Type:    schema.FieldTypeBoolean,
				Label:   "Dismissible",
				Default: true,
			},
			{
				Name:    "backgroundStyle",
				Type:    schema.FieldTypeSelect,
				Label:   "Background Style",
				Default: "accent",
				Options: []schema.SelectOption{
					{Label: "Accent", Value: "accent"},
					{Label: "Neutral", Value: "neutral"},
					{Label: "Inverted", Value: "inverted"},
				},
			},
		},
		DefaultConfig: map[string]any{
			"dismissible":     true,
			"backgroundStyle": "accent",
		},
	}
}
