package catalog

import "github.com/commercekit/blockforge/pkg/schema"

func customHTMLSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:                "custom-html",
		Name:                "Custom HTML",
		Description:         "Free-form HTML embedded into the page.",
		Icon:                "code",
		Category:            CategoryContent,
		Thumbnail:           "/thumbnails/blocks/custom-html.png",
		IncludeBaseFields:   true,
		RequiredPermissions: []string{"storefront.custom-code"},
		Fields: []schema.FieldSchema{
			{
				Name:     "html",
				Type:     schema.FieldTypeCode,
				Label:    "HTML",
				Required: true,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 20000, Message: "HTML cannot exceed 20000 characters"},
				},
			},
			{
				Name:        "containerized",
				Type:        schema.FieldTypeBoolean,
				Label:       "Wrap In Container",
				Description: "Applies the standard page container around the markup.",
				Default:     true,
			},
			{
				Name:        "sanitize",
				Type:        schema.FieldTypeBoolean,
				Label:       "Sanitize Output",
				Description: "Strips scripts and event handlers when rendering.",
				Default:     true,
			},
		},
		DefaultConfig: map[string]any{
			"containerized": true,
			"sanitize":      true,
		},
	}
}

func activityHubSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:                "activity-hub",
		Name:                "Activity Hub",
		Description:         "Live feed of store activity such as orders and reviews.",
		Icon:                "pulse",
		Category:            CategoryContent,
		Thumbnail:           "/thumbnails/blocks/activity-hub.png",
		IncludeBaseFields:   false,
		RequiredPermissions: []string{"storefront.activity-feed"},
		Fields: []schema.FieldSchema{
			{
				Name:    "feedSources",
				Type:    schema.FieldTypeMultiSelect,
				Label:   "Feed Sources",
				Default: []any{"orders", "reviews"},
				Options: []schema.SelectOption{
					{Label: "Orders", Value: "orders"},
					{Label: "Reviews", Value: "reviews"},
					{Label: "Restocks", Value: "restocks"},
					{Label: "Price Drops", Value: "price-drops"},
				},
			},
			{
				Name:    "maxItems",
				Type:    schema.FieldTypeNumber,
				Label:   "Maximum Items",
				Default: 10,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMin, Value: 1, Message: "At least one feed item must be shown"},
					{Kind: schema.RuleMax, Value: 50, Message: "At most 50 feed items can be shown"},
				},
			},
			{
				Name:    "refreshInterval",
				Type:    schema.FieldTypeNumber,
				Label:   "Refresh Interval (seconds)",
				Default: 60,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMin, Value: 15, Message: "Refresh interval must be at least 15 seconds"},
				},
			},
			{
				Name:    "showTimestamps",
				Type:    schema.FieldTypeBoolean,
				Label:   "Show Timestamps",
				Default: true,
			},
		},
		DefaultConfig: map[string]any{
			"feedSources":     []any{"orders", "reviews"},
			"maxItems":        10,
			"refreshInterval": 60,
			"showTimestamps":  true,
		},
	}
}
