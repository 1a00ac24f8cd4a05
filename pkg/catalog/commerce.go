package catalog

import "github.com/commercekit/blockforge/pkg/schema"

func featuredProductsSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:              "featured-products",
		Name:              "Featured Products",
		Description:       "Curated or rule-driven product grid.",
		Icon:              "grid-products",
		Category:          CategoryCommerce,
		Thumbnail:         "/thumbnails/blocks/featured-products.png",
		IncludeBaseFields: true,
		Fields: []schema.FieldSchema{
			{
				Name:    "title",
				Type:    schema.FieldTypeString,
				Label:   "Section Title",
				Default: "Featured Products",
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 80, Message: "Section title cannot exceed 80 characters"},
				},
			},
			{
				Name:    "productSource",
				Type:    schema.FieldTypeSelect,
				Label:   "Product Source",
				Default: "bestsellers",
				Options: []schema.SelectOption{
					{Label: "Manual Selection", Value: "manual"},
					{Label: "Bestsellers", Value: "bestsellers"},
					{Label: "New Arrivals", Value: "new-arrivals"},
					{Label: "Collection", Value: "collection"},
				},
			},
			{
				Name:       "productIds",
				Type:       schema.FieldTypeArray,
				Label:      "Products",
				ItemSchema: &schema.FieldSchema{Name: "productId", Type: schema.FieldTypeProduct, Label: "Product"},
				MinItems:   intPtr(1),
				MaxItems:   intPtr(24),
				ShowWhen: []schema.Condition{
					{Field: "productSource", Operator: schema.OperatorEquals, Value: "manual"},
				},
			},
			{
				Name:  "collectionId",
				Type:  schema.FieldTypeCollection,
				Label: "Collection",
				ShowWhen: []schema.Condition{
					{Field: "productSource", Operator: schema.OperatorEquals, Value: "collection"},
				},
			},
			{
				Name:    "maxProducts",
				Type:    schema.FieldTypeNumber,
				Label:   "Maximum Products",
				Default: 8,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMin, Value: 1, Message: "At least one product must be shown"},
					{Kind: schema.RuleMax, Value: 24, Message: "At most 24 products can be shown"},
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
			{
				Name:    "showPrice",
				Type:    schema.FieldTypeBoolean,
				Label:   "Show Prices",
				Default: true,
			},
			{
				Name:    "showRating",
				Type:    schema.FieldTypeBoolean,
				Label:   "Show Ratings",
				Default: false,
			},
		},
		DefaultConfig: map[string]any{
			"title":         "Featured Products",
			"productSource": "bestsellers",
			"maxProducts":   8,
			"columns":       "4",
			"showPrice":     true,
		},
	}
}

func dealsCarouselSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:              "deals-carousel",
		Name:              "Deals Carousel",
		Description:       "Rotating carousel of limited-time offers.",
		Icon:              "carousel",
		Category:          CategoryCommerce,
		Thumbnail:         "/thumbnails/blocks/deals-carousel.png",
		IncludeBaseFields: true,
		Fields: []schema.FieldSchema{
			{
				Name:    "title",
				Type:    schema.FieldTypeString,
				Label:   "Section Title",
				Default: "Today's Deals",
			},
			{
				Name:       "dealIds",
				Type:       schema.FieldTypeArray,
				Label:      "Deals",
				Required:   true,
				ItemSchema: &schema.FieldSchema{Name: "productId", Type: schema.FieldTypeProduct, Label: "Product"},
				MinItems:   intPtr(1),
				MaxItems:   intPtr(12),
			},
			{
				Name:    "autoRotate",
				Type:    schema.FieldTypeBoolean,
				Label:   "Auto Rotate",
				Default: true,
			},
			{
				Name:    "rotateInterval",
				Type:    schema.FieldTypeNumber,
				Label:   "Rotate Interval (seconds)",
				Default: 5,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMin, Value: 2, Message: "Rotate interval must be at least 2 seconds"},
					{Kind: schema.RuleMax, Value: 30, Message: "Rotate interval cannot exceed 30 seconds"},
				},
				ShowWhen: []schema.Condition{
					{Field: "autoRotate", Operator: schema.OperatorEquals, Value: true},
				},
			},
			{
				Name:    "showCountdown",
				Type:    schema.FieldTypeBoolean,
				Label:   "Show Countdown",
				Default: false,
			},
			{
				Name:  "endsAt",
				Type:  schema.FieldTypeDateTime,
				Label: "Offer Ends At",
				ShowWhen: []schema.Condition{
					{Field: "showCountdown", Operator: schema.OperatorEquals, Value: true},
				},
			},
		},
		DefaultConfig: map[string]any{
			"title":      "Today's Deals",
			"autoRotate": true,
		},
	}
}

func categoryGridSchema() schema.BlockSchema {
	return schema.BlockSchema{
		Type:              "category-grid",
		Name:              "Category Grid",
		Description:       "Grid of category tiles with imagery.",
		Icon:              "grid-categories",
		Category:          CategoryCommerce,
		Thumbnail:         "/thumbnails/blocks/category-grid.png",
		IncludeBaseFields: true,
		Fields: []schema.FieldSchema{
			{
				Name:  "title",
				Type:  schema.FieldTypeString,
				Label: "Section Title",
			},
			{
				Name:       "categoryIds",
				Type:       schema.FieldTypeArray,
				Label:      "Categories",
				Required:   true,
				ItemSchema: &schema.FieldSchema{Name: "categoryId", Type: schema.FieldTypeCategory, Label: "Category"},
				MinItems:   intPtr(2),
				MaxItems:   intPtr(8),
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
				},
			},
			{
				Name:    "showProductCount",
				Type:    schema.FieldTypeBoolean,
				Label:   "Show Product Count",
				Default: false,
			},
			{
				Name:    "imageStyle",
				Type:    schema.FieldTypeSelect,
				Label:   "Image Style",
				Default: "square",
				Options: []schema.SelectOption{
					{Label: "Square", Value: "square"},
					{Label: "Rounded", Value: "rounded"},
					{Label: "Circle", Value: "circle"},
				},
			},
		},
		Variants: []schema.Variant{
			{
				ID:          "mosaic",
				Name:        "Mosaic",
				Description: "One featured tile spanning two rows.",
				AdditionalFields: []schema.FieldSchema{
					{
						Name:     "featuredCategoryId",
						Type:     schema.FieldTypeCategory,
						Label:    "Featured Category",
						Required: true,
					},
				},
				HiddenFields: []string{"columns"},
			},
		},
		DefaultConfig: map[string]any{
			"columns":    "4",
			"imageStyle": "square",
		},
	}
}
