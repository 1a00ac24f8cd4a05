package catalog

import "github.com/commercekit/blockforge/pkg/schema"

// Field group identifiers used by the universal base fields.
const (
	GroupLayout     = "layout"
	GroupVisibility = "visibility"
	GroupStyling    = "styling"
	GroupAnimation  = "animation"
	GroupAnalytics  = "analytics"
	GroupAdmin      = "admin"
)

// BaseFields returns the fixed set of universal fields appended to every
// block schema that opts in via IncludeBaseFields. Callers receive a fresh
// slice on each call so the authored table cannot be mutated.
func BaseFields() []schema.FieldSchema {
	return []schema.FieldSchema{
		{
			Name:    "layoutWidth",
			Type:    schema.FieldTypeSelect,
			Label:   "Layout Width",
			Group:   GroupLayout,
			Default: "contained",
			Options: []schema.SelectOption{
				{Label: "Contained", Value: "contained"},
				{Label: "Full Width", Value: "full"},
				{Label: "Narrow", Value: "narrow"},
			},
		},
		{
			Name:    "verticalPadding",
			Type:    schema.FieldTypeSelect,
			Label:   "Vertical Padding",
			Group:   GroupLayout,
			Default: "medium",
			Options: []schema.SelectOption{
				{Label: "None", Value: "none"},
				{Label: "Small", Value: "small"},
				{Label: "Medium", Value: "medium"},
				{Label: "Large", Value: "large"},
			},
		},
		{
			Name:    "contentAlignment",
			Type:    schema.FieldTypeSelect,
			Label:   "Content Alignment",
			Group:   GroupLayout,
			Default: "left",
			Options: []schema.SelectOption{
				{Label: "Left", Value: "left"},
				{Label: "Center", Value: "center"},
				{Label: "Right", Value: "right"},
			},
		},
		{
			Name:    "visibleDevices",
			Type:    schema.FieldTypeMultiSelect,
			Label:   "Visible Devices",
			Group:   GroupVisibility,
			Default: []any{"desktop", "tablet", "mobile"},
			Options: []schema.SelectOption{
				{Label: "Desktop", Value: "desktop"},
				{Label: "Tablet", Value: "tablet"},
				{Label: "Mobile", Value: "mobile"},
			},
		},
		{
			Name:        "scheduleStart",
			Type:        schema.FieldTypeDateTime,
			Label:       "Show From",
			Description: "Leave empty to show immediately.",
			Group:       GroupVisibility,
		},
		{
			Name:        "scheduleEnd",
			Type:        schema.FieldTypeDateTime,
			Label:       "Show Until",
			Description: "Leave empty to show indefinitely.",
			Group:       GroupVisibility,
		},
		{
			Name:  "backgroundColor",
			Type:  schema.FieldTypeColor,
			Label: "Background Color",
			Group: GroupStyling,
		},
		{
			Name:  "textColor",
			Type:  schema.FieldTypeColor,
			Label: "Text Color",
			Group: GroupStyling,
		},
		{
			Name:  "backgroundImage",
			Type:  schema.FieldTypeMedia,
			Label: "Background Image",
			Group: GroupStyling,
		},
		{
			Name:    "borderRadius",
			Type:    schema.FieldTypeSelect,
			Label:   "Corner Radius",
			Group:   GroupStyling,
			Default: "none",
			Options: []schema.SelectOption{
				{Label: "None", Value: "none"},
				{Label: "Small", Value: "small"},
				{Label: "Medium", Value: "medium"},
				{Label: "Large", Value: "large"},
			},
		},
		{
			Name:        "customClass",
			Type:        schema.FieldTypeString,
			Label:       "Custom CSS Class",
			Placeholder: "my-custom-class",
			Group:       GroupStyling,
			Validation: []schema.ValidationRule{
				{Kind: schema.RulePattern, Value: `^[A-Za-z][A-Za-z0-9_-]*( [A-Za-z][A-Za-z0-9_-]*)*$`, Message: "Custom CSS class must be a space-separated list of valid class names"},
			},
		},
		{
			Name:    "animation",
			Type:    schema.FieldTypeSelect,
			Label:   "Entrance Animation",
			Group:   GroupAnimation,
			Default: "none",
			Options: []schema.SelectOption{
				{Label: "None", Value: "none"},
				{Label: "Fade In", Value: "fade"},
				{Label: "Slide Up", Value: "slide-up"},
				{Label: "Zoom", Value: "zoom"},
			},
		},
		{
			Name:    "animationDuration",
			Type:    schema.FieldTypeNumber,
			Label:   "Animation Duration (ms)",
			Group:   GroupAnimation,
			Default: 400,
			Validation: []schema.ValidationRule{
				{Kind: schema.RuleMin, Value: 0, Message: "Animation duration cannot be negative"},
				{Kind: schema.RuleMax, Value: 5000, Message: "Animation duration cannot exceed 5000ms"},
			},
			ShowWhen: []schema.Condition{
				{Field: "animation", Operator: schema.OperatorNotEquals, Value: "none"},
			},
		},
		{
			Name:    "animationDelay",
			Type:    schema.FieldTypeNumber,
			Label:   "Animation Delay (ms)",
			Group:   GroupAnimation,
			Default: 0,
			Validation: []schema.ValidationRule{
				{Kind: schema.RuleMin, Value: 0, Message: "Animation delay cannot be negative"},
				{Kind: schema.RuleMax, Value: 10000, Message: "Animation delay cannot exceed 10000ms"},
			},
			ShowWhen: []schema.Condition{
				{Field: "animation", Operator: schema.OperatorNotEquals, Value: "none"},
			},
		},
		{
			Name:        "trackingId",
			Type:        schema.FieldTypeString,
			Label:       "Tracking ID",
			Description: "Identifier reported with impression and click events.",
			Group:       GroupAnalytics,
		},
		{
			Name:  "promotionName",
			Type:  schema.FieldTypeString,
			Label: "Promotion Name",
			Group: GroupAnalytics,
		},
		{
			Name:    "trackImpressions",
			Type:    schema.FieldTypeBoolean,
			Label:   "Track Impressions",
			Group:   GroupAnalytics,
			Default: true,
		},
		{
			Name:        "adminLabel",
			Type:        schema.FieldTypeString,
			Label:       "Admin Label",
			Description: "Shown only in the page composer, never on the storefront.",
			Group:       GroupAdmin,
			Validation: []schema.ValidationRule{
				{Kind: schema.RuleMaxLength, Value: 60, Message: "Admin label cannot exceed 60 characters"},
			},
		},
		{
			Name:  "adminNotes",
			Type:  schema.FieldTypeRichText,
			Label: "Admin Notes",
			Group: GroupAdmin,
		},
		{
			Name:        "locked",
			Type:        schema.FieldTypeBoolean,
			Label:       "Lock Block",
			Description: "Locked blocks cannot be edited by staff without the layout permission.",
			Group:       GroupAdmin,
			Default:     false,
		},
	}
}

// FieldGroups returns display metadata for the base-field groups in the order
// form surfaces present them.
func FieldGroups() []schema.FieldGroup {
	return []schema.FieldGroup{
		{ID: GroupLayout, Name: "Layout", Description: "Width, spacing, and alignment."},
		{ID: GroupVisibility, Name: "Visibility", Description: "Device targeting and scheduling."},
		{ID: GroupStyling, Name: "Styling", Description: "Colors, backgrounds, and spacing."},
		{ID: GroupAnimation, Name: "Animation", Description: "Entrance effects and timing."},
		{ID: GroupAnalytics, Name: "Analytics", Description: "Impression and promotion tracking."},
		{ID: GroupAdmin, Name: "Admin", Description: "Internal labels and notes."},
	}
}
