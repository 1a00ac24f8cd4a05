package schema

// FieldType enumerates the configurable property kinds a block field can take.
type FieldType string

const (
	FieldTypeString      FieldType = "string"
	FieldTypeNumber      FieldType = "number"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeColor       FieldType = "color"
	FieldTypeMedia       FieldType = "media"
	FieldTypeRichText    FieldType = "richtext"
	FieldTypeCode        FieldType = "code"
	FieldTypeArray       FieldType = "array"
	FieldTypeObject      FieldType = "object"
	FieldTypeDateTime    FieldType = "datetime"
	FieldTypeURL         FieldType = "url"
	FieldTypeIcon        FieldType = "icon"
	FieldTypeProduct     FieldType = "product"
	FieldTypeCategory    FieldType = "category"
	FieldTypeCollection  FieldType = "collection"
	FieldTypeJSON        FieldType = "json"
)

// RuleKind identifies a validation rule applied to a field value.
type RuleKind string

const (
	RuleMin       RuleKind = "min"
	RuleMax       RuleKind = "max"
	RuleMinLength RuleKind = "minLength"
	RuleMaxLength RuleKind = "maxLength"
	RulePattern   RuleKind = "pattern"
	RuleEmail     RuleKind = "email"
	RuleURL       RuleKind = "url"
	RuleRequired  RuleKind = "required"
	RuleCustom    RuleKind = "custom"
)

// ValidationRule is one constraint on a field value. Message is authored
// alongside the rule and reported verbatim when the rule fails.
type ValidationRule struct {
	Kind    RuleKind `json:"type" yaml:"type"`
	Value   any      `json:"value,omitempty" yaml:"value,omitempty"`
	Message string   `json:"message" yaml:"message"`
}

// Operator is the comparison used by a ShowWhen condition.
type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "notEquals"
	OperatorIn          Operator = "in"
	OperatorNotIn       Operator = "notIn"
	OperatorContains    Operator = "contains"
	OperatorGreaterThan Operator = "greaterThan"
	OperatorLessThan    Operator = "lessThan"
	OperatorIsEmpty     Operator = "isEmpty"
	OperatorIsNotEmpty  Operator = "isNotEmpty"
)

// Condition gates a field's visibility in rendering surfaces on another
// field's value. Conditions never influence validation: a hidden field whose
// value is present in the submitted configuration is still validated.
type Condition struct {
	Field    string   `json:"field" yaml:"field"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    any      `json:"value,omitempty" yaml:"value,omitempty"`
}

// SelectOption is one entry of a closed enumeration for select/multiselect
// fields.
type SelectOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// FieldSchema describes one configurable property of a block. Fields is
// populated only for object fields; ItemSchema, MinItems and MaxItems only
// for array fields.
type FieldSchema struct {
	Name        string           `json:"name" yaml:"name"`
	Type        FieldType        `json:"type" yaml:"type"`
	Label       string           `json:"label,omitempty" yaml:"label,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Group       string           `json:"group,omitempty" yaml:"group,omitempty"`
	Required    bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Default     any              `json:"default,omitempty" yaml:"default,omitempty"`
	Validation  []ValidationRule `json:"validation,omitempty" yaml:"validation,omitempty"`
	Options     []SelectOption   `json:"options,omitempty" yaml:"options,omitempty"`
	Fields      []FieldSchema    `json:"fields,omitempty" yaml:"fields,omitempty"`
	ItemSchema  *FieldSchema     `json:"itemSchema,omitempty" yaml:"itemSchema,omitempty"`
	MinItems    *int             `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems    *int             `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	ShowWhen    []Condition      `json:"showWhen,omitempty" yaml:"showWhen,omitempty"`
}

// DisplayLabel returns the authored label, falling back to the field name so
// validation messages never reference an empty string.
func (f FieldSchema) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Variant is a named alternative field-set for a block type. AdditionalFields
// are appended after the merged field list; HiddenFields removes top-level
// fields by name after the append. At most one variant is active per block
// instance, selected by the "variant" key of its configuration.
type Variant struct {
	ID               string        `json:"id" yaml:"id"`
	Name             string        `json:"name" yaml:"name"`
	Description      string        `json:"description,omitempty" yaml:"description,omitempty"`
	Thumbnail        string        `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	AdditionalFields []FieldSchema `json:"additionalFields,omitempty" yaml:"additionalFields,omitempty"`
	HiddenFields     []string      `json:"hiddenFields,omitempty" yaml:"hiddenFields,omitempty"`
}

// BlockSchema describes one block type: its identity, presentation metadata,
// field tree, variants, and placement constraints. MaxPerPage,
// AllowedSections and RequiredPermissions are carried for page-composition
// callers; the registry itself does not enforce them.
type BlockSchema struct {
	Type                string         `json:"type" yaml:"type"`
	Name                string         `json:"name" yaml:"name"`
	Description         string         `json:"description,omitempty" yaml:"description,omitempty"`
	Icon                string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	Category            string         `json:"category,omitempty" yaml:"category,omitempty"`
	Thumbnail           string         `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Fields              []FieldSchema  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Variants            []Variant      `json:"variants,omitempty" yaml:"variants,omitempty"`
	DefaultVariant      string         `json:"defaultVariant,omitempty" yaml:"defaultVariant,omitempty"`
	IncludeBaseFields   bool           `json:"includeBaseFields,omitempty" yaml:"includeBaseFields,omitempty"`
	DefaultConfig       map[string]any `json:"defaultConfig,omitempty" yaml:"defaultConfig,omitempty"`
	MaxPerPage          int            `json:"maxPerPage,omitempty" yaml:"maxPerPage,omitempty"`
	AllowedSections     []string       `json:"allowedSections,omitempty" yaml:"allowedSections,omitempty"`
	RequiredPermissions []string       `json:"requiredPermissions,omitempty" yaml:"requiredPermissions,omitempty"`
}

// FindVariant returns the variant with the given id, if declared.
func (b BlockSchema) FindVariant(id string) (Variant, bool) {
	for _, variant := range b.Variants {
		if variant.ID == id {
			return variant, true
		}
	}
	return Variant{}, false
}

// CategoryInfo is display metadata for a block category.
type CategoryInfo struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// FieldGroup is display metadata for a group of base fields (layout, styling,
// and so on) used by form surfaces to cluster controls.
type FieldGroup struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
}
