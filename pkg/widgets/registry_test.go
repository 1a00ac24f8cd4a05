package widgets_test

import (
	"testing"

	"github.com/commercekit/blockforge/pkg/schema"
	"github.com/commercekit/blockforge/pkg/widgets"
)

func TestResolveBuiltins(t *testing.T) {
	t.Parallel()

	reg := widgets.NewRegistry()

	cases := []struct {
		name  string
		field schema.FieldSchema
		want  string
	}{
		{name: "string", field: schema.FieldSchema{Type: schema.FieldTypeString}, want: widgets.WidgetText},
		{name: "url", field: schema.FieldSchema{Type: schema.FieldTypeURL}, want: widgets.WidgetText},
		{name: "boolean", field: schema.FieldSchema{Type: schema.FieldTypeBoolean}, want: widgets.WidgetToggle},
		{name: "select", field: schema.FieldSchema{Type: schema.FieldTypeSelect}, want: widgets.WidgetSelect},
		{name: "multiselect", field: schema.FieldSchema{Type: schema.FieldTypeMultiSelect}, want: widgets.WidgetChips},
		{name: "number", field: schema.FieldSchema{Type: schema.FieldTypeNumber}, want: widgets.WidgetNumber},
		{name: "color", field: schema.FieldSchema{Type: schema.FieldTypeColor}, want: widgets.WidgetColorPicker},
		{name: "media", field: schema.FieldSchema{Type: schema.FieldTypeMedia}, want: widgets.WidgetMediaPicker},
		{name: "richtext", field: schema.FieldSchema{Type: schema.FieldTypeRichText}, want: widgets.WidgetRichText},
		{name: "code", field: schema.FieldSchema{Type: schema.FieldTypeCode}, want: widgets.WidgetCodeEditor},
		{name: "datetime", field: schema.FieldSchema{Type: schema.FieldTypeDateTime}, want: widgets.WidgetDateTimePicker},
		{name: "icon", field: schema.FieldSchema{Type: schema.FieldTypeIcon}, want: widgets.WidgetIconPicker},
		{name: "product", field: schema.FieldSchema{Type: schema.FieldTypeProduct}, want: widgets.WidgetProductPicker},
		{name: "category", field: schema.FieldSchema{Type: schema.FieldTypeCategory}, want: widgets.WidgetCategoryPicker},
		{name: "collection", field: schema.FieldSchema{Type: schema.FieldTypeCollection}, want: widgets.WidgetCategoryPicker},
		{name: "json", field: schema.FieldSchema{Type: schema.FieldTypeJSON}, want: widgets.WidgetJSONEditor},
		{name: "object", field: schema.FieldSchema{Type: schema.FieldTypeObject}, want: widgets.WidgetJSONEditor},
		{name: "plain array", field: schema.FieldSchema{Type: schema.FieldTypeArray}, want: widgets.WidgetChips},
		{
			name: "array of objects",
			field: schema.FieldSchema{
				Type:       schema.FieldTypeArray,
				ItemSchema: &schema.FieldSchema{Type: schema.FieldTypeObject},
			},
			want: widgets.WidgetKeyValue,
		},
		{
			name: "long string",
			field: schema.FieldSchema{
				Type: schema.FieldTypeString,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 500},
				},
			},
			want: widgets.WidgetTextarea,
		},
		{
			name: "short string stays text",
			field: schema.FieldSchema{
				Type: schema.FieldTypeString,
				Validation: []schema.ValidationRule{
					{Kind: schema.RuleMaxLength, Value: 60},
				},
			},
			want: widgets.WidgetText,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := reg.Resolve(tc.field)
			if !ok {
				t.Fatalf("no widget resolved")
			}
			if got != tc.want {
				t.Fatalf("Resolve() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRegisterCustomWidgetWins(t *testing.T) {
	t.Parallel()

	reg := widgets.NewRegistry()
	reg.Register("emoji-picker", 10, func(field schema.FieldSchema) bool {
		return field.Name == "reaction"
	})

	got, ok := reg.Resolve(schema.FieldSchema{Name: "reaction", Type: schema.FieldTypeString})
	if !ok || got != "emoji-picker" {
		t.Fatalf("custom widget did not win: %q %v", got, ok)
	}

	// Other fields are unaffected.
	got, _ = reg.Resolve(schema.FieldSchema{Name: "headline", Type: schema.FieldTypeString})
	if got != widgets.WidgetText {
		t.Fatalf("builtin resolution broken: %q", got)
	}
}

func TestRegisterIgnoresInvalidInput(t *testing.T) {
	t.Parallel()

	reg := widgets.NewRegistry()
	reg.Register("", 10, func(schema.FieldSchema) bool { return true })
	reg.Register("nil-matcher", 10, nil)

	got, _ := reg.Resolve(schema.FieldSchema{Type: schema.FieldTypeString})
	if got != widgets.WidgetText {
		t.Fatalf("invalid registrations must be ignored, got %q", got)
	}
}
