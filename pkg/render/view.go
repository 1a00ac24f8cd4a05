package render

import (
	"fmt"

	"github.com/commercekit/blockforge/pkg/registry"
	"github.com/commercekit/blockforge/pkg/schema"
	"github.com/commercekit/blockforge/pkg/visibility"
	"github.com/commercekit/blockforge/pkg/widgets"
)

// FieldView is one form control: the field schema plus the resolved widget,
// the current value, and whether showWhen conditions hide it for the current
// values. Hidden fields still carry their value so a renderer can keep it in
// a hidden input rather than dropping it.
type FieldView struct {
	schema.FieldSchema
	Widget string `json:"widget,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
	Value  any    `json:"value,omitempty"`
}

// FormView is the renderer-facing projection of a block's resolved field
// list for a specific variant and set of values.
type FormView struct {
	BlockType   string      `json:"blockType"`
	Variant     string      `json:"variant,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Fields      []FieldView `json:"fields"`
}

// BuildView resolves the field list for (blockType, variant), decorates each
// field with a widget, applies showWhen visibility against the supplied
// values, and returns the result. Unknown block types are an error here:
// rendering a form for a type that does not exist is a programming mistake,
// not a recoverable lookup miss.
func BuildView(reg *registry.Registry, widgetReg *widgets.Registry, blockType, variant string, values schema.Config) (FormView, error) {
	blockSchema, ok := reg.Schema(blockType)
	if !ok {
		return FormView{}, fmt.Errorf("render: unknown block type %q", blockType)
	}

	if variant == "" {
		variant = values.Variant()
	}
	fields := reg.FieldsForBlock(blockType, variant)

	view := FormView{
		BlockType:   blockType,
		Variant:     variant,
		Title:       blockSchema.Name,
		Description: blockSchema.Description,
		Fields:      make([]FieldView, 0, len(fields)),
	}

	for _, field := range fields {
		fieldView := FieldView{
			FieldSchema: field,
			Hidden:      !visibility.Visible(field.ShowWhen, values),
		}
		if widgetReg != nil {
			if widget, resolved := widgetReg.Resolve(field); resolved {
				fieldView.Widget = widget
			}
		}
		if values != nil {
			if value, present := values[field.Name]; present {
				fieldView.Value = value
			} else if field.Default != nil {
				fieldView.Value = field.Default
			}
		} else if field.Default != nil {
			fieldView.Value = field.Default
		}
		view.Fields = append(view.Fields, fieldView)
	}

	return view, nil
}
