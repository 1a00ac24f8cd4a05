// Package widgets resolves the editor control used for a block field.
// Resolution is matcher-based so merchants and plugins can register their own
// controls without touching the catalog.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/commercekit/blockforge/pkg/schema"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetText           = "text"
	WidgetTextarea       = "textarea"
	WidgetNumber         = "number"
	WidgetToggle         = "toggle"
	WidgetSelect         = "select"
	WidgetChips          = "chips"
	WidgetColorPicker    = "color-picker"
	WidgetMediaPicker    = "media-picker"
	WidgetRichText       = "richtext-editor"
	WidgetCodeEditor     = "code-editor"
	WidgetDateTimePicker = "datetime-picker"
	WidgetIconPicker     = "icon-picker"
	WidgetProductPicker  = "product-picker"
	WidgetCategoryPicker = "category-picker"
	WidgetKeyValue       = "key-value"
	WidgetJSONEditor     = "json-editor"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field schema.FieldSchema) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on registered matchers. Higher
// priority wins; ties fall back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence over the built-ins, which register at
// priority 0.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field.
func (r *Registry) Resolve(field schema.FieldSchema) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	if len(rules) == 0 {
		return "", false
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	byType := func(kind schema.FieldType) Matcher {
		return func(field schema.FieldSchema) bool { return field.Type == kind }
	}

	r.Register(WidgetToggle, 0, byType(schema.FieldTypeBoolean))
	r.Register(WidgetSelect, 0, byType(schema.FieldTypeSelect))
	r.Register(WidgetChips, 0, byType(schema.FieldTypeMultiSelect))
	r.Register(WidgetNumber, 0, byType(schema.FieldTypeNumber))
	r.Register(WidgetColorPicker, 0, byType(schema.FieldTypeColor))
	r.Register(WidgetMediaPicker, 0, byType(schema.FieldTypeMedia))
	r.Register(WidgetRichText, 0, byType(schema.FieldTypeRichText))
	r.Register(WidgetCodeEditor, 0, byType(schema.FieldTypeCode))
	r.Register(WidgetDateTimePicker, 0, byType(schema.FieldTypeDateTime))
	r.Register(WidgetIconPicker, 0, byType(schema.FieldTypeIcon))
	r.Register(WidgetProductPicker, 0, byType(schema.FieldTypeProduct))
	r.Register(WidgetCategoryPicker, 0, func(field schema.FieldSchema) bool {
		return field.Type == schema.FieldTypeCategory || field.Type == schema.FieldTypeCollection
	})
	r.Register(WidgetJSONEditor, 0, func(field schema.FieldSchema) bool {
		return field.Type == schema.FieldTypeJSON || field.Type == schema.FieldTypeObject
	})

	// Arrays of objects edit as key-value rows; other arrays as chips.
	r.Register(WidgetKeyValue, 1, func(field schema.FieldSchema) bool {
		return field.Type == schema.FieldTypeArray &&
			field.ItemSchema != nil && field.ItemSchema.Type == schema.FieldTypeObject
	})
	r.Register(WidgetChips, 0, byType(schema.FieldTypeArray))

	// Long text inputs get a textarea, everything else a plain text input.
	r.Register(WidgetTextarea, 1, func(field schema.FieldSchema) bool {
		if field.Type != schema.FieldTypeString {
			return false
		}
		for _, rule := range field.Validation {
			if rule.Kind != schema.RuleMaxLength {
				continue
			}
			if bound, ok := rule.Value.(int); ok && bound > 200 {
				return true
			}
		}
		return false
	})
	r.Register(WidgetText, -1, func(field schema.FieldSchema) bool {
		switch field.Type {
		case schema.FieldTypeString, schema.FieldTypeURL:
			return true
		default:
			return false
		}
	})
}
