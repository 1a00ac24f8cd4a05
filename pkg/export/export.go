// Package export converts a block catalog into an OpenAPI 3 document so
// storefront clients and admin tooling can consume the block configuration
// contract without linking against this module.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/commercekit/blockforge/pkg/schema"
)

// Options control document metadata.
type Options struct {
	Title       string
	Version     string
	Description string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Block Catalog"
	}
	if o.Version == "" {
		o.Version = "1.0.0"
	}
	return o
}

// Document builds an OpenAPI document whose component schemas describe the
// configuration payload of every block in the catalog. Component names are
// derived from block types ("hero" becomes "HeroBlockConfig").
func Document(ctx context.Context, schemas []schema.BlockSchema, options Options) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options = options.withDefaults()

	components := make(openapi3.Schemas, len(schemas))
	for _, blockSchema := range schemas {
		if blockSchema.Type == "" {
			return nil, fmt.Errorf("export: block schema %q has an empty type", blockSchema.Name)
		}
		name := componentName(blockSchema.Type)
		if _, exists := components[name]; exists {
			return nil, fmt.Errorf("export: duplicate component %s for block type %q", name, blockSchema.Type)
		}
		components[name] = openapi3.NewSchemaRef("", blockConfigSchema(blockSchema))
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       options.Title,
			Version:     options.Version,
			Description: options.Description,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: components,
		},
	}
	return doc, nil
}

// MarshalJSON renders the catalog as an indented OpenAPI JSON payload.
func MarshalJSON(ctx context.Context, schemas []schema.BlockSchema, options Options) ([]byte, error) {
	doc, err := Document(ctx, schemas, options)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal document: %w", err)
	}
	return data, nil
}

func blockConfigSchema(blockSchema schema.BlockSchema) *openapi3.Schema {
	object := openapi3.NewObjectSchema()
	object.Title = blockSchema.Name
	object.Description = blockSchema.Description

	object.WithProperty(schema.ConfigKeyID, openapi3.NewStringSchema().WithMinLength(1))
	object.WithProperty(schema.ConfigKeyType, openapi3.NewStringSchema().WithEnum(blockSchema.Type))
	object.WithProperty(schema.ConfigKeyEnabled, openapi3.NewBoolSchema())
	object.WithProperty(schema.ConfigKeyAdminLabel, openapi3.NewStringSchema())
	if len(blockSchema.Variants) > 0 {
		variantIDs := make([]any, 0, len(blockSchema.Variants))
		for _, variant := range blockSchema.Variants {
			variantIDs = append(variantIDs, variant.ID)
		}
		object.WithProperty(schema.ConfigKeyVariant, openapi3.NewStringSchema().WithEnum(variantIDs...))
	}

	// Variant-only fields appear as properties but are never marked required:
	// they only apply when their variant is active.
	alwaysPresent := make(map[string]bool, len(blockSchema.Fields))
	for _, field := range blockSchema.Fields {
		alwaysPresent[field.Name] = true
	}

	required := []string{schema.ConfigKeyID, schema.ConfigKeyType}
	for _, field := range allFields(blockSchema) {
		object.WithProperty(field.Name, fieldSchema(field))
		if field.Required && alwaysPresent[field.Name] {
			required = append(required, field.Name)
		}
	}
	object.Required = required
	return object
}

// allFields folds every variant's additional fields into the exported shape.
// The document describes the superset payload; per-variant narrowing is a
// validation concern, not a wire-format one.
func allFields(blockSchema schema.BlockSchema) []schema.FieldSchema {
	fields := make([]schema.FieldSchema, 0, len(blockSchema.Fields))
	seen := make(map[string]bool, len(blockSchema.Fields))
	for _, field := range blockSchema.Fields {
		fields = append(fields, field)
		seen[field.Name] = true
	}
	for _, variant := range blockSchema.Variants {
		for _, field := range variant.AdditionalFields {
			if seen[field.Name] {
				continue
			}
			fields = append(fields, field)
			seen[field.Name] = true
		}
	}
	return fields
}

func fieldSchema(field schema.FieldSchema) *openapi3.Schema {
	var out *openapi3.Schema
	switch field.Type {
	case schema.FieldTypeNumber:
		out = openapi3.NewFloat64Schema()
	case schema.FieldTypeBoolean:
		out = openapi3.NewBoolSchema()
	case schema.FieldTypeSelect:
		out = openapi3.NewStringSchema()
		if values := optionValues(field.Options); len(values) > 0 {
			out.WithEnum(values...)
		}
	case schema.FieldTypeMultiSelect:
		item := openapi3.NewStringSchema()
		if values := optionValues(field.Options); len(values) > 0 {
			item.WithEnum(values...)
		}
		out = openapi3.NewArraySchema().WithItems(item)
	case schema.FieldTypeArray:
		item := openapi3.NewStringSchema()
		if field.ItemSchema != nil {
			item = fieldSchema(*field.ItemSchema)
		}
		out = openapi3.NewArraySchema().WithItems(item)
		if field.MinItems != nil {
			out.WithMinItems(int64(*field.MinItems))
		}
		if field.MaxItems != nil {
			out.WithMaxItems(int64(*field.MaxItems))
		}
	case schema.FieldTypeObject:
		out = openapi3.NewObjectSchema()
		for _, sub := range field.Fields {
			out.WithProperty(sub.Name, fieldSchema(sub))
			if sub.Required {
				out.Required = append(out.Required, sub.Name)
			}
		}
	case schema.FieldTypeJSON:
		out = openapi3.NewSchema()
	case schema.FieldTypeURL:
		out = openapi3.NewStringSchema().WithFormat("uri")
	case schema.FieldTypeDateTime:
		out = openapi3.NewStringSchema().WithFormat("date-time")
	default:
		out = openapi3.NewStringSchema()
	}

	out.Description = field.Description
	if out.Title == "" {
		out.Title = field.DisplayLabel()
	}
	if field.Default != nil {
		out.Default = field.Default
	}
	applyRules(out, field)
	return out
}

func applyRules(out *openapi3.Schema, field schema.FieldSchema) {
	for _, rule := range field.Validation {
		switch rule.Kind {
		case schema.RuleMin:
			if f, ok := ruleFloat(rule.Value); ok {
				out.WithMin(f)
			}
		case schema.RuleMax:
			if f, ok := ruleFloat(rule.Value); ok {
				out.WithMax(f)
			}
		case schema.RuleMinLength:
			if n, ok := ruleInt(rule.Value); ok {
				out.WithMinLength(n)
			}
		case schema.RuleMaxLength:
			if n, ok := ruleInt(rule.Value); ok {
				out.WithMaxLength(n)
			}
		case schema.RulePattern:
			if pattern, ok := rule.Value.(string); ok && pattern != "" {
				out.WithPattern(pattern)
			}
		case schema.RuleEmail:
			out.WithFormat("email")
		case schema.RuleURL:
			out.WithFormat("uri")
		}
	}
}

func optionValues(options []schema.SelectOption) []any {
	if len(options) == 0 {
		return nil
	}
	values := make([]any, 0, len(options))
	for _, option := range options {
		values = append(values, option.Value)
	}
	return values
}

func ruleFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func ruleInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// componentName converts "featured-products" into "FeaturedProductsBlockConfig".
func componentName(blockType string) string {
	parts := strings.FieldsFunc(blockType, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	b.WriteString("BlockConfig")
	return b.String()
}
