// Package registry indexes the block schema catalog and answers the lookup,
// merge, default-construction, and validation questions page-composition
// surfaces ask. A Registry is built once from a catalog slice and is
// read-only afterward, so concurrent readers need no locking.
package registry

import (
	"fmt"

	"github.com/commercekit/blockforge/pkg/catalog"
	"github.com/commercekit/blockforge/pkg/schema"
	"github.com/commercekit/blockforge/pkg/validation"
)

// Option customises registry construction.
type Option func(*settings)

type settings struct {
	baseFields []schema.FieldSchema
	validator  *validation.Validator
}

// WithBaseFields overrides the universal base-field list appended to schemas
// that opt in via IncludeBaseFields. Defaults to catalog.BaseFields().
func WithBaseFields(fields []schema.FieldSchema) Option {
	return func(s *settings) {
		s.baseFields = fields
	}
}

// WithValidator injects a validator carrying custom rule predicates.
func WithValidator(v *validation.Validator) Option {
	return func(s *settings) {
		if v != nil {
			s.validator = v
		}
	}
}

// Registry resolves block types to merged schemas. Base fields are appended
// exactly once, at construction; lookups never redo the merge.
type Registry struct {
	schemas   map[string]schema.BlockSchema
	order     []string
	validator *validation.Validator
}

// New builds a registry from the supplied catalog. A duplicate block type is
// a construction error: silently letting a later entry overwrite an earlier
// one would hide authoring mistakes until a storefront renders the wrong
// fields.
func New(schemas []schema.BlockSchema, options ...Option) (*Registry, error) {
	cfg := settings{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.baseFields == nil {
		cfg.baseFields = catalog.BaseFields()
	}
	if cfg.validator == nil {
		cfg.validator = validation.New()
	}

	reg := &Registry{
		schemas:   make(map[string]schema.BlockSchema, len(schemas)),
		order:     make([]string, 0, len(schemas)),
		validator: cfg.validator,
	}

	for _, blockSchema := range schemas {
		if blockSchema.Type == "" {
			return nil, fmt.Errorf("registry: block schema %q has an empty type", blockSchema.Name)
		}
		if _, exists := reg.schemas[blockSchema.Type]; exists {
			return nil, fmt.Errorf("registry: duplicate block type %q", blockSchema.Type)
		}

		if blockSchema.IncludeBaseFields {
			merged := make([]schema.FieldSchema, 0, len(blockSchema.Fields)+len(cfg.baseFields))
			merged = append(merged, blockSchema.Fields...)
			merged = append(merged, cfg.baseFields...)
			blockSchema.Fields = merged
		}

		reg.schemas[blockSchema.Type] = blockSchema
		reg.order = append(reg.order, blockSchema.Type)
	}

	return reg, nil
}

// Schema returns the merged schema for a block type. Absence is signalled via
// the second return value; unknown types are not an error here.
func (r *Registry) Schema(blockType string) (schema.BlockSchema, bool) {
	blockSchema, ok := r.schemas[blockType]
	return blockSchema, ok
}

// All returns every registered schema in catalog order.
func (r *Registry) All() []schema.BlockSchema {
	out := make([]schema.BlockSchema, 0, len(r.order))
	for _, blockType := range r.order {
		out = append(out, r.schemas[blockType])
	}
	return out
}

// Types returns the registered block type identifiers in catalog order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// SchemasByCategory returns every schema whose category matches exactly. The
// result may be empty.
func (r *Registry) SchemasByCategory(category string) []schema.BlockSchema {
	var out []schema.BlockSchema
	for _, blockType := range r.order {
		if blockSchema := r.schemas[blockType]; blockSchema.Category == category {
			out = append(out, blockSchema)
		}
	}
	return out
}

// FieldsForBlock resolves the effective field list for a block type and an
// optional variant: the merged schema fields, then the variant's additional
// fields appended in order, then top-level removal of the variant's hidden
// field names. Hidden-field removal is shallow on purpose; nested object and
// array sub-fields are never touched. Unknown types yield an empty list.
func (r *Registry) FieldsForBlock(blockType, variant string) []schema.FieldSchema {
	blockSchema, ok := r.schemas[blockType]
	if !ok {
		return nil
	}

	fields := make([]schema.FieldSchema, len(blockSchema.Fields))
	copy(fields, blockSchema.Fields)

	if variant == "" {
		return fields
	}
	active, found := blockSchema.FindVariant(variant)
	if !found {
		return fields
	}

	fields = append(fields, active.AdditionalFields...)

	if len(active.HiddenFields) == 0 {
		return fields
	}
	hidden := make(map[string]struct{}, len(active.HiddenFields))
	for _, name := range active.HiddenFields {
		hidden[name] = struct{}{}
	}
	kept := fields[:0]
	for _, field := range fields {
		if _, drop := hidden[field.Name]; !drop {
			kept = append(kept, field)
		}
	}
	return kept
}

// ValidateConfig checks a configuration against the resolved field list for
// its type and the variant recorded in the config. Unknown types produce a
// single finding naming the type; this is the one lookup path that reports
// misses explicitly, because a validation caller is about to persist the
// configuration.
func (r *Registry) ValidateConfig(blockType string, config schema.Config) []string {
	if _, ok := r.schemas[blockType]; !ok {
		return []string{fmt.Sprintf("unknown block type: %s", blockType)}
	}
	fields := r.FieldsForBlock(blockType, config.Variant())
	return r.validator.Validate(fields, config)
}
