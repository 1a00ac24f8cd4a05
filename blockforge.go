package blockforge

import (
	"github.com/commercekit/blockforge/pkg/catalog"
	"github.com/commercekit/blockforge/pkg/registry"
	"github.com/commercekit/blockforge/pkg/schema"
	"github.com/commercekit/blockforge/pkg/validation"
)

// BlockSchema describes a block type; alias exported via the root package for
// convenience.
type BlockSchema = schema.BlockSchema

// FieldSchema describes a single editable field within a block.
type FieldSchema = schema.FieldSchema

// Variant is a named preset layout of a block type.
type Variant = schema.Variant

// Config is a block instance's configuration payload.
type Config = schema.Config

// ValidationRule is a single declarative constraint on a field value.
type ValidationRule = schema.ValidationRule

// Condition gates a field's visibility on another field's value.
type Condition = schema.Condition

// Registry aliases registry.Registry for callers that only import the root
// package.
type Registry = registry.Registry

// NewRegistry builds a registry over the supplied schemas. Base editor fields
// are merged into every schema that opts in via IncludeBaseFields.
func NewRegistry(schemas []BlockSchema, options ...registry.Option) (*Registry, error) {
	return registry.New(schemas, options...)
}

// NewDefaultRegistry builds a registry over the built-in storefront catalog.
// It is the simplest entry point for callers that just want the stock blocks.
func NewDefaultRegistry(options ...registry.Option) (*Registry, error) {
	return registry.New(catalog.All(), options...)
}

// Catalog returns the built-in block schemas.
func Catalog() []BlockSchema {
	return catalog.All()
}

// BaseFields returns the shared editor fields merged into opted-in blocks.
func BaseFields() []FieldSchema {
	return catalog.BaseFields()
}

// WithBaseFields overrides the base field set the registry merges into
// schemas that opt in.
func WithBaseFields(fields []FieldSchema) registry.Option {
	return registry.WithBaseFields(fields)
}

// WithValidator swaps the validator used by ValidateConfig, typically to add
// custom rules.
func WithValidator(v *validation.Validator) registry.Option {
	return registry.WithValidator(v)
}

// NewValidator constructs a field validator. Custom rules referenced by
// name from schemas are registered through validation.WithCustomRule.
func NewValidator(options ...validation.Option) *validation.Validator {
	return validation.New(options...)
}

// DuplicateBlock deep-copies a block configuration, assigns a fresh id, and
// marks the admin label as a copy.
func DuplicateBlock(block Config) Config {
	return registry.DuplicateBlock(block)
}
