// Package composer walks a block's field schema interactively, prompting for
// each visible field and assembling a configuration that passes validation.
package composer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/commercekit/blockforge/pkg/registry"
	"github.com/commercekit/blockforge/pkg/schema"
	"github.com/commercekit/blockforge/pkg/visibility"
)

// Option configures a Composer.
type Option func(*Composer)

// WithDriver swaps the prompt driver. Defaults to the survey-backed driver.
func WithDriver(driver PromptDriver) Option {
	return func(c *Composer) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Composer drives an interactive session that fills in a block configuration
// field by field.
type Composer struct {
	registry *registry.Registry
	driver   PromptDriver
	logger   *zap.Logger
}

// New constructs a Composer over the given registry.
func New(reg *registry.Registry, options ...Option) *Composer {
	c := &Composer{
		registry: reg,
		driver:   NewSurveyDriver(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Compose prompts for every visible field of the block type and returns the
// assembled configuration. Fields whose showWhen conditions do not hold
// against the answers collected so far are skipped. The result is validated
// before it is returned; findings are surfaced as an error listing every
// message.
func (c *Composer) Compose(ctx context.Context, blockType string) (schema.Config, error) {
	blockSchema, ok := c.registry.Schema(blockType)
	if !ok {
		return nil, fmt.Errorf("composer: unknown block type: %s", blockType)
	}

	variant, err := c.chooseVariant(ctx, blockSchema)
	if err != nil {
		return nil, err
	}

	config := c.registry.CreateBlock(blockType, variant, nil)
	fields := c.registry.FieldsForBlock(blockType, variant)

	currentGroup := ""
	for _, field := range fields {
		if !visibility.Visible(field.ShowWhen, config) {
			c.logger.Debug("skipped hidden field",
				zap.String("block", blockType),
				zap.String("field", field.Name),
			)
			continue
		}
		if field.Group != "" && field.Group != currentGroup {
			currentGroup = field.Group
			if err := c.driver.Info(ctx, "-- "+currentGroup+" --"); err != nil {
				return nil, err
			}
		}
		value, err := c.promptField(ctx, field)
		if err != nil {
			return nil, err
		}
		if value != nil {
			config[field.Name] = value
		}
	}

	if findings := c.registry.ValidateConfig(blockType, config); len(findings) > 0 {
		return config, fmt.Errorf("composer: configuration is invalid: %s", strings.Join(findings, "; "))
	}
	return config, nil
}

func (c *Composer) chooseVariant(ctx context.Context, blockSchema schema.BlockSchema) (string, error) {
	if len(blockSchema.Variants) == 0 {
		return "", nil
	}
	options := make([]string, 0, len(blockSchema.Variants))
	defaultIndex := 0
	for i, variant := range blockSchema.Variants {
		options = append(options, variant.Name)
		if variant.ID == blockSchema.DefaultVariant {
			defaultIndex = i
		}
	}
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:      "Variant",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(blockSchema.Variants) {
		return blockSchema.DefaultVariant, nil
	}
	return blockSchema.Variants[idx].ID, nil
}

func (c *Composer) promptField(ctx context.Context, field schema.FieldSchema) (any, error) {
	label := field.DisplayLabel()

	switch field.Type {
	case schema.FieldTypeBoolean:
		def, _ := field.Default.(bool)
		return c.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: def,
			Help:    field.Description,
		})

	case schema.FieldTypeSelect:
		return c.promptSelect(ctx, field)

	case schema.FieldTypeMultiSelect:
		return c.promptMultiSelect(ctx, field)

	case schema.FieldTypeNumber:
		return c.promptNumber(ctx, field)

	case schema.FieldTypeRichText, schema.FieldTypeCode, schema.FieldTypeJSON:
		def, _ := field.Default.(string)
		out, err := c.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: def,
			Help:    field.Description,
		})
		if err != nil {
			return nil, err
		}
		if out == "" {
			return nil, nil
		}
		return out, nil

	case schema.FieldTypeArray:
		return c.promptArray(ctx, field)

	case schema.FieldTypeObject:
		// Nested objects are composed field by field.
		values := make(map[string]any, len(field.Fields))
		for _, sub := range field.Fields {
			value, err := c.promptField(ctx, sub)
			if err != nil {
				return nil, err
			}
			if value != nil {
				values[sub.Name] = value
			}
		}
		return values, nil

	default:
		def, _ := field.Default.(string)
		out, err := c.driver.Input(ctx, InputConfig{
			Message: label,
			Default: def,
			Help:    field.Description,
		})
		if err != nil {
			return nil, err
		}
		if out == "" {
			return nil, nil
		}
		return out, nil
	}
}

func (c *Composer) promptSelect(ctx context.Context, field schema.FieldSchema) (any, error) {
	if len(field.Options) == 0 {
		return c.driver.Input(ctx, InputConfig{Message: field.DisplayLabel(), Help: field.Description})
	}
	labels := make([]string, 0, len(field.Options))
	defaultIndex := 0
	for i, option := range field.Options {
		labels = append(labels, option.Label)
		if field.Default != nil && option.Value == field.Default {
			defaultIndex = i
		}
	}
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:      field.DisplayLabel(),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         field.Description,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(field.Options) {
		return nil, nil
	}
	return field.Options[idx].Value, nil
}

func (c *Composer) promptMultiSelect(ctx context.Context, field schema.FieldSchema) (any, error) {
	labels := make([]string, 0, len(field.Options))
	var defaults []int
	defaultValues := asValueSet(field.Default)
	for i, option := range field.Options {
		labels = append(labels, option.Label)
		if _, ok := defaultValues[fmt.Sprint(option.Value)]; ok {
			defaults = append(defaults, i)
		}
	}
	indices, err := c.driver.MultiSelect(ctx, SelectConfig{
		Message:  field.DisplayLabel(),
		Options:  labels,
		Defaults: defaults,
		Help:     field.Description,
	})
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(field.Options) {
			values = append(values, field.Options[idx].Value)
		}
	}
	return values, nil
}

func (c *Composer) promptNumber(ctx context.Context, field schema.FieldSchema) (any, error) {
	def := ""
	if field.Default != nil {
		def = fmt.Sprint(field.Default)
	}
	out, err := c.driver.Input(ctx, InputConfig{
		Message: field.DisplayLabel(),
		Default: def,
		Help:    field.Description,
		Validator: func(value string) error {
			if value == "" {
				return nil
			}
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				return fmt.Errorf("%s must be a number", field.DisplayLabel())
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	number, err := strconv.ParseFloat(out, 64)
	if err != nil {
		return nil, fmt.Errorf("composer: parse %s: %w", field.Name, err)
	}
	return number, nil
}

// promptArray collects one entry per confirmation round. Items follow the
// field's item schema when present, plain strings otherwise.
func (c *Composer) promptArray(ctx context.Context, field schema.FieldSchema) (any, error) {
	var items []any
	for {
		if field.MaxItems != nil && len(items) >= *field.MaxItems {
			break
		}
		message := fmt.Sprintf("Add %s entry? (%d so far)", field.DisplayLabel(), len(items))
		wantMore := field.MinItems != nil && len(items) < *field.MinItems
		more, err := c.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: wantMore})
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		item := schema.FieldSchema{
			Name:  fmt.Sprintf("%s[%d]", field.Name, len(items)),
			Label: fmt.Sprintf("%s #%d", field.DisplayLabel(), len(items)+1),
			Type:  schema.FieldTypeString,
		}
		if field.ItemSchema != nil {
			item = *field.ItemSchema
			item.Label = fmt.Sprintf("%s #%d", field.DisplayLabel(), len(items)+1)
		}
		value, err := c.promptField(ctx, item)
		if err != nil {
			return nil, err
		}
		if value != nil {
			items = append(items, value)
		}
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

func asValueSet(value any) map[string]struct{} {
	out := make(map[string]struct{})
	list, ok := value.([]any)
	if !ok {
		return out
	}
	for _, item := range list {
		out[fmt.Sprint(item)] = struct{}{}
	}
	return out
}
