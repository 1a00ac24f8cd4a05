// Package validation checks block configurations against resolved field
// lists. Findings are reported as a flat list of human-readable strings; an
// empty list means the configuration is valid. Messages authored on
// validation rules are reported verbatim.
package validation

import (
	"fmt"

	"github.com/commercekit/blockforge/pkg/schema"
)

// CustomRule is a caller-supplied predicate for RuleCustom validation rules.
// It returns true when the value passes.
type CustomRule func(value any) bool

// Option configures a Validator.
type Option func(*Validator)

// WithCustomRule registers a named predicate that RuleCustom rules can
// reference through their Value. Rules naming an unregistered predicate are
// skipped.
func WithCustomRule(name string, fn CustomRule) Option {
	return func(v *Validator) {
		if name == "" || fn == nil {
			return
		}
		if v.custom == nil {
			v.custom = make(map[string]CustomRule)
		}
		v.custom[name] = fn
	}
}

// Validator applies field-level validation. The zero value is usable; options
// add custom rule predicates.
type Validator struct {
	custom map[string]CustomRule
}

// New constructs a Validator with the supplied options.
func New(options ...Option) *Validator {
	v := &Validator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}
	return v
}

// Validate checks a configuration against the supplied field list and returns
// every finding. Only the top-level field list participates: nested object
// and array sub-schemas are not recursed into. Fields hidden by showWhen
// conditions are still validated when present.
func (v *Validator) Validate(fields []schema.FieldSchema, config schema.Config) []string {
	var findings []string

	for _, field := range fields {
		value, present := config[field.Name]
		missing := !present || value == nil || value == ""

		if field.Required && missing {
			findings = append(findings, fmt.Sprintf("%s is required", field.DisplayLabel()))
			continue
		}
		if missing {
			continue
		}

		if ok, want := valueKindMatches(field.Type, value); !ok {
			findings = append(findings, fmt.Sprintf("%s must be a %s value", field.DisplayLabel(), want))
			continue
		}

		for _, rule := range field.Validation {
			if !v.ruleHolds(rule, value) {
				findings = append(findings, rule.Message)
			}
		}

		if field.Type == schema.FieldTypeArray {
			findings = append(findings, checkItemBounds(field, value)...)
		}
	}

	return findings
}

func checkItemBounds(field schema.FieldSchema, value any) []string {
	items, ok := asSlice(value)
	if !ok {
		return nil
	}

	var findings []string
	if field.MinItems != nil && len(items) < *field.MinItems {
		findings = append(findings, fmt.Sprintf("%s must contain at least %d items", field.DisplayLabel(), *field.MinItems))
	}
	if field.MaxItems != nil && len(items) > *field.MaxItems {
		findings = append(findings, fmt.Sprintf("%s must contain at most %d items", field.DisplayLabel(), *field.MaxItems))
	}
	return findings
}
