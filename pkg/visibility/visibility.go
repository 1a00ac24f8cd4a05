// Package visibility evaluates showWhen conditions against a block
// configuration. Only rendering surfaces consult it: validation deliberately
// ignores visibility, so a hidden field whose value is present is still
// validated.
package visibility

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/commercekit/blockforge/pkg/schema"
)

// Visible reports whether a field gated by the supplied conditions should be
// shown for the given values. All conditions must hold; an empty condition
// list is always visible. Unknown operators evaluate to false so a typo in
// authored data hides the field instead of silently showing it.
func Visible(conditions []schema.Condition, values map[string]any) bool {
	for _, condition := range conditions {
		if !holds(condition, values) {
			return false
		}
	}
	return true
}

func holds(condition schema.Condition, values map[string]any) bool {
	value, _ := lookup(values, condition.Field)

	switch condition.Operator {
	case schema.OperatorEquals:
		return looseEqual(value, condition.Value)
	case schema.OperatorNotEquals:
		return !looseEqual(value, condition.Value)
	case schema.OperatorIn:
		return containsValue(condition.Value, value)
	case schema.OperatorNotIn:
		return !containsValue(condition.Value, value)
	case schema.OperatorContains:
		return containsValue(value, condition.Value)
	case schema.OperatorGreaterThan:
		left, leftOK := toNumber(value)
		right, rightOK := toNumber(condition.Value)
		return leftOK && rightOK && left > right
	case schema.OperatorLessThan:
		left, leftOK := toNumber(value)
		right, rightOK := toNumber(condition.Value)
		return leftOK && rightOK && left < right
	case schema.OperatorIsEmpty:
		return isEmpty(value)
	case schema.OperatorIsNotEmpty:
		return !isEmpty(value)
	default:
		return false
	}
}

// lookup resolves a field reference against the values map. Flattened dotted
// keys win over nested traversal so "cta.headline" can be stored either way.
func lookup(values map[string]any, path string) (any, bool) {
	if values == nil || path == "" {
		return nil, false
	}
	if value, ok := values[path]; ok {
		return value, true
	}

	segments := strings.Split(path, ".")
	var current any = values
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

func containsValue(haystack, needle any) bool {
	switch items := haystack.(type) {
	case []any:
		for _, item := range items {
			if looseEqual(item, needle) {
				return true
			}
		}
	case []string:
		for _, item := range items {
			if looseEqual(item, needle) {
				return true
			}
		}
	case string:
		if text, ok := needle.(string); ok {
			return strings.Contains(items, text)
		}
	}
	return false
}

// looseEqual compares scalars the way authored conditions expect: numbers
// compare numerically regardless of Go type, booleans match their string
// forms, everything else falls back to string comparison.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if left, ok := toNumber(a); ok {
		if right, ok := toNumber(b); ok {
			return left == right
		}
	}
	if left, ok := a.(bool); ok {
		switch right := b.(type) {
		case bool:
			return left == right
		case string:
			parsed, err := strconv.ParseBool(right)
			return err == nil && left == parsed
		}
	}
	if right, ok := b.(bool); ok {
		if text, ok := a.(string); ok {
			parsed, err := strconv.ParseBool(text)
			return err == nil && parsed == right
		}
	}
	return stringify(a) == stringify(b)
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
