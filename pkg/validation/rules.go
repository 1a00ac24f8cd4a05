package validation

import (
	"net/url"
	"regexp"
	"unicode/utf8"

	"github.com/commercekit/blockforge/pkg/schema"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ruleHolds reports whether the value satisfies a single rule. Rules whose
// expectations cannot apply to the value's runtime type pass vacuously; the
// kind check in Validate already rejected mismatched values, so this only
// guards rules authored against the wrong field kind.
func (v *Validator) ruleHolds(rule schema.ValidationRule, value any) bool {
	switch rule.Kind {
	case schema.RuleMinLength:
		text, ok := value.(string)
		bound, boundOK := asInt(rule.Value)
		if !ok || !boundOK {
			return true
		}
		return utf8.RuneCountInString(text) >= bound

	case schema.RuleMaxLength:
		text, ok := value.(string)
		bound, boundOK := asInt(rule.Value)
		if !ok || !boundOK {
			return true
		}
		return utf8.RuneCountInString(text) <= bound

	case schema.RuleMin:
		number, ok := asFloat(value)
		bound, boundOK := asFloat(rule.Value)
		if !ok || !boundOK {
			return true
		}
		return number >= bound

	case schema.RuleMax:
		number, ok := asFloat(value)
		bound, boundOK := asFloat(rule.Value)
		if !ok || !boundOK {
			return true
		}
		return number <= bound

	case schema.RulePattern:
		text, ok := value.(string)
		expr, exprOK := rule.Value.(string)
		if !ok || !exprOK {
			return true
		}
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return true
		}
		return pattern.MatchString(text)

	case schema.RuleEmail:
		text, ok := value.(string)
		if !ok {
			return true
		}
		return emailPattern.MatchString(text)

	case schema.RuleURL:
		text, ok := value.(string)
		if !ok {
			return true
		}
		parsed, err := url.Parse(text)
		return err == nil && parsed.Scheme != "" && parsed.Host != ""

	case schema.RuleRequired:
		return value != nil && value != ""

	case schema.RuleCustom:
		name, ok := rule.Value.(string)
		if !ok {
			return true
		}
		fn, registered := v.custom[name]
		if !registered {
			return true
		}
		return fn(value)

	default:
		return true
	}
}

// valueKindMatches checks a runtime value against the field kind before any
// rules run. A mismatch is reported as its own finding instead of silently
// skipping the field's rules.
func valueKindMatches(kind schema.FieldType, value any) (bool, string) {
	switch kind {
	case schema.FieldTypeString, schema.FieldTypeSelect, schema.FieldTypeColor,
		schema.FieldTypeMedia, schema.FieldTypeRichText, schema.FieldTypeCode,
		schema.FieldTypeDateTime, schema.FieldTypeURL, schema.FieldTypeIcon,
		schema.FieldTypeProduct, schema.FieldTypeCategory, schema.FieldTypeCollection:
		_, ok := value.(string)
		return ok, "text"
	case schema.FieldTypeNumber:
		_, ok := asFloat(value)
		return ok, "numeric"
	case schema.FieldTypeBoolean:
		_, ok := value.(bool)
		return ok, "boolean"
	case schema.FieldTypeMultiSelect, schema.FieldTypeArray:
		_, ok := asSlice(value)
		return ok, "list"
	case schema.FieldTypeObject:
		_, ok := value.(map[string]any)
		return ok, "object"
	default:
		// Raw JSON fields accept anything.
		return true, ""
	}
}

func asFloat(value any) (float64, bool) {
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
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asInt(value any) (int, bool) {
	number, ok := asFloat(value)
	if !ok {
		return 0, false
	}
	return int(number), true
}

func asSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	default:
		return nil, false
	}
}
