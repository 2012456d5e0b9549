package valuation

import "sort"

// FieldType identifies the expected JSON type of an input field.
type FieldType string

const (
	FieldNumber FieldType = "number"
	FieldString FieldType = "string"
)

// FieldSchema declares the validation rules for a single required input
// field. Min/Max are optional bounds; nil means unbounded on that side.
type FieldSchema struct {
	Type        FieldType `json:"type"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	Optional    bool      `json:"optional,omitempty"`
	Default     float64   `json:"default,omitempty"`
	Description string    `json:"description"`
}

func floatPtr(f float64) *float64 { return &f }

// ValidateAgainstSchema is the single validation routine shared by all
// stage models. For every declared field it checks, in order:
// presence -> type -> min -> max, short-circuiting on the first failure.
// Optional fields are skipped when absent; when present they go through
// the same type and bound checks.
func ValidateAgainstSchema(inputs map[string]interface{}, schema map[string]FieldSchema) bool {
	for name, rules := range schema {
		raw, ok := inputs[name]
		if !ok {
			if rules.Optional {
				continue
			}
			return false
		}

		switch rules.Type {
		case FieldString:
			if _, ok := raw.(string); !ok {
				return false
			}
			// String fields carry no numeric bounds.
		case FieldNumber:
			v, ok := toFloat(raw)
			if !ok {
				return false
			}
			if rules.Min != nil && v < *rules.Min {
				return false
			}
			if rules.Max != nil && v > *rules.Max {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// toFloat coerces the numeric types a JSON decoder or a direct Go caller
// can hand us. Booleans and strings are deliberately not numbers.
func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
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

// numField extracts a numeric field after validation has passed.
func numField(inputs map[string]interface{}, name string) float64 {
	v, _ := toFloat(inputs[name])
	return v
}

// numFieldDefault extracts an optional numeric field, substituting the
// schema default when absent.
func numFieldDefault(inputs map[string]interface{}, name string, def float64) float64 {
	raw, ok := inputs[name]
	if !ok {
		return def
	}
	v, _ := toFloat(raw)
	return v
}

// fieldNames returns the schema's field names in sorted order, for stable
// error messages.
func fieldNames(schema map[string]FieldSchema) []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
