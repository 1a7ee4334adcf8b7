package extraction

import (
	"strconv"
	"strings"
)

// Helpers for reading loosely-typed generator maps. Generators interchange
// numbers, numeric strings and scalars-for-lists freely; everything past this
// package works with the coerced forms only.

// String returns v as a trimmed string, or "" for anything that is not a string.
func String(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// Float coerces v to a float64. Numeric strings are parsed; anything else
// yields 0.
func Float(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Strings coerces v to a list of strings. A bare string is promoted to a
// single-element list; non-string elements of a list are dropped.
func Strings(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{val}
	default:
		return nil
	}
}

// stringField resolves a value across aliased field names, returning the
// first non-empty string.
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := String(m[key]); s != "" {
			return s
		}
	}
	return ""
}

// floatField resolves a numeric value across aliased field names, returning
// the first present key's coerced value.
func floatField(m map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return Float(v)
		}
	}
	return 0
}
