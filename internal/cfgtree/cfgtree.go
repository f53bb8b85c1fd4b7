// Package cfgtree provides helpers for navigating the generic value tree
// produced by unmarshaling YAML into interface{}: type-checked accessors
// and string conversion for scalars.
package cfgtree

import (
	"fmt"
)

// GetString extracts a string value from a mapping.
// Returns empty string if the key is absent or not a string.
func GetString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// GetStringOr extracts a string value from a mapping with a default
// when the key is absent or not a string.
func GetStringOr(m map[string]any, key string, defaultValue string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return defaultValue
}

// GetBool extracts a bool value from a mapping.
// Returns false if the key is absent or not a bool.
func GetBool(m map[string]any, key string) bool {
	if val, ok := m[key].(bool); ok {
		return val
	}
	return false
}

// GetInt extracts an integer from a mapping. YAML decodes integers as int,
// but JSON-sourced trees carry float64, so both are accepted.
func GetInt(m map[string]any, key string, defaultValue int) int {
	switch val := m[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	}
	return defaultValue
}

// GetMap extracts a nested mapping. Returns nil, false if the key is
// absent or holds a different shape.
func GetMap(m map[string]any, key string) (map[string]any, bool) {
	val, ok := m[key].(map[string]any)
	return val, ok
}

// GetSeq extracts a sequence. Returns nil, false if the key is absent or
// holds a different shape.
func GetSeq(m map[string]any, key string) ([]any, bool) {
	val, ok := m[key].([]any)
	return val, ok
}

// ToFloat converts a scalar to float64 where possible.
func ToFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	}
	return 0, false
}

// ToString converts a scalar tree value to a display string.
// Whole floats are formatted without a fractional part.
func ToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
