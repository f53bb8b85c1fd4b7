package config

import (
	"fmt"
)

// Merge deep-merges override onto base and returns a new mapping; neither
// input is mutated. Mapping values merge recursively; every other value
// kind (scalars and sequences alike) is replaced wholesale by the
// override. Sequences are never concatenated. Keys present only in base
// are retained; keys present only in override are added.
func Merge(base, override map[string]any) (map[string]any, error) {
	if override == nil {
		return deepCopy(base), nil
	}
	return mergeMaps(base, override), nil
}

// MergeTree merges an arbitrary override tree onto base. The override
// root must be a mapping; anything else is a config shape error.
func MergeTree(base map[string]any, override any) (map[string]any, error) {
	if override == nil {
		return deepCopy(base), nil
	}
	m, ok := override.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: config root must be a mapping, got %T", ErrBadConfig, override)
	}
	return mergeMaps(base, m), nil
}

func mergeMaps(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = deepCopyValue(v)
	}
	for k, v := range override {
		if bm, ok := out[k].(map[string]any); ok {
			if om, ok := v.(map[string]any); ok {
				out[k] = mergeMaps(bm, om)
				continue
			}
		}
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopy(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopy(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return val
	}
}
