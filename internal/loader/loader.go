// Package loader reads structured artifact files and extracts terminal
// values from them. Loading dispatches on file extension; extraction
// descends an ordered list of keys/indices into the loaded structure.
// The loader is read-only and idempotent: it never writes to the source
// file, and equal inputs yield equal values while the file is unchanged.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/oj"
)

// Sentinel errors for structured loading. Callers match with errors.Is.
var (
	// ErrUnsupportedFormat means the file extension has no registered loader.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrKeyMissing means an index did not select anything in the loaded value.
	ErrKeyMissing = errors.New("key or index missing")
)

// Load reads the file at path and parses it per its extension:
// .json into a generic mapping/sequence tree, .csv into a *Table with the
// first column as the row-label index, .txt and .md as raw text.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		v, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return v, nil
	case ".csv":
		return parseTable(data)
	case ".txt", ".md":
		return string(data), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadValue loads path and descends through indices left to right.
// An empty indices list returns the whole loaded structure.
//
// Mappings are indexed by string key. Sequences are indexed by integer
// position. Tables are indexed column-first: the first index selects a
// column by header name or position, an optional second index selects a
// row within that column by label or position.
func LoadValue(path string, indices []any) (any, error) {
	value, err := Load(path)
	if err != nil {
		return nil, err
	}
	for _, idx := range indices {
		value, err = descend(value, idx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return value, nil
}

// descend applies one index to a loaded value.
func descend(value any, idx any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		key, ok := idx.(string)
		if !ok {
			return nil, fmt.Errorf("%w: mapping index %v is not a string key", ErrKeyMissing, idx)
		}
		child, ok := v[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyMissing, key)
		}
		return child, nil
	case []any:
		pos, ok := toIndex(idx)
		if !ok || pos < 0 || pos >= len(v) {
			return nil, fmt.Errorf("%w: sequence index %v out of range (len %d)", ErrKeyMissing, idx, len(v))
		}
		return v[pos], nil
	case *Table:
		return v.Col(idx)
	case *Column:
		return v.Row(idx)
	default:
		return nil, fmt.Errorf("%w: cannot index into %T with %v", ErrKeyMissing, value, idx)
	}
}

// toIndex converts an index value to an int position. YAML-sourced indices
// arrive as int, JSON-sourced as int64 or float64.
func toIndex(idx any) (int, bool) {
	switch n := idx.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
