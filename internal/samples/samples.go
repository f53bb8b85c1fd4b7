// Package samples enumerates the sample folders under a results folder
// and resolves per-sample thumbnail paths.
package samples

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sampleview/internal/resolver"
)

// Sample is one results directory, the unit the viewer iterates over.
type Sample struct {
	Name string
	Dir  string
}

// List returns the immediate subdirectories of resultsFolder, sorted by
// name for deterministic ordering. When marker is non-empty, only
// directories where <dir>/<marker> exists are kept. An empty result is
// not an error; a missing or unreadable results folder is.
func List(resultsFolder, marker string) ([]Sample, error) {
	entries, err := os.ReadDir(resultsFolder)
	if err != nil {
		return nil, fmt.Errorf("list results folder %s: %w", resultsFolder, err)
	}
	var out []Sample
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir := filepath.Join(resultsFolder, e.Name())
		if marker != "" {
			if _, err := os.Stat(filepath.Join(dir, marker)); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("check marker in %s: %w", dir, err)
			}
		}
		out = append(out, Sample{Name: e.Name(), Dir: dir})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Thumbnail resolves the configured thumbnail expression for one sample.
// expr may be a literal path or a resolver expression; an empty expr
// yields an empty path and no error.
func Thumbnail(s Sample, expr string) (string, error) {
	if expr == "" {
		return "", nil
	}
	return resolver.ResolvePath(expr, s.Dir)
}
