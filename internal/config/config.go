// Package config loads the viewer configuration: a user YAML document
// deep-merged onto the bundled base document, then decoded into typed
// fields. The merged tree is structural, not schema-validated: unknown
// keys pass through untouched and stay available in Raw.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sampleview/internal/cfgtree"
	"sampleview/internal/layout"
)

// ErrBadConfig means the configuration has an invalid shape or is missing
// a required field.
var ErrBadConfig = errors.New("invalid configuration")

//go:embed base.yaml
var baseYAML []byte

// Config is the decoded viewer configuration. It is loaded once at launch
// and treated as immutable for the process lifetime.
type Config struct {
	AppTitle                   string
	ResultsFolder              string
	FilterResultsByExistanceOf string
	ThumbnailPath              string // literal path or resolver expression
	PageLimit                  int
	Layout                     []*layout.Node
	LaunchOptions              map[string]any // passed opaquely to the UI
	Raw                        map[string]any // full merged tree, unknown keys included
}

// Load reads the user config at path, merges it onto the bundled base,
// and decodes the known top-level keys. Config errors here are startup
// failures; there is no partial load.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	base, err := parseYAMLMap(baseYAML, "base config")
	if err != nil {
		return nil, err
	}
	var user any
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrBadConfig, path, err)
	}
	stripToolKeys(user)

	merged, err := MergeTree(base, user)
	if err != nil {
		return nil, err
	}
	return decode(merged)
}

func decode(merged map[string]any) (*Config, error) {
	cfg := &Config{
		AppTitle:                   cfgtree.GetStringOr(merged, "app_title", "Samples viewer"),
		ResultsFolder:              cfgtree.GetString(merged, "results_folder"),
		FilterResultsByExistanceOf: cfgtree.GetString(merged, "filter_results_by_existance_of"),
		PageLimit:                  cfgtree.GetInt(merged, "page_limit", 10),
		Raw:                        merged,
	}
	if cfg.ResultsFolder == "" {
		return nil, fmt.Errorf("%w: results_folder is required", ErrBadConfig)
	}

	thumb, err := decodeThumbnail(merged["thumbnail_path"])
	if err != nil {
		return nil, err
	}
	cfg.ThumbnailPath = thumb

	if rawLayout, ok := merged["layout"]; ok {
		nodes, err := layout.ParseTree(rawLayout)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
		}
		cfg.Layout = nodes
	}

	if opts, ok := cfgtree.GetMap(merged, "launch_options"); ok {
		cfg.LaunchOptions = opts
	} else {
		cfg.LaunchOptions = map[string]any{}
	}
	return cfg, nil
}

// decodeThumbnail accepts a literal path, a resolver expression, or the
// mapping form {first_path_exists: [...]}, which is normalized into the
// expression syntax.
func decodeThumbnail(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case map[string]any:
		candidates, ok := cfgtree.GetSeq(v, "first_path_exists")
		if !ok {
			return "", fmt.Errorf("%w: thumbnail_path mapping must hold first_path_exists", ErrBadConfig)
		}
		parts := make([]string, 0, len(candidates))
		for _, c := range candidates {
			s, ok := c.(string)
			if !ok || s == "" {
				return "", fmt.Errorf("%w: thumbnail_path candidates must be non-empty strings", ErrBadConfig)
			}
			parts = append(parts, s)
		}
		if len(parts) == 0 {
			return "", fmt.Errorf("%w: thumbnail_path has no candidates", ErrBadConfig)
		}
		return "${first_path_exists:" + strings.Join(parts, ",") + "}", nil
	default:
		return "", fmt.Errorf("%w: thumbnail_path must be a string or mapping, got %T", ErrBadConfig, raw)
	}
}

func parseYAMLMap(data []byte, what string) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrBadConfig, what, err)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s root must be a mapping, got %T", ErrBadConfig, what, raw)
	}
	return m, nil
}

// stripToolKeys drops composition-framework keys sometimes copied over
// from training configs; they are meaningless to the viewer.
func stripToolKeys(raw any) {
	m, ok := raw.(map[string]any)
	if !ok {
		return
	}
	delete(m, "defaults")
	delete(m, "hydra")
}
