package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampleview/internal/layout"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
results_folder: /data/results
filter_results_by_existance_of: done.json
thumbnail_path: preview.png
layout:
  - type: Row
    components:
      - type: Image
        value: render.png
      - type: Markdown
        value: "## Sample"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Defaults come from the bundled base document.
	assert.Equal(t, "Samples viewer", cfg.AppTitle)
	assert.Equal(t, 10, cfg.PageLimit)
	assert.Equal(t, true, cfg.LaunchOptions["alt_screen"])

	assert.Equal(t, "/data/results", cfg.ResultsFolder)
	assert.Equal(t, "done.json", cfg.FilterResultsByExistanceOf)
	assert.Equal(t, "preview.png", cfg.ThumbnailPath)
	require.Len(t, cfg.Layout, 1)
	assert.Equal(t, layout.KindRow, cfg.Layout[0].Kind)
	assert.Len(t, cfg.Layout[0].Children, 2)
}

func TestLoad_OverridesBase(t *testing.T) {
	path := writeConfig(t, `
app_title: HOI renders
results_folder: /data/results
page_limit: 25
launch_options:
  mouse: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "HOI renders", cfg.AppTitle)
	assert.Equal(t, 25, cfg.PageLimit)
	// launch_options merges key-by-key: alt_screen kept from base.
	assert.Equal(t, true, cfg.LaunchOptions["alt_screen"])
	assert.Equal(t, true, cfg.LaunchOptions["mouse"])
}

func TestLoad_UnknownKeysPassThrough(t *testing.T) {
	path := writeConfig(t, `
results_folder: /data/results
experiment_tag: run-42
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "run-42", cfg.Raw["experiment_tag"])
}

func TestLoad_ThumbnailMappingForm(t *testing.T) {
	path := writeConfig(t, `
results_folder: /data/results
thumbnail_path:
  first_path_exists: [best.png, render/frame0.png]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "${first_path_exists:best.png,render/frame0.png}", cfg.ThumbnailPath)
}

func TestLoad_StripsToolKeys(t *testing.T) {
	path := writeConfig(t, `
results_folder: /data/results
defaults: [base]
hydra:
  run:
    dir: .
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotContains(t, cfg.Raw, "defaults")
	assert.NotContains(t, cfg.Raw, "hydra")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing results_folder", `app_title: x`},
		{"root not a mapping", `[a, b]`},
		{"bad layout shape", "results_folder: /r\nlayout:\n  - type: Row"},
		{"bad thumbnail shape", "results_folder: /r\nthumbnail_path: [a.png]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.doc))
			assert.ErrorIs(t, err, ErrBadConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadConfig)
}
