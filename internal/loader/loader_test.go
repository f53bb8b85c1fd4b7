package loader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValue_JSONKey(t *testing.T) {
	path := writeArtifact(t, "meta.json", `{"human_action": "waving"}`)

	got, err := LoadValue(path, []any{"human_action"})
	require.NoError(t, err)
	assert.Equal(t, "waving", got)
}

func TestLoadValue_JSONMissingKey(t *testing.T) {
	path := writeArtifact(t, "meta.json", `{"human_action": "waving"}`)

	_, err := LoadValue(path, []any{"missing_key"})
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestLoadValue_NestedIndices(t *testing.T) {
	path := writeArtifact(t, "meta.json", `{"scores": {"clip": [0.1, 0.9]}}`)

	got, err := LoadValue(path, []any{"scores", "clip", 1})
	require.NoError(t, err)
	assert.Equal(t, 0.9, got)
}

func TestLoadValue_EmptyIndicesReturnsWhole(t *testing.T) {
	path := writeArtifact(t, "meta.json", `{"a": 1, "b": 2}`)

	got, err := LoadValue(path, nil)
	require.NoError(t, err)
	m, ok := got.(map[string]any)
	require.True(t, ok, "expected mapping, got %T", got)
	assert.Len(t, m, 2)
}

func TestLoadValue_IndexIntoScalar(t *testing.T) {
	path := writeArtifact(t, "meta.json", `{"a": "scalar"}`)

	_, err := LoadValue(path, []any{"a", "deeper"})
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestLoad_Text(t *testing.T) {
	path := writeArtifact(t, "caption.txt", "a person waving\n")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a person waving\n", got)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeArtifact(t, "mesh.glb", "binary")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

const metricsCSV = "metric,clip,fid\nrun_a,0.91,12.3\nrun_b,0.88,14.1\n"

func TestLoadValue_TableColumnThenRow(t *testing.T) {
	path := writeArtifact(t, "metrics.csv", metricsCSV)

	// First index narrows to a column, second to a row.
	got, err := LoadValue(path, []any{"clip", "run_b"})
	require.NoError(t, err)
	assert.Equal(t, "0.88", got)

	// Positional indices work at both levels.
	got, err = LoadValue(path, []any{1, 0})
	require.NoError(t, err)
	assert.Equal(t, "12.3", got)
}

func TestLoadValue_TableColumnOnly(t *testing.T) {
	path := writeArtifact(t, "metrics.csv", metricsCSV)

	got, err := LoadValue(path, []any{"fid"})
	require.NoError(t, err)
	col, ok := got.(*Column)
	require.True(t, ok, "expected *Column, got %T", got)
	assert.Equal(t, []string{"12.3", "14.1"}, col.Values())
}

func TestLoadValue_TableMissingColumnAndRow(t *testing.T) {
	path := writeArtifact(t, "metrics.csv", metricsCSV)

	_, err := LoadValue(path, []any{"nope"})
	assert.ErrorIs(t, err, ErrKeyMissing)

	_, err = LoadValue(path, []any{"clip", "run_z"})
	assert.ErrorIs(t, err, ErrKeyMissing)
}

func TestLoad_TableShape(t *testing.T) {
	path := writeArtifact(t, "metrics.csv", metricsCSV)

	got, err := Load(path)
	require.NoError(t, err)
	table, ok := got.(*Table)
	require.True(t, ok, "expected *Table, got %T", got)
	assert.Equal(t, []string{"clip", "fid"}, table.Columns())
	assert.Equal(t, []string{"run_a", "run_b"}, table.Labels())
	assert.False(t, table.Empty())
}

func TestLoad_TableRaggedRecordRejected(t *testing.T) {
	// A record wider (or narrower) than the header is a parse error, never
	// silent truncation.
	wide := writeArtifact(t, "wide.csv", "metric,clip\nrun_a,0.91,extra\n")
	_, err := Load(wide)
	require.Error(t, err)
	assert.ErrorIs(t, err, csv.ErrFieldCount)

	narrow := writeArtifact(t, "narrow.csv", "metric,clip,fid\nrun_a,0.91\n")
	_, err = Load(narrow)
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestLoadValue_ReadOnlyAndIdempotent(t *testing.T) {
	path := writeArtifact(t, "meta.json", `{"human_action": "waving"}`)
	before, err := os.Stat(path)
	require.NoError(t, err)

	first, err := LoadValue(path, []any{"human_action"})
	require.NoError(t, err)
	second, err := LoadValue(path, []any{"human_action"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
	assert.Equal(t, before.Size(), after.Size())
}
