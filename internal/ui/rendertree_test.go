package ui

import (
	"errors"
	"strings"
	"testing"

	"sampleview/internal/layout"
)

func TestTreeRenderer_PreservesOrder(t *testing.T) {
	tree := []*layout.Resolved{{
		Kind: layout.KindRow,
		Children: []*layout.Resolved{
			{Kind: layout.KindText, Value: "alpha"},
			{Kind: layout.KindText, Value: "omega"},
		},
	}}

	out := NewTreeRenderer(80).Render(tree)
	first := strings.Index(out, "alpha")
	second := strings.Index(out, "omega")
	if first < 0 || second < 0 {
		t.Fatalf("values missing from output:\n%s", out)
	}
	if first > second {
		t.Error("declared order not preserved in row rendering")
	}
}

func TestTreeRenderer_FailedNodePlaceholder(t *testing.T) {
	tree := []*layout.Resolved{
		{Kind: layout.KindImage, Err: errors.New("render.png: no candidate path exists")},
		{Kind: layout.KindText, Value: "still here"},
	}

	out := NewTreeRenderer(80).Render(tree)
	if !strings.Contains(out, "missing") {
		t.Errorf("no placeholder marker for failed node:\n%s", out)
	}
	if !strings.Contains(out, "still here") {
		t.Errorf("valid sibling not rendered:\n%s", out)
	}
}

func TestTreeRenderer_ArtifactPathsLabeled(t *testing.T) {
	tree := []*layout.Resolved{
		{Kind: layout.KindImage, Label: "Render", Value: "/r/s1/render.png"},
		{Kind: layout.KindModel3D, Value: "/r/s1/mesh.glb"},
	}

	out := NewTreeRenderer(80).Render(tree)
	for _, want := range []string{"Render", "/r/s1/render.png", "[Model3D]", "/r/s1/mesh.glb"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTreeRenderer_StructuredValues(t *testing.T) {
	tree := []*layout.Resolved{
		{Kind: layout.KindJSON, Value: map[string]any{"human_action": "waving"}},
		{Kind: layout.KindText, Value: 0.91},
	}

	out := NewTreeRenderer(80).Render(tree)
	if !strings.Contains(out, "human_action") || !strings.Contains(out, "waving") {
		t.Errorf("mapping value not rendered:\n%s", out)
	}
	if !strings.Contains(out, "0.91") {
		t.Errorf("numeric value not rendered:\n%s", out)
	}
}

func TestTreeRenderer_Markdown(t *testing.T) {
	tree := []*layout.Resolved{{Kind: layout.KindMarkdown, Value: "# Heading"}}

	out := NewTreeRenderer(80).Render(tree)
	if !strings.Contains(out, "Heading") {
		t.Errorf("markdown content not rendered:\n%s", out)
	}
}
