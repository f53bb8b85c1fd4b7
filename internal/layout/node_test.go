package layout

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func parseYAML(t *testing.T, doc string) any {
	t.Helper()
	var raw any
	if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	return raw
}

func TestParseTree(t *testing.T) {
	raw := parseYAML(t, `
- type: Row
  components:
    - type: Image
      label: Render
      value: render.png
      scale: 2
    - type: Column
      components:
        - type: Markdown
          value: "## Caption"
        - type: Model3D
          value: ${first_path_exists:mesh.glb,mesh.obj}
`)
	nodes, err := ParseTree(raw)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("got %d root nodes, want 1", len(nodes))
	}
	row := nodes[0]
	if row.Kind != KindRow || len(row.Children) != 2 {
		t.Fatalf("root = %s with %d children, want Row with 2", row.Kind, len(row.Children))
	}
	img := row.Children[0]
	if img.Kind != KindImage || img.Label != "Render" || img.Value != "render.png" || img.Scale != 2 {
		t.Errorf("image node = %+v", img)
	}
	col := row.Children[1]
	if col.Kind != KindColumn || len(col.Children) != 2 {
		t.Fatalf("column = %s with %d children, want Column with 2", col.Kind, len(col.Children))
	}
	if got := col.Children[1].Value; got != "${first_path_exists:mesh.glb,mesh.obj}" {
		t.Errorf("model value = %q", got)
	}
}

func TestParseTree_ValueSpec(t *testing.T) {
	raw := parseYAML(t, `
- type: Text
  value:
    load_contents: true
    load_path: meta.json
    indices: [human_action]
`)
	nodes, err := ParseTree(raw)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	spec := nodes[0].Spec
	if spec == nil {
		t.Fatal("Spec = nil, want value spec")
	}
	if !spec.LoadContents || spec.LoadPath != "meta.json" {
		t.Errorf("spec = %+v", spec)
	}
	if len(spec.Indices) != 1 || spec.Indices[0] != "human_action" {
		t.Errorf("indices = %v, want [human_action]", spec.Indices)
	}
}

func TestParseTree_FirstPathExistsMapping(t *testing.T) {
	// The mapping form of first_path_exists normalizes to the expression syntax.
	raw := parseYAML(t, `
- type: Image
  value:
    first_path_exists: [a.png, b.png]
`)
	nodes, err := ParseTree(raw)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	if got := nodes[0].Value; got != "${first_path_exists:a.png,b.png}" {
		t.Errorf("normalized value = %q", got)
	}
}

func TestParseTree_ExtraAttributesPassThrough(t *testing.T) {
	raw := parseYAML(t, `
- type: Image
  value: render.png
  height: 400
`)
	nodes, err := ParseTree(raw)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}
	if got := nodes[0].Extra["height"]; got != 400 {
		t.Errorf("Extra[height] = %v, want 400", got)
	}
}

func TestParseTree_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not a sequence", `type: Row`},
		{"node not a mapping", `["Image"]`},
		{"missing type", `[{value: a.png}]`},
		{"unknown type", `[{type: Carousel, value: a.png}]`},
		{"container with value", `[{type: Row, value: a.png, components: []}]`},
		{"container without components", `[{type: Column}]`},
		{"leaf with components", `[{type: Image, components: []}]`},
		{"spec without load_path", `[{type: Text, value: {load_contents: true}}]`},
		{"value wrong shape", `[{type: Image, value: [a.png]}]`},
		{"empty candidates", `[{type: Image, value: {first_path_exists: []}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTree(parseYAML(t, tt.doc))
			if !errors.Is(err, ErrBadLayout) {
				t.Errorf("ParseTree error = %v, want ErrBadLayout", err)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindModel3D.String(); got != "Model3D" {
		t.Errorf("KindModel3D.String() = %q", got)
	}
	if !KindRow.Container() || KindImage.Container() {
		t.Error("Container() misclassifies kinds")
	}
	if !KindMarkdown.Inline() || KindImage.Inline() {
		t.Error("Inline() misclassifies kinds")
	}
}
