// Package layout models the declared UI layout tree and resolves it, per
// sample folder, into a concrete render tree. Nodes are a closed set of
// kinds: containers (Row, Column) own child components, leaves own a
// value that resolves to an artifact path or loaded file content.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"sampleview/internal/cfgtree"
)

// ErrBadLayout means the layout tree in the config has an invalid shape.
var ErrBadLayout = errors.New("invalid layout")

// Kind is the closed enumeration of layout node kinds. The mapping from
// kind to a concrete widget is owned by the presentation layer.
type Kind int

const (
	KindRow Kind = iota
	KindColumn
	KindImage
	KindMarkdown
	KindModel3D
	KindText
	KindJSON
	KindTable
	KindPlot
)

var kindNames = map[string]Kind{
	"Row":      KindRow,
	"Column":   KindColumn,
	"Image":    KindImage,
	"Markdown": KindMarkdown,
	"Model3D":  KindModel3D,
	"Text":     KindText,
	"JSON":     KindJSON,
	"Table":    KindTable,
	"Plot":     KindPlot,
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "Unknown"
}

// Container reports whether the kind owns child components.
func (k Kind) Container() bool {
	return k == KindRow || k == KindColumn
}

// Inline reports whether the kind accepts literal inline content when its
// value does not name an existing file (Markdown and Text captions may be
// authored directly in the config).
func (k Kind) Inline() bool {
	return k == KindMarkdown || k == KindText
}

// ValueSpec is a structured value field requesting loaded (and optionally
// indexed) file content instead of a bare path.
type ValueSpec struct {
	LoadContents bool
	LoadPath     string
	Indices      []any
}

// Node is one authored layout tree node. Containers carry Children and no
// Value; leaves carry Value (or Spec) and no Children.
type Node struct {
	Kind     Kind
	Label    string
	Scale    float64
	Value    string     // literal path, inline content, or resolver expression
	Spec     *ValueSpec // set when the value field is a structured spec
	Children []*Node
	Extra    map[string]any // unrecognized attributes, passed through untouched
}

// ParseTree decodes the generic config tree under the layout key into
// typed nodes. raw must be a sequence of node mappings.
func ParseTree(raw any) ([]*Node, error) {
	seq, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: layout must be a sequence, got %T", ErrBadLayout, raw)
	}
	return parseNodes(seq, "layout")
}

func parseNodes(seq []any, at string) ([]*Node, error) {
	nodes := make([]*Node, 0, len(seq))
	for i, item := range seq {
		node, err := parseNode(item, fmt.Sprintf("%s[%d]", at, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func parseNode(raw any, at string) (*Node, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a mapping, got %T", ErrBadLayout, at, raw)
	}
	typeName := cfgtree.GetString(m, "type")
	if typeName == "" {
		return nil, fmt.Errorf("%w: %s has no type", ErrBadLayout, at)
	}
	kind, ok := kindNames[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %s has unknown type %q", ErrBadLayout, at, typeName)
	}

	node := &Node{Kind: kind, Label: cfgtree.GetString(m, "label")}
	if scale, ok := cfgtree.ToFloat(m["scale"]); ok {
		node.Scale = scale
	}

	_, hasValue := m["value"]
	_, hasChildren := m["components"]
	if kind.Container() {
		if hasValue {
			return nil, fmt.Errorf("%w: %s is a %s and must not carry value", ErrBadLayout, at, typeName)
		}
		children, ok := cfgtree.GetSeq(m, "components")
		if !ok {
			return nil, fmt.Errorf("%w: %s is a %s and requires components", ErrBadLayout, at, typeName)
		}
		parsed, err := parseNodes(children, at+".components")
		if err != nil {
			return nil, err
		}
		node.Children = parsed
	} else {
		if hasChildren {
			return nil, fmt.Errorf("%w: %s is a %s and must not carry components", ErrBadLayout, at, typeName)
		}
		if hasValue {
			if err := parseValue(node, m["value"], at); err != nil {
				return nil, err
			}
		}
	}

	for key, val := range m {
		switch key {
		case "type", "label", "scale", "value", "components":
		default:
			if node.Extra == nil {
				node.Extra = make(map[string]any)
			}
			node.Extra[key] = val
		}
	}
	return node, nil
}

// parseValue decodes a leaf's value field: a string (path, inline content,
// or resolver expression), a structured value spec mapping, or the
// mapping form of first_path_exists which is normalized into the
// expression syntax.
func parseValue(node *Node, raw any, at string) error {
	switch v := raw.(type) {
	case string:
		node.Value = v
		return nil
	case map[string]any:
		if candidates, ok := cfgtree.GetSeq(v, "first_path_exists"); ok {
			expr, err := candidatesToExpr(candidates, at)
			if err != nil {
				return err
			}
			node.Value = expr
			return nil
		}
		spec := &ValueSpec{LoadContents: cfgtree.GetBool(v, "load_contents")}
		spec.LoadPath = cfgtree.GetString(v, "load_path")
		if spec.LoadPath == "" {
			return fmt.Errorf("%w: %s value spec requires load_path", ErrBadLayout, at)
		}
		if indices, ok := cfgtree.GetSeq(v, "indices"); ok {
			spec.Indices = indices
		}
		node.Spec = spec
		return nil
	default:
		return fmt.Errorf("%w: %s value must be a string or mapping, got %T", ErrBadLayout, at, raw)
	}
}

func candidatesToExpr(candidates []any, at string) (string, error) {
	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		s, ok := c.(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%w: %s first_path_exists candidates must be non-empty strings", ErrBadLayout, at)
		}
		parts = append(parts, s)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: %s first_path_exists requires candidates", ErrBadLayout, at)
	}
	return "${first_path_exists:" + strings.Join(parts, ",") + "}", nil
}
