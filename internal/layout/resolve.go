package layout

import (
	"fmt"
	"os"

	"sampleview/internal/loader"
	"sampleview/internal/resolver"
)

// Resolved mirrors one layout Node with its value field replaced by a
// concrete, sample-specific value: an absolute artifact path, inline
// content, or loaded file content. A failed node carries Err and renders
// as a placeholder.
type Resolved struct {
	Kind     Kind
	Label    string
	Scale    float64
	Value    any
	Err      error
	Children []*Resolved
}

// NodeError records one leaf resolution failure with its position in the
// tree (e.g. "layout[0].components[2]").
type NodeError struct {
	At  string
	Err error
}

func (e *NodeError) Error() string { return fmt.Sprintf("%s: %v", e.At, e.Err) }
func (e *NodeError) Unwrap() error { return e.Err }

// Options controls resolution behavior.
type Options struct {
	// Strict aborts the whole render on the first node failure instead of
	// producing placeholder nodes.
	Strict bool
}

// Resolve walks the layout tree once for sampleDir and produces the
// render tree. Children resolve in declared order; that order is the
// visual ordering contract. In the default non-strict mode a leaf failure
// does not abort siblings: the node is returned with Err set and the
// failure is collected. Inputs are never mutated, so concurrent Resolve
// calls for different samples are safe.
func Resolve(nodes []*Node, sampleDir string, opts Options) ([]*Resolved, []error) {
	var failures []error
	resolved, err := resolveNodes(nodes, sampleDir, "layout", opts, &failures)
	if err != nil {
		return nil, []error{err}
	}
	return resolved, failures
}

func resolveNodes(nodes []*Node, sampleDir, at string, opts Options, failures *[]error) ([]*Resolved, error) {
	out := make([]*Resolved, 0, len(nodes))
	for i, node := range nodes {
		r, err := resolveNode(node, sampleDir, fmt.Sprintf("%s[%d]", at, i), opts, failures)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func resolveNode(node *Node, sampleDir, at string, opts Options, failures *[]error) (*Resolved, error) {
	r := &Resolved{Kind: node.Kind, Label: node.Label, Scale: node.Scale}

	if node.Kind.Container() {
		children, err := resolveNodes(node.Children, sampleDir, at+".components", opts, failures)
		if err != nil {
			return nil, err
		}
		r.Children = children
		return r, nil
	}

	value, err := resolveLeaf(node, sampleDir)
	if err != nil {
		nodeErr := &NodeError{At: at, Err: err}
		if opts.Strict {
			return nil, nodeErr
		}
		*failures = append(*failures, nodeErr)
		r.Err = nodeErr
		return r, nil
	}
	r.Value = value
	return r, nil
}

// resolveLeaf produces the concrete value for one leaf node.
func resolveLeaf(node *Node, sampleDir string) (any, error) {
	if node.Spec != nil {
		path, err := resolver.ResolvePath(node.Spec.LoadPath, sampleDir)
		if err != nil {
			return nil, err
		}
		if !node.Spec.LoadContents {
			return path, nil
		}
		return loader.LoadValue(path, node.Spec.Indices)
	}

	if node.Value == "" {
		return "", nil
	}
	path, err := resolver.ResolvePath(node.Value, sampleDir)
	if err != nil {
		return nil, err
	}
	if resolver.IsExpr(node.Value) {
		// Resolver functions define their own existence semantics.
		return path, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			// Markdown and Text values double as inline content; a literal
			// that names no file is rendered as-is. Artifact kinds require
			// the file to exist.
			if node.Kind.Inline() {
				return resolver.ExpandSampleName(node.Value, sampleDir), nil
			}
			return nil, fmt.Errorf("%s: %w", path, resolver.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: stat %s: %w", resolver.ErrFilesystem, path, err)
	}
	return path, nil
}
