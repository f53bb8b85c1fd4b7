package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/ohler55/ojg/oj"

	"sampleview/internal/layout"
	"sampleview/internal/loader"
)

// TreeRenderer turns one resolved render tree into terminal output.
// The kind-to-presentation mapping lives entirely here; the engine stays
// toolkit-agnostic.
type TreeRenderer struct {
	width    int
	markdown *glamour.TermRenderer
}

// NewTreeRenderer creates a renderer for the given terminal width.
func NewTreeRenderer(width int) *TreeRenderer {
	if width <= 0 {
		width = 80
	}
	md, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	return &TreeRenderer{width: width, markdown: md}
}

// Render renders the root node sequence vertically.
func (r *TreeRenderer) Render(nodes []*layout.Resolved) string {
	return r.renderColumn(nodes, r.width)
}

func (r *TreeRenderer) renderColumn(nodes []*layout.Resolved, width int) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		parts = append(parts, r.renderNode(node, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderRow lays children out side by side, splitting width by their
// scale weights (unscaled children weigh 1).
func (r *TreeRenderer) renderRow(nodes []*layout.Resolved, width int) string {
	if len(nodes) == 0 {
		return ""
	}
	total := 0.0
	for _, node := range nodes {
		total += weightOf(node)
	}
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		w := int(float64(width) * weightOf(node) / total)
		if w < 10 {
			w = 10
		}
		parts = append(parts, lipgloss.NewStyle().Width(w).Render(r.renderNode(node, w)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func weightOf(node *layout.Resolved) float64 {
	if node.Scale > 0 {
		return node.Scale
	}
	return 1
}

func (r *TreeRenderer) renderNode(node *layout.Resolved, width int) string {
	switch node.Kind {
	case layout.KindRow:
		return r.renderRow(node.Children, width)
	case layout.KindColumn:
		return r.renderColumn(node.Children, width)
	}
	return r.renderLeaf(node, width)
}

func (r *TreeRenderer) renderLeaf(node *layout.Resolved, width int) string {
	var body string
	switch {
	case node.Err != nil:
		body = Styles.Placeholder.Render("⚠ missing: " + shortError(node.Err))
	default:
		body = r.renderValue(node)
	}
	if node.Label != "" {
		body = Styles.NodeLabel.Render(node.Label) + "\n" + body
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(body)
}

func (r *TreeRenderer) renderValue(node *layout.Resolved) string {
	switch v := node.Value.(type) {
	case nil:
		return ""
	case string:
		switch node.Kind {
		case layout.KindMarkdown:
			if r.markdown != nil {
				if out, err := r.markdown.Render(v); err == nil {
					return strings.TrimRight(out, "\n")
				}
			}
			return v
		case layout.KindImage, layout.KindModel3D, layout.KindPlot:
			// Artifact leaves surface their concrete path; the terminal
			// cannot decode the media itself.
			return Styles.PathValue.Render(fmt.Sprintf("[%s] %s", node.Kind, v))
		default:
			return Styles.PathValue.Render(strings.TrimRight(v, "\n"))
		}
	case *loader.Table:
		return renderTable(v)
	case *loader.Column:
		return strings.TrimRight(v.String(), "\n")
	case map[string]any, []any:
		return strings.TrimRight(oj.JSON(v, 2), "\n")
	default:
		return Styles.PathValue.Render(fmt.Sprintf("%v", v))
	}
}

// renderTable lays a loaded table out as aligned rows.
func renderTable(t *loader.Table) string {
	cols := t.Columns()
	var b strings.Builder
	b.WriteString(strings.Join(append([]string{""}, cols...), "\t"))
	for i, label := range t.Labels() {
		b.WriteString("\n" + label)
		for _, col := range cols {
			cell, err := t.Cell(col, i)
			if err != nil {
				cell = "?"
			}
			b.WriteString("\t" + cell)
		}
	}
	return b.String()
}

func shortError(err error) string {
	s := err.Error()
	if i := strings.LastIndex(s, ": "); i >= 0 && i+2 < len(s) {
		return s[i+2:]
	}
	return s
}
