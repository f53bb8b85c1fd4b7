package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - selected items, borders
	ColorDanger    = "196" // Red - failed nodes, errors
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title       lipgloss.Style // Bold accent - main titles
	NodeLabel   lipgloss.Style // Leaf labels
	PathValue   lipgloss.Style // Resolved artifact paths
	Placeholder lipgloss.Style // Failed-node placeholder
	Box         lipgloss.Style // Bordered content box
	Selected    lipgloss.Style // Selected list items
	Muted       lipgloss.Style // Dimmed text
	Hint        lipgloss.Style // Key hints
	Failure     lipgloss.Style // Collected failure lines
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	NodeLabel: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	PathValue: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Placeholder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Italic(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Failure: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}

// NewSampleListDelegate returns a list delegate with compact spacing and
// shared styles for the sample browser.
func NewSampleListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Muted
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
