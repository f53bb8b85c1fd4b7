package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"sampleview/internal/layout"
	"sampleview/internal/samples"
)

// DetailView shows one sample's resolved render tree in a scrollable
// viewport, with collected resolution failures in a footer.
type DetailView struct {
	Sample   samples.Sample
	Resolved []*layout.Resolved
	Failures []error
	Strict   bool

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

var _ View = (*DetailView)(nil)

// NewDetailView creates a detail view; content arrives via SetResolved.
func NewDetailView(sample samples.Sample) *DetailView {
	return &DetailView{Sample: sample}
}

// SetResolved installs a freshly resolved tree and refreshes the viewport.
// The previous tree is discarded; render trees are transient per
// selection event.
func (d *DetailView) SetResolved(resolved []*layout.Resolved, failures []error) {
	d.Resolved = resolved
	d.Failures = failures
	d.refresh()
}

// Init implements View.
func (d *DetailView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		d.width = msg.Width
		d.height = msg.Height
		vpHeight := msg.Height - 6 // header, hint, footer rows
		if vpHeight < 4 {
			vpHeight = 4
		}
		if !d.ready {
			d.viewport = viewport.New(msg.Width, vpHeight)
			d.ready = true
		} else {
			d.viewport.Width = msg.Width
			d.viewport.Height = vpHeight
		}
		d.refresh()
		return d, nil
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DetailView) View() string {
	if !d.ready {
		d.viewport = viewport.New(80, 20)
		d.ready = true
		d.refresh()
	}

	var b strings.Builder
	mode := ""
	if d.Strict {
		mode = "  [strict]"
	}
	b.WriteString(Styles.Title.Render(d.Sample.Name) + Styles.Muted.Render(mode) + "\n")
	b.WriteString(Styles.Hint.Render("esc: back  r: re-resolve  s: strict  !: shell  q: quit") + "\n")
	b.WriteString(d.viewport.View())
	if len(d.Failures) > 0 {
		b.WriteString("\n" + Styles.Failure.Render(fmt.Sprintf("%d node(s) failed to resolve:", len(d.Failures))))
		for _, f := range d.Failures {
			b.WriteString("\n" + Styles.Failure.Render("  "+f.Error()))
		}
	}
	return b.String()
}

func (d *DetailView) refresh() {
	if !d.ready {
		return
	}
	width := d.viewport.Width
	if width <= 0 {
		width = 80
	}
	if d.Resolved == nil {
		if d.Strict && len(d.Failures) > 0 {
			d.viewport.SetContent(Styles.Placeholder.Render("strict mode: render aborted"))
		} else {
			d.viewport.SetContent(Styles.Muted.Render("resolving…"))
		}
		return
	}
	d.viewport.SetContent(NewTreeRenderer(width).Render(d.Resolved))
}
