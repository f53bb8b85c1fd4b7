package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"

	"sampleview/internal/samples"
)

// SampleEntry is one sample-list row: the sample plus its resolved
// thumbnail path (empty when no thumbnail is configured or resolvable).
type SampleEntry struct {
	Sample    samples.Sample
	Thumbnail string
}

// sampleItem implements list.Item for SampleEntry.
type sampleItem struct {
	SampleEntry
}

func (s sampleItem) FilterValue() string { return s.Sample.Name }
func (s sampleItem) Title() string       { return s.Sample.Name }
func (s sampleItem) Description() string {
	if s.Thumbnail == "" {
		return "no thumbnail"
	}
	return s.Thumbnail
}

// BrowserView lists all samples under the results folder.
type BrowserView struct {
	list      list.Model
	Entries   []SampleEntry
	title     string
	pageLimit int
}

var _ View = (*BrowserView)(nil)

// NewBrowserView creates the sample browser. pageLimit caps the number of
// visible rows; entries arrive later via SetEntries once listing completes.
func NewBrowserView(title string, pageLimit int) *BrowserView {
	delegate := NewSampleListDelegate()
	delegate.ShowDescription = true
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	return &BrowserView{list: l, title: title, pageLimit: pageLimit}
}

// SetEntries replaces the listed samples.
func (b *BrowserView) SetEntries(entries []SampleEntry) {
	b.Entries = entries
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = sampleItem{SampleEntry: e}
	}
	b.list.SetItems(items)
}

// Selected returns the index of the cursor row.
func (b *BrowserView) Selected() int {
	return b.list.Index()
}

// Init implements View.
func (b *BrowserView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (b *BrowserView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		b.list.SetWidth(msg.Width)
		height := msg.Height - 4 // header and hint rows
		if b.pageLimit > 0 {
			// Two rows per item: name and thumbnail line.
			if limit := b.pageLimit * 2; height > limit {
				height = limit
			}
		}
		b.list.SetHeight(height)
		return b, nil
	}

	// list.Model handles j/k/g/G navigation natively; enter is handled at
	// the application level.
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

// View implements View.
func (b *BrowserView) View() string {
	if b.list.Width() == 0 {
		b.list.SetWidth(80)
	}
	if b.list.Height() == 0 {
		b.list.SetHeight(20)
	}

	var sb strings.Builder
	sb.WriteString(Styles.Title.Render(fmt.Sprintf("%s (%d samples)", b.title, len(b.Entries))) + "\n")
	sb.WriteString(Styles.Hint.Render("enter: open  r: rescan  SPC: commands  q: quit") + "\n\n")
	sb.WriteString(b.list.View())
	return sb.String()
}
