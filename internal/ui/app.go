package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sampleview/internal/cfgtree"
	"sampleview/internal/config"
	"sampleview/internal/pty"
	"sampleview/internal/telemetry"
)

// AppModel is the root model: the sample browser plus a per-sample detail
// view, with an optional PTY shell overlay on top.
type AppModel struct {
	Cfg        *config.Config
	Mode       AppMode
	Browser    *BrowserView
	Detail     *DetailView
	Shell      *ShellView
	KeyHandler *KeyHandler
	Tracer     *telemetry.Tracer
	PTYRunner  pty.Runner
	Strict     bool

	lastListErr error
	width       int
	height      int
}

var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. entries is the initial
// sample listing produced at startup (listing failures there are hard
// startup errors and never reach the UI).
func NewAppModel(cfg *config.Config, tracer *telemetry.Tracer, entries []SampleEntry, strict bool) *AppModel {
	reg := NewKeybindRegistry()
	browser := NewBrowserView(cfg.AppTitle, cfg.PageLimit)
	browser.SetEntries(entries)

	m := &AppModel{
		Cfg:        cfg,
		Mode:       ModeBrowser,
		Browser:    browser,
		KeyHandler: NewKeyHandler(reg),
		Tracer:     tracer,
		PTYRunner:  &pty.Local{},
		Strict:     strict,
	}

	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.Bind("SPC r", func() tea.Msg { return RescanMsg{} }, "Rescan samples")
	reg.Bind("SPC s", func() tea.Msg { return ToggleStrictMsg{} }, "Toggle strict mode", ModeDetail)
	reg.Bind("SPC !", func() tea.Msg { return OpenShellMsg{} }, "Shell in sample folder", ModeDetail)

	return m
}

// AsTeaModel returns a tea.Model adapter for tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// ProgramOptions translates the opaque launch_options mapping into Bubble
// Tea program options. Unknown keys are ignored here; they belong to
// whatever front end consumes them.
func ProgramOptions(cfg *config.Config) []tea.ProgramOption {
	var opts []tea.ProgramOption
	if cfgtree.GetBool(cfg.LaunchOptions, "alt_screen") {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfgtree.GetBool(cfg.LaunchOptions, "mouse") {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The shell overlay owns all input while open.
	if a.Shell != nil {
		if _, ok := msg.(ShellClosedMsg); ok {
			a.Shell.Close()
			a.Shell = nil
			return a, nil
		}
		v, cmd := a.Shell.Update(msg)
		if sh, ok := v.(*ShellView); ok {
			a.Shell = sh
		}
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// Both views track the window size.
		if a.Browser != nil {
			v, _ := a.Browser.Update(msg)
			a.Browser = v.(*BrowserView)
		}
		if a.Detail != nil {
			v, _ := a.Detail.Update(msg)
			a.Detail = v.(*DetailView)
		}
		return a, nil

	case SamplesLoadedMsg:
		a.lastListErr = msg.Err
		if msg.Err == nil {
			a.Browser.SetEntries(msg.Entries)
		}
		return a, nil

	case SampleResolvedMsg:
		if a.Detail != nil && a.Detail.Sample.Dir == msg.Sample.Dir {
			a.Detail.SetResolved(msg.Resolved, msg.Failures)
		}
		return a, nil

	case OpenSampleMsg:
		a.Mode = ModeDetail
		a.Detail = NewDetailView(msg.Entry.Sample)
		a.Detail.Strict = a.Strict
		if a.width > 0 {
			v, _ := a.Detail.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			a.Detail = v.(*DetailView)
		}
		return a, a.resolveSampleCmd(msg.Entry.Sample)

	case RescanMsg:
		return a, a.loadSamplesCmd()

	case ToggleStrictMsg:
		a.Strict = !a.Strict
		if a.Detail != nil {
			a.Detail.Strict = a.Strict
			a.Detail.SetResolved(nil, nil)
			return a, a.resolveSampleCmd(a.Detail.Sample)
		}
		return a, nil

	case OpenShellMsg:
		if a.Detail != nil {
			a.Shell = NewShellView(a.PTYRunner, a.Detail.Sample.Dir)
			return a, a.Shell.Init()
		}
		return a, nil

	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if cmd, handled := a.handleModeKey(msg); handled {
			return a, cmd
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// handleModeKey covers app-level navigation keys outside the registry.
func (a *appModelAdapter) handleModeKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch a.Mode {
	case ModeBrowser:
		switch msg.String() {
		case "enter":
			b := a.Browser
			if b != nil && b.Selected() < len(b.Entries) && len(b.Entries) > 0 {
				entry := b.Entries[b.Selected()]
				return func() tea.Msg { return OpenSampleMsg{Entry: entry} }, true
			}
		case "r":
			return a.loadSamplesCmd(), true
		}
	case ModeDetail:
		switch msg.String() {
		case "esc":
			a.Mode = ModeBrowser
			a.Detail = nil
			return nil, true
		case "r":
			if a.Detail != nil {
				return a.resolveSampleCmd(a.Detail.Sample), true
			}
		case "s":
			return func() tea.Msg { return ToggleStrictMsg{} }, true
		case "!":
			return func() tea.Msg { return OpenShellMsg{} }, true
		}
	}
	return nil, false
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Shell != nil {
		return a.Shell.View()
	}
	base := a.currentView().View()
	if a.lastListErr != nil {
		base += "\n" + Styles.Failure.Render("rescan failed: "+a.lastListErr.Error())
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeBrowser:
		if a.Browser != nil {
			return a.Browser
		}
	case ModeDetail:
		if a.Detail != nil {
			return a.Detail
		}
	}
	if a.Browser == nil {
		a.Browser = NewBrowserView(a.Cfg.AppTitle, a.Cfg.PageLimit)
	}
	return a.Browser
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeBrowser:
		if b, ok := v.(*BrowserView); ok {
			a.Browser = b
		}
	case ModeDetail:
		if d, ok := v.(*DetailView); ok {
			a.Detail = d
		}
	}
}
