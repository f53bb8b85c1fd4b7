package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sampleview/internal/config"
	"sampleview/internal/layout"
	"sampleview/internal/samples"
	"sampleview/internal/telemetry"
)

// newTestApp builds an app over a real temp results folder with one
// sample containing meta.json and render.png.
func newTestApp(t *testing.T) (*appModelAdapter, samples.Sample) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "s1")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range map[string]string{
		"meta.json":  `{"human_action": "waving"}`,
		"render.png": "png",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &config.Config{
		AppTitle:      "Test viewer",
		ResultsFolder: root,
		LaunchOptions: map[string]any{},
		Layout: []*layout.Node{{
			Kind: layout.KindRow,
			Children: []*layout.Node{
				{Kind: layout.KindImage, Value: "render.png"},
				{Kind: layout.KindText, Spec: &layout.ValueSpec{
					LoadContents: true, LoadPath: "meta.json", Indices: []any{"human_action"},
				}},
			},
		}},
	}
	tracer, err := telemetry.New(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	sample := samples.Sample{Name: "s1", Dir: dir}
	entries := []SampleEntry{{Sample: sample}}
	app := NewAppModel(cfg, tracer, entries, false).AsTeaModel().(*appModelAdapter)
	return app, sample
}

// drain runs a command and feeds resulting messages back until quiet.
func drain(t *testing.T, app *appModelAdapter, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = app.Update(msg)
	}
}

func TestApp_EnterOpensDetailAndResolves(t *testing.T) {
	app, sample := newTestApp(t)

	_, cmd := app.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	drain(t, app, cmd)

	if app.Mode != ModeDetail {
		t.Fatalf("Mode = %s, want Detail", app.Mode)
	}
	if app.Detail == nil || app.Detail.Sample.Dir != sample.Dir {
		t.Fatal("detail view not set to selected sample")
	}
	if app.Detail.Resolved == nil {
		t.Fatal("resolved tree not installed")
	}
	if len(app.Detail.Failures) != 0 {
		t.Errorf("failures = %v", app.Detail.Failures)
	}

	out := app.View()
	if !strings.Contains(out, "waving") {
		t.Errorf("loaded content missing from detail view:\n%s", out)
	}
}

func TestApp_EscReturnsToBrowser(t *testing.T) {
	app, _ := newTestApp(t)
	_, cmd := app.Update(keyMsg("enter"))
	drain(t, app, cmd)

	app.Update(keyMsg("esc"))
	if app.Mode != ModeBrowser {
		t.Errorf("Mode = %s after esc, want Browser", app.Mode)
	}
	if app.Detail != nil {
		t.Error("detail view retained after esc")
	}
}

func TestApp_StrictToggleReResolves(t *testing.T) {
	app, _ := newTestApp(t)
	_, cmd := app.Update(keyMsg("enter"))
	drain(t, app, cmd)

	_, cmd = app.Update(keyMsg("s"))
	drain(t, app, cmd)

	if !app.Strict {
		t.Error("Strict = false after toggle")
	}
	if app.Detail == nil || !app.Detail.Strict {
		t.Error("detail view strict flag not set")
	}
	if app.Detail.Resolved == nil {
		t.Error("tree not re-resolved after strict toggle")
	}
}

func TestApp_RescanFailureShownNotFatal(t *testing.T) {
	app, _ := newTestApp(t)
	app.Cfg.ResultsFolder = filepath.Join(app.Cfg.ResultsFolder, "gone")

	_, cmd := app.Update(RescanMsg{})
	if cmd == nil {
		t.Fatal("rescan produced no command")
	}
	drain(t, app, cmd)

	if app.lastListErr == nil {
		t.Fatal("listing error not recorded")
	}
	if !strings.Contains(app.View(), "rescan failed") {
		t.Error("listing error not surfaced in view")
	}
}

func TestApp_LeaderHelpShown(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(keyMsg(" "))
	out := app.View()
	if !strings.Contains(out, "Rescan samples") {
		t.Errorf("leader help missing:\n%s", out)
	}
}

func TestProgramOptions(t *testing.T) {
	cfg := &config.Config{LaunchOptions: map[string]any{"alt_screen": true, "mouse": false}}
	if got := len(ProgramOptions(cfg)); got != 1 {
		t.Errorf("ProgramOptions = %d options, want 1", got)
	}
	cfg.LaunchOptions = map[string]any{}
	if got := len(ProgramOptions(cfg)); got != 0 {
		t.Errorf("ProgramOptions on empty = %d options, want 0", got)
	}
}
