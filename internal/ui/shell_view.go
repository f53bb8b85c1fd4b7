package ui

import (
	"bytes"
	"io"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/viewport"

	"sampleview/internal/pty"
)

// ShellOutputMsg carries bytes read from the PTY for display.
type ShellOutputMsg struct {
	Data []byte
}

// ShellClosedMsg is sent when the user dismisses the shell overlay.
type ShellClosedMsg struct{}

// ShellView is a PTY-backed overlay that spawns a shell inside the
// selected sample folder so artifacts can be poked at directly.
// Esc dismisses; it is not passed through to the shell.
type ShellView struct {
	ptyRunner pty.Runner
	ptmx      io.ReadWriteCloser
	content   *bytes.Buffer
	viewport  viewport.Model
	sampleDir string
	outputCh  chan []byte
}

var _ View = (*ShellView)(nil)

const defaultShellWidth = 70
const defaultShellHeight = 18

// NewShellView creates a shell view rooted in sampleDir.
func NewShellView(ptyRunner pty.Runner, sampleDir string) *ShellView {
	vp := viewport.New(defaultShellWidth, defaultShellHeight)
	vp.Style = Styles.Box
	return &ShellView{
		ptyRunner: ptyRunner,
		content:   &bytes.Buffer{},
		viewport:  vp,
		sampleDir: sampleDir,
		outputCh:  make(chan []byte, 64),
	}
}

// Init implements View. Spawns the shell and starts reading from the PTY.
func (s *ShellView) Init() tea.Cmd {
	shell := "sh"
	if path, err := exec.LookPath("bash"); err == nil {
		shell = path
	}
	cmd := exec.Command(shell)
	cmd.Dir = s.sampleDir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}

	sz := pty.Size{Rows: uint16(defaultShellHeight), Cols: uint16(defaultShellWidth)}
	ptmx, err := s.ptyRunner.Start(cmd, sz)
	if err != nil {
		s.content.WriteString("Failed to spawn shell: " + err.Error() + "\r\n")
		s.refreshViewport()
		return nil
	}
	s.ptmx = ptmx
	go s.readLoop()

	return s.waitForOutput()
}

// readLoop pumps PTY output into outputCh until the shell exits. A full
// channel drops the chunk rather than blocking the reader.
func (s *ShellView) readLoop() {
	defer close(s.outputCh)
	buf := make([]byte, 1024)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case s.outputCh <- chunk:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

func (s *ShellView) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		data, ok := <-s.outputCh
		if !ok {
			return nil
		}
		return ShellOutputMsg{Data: data}
	}
}

// Update implements View.
func (s *ShellView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case ShellOutputMsg:
		if s.ptmx != nil {
			s.content.Write(msg.Data)
			s.refreshViewport()
			s.viewport.GotoBottom()
		}
		return s, s.waitForOutput()
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return ShellClosedMsg{} }
		}
		if s.ptmx != nil {
			if b := keyToPTYBytes(msg); len(b) > 0 {
				s.ptmx.Write(b)
			}
		}
		return s, s.waitForOutput()
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		h := msg.Height/2 + 4
		if w < 40 {
			w = 40
		}
		if h < 12 {
			h = 12
		}
		s.viewport.Width = w
		s.viewport.Height = h
		if s.ptmx != nil && s.ptyRunner != nil {
			s.ptyRunner.Resize(s.ptmx, pty.Size{Rows: uint16(h), Cols: uint16(w)})
		}
		s.refreshViewport()
		return s, s.waitForOutput()
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, tea.Batch(cmd, s.waitForOutput())
}

// View implements View.
func (s *ShellView) View() string {
	header := Styles.Title.Render("Sample shell") + Styles.Hint.Render("  "+s.sampleDir+"  Esc: exit")
	return header + "\n" + s.viewport.View()
}

func (s *ShellView) refreshViewport() {
	s.viewport.SetContent(s.content.String())
}

// Close releases PTY resources. Call when dismissing the overlay.
func (s *ShellView) Close() error {
	if s.ptmx != nil {
		return s.ptmx.Close()
	}
	return nil
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
