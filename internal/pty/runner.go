// Package pty spawns shells in a pseudo-terminal for the sample-folder
// shell overlay.
package pty

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size is the terminal geometry in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns and controls a PTY. The interface exists so tests can
// substitute a fake instead of allocating a real terminal.
type Runner interface {
	Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// Local implements Runner with github.com/creack/pty.
type Local struct{}

var _ Runner = (*Local)(nil)

// Start spawns cmd attached to a new PTY of the given size. Closing the
// returned ReadWriteCloser tears the process down.
func (l *Local) Start(cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	return pty.StartWithSize(cmd, ws)
}

// Resize adjusts the PTY geometry. rwc must be the *os.File from Start;
// other types are a no-op.
func (l *Local) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
