// Package ptyhost spawns a shell behind a pseudo-terminal and streams its
// output on a channel.
package ptyhost

import (
	"os"
	"os/exec"
	"os/user"
	"sync"
	"syscall"

	"github.com/creack/pty"
)

const readChunkSize = 4096

// Host is a spawned shell process attached to a pseudo-terminal.
type Host struct {
	cmd *exec.Cmd
	pty *os.File

	mu sync.Mutex

	output chan []byte
	done   chan struct{}

	exitMu sync.Mutex
	exited bool
	exitErr error
}

// Spawn starts shell (falling back to $SHELL, then /bin/sh, when shell is
// empty) attached to a new pseudo-terminal of the given size, and begins
// streaming its output.
func Spawn(shell string, cols, rows int) (*Host, error) {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell, "-i")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	if u, err := user.Current(); err == nil {
		cmd.Dir = u.HomeDir
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		return nil, &SpawnError{Shell: shell, Err: err}
	}

	h := &Host{
		cmd:    cmd,
		pty:    ptmx,
		output: make(chan []byte, 64),
		done:   make(chan struct{}),
	}

	go h.readLoop()
	go h.waitLoop()

	return h, nil
}

func (h *Host) readLoop() {
	defer close(h.output)
	buf := make([]byte, readChunkSize)
	for {
		n, err := h.pty.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case h.output <- chunk:
			case <-h.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (h *Host) waitLoop() {
	err := h.cmd.Wait()
	h.exitMu.Lock()
	h.exited = true
	h.exitErr = err
	h.exitMu.Unlock()
}

// Output returns the channel of output chunks read from the PTY. It is
// closed when the PTY reaches EOF (the shell exited or the master was
// closed).
func (h *Host) Output() <-chan []byte {
	return h.output
}

// Write sends input bytes to the shell.
func (h *Host) Write(data []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, err := h.pty.Write(data)
	if err != nil {
		return n, &WriteError{Err: err}
	}
	return n, nil
}

// Resize changes the PTY's reported window size, which delivers SIGWINCH
// to the foreground process group.
func (h *Host) Resize(cols, rows int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return pty.Setsize(h.pty, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
}

// Exited reports whether the shell process has exited, and its exit error
// (nil on a clean exit).
func (h *Host) Exited() (exited bool, err error) {
	h.exitMu.Lock()
	defer h.exitMu.Unlock()
	return h.exited, h.exitErr
}

// Close terminates the shell and releases the pseudo-terminal.
func (h *Host) Close() error {
	close(h.done)
	if h.cmd.Process != nil {
		h.cmd.Process.Kill()
	}
	return h.pty.Close()
}
