package vtkernel

import (
	"github.com/vtkernel/vtkernel/ptyhost"
)

// Session owns the Grid, Interpreter, and PTY Host, and is the only type
// application code needs to drive a terminal end to end.
type Session struct {
	grid        *Grid
	interpreter *Interpreter
	parser      *Parser
	host        *ptyhost.Host

	closed chan struct{}
}

// NewSession spawns shell (empty for $SHELL/`/bin/sh` fallback) on a PTY
// of the given size and wires it to a fresh Grid through an Interpreter
// and Parser.
func NewSession(shell string, cols, rows int, logger Logger) (*Session, error) {
	host, err := ptyhost.Spawn(shell, cols, rows)
	if err != nil {
		return nil, err
	}

	grid := NewGrid(cols, rows)
	s := &Session{grid: grid, host: host, closed: make(chan struct{})}
	s.interpreter = NewInterpreter(grid, logger, func(b []byte) { _, _ = s.host.Write(b) })
	s.parser = NewParser(s.interpreter)
	return s, nil
}

// ProcessOutput drains every byte chunk currently available from the PTY
// Host without blocking, feeding each to the interpreter in order. It
// returns the number of chunks consumed; zero means nothing was pending.
// closed reports whether the PTY channel has been closed (the shell has
// exited).
func (s *Session) ProcessOutput() (chunks int, closed bool) {
	for {
		select {
		case data, ok := <-s.host.Output():
			if !ok {
				s.markClosed()
				return chunks, true
			}
			s.parser.Advance(data)
			chunks++
		default:
			return chunks, false
		}
	}
}

func (s *Session) markClosed() {
	select {
	case <-s.closed:
	default:
		close(s.closed)
	}
}

// Closed returns a channel that is closed once the shell has exited and
// its output channel has drained.
func (s *Session) Closed() <-chan struct{} {
	return s.closed
}

// WriteInput forwards bytes to the shell.
func (s *Session) WriteInput(data []byte) error {
	select {
	case <-s.closed:
		return ErrDisconnected
	default:
	}
	_, err := s.host.Write(data)
	return err
}

// Resize resizes the grid and then the PTY, in that order, so any output
// the shell produces after learning the new size is interpreted against a
// grid that already has that size.
func (s *Session) Resize(cols, rows int) error {
	select {
	case <-s.closed:
		return ErrDisconnected
	default:
	}
	s.grid.Resize(cols, rows)
	return s.host.Resize(cols, rows)
}

// State returns a read-only, internally consistent snapshot of the grid
// for rendering. The visible rows are copied, so later grid mutations do
// not show through a snapshot already taken.
func (s *Session) State() Snapshot {
	cur := s.grid.Cursor()
	modes := s.interpreter.Modes()
	view := s.grid.Viewport()
	cells := make([][]Cell, len(view))
	for i, line := range view {
		cells[i] = append([]Cell(nil), line...)
	}
	return Snapshot{
		Cols:                  s.grid.Cols(),
		Rows:                  s.grid.Rows(),
		cells:                 cells,
		CursorRow:             cur.Row,
		CursorCol:             cur.Col,
		CursorStyle:           cur.Style,
		CursorVisible:         cur.Visible,
		CursorBlink:           cur.Blink,
		DefaultFg:             s.grid.DefaultFg(),
		DefaultBg:             s.grid.DefaultBg(),
		MouseTracking:         modes.MouseTracking,
		BracketedPaste:        modes.BracketedPaste,
		ApplicationCursorKeys: modes.ApplicationCursorKeys,
		FocusEvents:           modes.FocusEvents,
	}
}

// Close terminates the shell and releases the PTY.
func (s *Session) Close() error {
	return s.host.Close()
}
