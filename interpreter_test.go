package vtkernel

import "testing"

func TestInterpreterDSRReportsCursorPosition(t *testing.T) {
	g := NewGrid(80, 24)
	var reply []byte
	ip := NewInterpreter(g, nopLogger{}, func(b []byte) { reply = append(reply, b...) })
	p := NewParser(ip)

	g.MoveCursorTo(2, 9)
	p.Advance([]byte("\x1b[6n"))

	want := "\x1b[3;10R"
	if string(reply) != want {
		t.Fatalf("DSR reply = %q, want %q", reply, want)
	}
}

func TestInterpreterDECSCUSRSetsCursorStyle(t *testing.T) {
	g, ip, p := newTestInterpreter(10, 5)
	_ = ip
	p.Advance([]byte("\x1b[3 q"))

	cur := g.Cursor()
	if cur.Style != CursorStyleUnderline || !cur.Blink {
		t.Fatalf("cursor = %+v, want underline+blink", cur)
	}
}

func TestInterpreterRISResetsModesAndScreen(t *testing.T) {
	g, ip, p := newTestInterpreter(10, 5)
	p.Advance([]byte("\x1b[31mhello\x1b[?1h"))
	if !ip.Modes().ApplicationCursorKeys {
		t.Fatal("expected mode set before reset")
	}

	p.Advance([]byte("\x1bc"))

	if ip.Modes().ApplicationCursorKeys {
		t.Fatal("expected modes cleared after RIS")
	}
	if g.Pen() != (CellTemplate{}) {
		t.Fatalf("pen after RIS = %+v, want reset", g.Pen())
	}
	cur := g.Cursor()
	if cur.Row != 0 || cur.Col != 0 {
		t.Fatalf("cursor after RIS = (%d,%d), want (0,0)", cur.Row, cur.Col)
	}
	if !g.active().Cell(0, 0).IsBlank() {
		t.Fatalf("screen after RIS should be blank, got %+v", g.active().Cell(0, 0))
	}
}

func TestInterpreterBackspaceDoesNotWrap(t *testing.T) {
	g, _, p := newTestInterpreter(10, 5)
	p.Advance([]byte("AB\x08"))

	cur := g.Cursor()
	if cur.Row != 0 || cur.Col != 1 {
		t.Fatalf("cursor after BS = (%d,%d), want (0,1)", cur.Row, cur.Col)
	}
}

func TestInterpreterTabAdvancesToNextStop(t *testing.T) {
	g, _, p := newTestInterpreter(20, 5)
	p.Advance([]byte("\t"))

	if g.Cursor().Col != 8 {
		t.Fatalf("cursor col after HT = %d, want 8", g.Cursor().Col)
	}
}

func TestInterpreterDECSTBMHomesCursorInOriginMode(t *testing.T) {
	g, ip, p := newTestInterpreter(10, 10)
	ip.modes.OriginMode = true
	p.Advance([]byte("\x1b[3;7r"))

	cur := g.Cursor()
	if cur.Row != 2 || cur.Col != 0 {
		t.Fatalf("cursor after DECSTBM in origin mode = (%d,%d), want (2,0)", cur.Row, cur.Col)
	}
}

func TestInterpreterUnknownModeIsLogged(t *testing.T) {
	var got int
	logger := unknownLoggerFunc(func(kind string, code int) {
		if kind == "mode" {
			got = code
		}
	})
	g := NewGrid(10, 5)
	ip := NewInterpreter(g, logger, nil)
	p := NewParser(ip)
	p.Advance([]byte("\x1b[?9999h"))

	if got != 9999 {
		t.Fatalf("logged mode = %d, want 9999", got)
	}
}

type unknownLoggerFunc func(kind string, code int)

func (f unknownLoggerFunc) UnknownSequence(kind string, code int) { f(kind, code) }
