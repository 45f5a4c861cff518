package vtkernel

import "testing"

func TestModesSetNonPrivIsUnknown(t *testing.T) {
	m := NewModes()
	g := NewGrid(10, 5)
	var got int
	m.Set(g, false, 4, true, func(n int) { got = n })
	if got != 4 {
		t.Fatalf("expected non-priv mode reported unknown, got %d", got)
	}
}

func TestModesAutoWrapDefaultsOn(t *testing.T) {
	m := NewModes()
	if !m.AutoWrap {
		t.Fatal("expected auto-wrap enabled by default")
	}
}

func TestModesCursorVisibilityAndBlink(t *testing.T) {
	m := NewModes()
	g := NewGrid(10, 5)
	m.Set(g, true, 25, false, nil)
	if g.Cursor().Visible {
		t.Fatal("expected cursor hidden after mode 25 reset")
	}
	m.Set(g, true, 12, true, nil)
	if !g.Cursor().Blink {
		t.Fatal("expected cursor blink enabled after mode 12 set")
	}
}

func TestModes1049SavesAndRestoresCursor(t *testing.T) {
	m := NewModes()
	g := NewGrid(10, 5)
	g.MoveCursorTo(2, 3)

	m.Set(g, true, 1049, true, nil)
	if !g.IsAlternateScreen() {
		t.Fatal("expected alternate screen active")
	}
	g.MoveCursorTo(0, 0)

	m.Set(g, true, 1049, false, nil)
	if g.IsAlternateScreen() {
		t.Fatal("expected main screen restored")
	}
	cur := g.Cursor()
	if cur.Row != 2 || cur.Col != 3 {
		t.Fatalf("cursor after 1049 round trip = (%d,%d), want (2,3)", cur.Row, cur.Col)
	}
}

// TestModes47DoesNotSavePen shows the documented difference between plain
// 47/1047 and 1049: only 1049 saves/restores the pen across the toggle.
func TestModes47DoesNotSavePen(t *testing.T) {
	m := NewModes()
	g := NewGrid(10, 5)
	g.SetPen(CellTemplate{Attrs: AttrBold})

	m.Set(g, true, 47, true, nil)
	g.SetPen(CellTemplate{})
	m.Set(g, true, 47, false, nil)

	if g.Pen() != (CellTemplate{}) {
		t.Fatalf("expected pen unrestored after plain 47, got %+v", g.Pen())
	}
}

func TestModes1049RestoresPen(t *testing.T) {
	m := NewModes()
	g := NewGrid(10, 5)
	g.SetPen(CellTemplate{Attrs: AttrBold})

	m.Set(g, true, 1049, true, nil)
	g.SetPen(CellTemplate{})
	m.Set(g, true, 1049, false, nil)

	if !g.Pen().Attrs.Has(AttrBold) {
		t.Fatalf("expected pen restored to bold after 1049 round trip, got %+v", g.Pen())
	}
}

func TestModesUnknownPrivModeReported(t *testing.T) {
	m := NewModes()
	g := NewGrid(10, 5)
	var got int
	m.Set(g, true, 9999, true, func(n int) { got = n })
	if got != 9999 {
		t.Fatalf("expected unknown mode reported, got %d", got)
	}
}
