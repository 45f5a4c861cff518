package vtkernel

import "testing"

func TestNewScreenDimensionsAndBlank(t *testing.T) {
	s := NewScreen(5, 10)
	if s.Rows() != 5 || s.Cols() != 10 {
		t.Fatalf("unexpected dimensions %dx%d", s.Rows(), s.Cols())
	}
	if !s.Cell(0, 0).IsBlank() {
		t.Error("expected new screen cells to be blank")
	}
}

func TestScreenSetAndGetCell(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetCell(1, 1, Cell{Ch: 'X'})
	if s.Cell(1, 1).Ch != 'X' {
		t.Error("expected cell to be set")
	}
	if !s.Cell(-1, 0).IsBlank() {
		t.Error("expected out-of-bounds read to return blank")
	}
}

func TestScreenScrollUpReturnsEvictedRows(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetCell(0, 0, Cell{Ch: 'a'})
	s.SetCell(1, 0, Cell{Ch: 'b'})
	s.SetCell(2, 0, Cell{Ch: 'c'})

	evicted := s.ScrollUp(0, 3, 1)
	if len(evicted) != 1 || evicted[0][0].Ch != 'a' {
		t.Fatalf("expected row 'a' evicted, got %v", evicted)
	}
	if s.Cell(0, 0).Ch != 'b' || s.Cell(1, 0).Ch != 'c' {
		t.Error("expected rows shifted up")
	}
	if !s.Cell(2, 0).IsBlank() {
		t.Error("expected bottom row cleared")
	}
}

func TestScreenScrollDown(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetCell(0, 0, Cell{Ch: 'a'})
	s.SetCell(1, 0, Cell{Ch: 'b'})
	s.ScrollDown(0, 3, 1)
	if !s.Cell(0, 0).IsBlank() {
		t.Error("expected top row cleared")
	}
	if s.Cell(1, 0).Ch != 'a' || s.Cell(2, 0).Ch != 'b' {
		t.Error("expected rows shifted down")
	}
}

func TestScreenInsertAndDeleteChars(t *testing.T) {
	s := NewScreen(1, 5)
	for i := 0; i < 5; i++ {
		s.SetCell(0, i, Cell{Ch: rune('a' + i)})
	}
	s.InsertBlanks(0, 1, 2)
	if !s.Cell(0, 1).IsBlank() || s.Cell(0, 3).Ch != 'b' {
		t.Errorf("unexpected row after insert: %q", lineString(s, 0))
	}

	s2 := NewScreen(1, 5)
	for i := 0; i < 5; i++ {
		s2.SetCell(0, i, Cell{Ch: rune('a' + i)})
	}
	s2.DeleteChars(0, 1, 2)
	if s2.Cell(0, 1).Ch != 'd' || !s2.Cell(0, 4).IsBlank() {
		t.Errorf("unexpected row after delete: %q", lineString(s2, 0))
	}
}

func lineString(s *Screen, row int) string {
	var out []rune
	for c := 0; c < s.Cols(); c++ {
		ch := s.Cell(row, c).Ch
		if ch == 0 {
			ch = '_'
		}
		out = append(out, ch)
	}
	return string(out)
}

func TestScreenResizeGrowPreservesTopLeft(t *testing.T) {
	s := NewScreen(2, 2)
	s.SetCell(0, 0, Cell{Ch: 'a'})
	s.Resize(3, 3)
	if s.Rows() != 3 || s.Cols() != 3 {
		t.Fatalf("unexpected size after resize")
	}
	if s.Cell(0, 0).Ch != 'a' {
		t.Error("expected top-left content preserved on grow")
	}
	if !s.Cell(2, 2).IsBlank() {
		t.Error("expected new cells blank")
	}
}

func TestScreenTabStops(t *testing.T) {
	s := NewScreen(1, 20)
	if s.NextTabStop(0) != 8 {
		t.Errorf("expected default tab stop at 8, got %d", s.NextTabStop(0))
	}
	s.ClearAllTabStops()
	s.SetTabStop(5)
	if s.NextTabStop(0) != 5 {
		t.Errorf("expected custom tab stop at 5, got %d", s.NextTabStop(0))
	}
	if s.PrevTabStop(5) != 0 {
		t.Errorf("expected PrevTabStop to fall back to 0, got %d", s.PrevTabStop(5))
	}
}
