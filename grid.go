package vtkernel

// Grid is the full terminal display model: two screens (main and
// alternate), a scrollback ring attached to the main screen, a viewport
// offset into that history, a scrolling region, and the pen used for new
// writes.
type Grid struct {
	main, alt             *Screen
	onAlt                 bool
	mainCursor, altCursor Cursor
	savedMain, savedAlt   *SavedCursor

	scrollback     *Scrollback
	viewportOffset int

	// scrolling region, 0-based, [top, bottom). Defaults to the full screen.
	top, bottom int

	cols, rows int

	defaultFg, defaultBg Color
	pen                  CellTemplate
}

// NewGrid creates a grid of the given size with a default-capacity
// scrollback and the scrolling region set to the full screen.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{
		main:       NewScreen(rows, cols),
		alt:        NewScreen(rows, cols),
		scrollback: NewScrollback(defaultScrollbackCapacity),
		cols:       cols,
		rows:       rows,
		defaultFg:  DefaultForeground,
		defaultBg:  DefaultBackground,
		mainCursor: *NewCursor(),
		altCursor:  *NewCursor(),
	}
	g.top, g.bottom = 0, rows
	return g
}

// Cols and Rows report the grid's current size.
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// active returns the currently displayed screen.
func (g *Grid) active() *Screen {
	if g.onAlt {
		return g.alt
	}
	return g.main
}

// Cursor returns the cursor belonging to the active screen, mutable in
// place (used by the interpreter to set style/blink/visibility directly).
func (g *Grid) Cursor() *Cursor {
	if g.onAlt {
		return &g.altCursor
	}
	return &g.mainCursor
}

// IsAlternateScreen reports whether the alternate screen is active.
func (g *Grid) IsAlternateScreen() bool { return g.onAlt }

// Region returns the current scrolling region as [top, bottom).
func (g *Grid) Region() (top, bottom int) { return g.top, g.bottom }

// SetScrollingRegion sets the scrolling region to [top, bottom) (0-based).
// Bounds outside the screen are clamped to it; a degenerate range
// (top >= bottom after clamping) resets to the full screen.
func (g *Grid) SetScrollingRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom > g.rows {
		bottom = g.rows
	}
	if top >= bottom {
		top, bottom = 0, g.rows
	}
	g.top, g.bottom = top, bottom
}

// DefaultFg and DefaultBg report the colors used by blank cells and by
// unset ColorSpec slots.
func (g *Grid) DefaultFg() Color { return g.defaultFg }
func (g *Grid) DefaultBg() Color { return g.defaultBg }

// Pen returns the current write pen (fg/bg/attrs template).
func (g *Grid) Pen() CellTemplate { return g.pen }

// SetPen replaces the current write pen.
func (g *Grid) SetPen(pen CellTemplate) { g.pen = pen }

// ResetPen restores the pen to no colors, no attributes (SGR 0).
func (g *Grid) ResetPen() { g.pen = CellTemplate{} }

// touch resets the viewport to live (offset 0): any grid write snaps the
// view back to the bottom.
func (g *Grid) touch() { g.viewportOffset = 0 }

// PutChar writes ch at the cursor with the current pen, honoring
// pending-wrap. Zero-width runes (combining marks) are dropped without
// advancing the cursor; code-point composition is out of scope.
func (g *Grid) PutChar(ch rune) {
	g.PutCharWrap(ch, true)
}

// PutCharWrap is PutChar with auto-wrap (DEC mode 7) explicit: when wrap
// is false, a character printed at the last column overwrites it
// repeatedly instead of setting pending-wrap.
func (g *Grid) PutCharWrap(ch rune, wrap bool) {
	g.touch()
	w := runeWidth(ch)
	if w <= 0 {
		return
	}

	cur := g.Cursor()
	s := g.active()

	if cur.pendingWrap {
		g.wrapLine()
		cur = g.Cursor()
	}

	s.SetCell(cur.Row, cur.Col, g.pen.Apply(ch))
	if isWideRune(ch) && cur.Col+1 < g.cols {
		s.SetCell(cur.Row, cur.Col+1, blankCell)
	}

	advance := w
	if cur.Col+advance >= g.cols {
		cur.Col = g.cols - 1
		if wrap {
			cur.pendingWrap = true
		}
	} else {
		cur.Col += advance
	}
}

// wrapLine moves the cursor to column 0 of the next row, scrolling the
// region if already at its bottom, and clears pending-wrap.
func (g *Grid) wrapLine() {
	cur := g.Cursor()
	cur.pendingWrap = false
	s := g.active()
	s.SetWrapped(cur.Row, true)
	cur.Col = 0
	if cur.Row == g.bottom-1 {
		g.scrollUpRegion(1)
	} else if cur.Row < g.rows-1 {
		cur.Row++
	}
}

// MoveCursorTo moves the cursor to an absolute position, clamped to the
// grid bounds. Any explicit cursor move clears pending-wrap.
func (g *Grid) MoveCursorTo(row, col int) {
	cur := g.Cursor()
	cur.pendingWrap = false
	cur.Row = clampInt(row, 0, g.rows-1)
	cur.Col = clampInt(col, 0, g.cols-1)
}

// MoveCursorBy moves the cursor by (dRow, dCol). If regionClamped, row
// movement is bounded by the scrolling region instead of the full screen
// (CUU/CUD).
func (g *Grid) MoveCursorBy(dRow, dCol int, regionClamped bool) {
	cur := g.Cursor()
	cur.pendingWrap = false
	lo, hi := 0, g.rows-1
	if regionClamped {
		lo, hi = g.top, g.bottom-1
	}
	cur.Row = clampInt(cur.Row+dRow, lo, hi)
	cur.Col = clampInt(cur.Col+dCol, 0, g.cols-1)
}

// CarriageReturn moves the cursor to column 0 of its current row.
func (g *Grid) CarriageReturn() {
	cur := g.Cursor()
	cur.pendingWrap = false
	cur.Col = 0
}

// LineFeed advances the cursor one row, scrolling the region if already
// at its bottom (LF/VT/FF).
func (g *Grid) LineFeed() {
	g.touch()
	cur := g.Cursor()
	cur.pendingWrap = false
	if cur.Row == g.bottom-1 {
		g.scrollUpRegion(1)
	} else if cur.Row < g.rows-1 {
		cur.Row++
	}
}

// ReverseIndex moves the cursor one row up, scrolling the region down if
// already at its top (ESC M).
func (g *Grid) ReverseIndex() {
	g.touch()
	cur := g.Cursor()
	cur.pendingWrap = false
	if cur.Row == g.top {
		g.ScrollDown(1)
	} else if cur.Row > 0 {
		cur.Row--
	}
}

// ScrollUp scrolls the scrolling region up by n rows, appending displaced
// rows to scrollback when scrolling the main screen with the region equal
// to the full screen.
func (g *Grid) ScrollUp(n int) {
	g.touch()
	g.scrollUpRegion(n)
}

func (g *Grid) scrollUpRegion(n int) {
	evicted := g.active().ScrollUp(g.top, g.bottom, n)
	if !g.onAlt && g.top == 0 && g.bottom == g.rows {
		g.scrollback.Push(evicted...)
	}
}

// ScrollDown scrolls the scrolling region down by n rows; displaced
// bottom rows are discarded.
func (g *Grid) ScrollDown(n int) {
	g.touch()
	g.active().ScrollDown(g.top, g.bottom, n)
}

// InsertLines inserts n blank lines at the cursor row, shifting the rest
// of the scrolling region down (IL).
func (g *Grid) InsertLines(n int) {
	g.touch()
	cur := g.Cursor()
	if cur.Row < g.top || cur.Row >= g.bottom {
		return
	}
	g.active().InsertLines(cur.Row, g.bottom, n)
}

// DeleteLines removes n lines at the cursor row, shifting the rest of the
// scrolling region up (DL).
func (g *Grid) DeleteLines(n int) {
	g.touch()
	cur := g.Cursor()
	if cur.Row < g.top || cur.Row >= g.bottom {
		return
	}
	g.active().DeleteLines(cur.Row, g.bottom, n)
}

// InsertBlanks inserts n blank cells at the cursor, shifting the rest of
// the row right (ICH).
func (g *Grid) InsertBlanks(n int) {
	g.touch()
	cur := g.Cursor()
	g.active().InsertBlanks(cur.Row, cur.Col, n)
}

// DeleteChars removes n cells at the cursor, shifting the rest of the row
// left (DCH).
func (g *Grid) DeleteChars(n int) {
	g.touch()
	cur := g.Cursor()
	g.active().DeleteChars(cur.Row, cur.Col, n)
}

// EraseChars blanks n cells starting at the cursor without shifting
// content (ECH).
func (g *Grid) EraseChars(n int) {
	g.touch()
	cur := g.Cursor()
	g.active().ClearRowRange(cur.Row, cur.Col, cur.Col+n)
}

// EraseInDisplay implements ED: mode 0 cursor→end, 1 start→cursor,
// 2 entire screen, 3 entire screen plus scrollback.
func (g *Grid) EraseInDisplay(mode int) {
	g.touch()
	cur := g.Cursor()
	s := g.active()
	switch mode {
	case 0:
		s.ClearRowRange(cur.Row, cur.Col, g.cols)
		for row := cur.Row + 1; row < g.rows; row++ {
			s.ClearRow(row)
		}
	case 1:
		s.ClearRowRange(cur.Row, 0, cur.Col+1)
		for row := 0; row < cur.Row; row++ {
			s.ClearRow(row)
		}
	case 2:
		s.ClearAll()
	case 3:
		s.ClearAll()
		g.scrollback.Clear()
	}
}

// EraseInLine implements EL: mode 0 cursor→end of line, 1 start→cursor,
// 2 entire line.
func (g *Grid) EraseInLine(mode int) {
	g.touch()
	cur := g.Cursor()
	s := g.active()
	switch mode {
	case 0:
		s.ClearRowRange(cur.Row, cur.Col, g.cols)
	case 1:
		s.ClearRowRange(cur.Row, 0, cur.Col+1)
	case 2:
		s.ClearRow(cur.Row)
	}
}

// UseAlternateScreen switches to the alternate screen, clearing it on
// entry and leaving the main screen untouched. A no-op if already active.
func (g *Grid) UseAlternateScreen() {
	if g.onAlt {
		return
	}
	g.onAlt = true
	g.alt.ClearAll()
	g.altCursor = *NewCursor()
	g.touch()
}

// UseMainScreen switches back to the main screen, which is restored
// exactly as it was left. A no-op if already active.
func (g *Grid) UseMainScreen() {
	if !g.onAlt {
		return
	}
	g.onAlt = false
	g.touch()
}

// SaveCursor stores the active screen's cursor position and pen for a
// later RestoreCursor (DECSC / CSI s).
func (g *Grid) SaveCursor(originMode bool) {
	cur := g.Cursor()
	saved := &SavedCursor{Row: cur.Row, Col: cur.Col, Pen: g.pen, OriginMode: originMode}
	if g.onAlt {
		g.savedAlt = saved
	} else {
		g.savedMain = saved
	}
}

// RestoreCursor restores the position and pen saved by SaveCursor for the
// active screen (DECRC / CSI u); a no-op if nothing was saved. Returns
// whether origin mode should be restored by the caller.
func (g *Grid) RestoreCursor() (originMode bool, ok bool) {
	var saved *SavedCursor
	if g.onAlt {
		saved = g.savedAlt
	} else {
		saved = g.savedMain
	}
	if saved == nil {
		return false, false
	}
	cur := g.Cursor()
	cur.Row = clampInt(saved.Row, 0, g.rows-1)
	cur.Col = clampInt(saved.Col, 0, g.cols-1)
	cur.pendingWrap = false
	g.pen = saved.Pen
	return saved.OriginMode, true
}

// Viewport returns the rows currently visible: at offset 0, simply the
// active screen; at a positive offset, the top rows come from the tail of
// scrollback and the remainder from the top of the active screen. On the
// alternate screen the offset is ignored and the screen is returned as is.
// The returned rows share their cells with the grid.
func (g *Grid) Viewport() [][]Cell {
	s := g.active()
	if g.viewportOffset <= 0 || g.onAlt {
		out := make([][]Cell, g.rows)
		copy(out, s.cells)
		return out
	}

	sbLen := g.scrollback.Len()
	total := sbLen + g.rows
	start := total - g.rows - g.viewportOffset
	if start < 0 {
		start = 0
	}

	out := make([][]Cell, g.rows)
	for i := 0; i < g.rows; i++ {
		idx := start + i
		if idx < sbLen {
			out[i] = g.scrollback.Line(idx)
		} else {
			out[i] = s.cells[idx-sbLen]
		}
	}
	return out
}

// ViewportOffset returns how far back the user has scrolled (0 = live).
func (g *Grid) ViewportOffset() int { return g.viewportOffset }

// SetViewportOffset clamps and sets the viewport offset into
// [0, scrollback.Len()].
func (g *Grid) SetViewportOffset(offset int) {
	g.viewportOffset = clampInt(offset, 0, g.scrollback.Len())
}

// ScrollViewportBy adjusts the viewport offset by delta rows (positive
// scrolls further back into history).
func (g *Grid) ScrollViewportBy(delta int) {
	g.SetViewportOffset(g.viewportOffset + delta)
}

// ScrollbackLen returns the number of rows currently retained in
// scrollback.
func (g *Grid) ScrollbackLen() int { return g.scrollback.Len() }

// Resize changes the grid's dimensions in place. Height growth pulls rows
// back from scrollback before padding with blanks; height shrink pushes
// the top surplus rows of the main screen into scrollback (the alternate
// screen discards them). Width changes pad or truncate rows. The
// scrolling region is reset to full screen and the cursor is clamped into
// bounds.
func (g *Grid) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}

	g.resizeMain(cols, rows)
	if shrink := g.alt.Rows() - rows; shrink > 0 {
		g.alt.ScrollUp(0, g.alt.Rows(), shrink)
		g.altCursor.Row -= shrink
	}
	g.alt.Resize(rows, cols)
	g.altCursor.Row = clampInt(g.altCursor.Row, 0, rows-1)
	g.altCursor.Col = clampInt(g.altCursor.Col, 0, cols-1)

	g.cols, g.rows = cols, rows
	g.top, g.bottom = 0, rows
	g.touch()
}

func (g *Grid) resizeMain(cols, rows int) {
	old := g.main
	oldRows := old.rows

	switch {
	case rows > oldRows:
		grown := rows - oldRows
		pulled := g.scrollback.PopTail(grown)
		merged := make([][]Cell, 0, rows)
		for _, r := range pulled {
			merged = append(merged, resizeRow(r, cols))
		}
		for _, r := range old.cells {
			merged = append(merged, resizeRow(r, cols))
		}
		for len(merged) < rows {
			merged = append(merged, blankRow(cols))
		}
		g.main = newScreenFromRows(merged, cols)
		g.mainCursor.Row += len(pulled)

	case rows < oldRows:
		shrink := oldRows - rows
		if shrink >= oldRows {
			shrink = oldRows - 1
		}
		g.scrollback.Push(old.cells[:shrink]...)
		merged := make([][]Cell, 0, rows)
		for _, r := range old.cells[shrink:] {
			merged = append(merged, resizeRow(r, cols))
		}
		for len(merged) < rows {
			merged = append(merged, blankRow(cols))
		}
		g.main = newScreenFromRows(merged, cols)
		g.mainCursor.Row -= shrink

	default:
		old.Resize(rows, cols)
		g.main = old
	}

	g.mainCursor.Row = clampInt(g.mainCursor.Row, 0, rows-1)
	g.mainCursor.Col = clampInt(g.mainCursor.Col, 0, cols-1)
}

func resizeRow(row []Cell, cols int) []Cell {
	out := make([]Cell, cols)
	n := len(row)
	if n > cols {
		n = cols
	}
	copy(out, row[:n])
	for i := n; i < cols; i++ {
		out[i] = blankCell
	}
	return out
}

func newScreenFromRows(rows [][]Cell, cols int) *Screen {
	s := &Screen{
		rows:    len(rows),
		cols:    cols,
		cells:   rows,
		wrapped: make([]bool, len(rows)),
		tabStop: make([]bool, cols),
	}
	for i := 0; i < cols; i += 8 {
		s.tabStop[i] = true
	}
	return s
}

// tab-stop passthroughs onto the active screen.
func (g *Grid) NextTabStop(col int) int    { return g.active().NextTabStop(col) }
func (g *Grid) PrevTabStop(col int) int    { return g.active().PrevTabStop(col) }
func (g *Grid) SetTabStop(col int)         { g.active().SetTabStop(col) }
func (g *Grid) ClearTabStop(col int)       { g.active().ClearTabStop(col) }
func (g *Grid) ClearAllTabStops()          { g.active().ClearAllTabStops() }
func (g *Grid) FillWithE()                 { g.touch(); g.active().FillWithE() }

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
