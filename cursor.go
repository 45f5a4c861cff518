package vtkernel

// CursorStyle determines how the cursor is rendered: block, underline, or
// bar, with blink tracked as a separate bool rather than six style variants.
type CursorStyle int

const (
	CursorStyleBlock CursorStyle = iota
	CursorStyleUnderline
	CursorStyleBar
)

// Cursor tracks position and rendering style (0-based coordinates).
type Cursor struct {
	Row     int
	Col     int
	Style   CursorStyle
	Blink   bool
	Visible bool

	// pendingWrap is set when a character was written into the last
	// column, so the next printable character wraps to a new line first
	// instead of advancing off-grid immediately on write.
	pendingWrap bool
}

// NewCursor creates a cursor at (0, 0), block style, visible, no blink.
func NewCursor() *Cursor {
	return &Cursor{Style: CursorStyleBlock, Visible: true}
}

// SavedCursor stores cursor position, pen, and origin mode for DECSC/DECRC
// and alternate-screen entry/exit restoration.
type SavedCursor struct {
	Row        int
	Col        int
	Pen        CellTemplate
	OriginMode bool
}

// CellTemplate is the "pen": the fg/bg/attrs applied to newly written
// characters, mutated by SGR escape sequences.
type CellTemplate struct {
	Fg    ColorSpec
	Bg    ColorSpec
	Attrs CellAttributes
}

// NewCellTemplate returns a pen with default (inherited) colors and no
// attributes.
func NewCellTemplate() CellTemplate {
	return CellTemplate{}
}

// Apply builds a Cell for a printed rune using this pen's current fg/bg/attrs.
func (t CellTemplate) Apply(r rune) Cell {
	return Cell{Ch: r, Fg: t.Fg, Bg: t.Bg, Attrs: t.Attrs}
}
