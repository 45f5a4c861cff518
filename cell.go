package vtkernel

// Cell is a single grid position: a code point with its own fg/bg/attrs.
// Cells are plain values with no identity; copying a Cell copies its full
// rendering state.
type Cell struct {
	Ch    rune
	Fg    ColorSpec
	Bg    ColorSpec
	Attrs CellAttributes
}

// blankCell is a space character with default (inherited) colors and no
// attributes, the value every cleared or newly exposed cell takes.
var blankCell = Cell{Ch: ' '}

// IsBlank reports whether the cell is indistinguishable from blankCell.
func (c Cell) IsBlank() bool {
	return c == blankCell
}

// Resolve returns the effective fg/bg to render, applying the grid's
// current defaults and swapping fg/bg if AttrReverse is set.
func (c Cell) Resolve(defaultFg, defaultBg Color) (fg, bg Color) {
	fg = c.Fg.Resolve(defaultFg)
	bg = c.Bg.Resolve(defaultBg)
	if c.Attrs.Has(AttrReverse) {
		fg, bg = bg, fg
	}
	return fg, bg
}
