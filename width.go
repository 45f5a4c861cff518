package vtkernel

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune reports whether ch occupies two grid columns, used by
// PutCharWrap to decide whether to blank the cell following a write.
func isWideRune(ch rune) bool {
	return uniwidth.RuneWidth(ch) == 2
}
