package vtkernel

import "strconv"

// Key identifies a non-printable key the input layer can encode. Printable
// characters are encoded directly via EncodeRune rather than through Key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyEnter
	KeyBackspace
	KeyTab
	KeyDelete
	KeyInsert
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// EncodeKey returns the byte sequence for key, taking application cursor
// keys mode into account for the arrow keys.
func EncodeKey(key Key, applicationCursorKeys bool) []byte {
	if applicationCursorKeys {
		switch key {
		case KeyUp:
			return []byte("\x1bOA")
		case KeyDown:
			return []byte("\x1bOB")
		case KeyRight:
			return []byte("\x1bOC")
		case KeyLeft:
			return []byte("\x1bOD")
		}
	}

	switch key {
	case KeyUp:
		return []byte("\x1b[A")
	case KeyDown:
		return []byte("\x1b[B")
	case KeyRight:
		return []byte("\x1b[C")
	case KeyLeft:
		return []byte("\x1b[D")
	case KeyHome:
		return []byte("\x1b[H")
	case KeyEnd:
		return []byte("\x1b[F")
	case KeyEnter:
		return []byte("\r")
	case KeyBackspace:
		return []byte("\x7f")
	case KeyTab:
		return []byte("\t")
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyInsert:
		return []byte("\x1b[2~")
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	case KeyF1:
		return []byte("\x1bOP")
	case KeyF2:
		return []byte("\x1bOQ")
	case KeyF3:
		return []byte("\x1bOR")
	case KeyF4:
		return []byte("\x1bOS")
	case KeyF5:
		return []byte("\x1b[15~")
	case KeyF6:
		return []byte("\x1b[17~")
	case KeyF7:
		return []byte("\x1b[18~")
	case KeyF8:
		return []byte("\x1b[19~")
	case KeyF9:
		return []byte("\x1b[20~")
	case KeyF10:
		return []byte("\x1b[21~")
	case KeyF11:
		return []byte("\x1b[23~")
	case KeyF12:
		return []byte("\x1b[24~")
	default:
		return nil
	}
}

// EncodeFunctionKey returns the xterm-style sequence for F5-F12 (n in
// 5..12), following the same `ESC [ n ~` shape as PgUp/PgDn/Delete.
// Returns nil outside that range.
func EncodeFunctionKey(n int) []byte {
	switch n {
	case 5:
		return EncodeKey(KeyF5, false)
	case 6:
		return EncodeKey(KeyF6, false)
	case 7:
		return EncodeKey(KeyF7, false)
	case 8:
		return EncodeKey(KeyF8, false)
	case 9:
		return EncodeKey(KeyF9, false)
	case 10:
		return EncodeKey(KeyF10, false)
	case 11:
		return EncodeKey(KeyF11, false)
	case 12:
		return EncodeKey(KeyF12, false)
	default:
		return nil
	}
}

// EncodeCtrlLetter returns the byte for Ctrl+letter
// (upper(letter) - 'A' + 1). Non-letters return nil.
func EncodeCtrlLetter(letter rune) []byte {
	upper := letter
	if upper >= 'a' && upper <= 'z' {
		upper -= 'a' - 'A'
	}
	if upper < 'A' || upper > 'Z' {
		return nil
	}
	return []byte{byte(upper-'A') + 1}
}

// EncodeRune returns the UTF-8 bytes of a printable character.
func EncodeRune(r rune) []byte {
	return []byte(string(r))
}

// EncodePaste wraps text in bracketed-paste markers when bracketedPaste is
// enabled, and returns it verbatim otherwise.
func EncodePaste(text string, bracketedPaste bool) []byte {
	if !bracketedPaste {
		return []byte(text)
	}
	out := make([]byte, 0, len(text)+12)
	out = append(out, "\x1b[200~"...)
	out = append(out, text...)
	out = append(out, "\x1b[201~"...)
	return out
}

// MouseButton identifies which button (or release/motion) a mouse event
// reports, encoded into the SGR button parameter per xterm's convention.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonRelease
	MouseButtonMotion
)

// EncodeMouse returns the SGR mouse sequence for a press (release=false)
// or release (release=true) at the given 1-based col/row, or nil if no
// mouse tracking mode is enabled.
func EncodeMouse(button MouseButton, col, row int, release bool, mouseTrackingEnabled bool) []byte {
	if !mouseTrackingEnabled {
		return nil
	}
	b := int(button)
	if button == MouseButtonMotion {
		b = 32 + int(MouseButtonLeft)
	}
	final := byte('M')
	if release {
		final = 'm'
	}
	return []byte("\x1b[<" + strconv.Itoa(b) + ";" + strconv.Itoa(col) + ";" + strconv.Itoa(row) + string(final))
}
