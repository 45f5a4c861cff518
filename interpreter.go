package vtkernel

import "strconv"

// Interpreter implements Sink: it receives completed tokens from Parser
// and drives a Grid and Modes directly, one method per action, with no
// handler interface sitting between the two.
type Interpreter struct {
	grid  *Grid
	modes Modes
	log   Logger

	// respond writes a reply sequence back to the PTY (DSR/CPR, DA).
	// nil is valid: responses are simply dropped.
	respond func([]byte)
}

// NewInterpreter creates an interpreter driving grid, with the power-on
// mode defaults. respond may be nil if the caller never needs DSR/DA
// replies delivered anywhere.
func NewInterpreter(grid *Grid, log Logger, respond func([]byte)) *Interpreter {
	if log == nil {
		log = nopLogger{}
	}
	return &Interpreter{grid: grid, modes: NewModes(), log: log, respond: respond}
}

// Modes exposes the interpreter's mode state, read-only, for snapshot
// rendering (application cursor keys, bracketed paste, mouse tracking).
func (ip *Interpreter) Modes() Modes { return ip.modes }

// Print handles a single decoded printable character.
func (ip *Interpreter) Print(r rune) {
	ip.grid.PutCharWrap(r, ip.modes.AutoWrap)
}

// C0 handles a single C0 control code.
func (ip *Interpreter) C0(b byte) {
	switch b {
	case 0x07: // BEL
		// no visual bell model in this core; ignored.
	case 0x08: // BS
		ip.grid.MoveCursorBy(0, -1, false)
	case 0x09: // HT
		cur := ip.grid.Cursor()
		cur.Col = ip.grid.NextTabStop(cur.Col)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		ip.grid.LineFeed()
	case 0x0D: // CR
		ip.grid.CarriageReturn()
	case 0x0E, 0x0F: // SO, SI: charset switching, non-goal
	default:
		ip.log.UnknownSequence("c0", int(b))
	}
}

// EscapeFinal handles a completed escape sequence (ESC + optional
// intermediate + final byte).
func (ip *Interpreter) EscapeFinal(intermediate, final byte) {
	if intermediate == '#' {
		if final == '8' {
			ip.grid.FillWithE() // DECALN
		}
		return
	}

	switch final {
	case 'D': // IND
		ip.grid.LineFeed()
	case 'E': // NEL
		ip.grid.CarriageReturn()
		ip.grid.LineFeed()
	case 'H': // HTS
		cur := ip.grid.Cursor()
		ip.grid.SetTabStop(cur.Col)
	case 'M': // RI
		ip.grid.ReverseIndex()
	case 'Z': // DECID
		ip.reply("\x1b[?1;2c")
	case 'c': // RIS
		ip.reset()
	case '7': // DECSC
		ip.grid.SaveCursor(ip.modes.OriginMode)
	case '8': // DECRC
		if origin, ok := ip.grid.RestoreCursor(); ok {
			ip.modes.OriginMode = origin
		}
	case '=', '>': // DECKPAM / DECKPNM: no distinct keypad mode modeled
	default:
		ip.log.UnknownSequence("esc", int(final))
	}
}

// reset performs RIS: full terminal reset to power-on defaults.
func (ip *Interpreter) reset() {
	rows, cols := ip.grid.Rows(), ip.grid.Cols()
	if ip.grid.IsAlternateScreen() {
		ip.grid.UseMainScreen()
	}
	ip.grid.ResetPen()
	ip.grid.EraseInDisplay(2)
	ip.grid.SetScrollingRegion(0, rows)
	ip.grid.MoveCursorTo(0, 0)
	ip.grid.Cursor().Visible = true
	ip.grid.ClearAllTabStops()
	for col := 0; col < cols; col += 8 {
		ip.grid.SetTabStop(col)
	}
	ip.modes = NewModes()
}

func (ip *Interpreter) reply(s string) {
	if ip.respond != nil {
		ip.respond([]byte(s))
	}
}

// effectiveRow translates an origin-mode-relative row (1-based, relative
// to the scrolling region's top when origin mode is set) into an absolute
// 0-based row. CUP/HVP/VPA all need this.
func (ip *Interpreter) effectiveRow(n int) int {
	row := n - 1
	if ip.modes.OriginMode {
		top, _ := ip.grid.Region()
		row += top
	}
	return row
}

// CSI handles a completed CSI sequence.
func (ip *Interpreter) CSI(params Params, priv bool, intermediate, final byte) {
	switch {
	case final == 'q' && intermediate == ' ':
		ip.decscusr(params)
		return
	case priv && (final == 'h' || final == 'l'):
		ip.sm(params, final == 'h')
		return
	}

	switch final {
	case 'A': // CUU
		ip.grid.MoveCursorBy(-params.GetAtLeast(0, 1), 0, true)
	case 'B': // CUD
		ip.grid.MoveCursorBy(params.GetAtLeast(0, 1), 0, true)
	case 'C': // CUF
		ip.grid.MoveCursorBy(0, params.GetAtLeast(0, 1), false)
	case 'D': // CUB
		ip.grid.MoveCursorBy(0, -params.GetAtLeast(0, 1), false)
	case 'E': // CNL
		ip.grid.MoveCursorBy(params.GetAtLeast(0, 1), 0, true)
		ip.grid.CarriageReturn()
	case 'F': // CPL
		ip.grid.MoveCursorBy(-params.GetAtLeast(0, 1), 0, true)
		ip.grid.CarriageReturn()
	case 'G', '`': // CHA / HPA
		cur := ip.grid.Cursor()
		ip.grid.MoveCursorTo(cur.Row, params.GetAtLeast(0, 1)-1)
	case 'H', 'f': // CUP / HVP
		row := ip.effectiveRow(params.GetAtLeast(0, 1))
		col := params.GetAtLeast(1, 1) - 1
		ip.grid.MoveCursorTo(row, col)
	case 'J': // ED
		ip.grid.EraseInDisplay(params.Get(0, 0))
	case 'K': // EL
		ip.grid.EraseInLine(params.Get(0, 0))
	case 'L': // IL
		ip.grid.InsertLines(params.GetAtLeast(0, 1))
	case 'M': // DL
		ip.grid.DeleteLines(params.GetAtLeast(0, 1))
	case 'P': // DCH
		ip.grid.DeleteChars(params.GetAtLeast(0, 1))
	case '@': // ICH
		ip.grid.InsertBlanks(params.GetAtLeast(0, 1))
	case 'S': // SU
		ip.grid.ScrollUp(params.GetAtLeast(0, 1))
	case 'T': // SD
		ip.grid.ScrollDown(params.GetAtLeast(0, 1))
	case 'X': // ECH
		ip.grid.EraseChars(params.GetAtLeast(0, 1))
	case 'd': // VPA
		cur := ip.grid.Cursor()
		ip.grid.MoveCursorTo(ip.effectiveRow(params.GetAtLeast(0, 1)), cur.Col)
	case 'm': // SGR
		pen := ip.grid.Pen()
		applySGR(&pen, params, func(n int) { ip.log.UnknownSequence("sgr", n) })
		ip.grid.SetPen(pen)
	case 'n': // DSR / CPR
		ip.dsr(params)
	case 'r': // DECSTBM
		ip.decstbm(params)
	case 's': // save cursor (ANSI.SYS form, no priv)
		ip.grid.SaveCursor(ip.modes.OriginMode)
	case 'u': // restore cursor
		if origin, ok := ip.grid.RestoreCursor(); ok {
			ip.modes.OriginMode = origin
		}
	case 'c': // DA
		ip.reply("\x1b[?1;2c")
	default:
		ip.log.UnknownSequence("csi", int(final))
	}
}

func (ip *Interpreter) sm(params Params, enabled bool) {
	for i := 0; i < params.Count(); i++ {
		n := params.Get(i, 0)
		ip.modes.Set(ip.grid, true, n, enabled, func(n int) { ip.log.UnknownSequence("mode", n) })
	}
}

// decstbm sets the scrolling region (CSI r), converting from 1-based
// inclusive to 0-based half-open, and homes the cursor per DEC's rule
// that a successful DECSTBM moves the cursor to the region's origin.
func (ip *Interpreter) decstbm(params Params) {
	rows := ip.grid.Rows()
	top := params.Get(0, 1) - 1
	bottom := params.Get(1, rows)
	ip.grid.SetScrollingRegion(top, bottom)
	row := 0
	if ip.modes.OriginMode {
		top, _ := ip.grid.Region()
		row = top
	}
	ip.grid.MoveCursorTo(row, 0)
}

// dsr answers CSI 6n (report cursor position) with a CPR reply; CSI 5n
// (device status) reports "OK". Other codes are logged and ignored.
func (ip *Interpreter) dsr(params Params) {
	switch params.Get(0, 0) {
	case 5:
		ip.reply("\x1b[0n")
	case 6:
		cur := ip.grid.Cursor()
		row, col := cur.Row+1, cur.Col+1
		if ip.modes.OriginMode {
			top, _ := ip.grid.Region()
			row -= top
		}
		ip.reply("\x1b[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "R")
	default:
		ip.log.UnknownSequence("dsr", params.Get(0, 0))
	}
}

func (ip *Interpreter) decscusr(params Params) {
	n := params.Get(0, 1)
	cur := ip.grid.Cursor()
	switch n {
	case 0, 1:
		cur.Style, cur.Blink = CursorStyleBlock, true
	case 2:
		cur.Style, cur.Blink = CursorStyleBlock, false
	case 3:
		cur.Style, cur.Blink = CursorStyleUnderline, true
	case 4:
		cur.Style, cur.Blink = CursorStyleUnderline, false
	case 5:
		cur.Style, cur.Blink = CursorStyleBar, true
	case 6:
		cur.Style, cur.Blink = CursorStyleBar, false
	default:
		ip.log.UnknownSequence("decscusr", n)
	}
}
