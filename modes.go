package vtkernel

// Modes tracks the terminal-wide flags toggled by SM/RM (the DEC private
// mode table). Flags that only affect a single screen cell
// (cursor visibility, cursor blink) live on Grid's active Cursor instead
// of being duplicated here.
type Modes struct {
	ApplicationCursorKeys bool
	AutoWrap              bool
	OriginMode            bool

	MouseTracking       bool // 1000: X10/normal mouse reporting
	MouseButtonTracking bool // 1002: button-event tracking
	MouseSGR            bool // 1006: SGR extended mouse coordinates

	BracketedPaste bool
	FocusEvents    bool // 1004: report terminal focus in/out
}

// NewModes returns the power-on default: auto-wrap enabled, everything
// else off.
func NewModes() Modes {
	return Modes{AutoWrap: true}
}

// Set applies an SM (enabled=true) or RM (enabled=false) for mode n.
// Only DEC-private modes are recognized, so a non-priv request is
// reported unknown.
func (m *Modes) Set(grid *Grid, priv bool, n int, enabled bool, unknown func(n int)) {
	if !priv {
		if unknown != nil {
			unknown(n)
		}
		return
	}

	switch n {
	case 1:
		m.ApplicationCursorKeys = enabled
	case 7:
		m.AutoWrap = enabled
	case 12:
		grid.Cursor().Blink = enabled
	case 25:
		grid.Cursor().Visible = enabled
	case 47, 1047:
		m.toggleAltScreen(grid, enabled, false)
	case 1049:
		m.toggleAltScreen(grid, enabled, true)
	case 1000:
		m.MouseTracking = enabled
	case 1002:
		m.MouseButtonTracking = enabled
	case 1006:
		m.MouseSGR = enabled
	case 2004:
		m.BracketedPaste = enabled
	case 1004:
		m.FocusEvents = enabled
	default:
		if unknown != nil {
			unknown(n)
		}
	}
}

// toggleAltScreen enters/exits the alternate screen. When saveCursor is
// set (mode 1049), the cursor and pen are saved on entry and restored on
// exit, in addition to the plain screen switch modes 47/1047 perform.
func (m *Modes) toggleAltScreen(grid *Grid, enabled, saveCursor bool) {
	if enabled {
		if saveCursor {
			grid.SaveCursor(m.OriginMode)
		}
		grid.UseAlternateScreen()
		return
	}

	grid.UseMainScreen()
	if saveCursor {
		if origin, ok := grid.RestoreCursor(); ok {
			m.OriginMode = origin
		}
	}
}
