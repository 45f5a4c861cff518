package vtkernel

// applySGR applies a Select Graphic Rendition parameter list to pen,
// consumed left to right. Unknown numbers are logged and skipped by the
// caller, not here.
func applySGR(pen *CellTemplate, params Params, unknown func(n int)) {
	if params.Count() == 0 {
		*pen = CellTemplate{}
		return
	}

	for i := 0; i < params.Count(); i++ {
		n := params.Get(i, 0)
		switch {
		case n == 0:
			*pen = CellTemplate{}
		case n == 1:
			pen.Attrs = pen.Attrs.Set(AttrBold)
		case n == 3:
			pen.Attrs = pen.Attrs.Set(AttrItalic)
		case n == 4:
			pen.Attrs = pen.Attrs.Set(AttrUnderline)
		case n == 5:
			pen.Attrs = pen.Attrs.Set(AttrBlink)
		case n == 7:
			pen.Attrs = pen.Attrs.Set(AttrReverse)
		case n == 8:
			pen.Attrs = pen.Attrs.Set(AttrHidden)
		case n == 9:
			pen.Attrs = pen.Attrs.Set(AttrStrikethrough)
		case n == 22:
			pen.Attrs = pen.Attrs.Clear(AttrBold)
		case n == 23:
			pen.Attrs = pen.Attrs.Clear(AttrItalic)
		case n == 24:
			pen.Attrs = pen.Attrs.Clear(AttrUnderline)
		case n == 25:
			pen.Attrs = pen.Attrs.Clear(AttrBlink)
		case n == 27:
			pen.Attrs = pen.Attrs.Clear(AttrReverse)
		case n == 28:
			pen.Attrs = pen.Attrs.Clear(AttrHidden)
		case n == 29:
			pen.Attrs = pen.Attrs.Clear(AttrStrikethrough)
		case n >= 30 && n <= 37:
			pen.Fg = ColorSpec{Explicit: true, Color: ColorFromIndex(n - 30)}
		case n == 38:
			i = applyExtendedColor(&pen.Fg, params, i, unknown)
		case n == 39:
			pen.Fg = ColorSpec{}
		case n >= 40 && n <= 47:
			pen.Bg = ColorSpec{Explicit: true, Color: ColorFromIndex(n - 40)}
		case n == 48:
			i = applyExtendedColor(&pen.Bg, params, i, unknown)
		case n == 49:
			pen.Bg = ColorSpec{}
		case n >= 90 && n <= 97:
			pen.Fg = ColorSpec{Explicit: true, Color: ColorFromIndex(n - 90 + 8)}
		case n >= 100 && n <= 107:
			pen.Bg = ColorSpec{Explicit: true, Color: ColorFromIndex(n - 100 + 8)}
		default:
			if unknown != nil {
				unknown(n)
			}
		}
	}
}

// applyExtendedColor consumes the 38/48 extended forms: "5;n" (palette
// index) or "2;r;g;b" (direct RGB), starting at params[i+1]. Returns the
// index of the last parameter consumed so the caller's loop can skip past
// it.
func applyExtendedColor(slot *ColorSpec, params Params, i int, unknown func(n int)) int {
	mode := params.Get(i+1, -1)
	switch mode {
	case 5:
		idx := params.Get(i+2, 0)
		*slot = ColorSpec{Explicit: true, Color: ColorFromIndex(idx)}
		return i + 2
	case 2:
		r := params.Get(i+2, 0)
		g := params.Get(i+3, 0)
		b := params.Get(i+4, 0)
		*slot = ColorSpec{Explicit: true, Color: RGB(uint8(r), uint8(g), uint8(b))}
		return i + 4
	default:
		if unknown != nil {
			unknown(38)
		}
		return i
	}
}
