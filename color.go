package vtkernel

// Color is a 24-bit RGB color. Zero value is black; callers distinguish
// "unset" (use default fg/bg) from "explicitly black" via ColorSpec's
// Explicit flag rather than by the Color value itself.
type Color struct {
	R, G, B uint8
}

// RGB constructs a Color from three 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// standardPalette holds the 16 standard/bright ANSI colors (indices 0-15).
var standardPalette = [16]Color{
	{0, 0, 0},       // black
	{205, 49, 49},   // red
	{13, 188, 121},  // green
	{229, 229, 16},  // yellow
	{36, 114, 200},  // blue
	{188, 63, 188},  // magenta
	{17, 168, 205},  // cyan
	{229, 229, 229}, // white

	{102, 102, 102}, // bright black
	{241, 76, 76},   // bright red
	{35, 209, 139},  // bright green
	{245, 245, 67},  // bright yellow
	{59, 142, 234},  // bright blue
	{214, 112, 214}, // bright magenta
	{41, 184, 219},  // bright cyan
	{255, 255, 255}, // bright white
}

// DefaultForeground and DefaultBackground are the colors used when the pen
// has no explicit fg/bg set (SGR 39/49, or a freshly reset pen).
var (
	DefaultForeground = Color{229, 229, 229}
	DefaultBackground = Color{0, 0, 0}
)

// ColorSpec is an fg/bg slot: either "use the grid's current default" or an
// explicit color set via SGR (palette index or direct RGB). It is a plain
// value so Cell retains value semantics with no identity.
type ColorSpec struct {
	Explicit bool
	Color    Color
}

// defaultColorSpec is the zero value: Explicit is false, meaning "track the
// grid's default fg/bg".
var defaultColorSpec = ColorSpec{}

// Resolve returns the concrete color: the spec's color if explicit, else
// def (the grid's current default fg or bg).
func (c ColorSpec) Resolve(def Color) Color {
	if c.Explicit {
		return c.Color
	}
	return def
}

// cubeStep maps a 0..5 cube component to its 8-bit intensity:
// {0, 95, 135, 175, 215, 255}.
var cubeStep = [6]uint8{0, 95, 135, 175, 215, 255}

// ColorFromIndex converts a 256-color palette index to RGB.
//
//   - 0-15:   standard/bright palette (fixed table)
//   - 16-231: 6x6x6 color cube
//   - 232-255: 24-step grayscale ramp, starting at 8, step 10
//
// Indices outside 0-255 return DefaultForeground.
func ColorFromIndex(index int) Color {
	switch {
	case index >= 0 && index < 16:
		return standardPalette[index]
	case index >= 16 && index < 232:
		n := index - 16
		r := n / 36
		g := (n / 6) % 6
		b := n % 6
		return Color{cubeStep[r], cubeStep[g], cubeStep[b]}
	case index >= 232 && index < 256:
		gray := uint8(8 + (index-232)*10)
		return Color{gray, gray, gray}
	default:
		return DefaultForeground
	}
}

// CellAttributes is a bitmask of text styling flags.
type CellAttributes uint8

const (
	AttrBold CellAttributes = 1 << iota
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrBlink
	AttrHidden
	AttrStrikethrough
)

// Has reports whether every bit in flag is set.
func (a CellAttributes) Has(flag CellAttributes) bool {
	return a&flag == flag
}

// Set returns a with flag enabled.
func (a CellAttributes) Set(flag CellAttributes) CellAttributes {
	return a | flag
}

// Clear returns a with flag disabled.
func (a CellAttributes) Clear(flag CellAttributes) CellAttributes {
	return a &^ flag
}
