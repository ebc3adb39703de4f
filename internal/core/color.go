package core

// Color is a framebuffer pixel in 0xAARRGGBB form.
type Color uint32

// RGB builds an opaque colour from its channels.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Predefined colours used by the board and the debug background keys.
const (
	ColorBlack  Color = 0xFF000000
	ColorWhite  Color = 0xFFEEEEEE
	ColorRed    Color = 0xFFED1C24
	ColorGreen  Color = 0xFF22B14C
	ColorBlue   Color = 0xFF3F48CC
	ColorYellow Color = 0xFFFFF200
	ColorPurple Color = 0xFFA349A4
	ColorOrange Color = 0xFFFF7F27
	ColorGray   Color = 0xFF7F7F7F
)

// PaletteSize is the number of colours addressable by a 3-bit colour field.
const PaletteSize = 8

// Palette maps 3-bit colour indices to pixel colours.
type Palette [PaletteSize]Color

// DefaultPalette is used when no palette is configured.
var DefaultPalette = Palette{
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorYellow,
	ColorPurple,
	ColorOrange,
	ColorWhite,
	ColorGray,
}

// At returns the colour for a 3-bit index. Higher bits are ignored.
func (p *Palette) At(i uint8) Color {
	return p[i&(PaletteSize-1)]
}
