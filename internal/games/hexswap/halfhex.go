package hexswap

import "github.com/vovakirdan/hexswap/internal/core"

// HalfHexSpec is the packed colour descriptor of one half-hex cell.
// Bits 0-2 hold the inside colour, bits 4-6 the outline colour; bits 3 and 7
// are reserved and ignored.
type HalfHexSpec uint8

const specColorMask HalfHexSpec = 0b0111_0111

// Masked returns the spec with the reserved bits cleared.
func (s HalfHexSpec) Masked() HalfHexSpec {
	return s & specColorMask
}

// InsideColor returns the 3-bit palette index of the fill.
func (s HalfHexSpec) InsideColor() uint8 {
	return uint8(s & 0b111)
}

// OutlineColor returns the 3-bit palette index of the outline.
func (s HalfHexSpec) OutlineColor() uint8 {
	return uint8(s>>4) & 0b111
}

// Matches reports whether both colour fields are equal after masking.
func (s HalfHexSpec) Matches(other HalfHexSpec) bool {
	return s.Masked() == other.Masked()
}

// ColorsOf maps both colour fields of s through the palette.
func ColorsOf(s HalfHexSpec, p *core.Palette) (inside, outline core.Color) {
	return p.At(s.InsideColor()), p.At(s.OutlineColor())
}
