package hexswap

import "fmt"

// Pixel layout of the board.
const (
	HexWidth      = 4
	HexHeight     = 8
	HalfHexHeight = HexHeight / 2
	EdgeOffset    = 6
	cellStride    = 6 // horizontal pixels per column
)

// PixelOf returns the top-left pixel of cell (x, y). Each row is shifted
// right by HexWidth per row class; right halves sit two pixels closer to
// their left partner.
func PixelOf(x, y int) (px, py uint8) {
	xOffset := (y % RowTypes) * HexWidth
	p := x*cellStride + xOffset + EdgeOffset
	if !IsLeft(x) {
		p -= 2
	}
	return uint8(p), uint8(y*HalfHexHeight + EdgeOffset)
}

// PixelOfIndex returns the top-left pixel of cell i.
func PixelOfIndex(i int) (px, py uint8) {
	return PixelOf(CoordOf(mustIndex(i)))
}

// CellAt is the inverse of PixelOf. It panics on a position that is not
// the top-left pixel of a cell.
func CellAt(px, py uint8) int {
	dy := int(py) - EdgeOffset
	if dy < 0 || dy%HalfHexHeight != 0 {
		panic(fmt.Sprintf("hexswap: pixel (%d, %d) is not on a cell row", px, py))
	}
	y := dy / HalfHexHeight

	v := int(px) - EdgeOffset - (y%RowTypes)*HexWidth
	var x int
	switch {
	case v >= 0 && v%(2*cellStride) == 0:
		x = v / cellStride
	case v >= 0 && (v+2)%(2*cellStride) == cellStride:
		x = (v + 2) / cellStride
	default:
		panic(fmt.Sprintf("hexswap: pixel (%d, %d) is not on a cell column", px, py))
	}
	if x >= GridW || y >= GridH {
		panic(fmt.Sprintf("hexswap: pixel (%d, %d) is outside the board", px, py))
	}
	return IndexOf(x, y)
}
