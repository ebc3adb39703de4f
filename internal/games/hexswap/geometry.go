package hexswap

// Dir is a cursor movement direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// RowTypes is the period of the staggered row layout.
const RowTypes = 3

// movement holds the neighbour offsets of the packed hex layout, indexed by
// row class (y mod 3) << 3 | side (x & 1) << 2 | direction.
// Rows repeat every three because each row is shifted right by HexWidth.
var movement = [RowTypes * 2 * 4]int{
	// row class 0, left half
	-(GridW + 1), 2*GridW - 1, GridW - 1, 1,
	// row class 0, right half
	-(2*GridW + 1), GridW - 1, -1, -(GridW + 1),
	// row class 1, left half
	-(GridW - 1), 2*GridW + 1, GridW - 1, 1,
	// row class 1, right half
	-(2*GridW + 1), GridW - 1, -1, -(GridW - 1),
	// row class 2, left half
	-(GridW - 1), 2*GridW + 1, GridW + 1, 1,
	// row class 2, right half
	-(2*GridW - 1), GridW + 1, -1, -(GridW - 1),
}

// MovementOffset returns the index offset of the neighbour of cell (x, y) in
// direction d. The result is not bounds checked.
func MovementOffset(x, y int, d Dir) int {
	return movement[(y%RowTypes)<<3|(x&1)<<2|int(d)]
}
