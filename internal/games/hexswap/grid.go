package hexswap

import "fmt"

// Board dimensions. The width must stay even so that every left half has
// its right partner on the same row.
const (
	GridW   = 40
	GridH   = 60
	GridLen = GridW * GridH
)

// Cell is one grid slot. The zero value is an empty cell.
type Cell struct {
	Spec   HalfHexSpec
	Filled bool
}

// FilledCell returns a cell holding s.
func FilledCell(s HalfHexSpec) Cell {
	return Cell{Spec: s, Filled: true}
}

// Empty returns an unoccupied cell.
func Empty() Cell {
	return Cell{}
}

// Grid is the board, stored row-major: index = y*GridW + x.
type Grid [GridLen]Cell

// GenerateInitial fills every cell with specs 0, 1, 2, ... in index order,
// wrapping at 256.
func GenerateInitial() Grid {
	var g Grid
	var s HalfHexSpec
	for i := range g {
		g[i] = FilledCell(s)
		s++
	}
	return g
}

// CoordOf converts a flat index to its (x, y) cell coordinate.
func CoordOf(i int) (x, y int) {
	return i % GridW, i / GridW
}

// IndexOf converts an (x, y) cell coordinate to its flat index.
func IndexOf(x, y int) int {
	return y*GridW + x
}

// InBounds reports whether i addresses a grid cell.
func InBounds(i int) bool {
	return i >= 0 && i < GridLen
}

// IsLeft reports whether column x holds the left half of its hexagon.
func IsLeft(x int) bool {
	return x&1 == 0
}

// Partner returns the index of the other half of i's hexagon.
func Partner(i int) int {
	if IsLeft(i % GridW) {
		return i + 1
	}
	return i - 1
}

// mustIndex panics on an index outside the board: reaching it is a bug in
// the simulation, never a gameplay condition.
func mustIndex(i int) int {
	if !InBounds(i) {
		panic(fmt.Sprintf("hexswap: cell index %d out of range [0, %d)", i, GridLen))
	}
	return i
}

// At returns the cell at index i.
func (g *Grid) At(i int) Cell {
	return g[mustIndex(i)]
}

// Occupied reports whether cell i holds a half-hex.
func (g *Grid) Occupied(i int) bool {
	return g[mustIndex(i)].Filled
}

// Put stores s in cell i.
func (g *Grid) Put(i int, s HalfHexSpec) {
	g[mustIndex(i)] = FilledCell(s)
}

// Clear empties cell i.
func (g *Grid) Clear(i int) {
	g[mustIndex(i)] = Empty()
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, c := range g {
		if c.Filled {
			n++
		}
	}
	return n
}
