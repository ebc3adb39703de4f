package hexswap

// Snapshot captures the simulation state for determinism testing.
type Snapshot struct {
	Frame      uint64
	Cursor     Cursor
	Occupied   int
	Animations int
	Grid       Grid
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Frame:      s.frame,
		Cursor:     s.cursor,
		Occupied:   s.grid.OccupiedCount(),
		Animations: len(s.animations),
		Grid:       s.grid,
	}
}
