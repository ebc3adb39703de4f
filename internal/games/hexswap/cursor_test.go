package hexswap

import "testing"

func TestCursorVariants(t *testing.T) {
	u := Unselected(41)
	if u.IsSelected() || u.Active() != 41 || u.Anchor() != 41 {
		t.Errorf("Unselected(41) = %v", u)
	}
	cells, n := u.Highlighted()
	if n != 1 || cells[0] != 41 {
		t.Errorf("Highlighted() = %v, %d, expected [41], 1", cells, n)
	}

	s := Selected(41, 2)
	if !s.IsSelected() || s.Anchor() != 41 || s.Active() != 2 {
		t.Errorf("Selected(41, 2) = %v", s)
	}
	cells, n = s.Highlighted()
	if n != 2 || cells[0] != 41 || cells[1] != 2 {
		t.Errorf("Highlighted() = %v, %d, expected [41 2], 2", cells, n)
	}
}

func TestStepCursorMovesOnlyDrag(t *testing.T) {
	c := Selected(StartIndex, StartIndex)

	next, ok := stepCursor(c, DirRight)
	if !ok {
		t.Fatal("move right from (1, 1) should be accepted")
	}
	if next.Anchor() != StartIndex {
		t.Errorf("anchor moved to %d", next.Anchor())
	}
	if next.Active() != IndexOf(2, 0) {
		t.Errorf("drag = %d, expected %d", next.Active(), IndexOf(2, 0))
	}
}

func TestStepCursorRejectsOffBoard(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		dir  Dir
	}{
		{"up from top row", 4, 0, DirUp},
		{"up from second row", 5, 1, DirUp},
		{"down from bottom row", 4, GridH - 1, DirDown},
		{"down from second last row", 4, GridH - 2, DirDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Unselected(IndexOf(tc.x, tc.y))
			next, ok := stepCursor(c, tc.dir)
			if ok || next != c {
				t.Errorf("stepCursor() = %v, %v, expected rejection", next, ok)
			}
		})
	}
}

func TestStepCursorRejectsEdgeWrap(t *testing.T) {
	// Rows where the raw offset would alias the opposite board edge.
	tests := []struct {
		name string
		x, y int
		dir  Dir
	}{
		{"left from column 0, class 0", 0, 3, DirLeft},
		{"left from column 0, class 1", 0, 4, DirLeft},
		{"right from last column, class 1", GridW - 1, 4, DirRight},
		{"right from last column, class 2", GridW - 1, 5, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			i := IndexOf(tc.x, tc.y)
			for _, c := range []Cursor{Unselected(i), Selected(i, i)} {
				next, ok := stepCursor(c, tc.dir)
				if ok || next != c {
					t.Errorf("stepCursor(%v) = %v, %v, expected rejection", c, next, ok)
				}
			}
		})
	}
}

func TestStepCursorNeverCrossesEdge(t *testing.T) {
	for y := 0; y < GridH; y++ {
		for _, x := range []int{0, GridW - 1} {
			for _, d := range allDirs {
				c := Unselected(IndexOf(x, y))
				next, ok := stepCursor(c, d)
				if !ok {
					continue
				}
				nx, _ := CoordOf(next.Active())
				if (x == 0 && nx == GridW-1) || (x == GridW-1 && nx == 0) {
					t.Fatalf("(%d, %d) %v wrapped to column %d", x, y, d, nx)
				}
			}
		}
	}
}

// In row class 2 a left half on column 0 has a genuine neighbour to its
// lower right, so the move is kept.
func TestStepCursorKeepsGenuineEdgeNeighbour(t *testing.T) {
	c := Unselected(IndexOf(0, 2))
	next, ok := stepCursor(c, DirLeft)
	if !ok {
		t.Fatal("move should be accepted")
	}
	if next.Active() != IndexOf(1, 3) {
		x, y := CoordOf(next.Active())
		t.Errorf("moved to (%d, %d), expected (1, 3)", x, y)
	}
}
