package hexswap

import "fmt"

// Cursor is either Unselected at one cell, or Selected with a fixed anchor
// and a drag position that follows directional input.
type Cursor struct {
	selected bool
	anchor   int // meaningful only when selected
	active   int // the sole position, or the drag position
}

// Unselected returns a cursor resting on cell i.
func Unselected(i int) Cursor {
	return Cursor{active: i}
}

// Selected returns a cursor anchored at anchor and dragged to drag.
func Selected(anchor, drag int) Cursor {
	return Cursor{selected: true, anchor: anchor, active: drag}
}

// IsSelected reports whether a selection is in progress.
func (c Cursor) IsSelected() bool {
	return c.selected
}

// Active returns the position that responds to movement input.
func (c Cursor) Active() int {
	return c.active
}

// Anchor returns the anchor of a selection, or the sole position when
// unselected.
func (c Cursor) Anchor() int {
	if c.selected {
		return c.anchor
	}
	return c.active
}

// Highlighted returns the cells to outline: one when unselected, anchor and
// drag when selected.
func (c Cursor) Highlighted() (cells [2]int, n int) {
	if c.selected {
		return [2]int{c.anchor, c.active}, 2
	}
	return [2]int{c.active}, 1
}

// withActive moves the active position, leaving the anchor alone.
func (c Cursor) withActive(i int) Cursor {
	c.active = i
	return c
}

func (c Cursor) String() string {
	if c.selected {
		return fmt.Sprintf("Selected(%d, %d)", c.anchor, c.active)
	}
	return fmt.Sprintf("Unselected(%d)", c.active)
}

// StartIndex is the initial cursor cell: (1, 1), one step in from the
// corner so no move from it is ambiguous.
const StartIndex = GridW + 1

// stepCursor moves the active position of c one hex in direction d.
// It returns false and c unchanged when the target is off the board or the
// index arithmetic wrapped across the left/right edge.
func stepCursor(c Cursor, d Dir) (Cursor, bool) {
	from := c.Active()
	x, y := CoordOf(from)

	to := from + MovementOffset(x, y, d)
	if !InBounds(to) {
		return c, false
	}

	newX, _ := CoordOf(to)
	looped := (x == 0 && newX == GridW-1) || (x == GridW-1 && newX == 0)
	if looped {
		return c, false
	}
	return c.withActive(to), true
}
