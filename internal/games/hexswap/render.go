package hexswap

import "github.com/vovakirdan/hexswap/internal/core"

// Highlight rectangle around a half-hex.
const (
	highlightW = HexWidth + 2
	highlightH = HexHeight + 2
)

// Render draws the board, the cursor highlight and the pieces in flight.
func (s *State) Render(dst core.Surface) {
	dst.Clear(s.background)

	for i := range s.grid {
		c := s.grid[i]
		if !c.Filled {
			continue
		}
		x, y := CoordOf(i)
		px, py := PixelOf(x, y)
		s.drawHalfHex(dst, px, py, IsLeft(x), c.Spec)
	}

	phase := AntsPhase(s.frame)
	cells, n := s.cursor.Highlighted()
	for _, i := range cells[:n] {
		px, py := PixelOfIndex(i)
		dst.RectPattern(int(px)-1, int(py)-1, highlightW, highlightH, phase)
	}

	for i := range s.animations {
		a := &s.animations[i]
		s.drawHalfHex(dst, a.X, a.Y, a.Left, a.Spec)
	}
}

func (s *State) drawHalfHex(dst core.Surface, px, py uint8, left bool, spec HalfHexSpec) {
	inside, outline := ColorsOf(spec, &s.palette)
	if left {
		dst.HexagonLeft(int(px), int(py), inside, outline)
	} else {
		dst.HexagonRight(int(px), int(py), inside, outline)
	}
}

// AntsPhase returns the marching ants phase (0-3); it advances every eight
// frames.
func AntsPhase(frame uint64) uint8 {
	return uint8(frame>>3) & 3
}
