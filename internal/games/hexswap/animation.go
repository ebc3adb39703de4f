package hexswap

import "github.com/vovakirdan/hexswap/internal/core"

// DelayFactor sets the tween length: each axis moves distance/DelayFactor
// pixels per frame, so crossings take about DelayFactor frames.
const DelayFactor = 16

// Animation is one half-hex in flight between two cells, in pixel space.
type Animation struct {
	X, Y             uint8
	TargetX, TargetY uint8
	RateX, RateY     uint8
	Spec             HalfHexSpec
	// Left is the half-hex shape to draw: that of the destination cell.
	Left bool
}

// NewAnimation creates the tween carrying spec from cell from to cell to.
func NewAnimation(from, to int, spec HalfHexSpec) Animation {
	x, y := PixelOfIndex(from)
	tx, ty := PixelOfIndex(to)
	toX, _ := CoordOf(to)

	return Animation{
		X:       x,
		Y:       y,
		TargetX: tx,
		TargetY: ty,
		RateX:   rateFor(x, tx),
		RateY:   rateFor(y, ty),
		Spec:    spec,
		Left:    IsLeft(toX),
	}
}

func rateFor(from, to uint8) uint8 {
	return uint8(core.Max(1, distance(from, to)/DelayFactor))
}

// distance is the pixel distance between two coordinates on one axis.
func distance(a, b uint8) int {
	return core.Abs(int(a) - int(b))
}

// approach moves v toward target by at most rate, never overshooting.
func approach(v, target, rate uint8) uint8 {
	switch {
	case v < target:
		return v + uint8(core.Min(int(rate), int(target-v)))
	case v > target:
		return v - uint8(core.Min(int(rate), int(v-target)))
	default:
		return v
	}
}

// ApproachTarget advances both axes independently by one frame.
func (a *Animation) ApproachTarget() {
	a.X = approach(a.X, a.TargetX, a.RateX)
	a.Y = approach(a.Y, a.TargetY, a.RateY)
}

// IsComplete reports whether the animation reached its target.
func (a *Animation) IsComplete() bool {
	return a.X == a.TargetX && a.Y == a.TargetY
}

// destination returns the grid index the animation lands on.
func (a *Animation) destination() int {
	return CellAt(a.TargetX, a.TargetY)
}
