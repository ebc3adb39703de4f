package hexswap

import "testing"

func TestNewAnimationRates(t *testing.T) {
	tests := []struct {
		name         string
		from, to     int
		rateX, rateY uint8
	}{
		{"short hop", IndexOf(1, 1), IndexOf(2, 0), 1, 1},
		{"same cell", 41, 41, 1, 1},
		{"across the row", IndexOf(0, 0), IndexOf(38, 0), 14, 1},
		{"down the board", IndexOf(0, 0), IndexOf(0, 57), 1, 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnimation(tc.from, tc.to, 7)
			if a.RateX != tc.rateX || a.RateY != tc.rateY {
				t.Errorf("rates = (%d, %d), expected (%d, %d)", a.RateX, a.RateY, tc.rateX, tc.rateY)
			}
			px, py := PixelOfIndex(tc.from)
			if a.X != px || a.Y != py {
				t.Errorf("start = (%d, %d), expected (%d, %d)", a.X, a.Y, px, py)
			}
			tx, ty := PixelOfIndex(tc.to)
			if a.TargetX != tx || a.TargetY != ty {
				t.Errorf("target = (%d, %d), expected (%d, %d)", a.TargetX, a.TargetY, tx, ty)
			}
			if a.destination() != tc.to {
				t.Errorf("destination() = %d, expected %d", a.destination(), tc.to)
			}
		})
	}
}

func TestApproachTargetMonotonicAndTerminates(t *testing.T) {
	pairs := [][2]int{
		{IndexOf(1, 1), IndexOf(2, 0)},
		{IndexOf(0, 0), IndexOf(39, 59)},
		{IndexOf(39, 59), IndexOf(0, 0)},
		{IndexOf(20, 30), IndexOf(3, 31)},
		{IndexOf(5, 50), IndexOf(6, 2)},
	}

	for _, p := range pairs {
		a := NewAnimation(p[0], p[1], 0)
		dx, dy := distance(a.X, a.TargetX), distance(a.Y, a.TargetY)
		limit := dx + dy + 1

		frames := 0
		for !a.IsComplete() {
			a.ApproachTarget()
			frames++

			ndx, ndy := distance(a.X, a.TargetX), distance(a.Y, a.TargetY)
			if ndx > dx || ndy > dy {
				t.Fatalf("%d -> %d: distance grew from (%d, %d) to (%d, %d)", p[0], p[1], dx, dy, ndx, ndy)
			}
			if dx > 0 && ndx == dx {
				t.Fatalf("%d -> %d: x axis stalled at %d", p[0], p[1], dx)
			}
			if dy > 0 && ndy == dy {
				t.Fatalf("%d -> %d: y axis stalled at %d", p[0], p[1], dy)
			}
			dx, dy = ndx, ndy

			if frames > limit {
				t.Fatalf("%d -> %d: not complete after %d frames", p[0], p[1], frames)
			}
		}

		// Roughly DelayFactor frames regardless of distance
		if frames > 2*DelayFactor+1 {
			t.Errorf("%d -> %d took %d frames", p[0], p[1], frames)
		}
	}
}

func TestApproachNeverOvershoots(t *testing.T) {
	tests := []struct {
		v, target, rate, want uint8
	}{
		{0, 10, 3, 3},
		{9, 10, 3, 10},
		{10, 0, 3, 7},
		{1, 0, 3, 0},
		{5, 5, 3, 5},
		{250, 255, 14, 255},
		{5, 0, 14, 0},
	}

	for _, tc := range tests {
		if got := approach(tc.v, tc.target, tc.rate); got != tc.want {
			t.Errorf("approach(%d, %d, %d) = %d, expected %d", tc.v, tc.target, tc.rate, got, tc.want)
		}
	}
}
