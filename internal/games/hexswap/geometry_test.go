package hexswap

import "testing"

var allDirs = [...]Dir{DirUp, DirDown, DirLeft, DirRight}

func TestMovementTableTotal(t *testing.T) {
	for class := 0; class < RowTypes; class++ {
		for side := 0; side < 2; side++ {
			for _, d := range allDirs {
				off := MovementOffset(side, class, d)
				if off == 0 {
					t.Errorf("offset for class %d side %d %v is zero", class, side, d)
				}
				if off < -2*GridW-1 || off > 2*GridW+1 {
					t.Errorf("offset %d for class %d side %d %v is out of range", off, class, side, d)
				}
			}
		}
	}
}

func TestMovementSpotChecks(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		dir  Dir
		want int // expected neighbour index
	}{
		// row class 0
		{"class0 left up", 2, 3, DirUp, IndexOf(1, 2)},
		{"class0 left down", 2, 3, DirDown, IndexOf(1, 5)},
		{"class0 left left", 2, 3, DirLeft, IndexOf(1, 4)},
		{"class0 left right", 2, 3, DirRight, IndexOf(3, 3)},
		{"class0 right up", 3, 3, DirUp, IndexOf(2, 1)},
		{"class0 right right", 3, 3, DirRight, IndexOf(2, 2)},
		// row class 1
		{"class1 right right", 1, 1, DirRight, IndexOf(2, 0)},
		{"class1 left left", 2, 1, DirLeft, IndexOf(1, 2)},
		{"class1 left down", 2, 1, DirDown, IndexOf(3, 3)},
		{"class1 right down", 3, 1, DirDown, IndexOf(2, 2)},
		// row class 2
		{"class2 left up", 2, 2, DirUp, IndexOf(3, 1)},
		{"class2 left down", 2, 2, DirDown, IndexOf(3, 4)},
		{"class2 left left", 2, 2, DirLeft, IndexOf(3, 3)},
		{"class2 right up", 3, 2, DirUp, IndexOf(4, 0)},
		{"class2 right down", 3, 2, DirDown, IndexOf(4, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IndexOf(tc.x, tc.y) + MovementOffset(tc.x, tc.y, tc.dir)
			if got != tc.want {
				gx, gy := CoordOf(got)
				wx, wy := CoordOf(tc.want)
				t.Errorf("neighbour = (%d, %d), expected (%d, %d)", gx, gy, wx, wy)
			}
		})
	}
}

// Every interior move lands on a visually adjacent half-hex in the
// requested direction.
func TestMovementIsVisualNeighbour(t *testing.T) {
	for y := 3; y < GridH-3; y++ {
		for x := 2; x < GridW-2; x++ {
			px, py := PixelOf(x, y)
			for _, d := range allDirs {
				to := IndexOf(x, y) + MovementOffset(x, y, d)
				tx, ty := PixelOfIndex(to)
				dx := int(tx) - int(px)
				dy := int(ty) - int(py)

				if dx < -8 || dx > 8 || dy < -8 || dy > 8 {
					t.Fatalf("(%d, %d) %v jumps by (%d, %d) pixels", x, y, d, dx, dy)
				}

				var ok bool
				switch d {
				case DirUp:
					ok = dx == 0 && dy < 0
				case DirDown:
					ok = dx == 0 && dy > 0
				case DirLeft:
					ok = dx < 0
				case DirRight:
					ok = dx > 0
				}
				if !ok {
					t.Fatalf("(%d, %d) %v moves by (%d, %d) pixels", x, y, d, dx, dy)
				}
			}
		}
	}
}
