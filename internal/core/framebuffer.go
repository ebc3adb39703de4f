package core

// Framebuffer dimensions in pixels. Every half-hex of the 40x60 board fits
// inside with its highlight rectangle.
const (
	ScreenW = 256
	ScreenH = 256
)

// Half-hex shape size in pixels.
const (
	HalfHexW = 4
	HalfHexH = 8
)

// Surface is the drawing surface the simulation renders into.
type Surface interface {
	// Clear fills the whole surface.
	Clear(c Color)
	// HexagonLeft draws the left half of a hexagon with its top-left at (x, y).
	HexagonLeft(x, y int, inside, outline Color)
	// HexagonRight draws the right half of a hexagon with its top-left at (x, y).
	HexagonRight(x, y int, inside, outline Color)
	// RectPattern draws a one pixel border of marching ants. phase is 0-3.
	RectPattern(x, y, w, h int, phase uint8)
}

// DrawStats counts the work done since the last Clear.
type DrawStats struct {
	Primitives int // Hexagon halves and rectangles drawn
	Pixels     int // Pixels written, excluding Clear
}

// Framebuffer is a row-major ARGB pixel buffer implementing Surface.
type Framebuffer struct {
	width  int
	height int
	pixels []Color
	stats  DrawStats
}

// halfHexInset is how far each row of a half-hex is pulled in from its
// outer edge, producing the slanted hexagon sides.
var halfHexInset = [HalfHexH]int{2, 1, 0, 0, 0, 0, 1, 2}

// NewFramebuffer creates a black framebuffer of ScreenW x ScreenH pixels.
func NewFramebuffer() *Framebuffer {
	return NewFramebufferSize(ScreenW, ScreenH)
}

// NewFramebufferSize creates a black framebuffer with the given dimensions.
func NewFramebufferSize(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
	fb.Clear(ColorBlack)
	return fb
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Bounds returns the framebuffer area.
func (fb *Framebuffer) Bounds() Rect {
	return NewRect(0, 0, fb.width, fb.height)
}

// Pixels returns the backing pixel slice. It is reused between frames.
func (fb *Framebuffer) Pixels() []Color {
	return fb.pixels
}

// Stats returns the draw counters accumulated since the last Clear.
func (fb *Framebuffer) Stats() DrawStats {
	return fb.stats
}

// Clear fills every pixel with c and resets the draw counters.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
	fb.stats = DrawStats{}
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored.
func (fb *Framebuffer) Set(x, y int, c Color) {
	if !fb.Bounds().Contains(x, y) {
		return
	}
	fb.pixels[y*fb.width+x] = c
	fb.stats.Pixels++
}

// Get returns the pixel at (x, y), or black outside the buffer.
func (fb *Framebuffer) Get(x, y int) Color {
	if !fb.Bounds().Contains(x, y) {
		return ColorBlack
	}
	return fb.pixels[y*fb.width+x]
}

// HexagonLeft draws a left half-hex: the slanted edge is on the left.
func (fb *Framebuffer) HexagonLeft(x, y int, inside, outline Color) {
	fb.stats.Primitives++
	for r := 0; r < HalfHexH; r++ {
		start := halfHexInset[r]
		for c := start; c < HalfHexW; c++ {
			col := inside
			if r == 0 || r == HalfHexH-1 || c == start {
				col = outline
			}
			fb.Set(x+c, y+r, col)
		}
	}
}

// HexagonRight draws a right half-hex: the slanted edge is on the right.
func (fb *Framebuffer) HexagonRight(x, y int, inside, outline Color) {
	fb.stats.Primitives++
	for r := 0; r < HalfHexH; r++ {
		end := HalfHexW - 1 - halfHexInset[r]
		for c := 0; c <= end; c++ {
			col := inside
			if r == 0 || r == HalfHexH-1 || c == end {
				col = outline
			}
			fb.Set(x+c, y+r, col)
		}
	}
}

// AntsColor is the marching ants rule: two colours alternating every two
// pixels along x+y, shifted by phase.
func AntsColor(x, y int, phase uint8) Color {
	if (x+y+int(phase))&2 == 0 {
		return ColorYellow
	}
	return ColorPurple
}

// RectPattern draws the border of the rectangle using AntsColor.
func (fb *Framebuffer) RectPattern(x, y, w, h int, phase uint8) {
	fb.stats.Primitives++
	r := NewRect(x, y, w, h)
	for py := r.Y; py < r.Bottom(); py++ {
		for px := r.X; px < r.Right(); px++ {
			if py != r.Y && py != r.Bottom()-1 && px != r.X && px != r.Right()-1 {
				continue
			}
			fb.Set(px, py, AntsColor(px, py, phase))
		}
	}
}
