package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexswap/internal/core"
)

// upperHalf shows the top pixel in the foreground and the bottom pixel in
// the background, so one terminal cell carries two pixel rows.
const upperHalf = "▀"

type pixelPair struct {
	top, bottom core.Color
}

// Renderer converts framebuffer regions to styled strings. Styles are
// cached per colour pair.
type Renderer struct {
	styles map[pixelPair]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[pixelPair]lipgloss.Style)}
}

func hexColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B()))
}

func (r *Renderer) style(p pixelPair) lipgloss.Style {
	s, ok := r.styles[p]
	if !ok {
		s = lipgloss.NewStyle().
			Foreground(hexColor(p.top)).
			Background(hexColor(p.bottom))
		r.styles[p] = s
	}
	return s
}

// Render draws the region view of fb, one terminal row per two pixel rows.
// Adjacent cells with the same colours are grouped to minimize ANSI
// escape sequences.
func (r *Renderer) Render(fb *core.Framebuffer, view core.Rect) string {
	var sb strings.Builder
	sb.Grow(view.W * view.H)

	for y := view.Y; y < view.Bottom(); y += 2 {
		if y > view.Y {
			sb.WriteRune('\n')
		}

		x := view.X
		for x < view.Right() {
			p := pixelPair{fb.Get(x, y), fb.Get(x, y+1)}
			n := 1
			for x+n < view.Right() && (pixelPair{fb.Get(x+n, y), fb.Get(x+n, y+1)}) == p {
				n++
			}
			sb.WriteString(r.style(p).Render(strings.Repeat(upperHalf, n)))
			x += n
		}
	}
	return sb.String()
}

// Viewport picks the part of a fbW x fbH framebuffer that fits in a
// terminal area of cols x rows cells, centred on (fx, fy) where possible.
func Viewport(fbW, fbH, cols, rows, fx, fy int) core.Rect {
	w := core.Clamp(cols, 1, fbW)
	h := core.Clamp(rows*2, 2, fbH)
	x := core.Clamp(fx-w/2, 0, fbW-w)
	y := core.Clamp(fy-h/2, 0, fbH-h) &^ 1
	return core.NewRect(x, y, w, h)
}
