// Package screenshot exports the framebuffer as a scaled PNG.
package screenshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/hexswap/internal/core"
)

// FileName returns the screenshot file name for the given time.
func FileName(at time.Time) string {
	return "hexswap_" + at.Format("20060102_150405") + ".png"
}

// draw paints fb into a new context, every pixel as a scale x scale block.
// Horizontal runs of one colour are filled as a single rectangle.
func draw(fb *core.Framebuffer, scale int) *gg.Context {
	if scale < 1 {
		scale = 1
	}
	s := float64(scale)
	dc := gg.NewContext(fb.Width()*scale, fb.Height()*scale)

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); {
			c := fb.Get(x, y)
			end := x + 1
			for end < fb.Width() && fb.Get(end, y) == c {
				end++
			}
			dc.SetRGB255(int(c.R()), int(c.G()), int(c.B()))
			dc.DrawRectangle(float64(x)*s, float64(y)*s, float64(end-x)*s, s)
			dc.Fill()
			x = end
		}
	}
	return dc
}

// scaledImage returns the scaled framebuffer image.
func scaledImage(fb *core.Framebuffer, scale int) image.Image {
	return draw(fb, scale).Image()
}

// Save writes fb to dir as a PNG and returns the file path.
func Save(fb *core.Framebuffer, dir string, scale int, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName(at))
	if err := draw(fb, scale).SavePNG(path); err != nil {
		return "", fmt.Errorf("screenshot: cannot write %s: %w", path, err)
	}
	return path, nil
}
