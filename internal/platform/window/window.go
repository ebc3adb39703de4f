// Package window runs hexswap in a desktop window with Ebitengine. Unlike
// the terminal front end it sees real key-down and key-up events.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap"
	"github.com/vovakirdan/hexswap/internal/screenshot"
)

// ErrExit is returned from the game loop when the player closes the game.
var ErrExit = errors.New("exit request")

// Options configures the window front end.
type Options struct {
	Scale           int
	TickRate        int
	ScreenshotDir   string
	ScreenshotScale int
	Logger          *log.Logger    // nil discards output
	Sound           func(core.SFX) // nil keeps the game silent
}

// keyBindings lists the keys feeding each gamepad button.
var keyBindings = []struct {
	button core.Button
	keys   []ebiten.Key
}{
	{core.ButtonUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ButtonDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ButtonLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ButtonRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ButtonA, []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}},
	{core.ButtonB, []ebiten.Key{ebiten.KeyX}},
	{core.ButtonSelect, []ebiten.Key{ebiten.KeyTab}},
	{core.ButtonStart, []ebiten.Key{ebiten.KeyEnter}},
}

// Window implements ebiten.Game around one hexswap game.
type Window struct {
	game   *hexswap.Game
	opts   Options
	logger *log.Logger
	rgba   []byte
}

// New creates the window front end for game.
func New(game *hexswap.Game, opts Options) *Window {
	if opts.Scale <= 0 {
		opts.Scale = 3
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.ScreenshotScale <= 0 {
		opts.ScreenshotScale = opts.Scale
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fb := game.FrameBuffer()
	return &Window{
		game:   game,
		opts:   opts,
		logger: logger,
		rgba:   make([]byte, 4*fb.Width()*fb.Height()),
	}
}

// Update polls the keyboard and runs one simulation frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrExit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		w.saveScreenshot()
	}

	for _, kb := range keyBindings {
		justPressed, held := false, false
		for _, k := range kb.keys {
			justPressed = justPressed || inpututil.IsKeyJustPressed(k)
			held = held || ebiten.IsKeyPressed(k)
		}

		switch {
		case justPressed:
			w.game.Press(kb.button)
		case !held && w.game.Input().Held(kb.button):
			w.game.Release(kb.button)
		}
	}

	w.game.Frame(w.opts.Sound)
	return nil
}

// Draw copies the framebuffer to the screen.
func (w *Window) Draw(screen *ebiten.Image) {
	ToRGBA(w.game.FrameBuffer(), w.rgba)
	screen.WritePixels(w.rgba)
}

// Layout keeps the logical screen at framebuffer size; Ebitengine scales
// it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	fb := w.game.FrameBuffer()
	return fb.Width(), fb.Height()
}

func (w *Window) saveScreenshot() {
	path, err := screenshot.Save(w.game.FrameBuffer(), w.opts.ScreenshotDir, w.opts.ScreenshotScale, time.Now())
	if err != nil {
		w.logger.Error("screenshot failed", "error", err)
		return
	}
	w.logger.Info("screenshot saved", "path", path)
}

// Run opens the window and blocks until it is closed. Closing with Esc
// returns ErrExit.
func (w *Window) Run() error {
	fb := w.game.FrameBuffer()
	ebiten.SetWindowSize(fb.Width()*w.opts.Scale, fb.Height()*w.opts.Scale)
	ebiten.SetWindowTitle("hexswap")
	ebiten.SetTPS(w.opts.TickRate)

	w.logger.Info("window opened", "scale", w.opts.Scale, "tps", w.opts.TickRate)
	if err := ebiten.RunGame(w); err != nil {
		if errors.Is(err, ErrExit) {
			return err
		}
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// ToRGBA converts fb to 8-bit RGBA bytes in dst, which must hold
// 4*width*height bytes.
func ToRGBA(fb *core.Framebuffer, dst []byte) {
	for i, c := range fb.Pixels() {
		dst[4*i] = c.R()
		dst[4*i+1] = c.G()
		dst[4*i+2] = c.B()
		dst[4*i+3] = 0xFF
	}
}
