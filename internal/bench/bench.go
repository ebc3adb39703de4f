// Package bench drives the simulation headless with scripted input and
// measures how long each frame takes.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap"
	"github.com/vovakirdan/hexswap/internal/storage"
)

// scriptButtons are the buttons the script presses. Debug keys are left
// out: they only recolour the background.
var scriptButtons = [...]core.Button{
	core.ButtonUp, core.ButtonDown, core.ButtonLeft, core.ButtonRight, core.ButtonA,
}

// Script produces a seeded stream of single-frame button presses.
type Script struct {
	rng *rand.Rand
}

// NewScript creates a script for seed.
func NewScript(seed int64) *Script {
	return &Script{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the button to press this frame, or 0 for none. Roughly
// one frame in four carries a press.
func (s *Script) Next() core.Button {
	if s.rng.Intn(4) != 0 {
		return 0
	}
	return scriptButtons[s.rng.Intn(len(scriptButtons))]
}

// Options configures a bench run.
type Options struct {
	Frames int
	Seed   int64
	Params hexswap.Params
}

// Run plays opts.Frames frames and returns the measurements. When ctx is
// cancelled it stops early and returns the frames measured so far together
// with an error wrapping ctx's.
func Run(ctx context.Context, opts Options) (storage.Run, error) {
	if opts.Frames <= 0 {
		return storage.Run{}, fmt.Errorf("bench: frame count must be positive, got %d", opts.Frames)
	}

	params := opts.Params
	params.Config.Seed = opts.Seed
	game := hexswap.New(params)
	script := NewScript(opts.Seed)

	run := storage.Run{
		StartedAt: time.Now(),
		Seed:      opts.Seed,
	}

	var err error
	for i := 0; i < opts.Frames; i++ {
		if i%256 == 0 {
			if cerr := ctx.Err(); cerr != nil {
				err = fmt.Errorf("bench: interrupted after %d frames: %w", i, cerr)
				break
			}
		}

		b := script.Next()
		if b != 0 {
			game.Press(b)
		}

		start := time.Now()
		game.Frame(nil)
		elapsed := time.Since(start).Nanoseconds()

		if b != 0 {
			game.Release(b)
		}

		run.TotalNs += elapsed
		if elapsed > run.MaxFrameNs {
			run.MaxFrameNs = elapsed
		}
		run.Frames++
	}

	st := game.Stats()
	run.Swaps = st.Swaps
	run.Matches = st.Matches
	run.PeakAnimations = st.PeakAnimations
	return run, err
}
