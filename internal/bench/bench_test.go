package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap"
)

func testOptions(frames int, seed int64) Options {
	return Options{
		Frames: frames,
		Seed:   seed,
		Params: hexswap.Params{Config: core.DefaultConfig()},
	}
}

func TestScriptDeterministic(t *testing.T) {
	a, b := NewScript(42), NewScript(42)
	presses := 0
	for i := 0; i < 1000; i++ {
		x := a.Next()
		require.Equal(t, x, b.Next(), "frame %d", i)
		if x != 0 {
			presses++
		}
	}
	assert.InDelta(t, 250, presses, 100)
}

func TestRunCountsFrames(t *testing.T) {
	run, err := Run(context.Background(), testOptions(600, 7))
	require.NoError(t, err)

	assert.Equal(t, 600, run.Frames)
	assert.Equal(t, int64(7), run.Seed)
	assert.GreaterOrEqual(t, run.TotalNs, run.MaxFrameNs)
	assert.NotZero(t, run.Swaps, "a 600 frame script should start at least one swap")
	assert.GreaterOrEqual(t, run.PeakAnimations, 2)
}

func TestRunSameSeedSameGameplay(t *testing.T) {
	r1, err := Run(context.Background(), testOptions(1200, 99))
	require.NoError(t, err)
	r2, err := Run(context.Background(), testOptions(1200, 99))
	require.NoError(t, err)

	assert.Equal(t, r1.Swaps, r2.Swaps)
	assert.Equal(t, r1.Matches, r2.Matches)
	assert.Equal(t, r1.PeakAnimations, r2.PeakAnimations)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), testOptions(0, 1))
	assert.Error(t, err, "zero frames")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	run, err := Run(ctx, testOptions(100, 1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, run.Frames)
}

// cancelAfter is a context reporting cancellation once Err has been
// consulted more than n times.
type cancelAfter struct {
	context.Context
	n int
}

func (c *cancelAfter) Err() error {
	if c.n <= 0 {
		return context.Canceled
	}
	c.n--
	return nil
}

func TestRunInterruptedKeepsPartialRun(t *testing.T) {
	// Err is checked every 256 frames: frames 0 and 256 pass, 512 stops.
	ctx := &cancelAfter{Context: context.Background(), n: 2}

	run, err := Run(ctx, testOptions(2000, 5))
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 512, run.Frames)
	assert.Equal(t, int64(5), run.Seed)
	assert.NotZero(t, run.TotalNs)

	full, err := Run(context.Background(), testOptions(512, 5))
	require.NoError(t, err)
	assert.Equal(t, full.Swaps, run.Swaps, "partial run should keep its gameplay counters")
	assert.Equal(t, full.Matches, run.Matches)
}
