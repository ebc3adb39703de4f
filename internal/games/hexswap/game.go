// Package hexswap is the simulation core of a half-hex swapping puzzle.
//
// The board is a 40x60 array of half-hex cells; two index-adjacent cells
// form one hexagon. The player selects a cell, drags a second position with
// the directional buttons and confirms to swap them. Swapped pieces travel
// as pixel-space tweens and are written back to the grid when they arrive;
// a hexagon whose two halves carry the same colours then disappears.
package hexswap

import "github.com/vovakirdan/hexswap/internal/core"

// ID is the game identifier used for storage and file names.
const ID = "hexswap"

// Game is the whole per-process aggregate: simulation state, framebuffer,
// the input snapshot and the audio request queue.
type Game struct {
	state   *State
	fb      *core.Framebuffer
	input   core.Input
	speaker *core.Speaker
	frames  uint64
	draw    core.DrawStats
}

// New creates a game ready for its first frame.
func New(p Params) *Game {
	g := &Game{
		state:   NewState(p),
		fb:      core.NewFramebuffer(),
		speaker: core.NewSpeaker(),
	}
	g.fb.Clear(g.state.Background())
	return g
}

// Frame runs one simulation step against the current input, carries the
// input over as the previous state and hands queued sound requests to
// handle (which may be nil).
func (g *Game) Frame(handle func(core.SFX)) {
	g.state.UpdateAndRender(g.fb, g.input, g.speaker)
	g.draw = g.fb.Stats()
	g.frames++

	g.input.EndFrame()
	g.speaker.Drain(handle)
}

// Press registers a button going down.
func (g *Game) Press(b core.Button) {
	g.input.Press(b)
}

// Release registers a button going up.
func (g *Game) Release(b core.Button) {
	g.input.Release(b)
}

// Input returns the current input snapshot.
func (g *Game) Input() core.Input {
	return g.input
}

// FrameBuffer returns the framebuffer holding the last rendered frame.
func (g *Game) FrameBuffer() *core.Framebuffer {
	return g.fb
}

// State returns the simulation state.
func (g *Game) State() *State {
	return g.state
}

// Stats is the render-cost and gameplay bookkeeping of a game.
type Stats struct {
	Frames   uint64
	LastDraw core.DrawStats
	Counters
}

// Stats returns the current bookkeeping.
func (g *Game) Stats() Stats {
	return Stats{
		Frames:   g.frames,
		LastDraw: g.draw,
		Counters: g.state.Counters(),
	}
}
