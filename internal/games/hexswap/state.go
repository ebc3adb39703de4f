package hexswap

import "github.com/vovakirdan/hexswap/internal/core"

// Counters accumulates gameplay events since the state was created.
type Counters struct {
	Swaps          int // Swaps started
	Matches        int // Hexagons resolved
	RejectedMoves  int // Cursor moves refused at the board edge
	PeakAnimations int // Most animations in flight at once
}

// State is the simulation: grid, cursor, in-flight animations and frame
// counter. It is driven by one UpdateAndRender call per frame.
type State struct {
	grid       Grid
	cursor     Cursor
	frame      uint64
	animations []Animation

	palette     core.Palette
	background  core.Color
	debugColors [3]core.Color
	seed        int64

	counters Counters
	log      core.Logger
	errLog   core.Logger
}

// Params are the construction inputs. Loggers are set once here and only
// read afterwards; nil loggers discard output.
type Params struct {
	Config      core.RuntimeConfig
	Logger      core.Logger
	ErrorLogger core.Logger
}

// NewState creates a freshly generated board with the cursor at StartIndex.
func NewState(p Params) *State {
	s := &State{
		grid:        GenerateInitial(),
		cursor:      Unselected(StartIndex),
		animations:  make([]Animation, 0, 8),
		palette:     p.Config.Palette,
		background:  p.Config.Background,
		debugColors: p.Config.DebugColors,
		seed:        p.Config.Seed,
		log:         core.OrNop(p.Logger),
		errLog:      core.OrNop(p.ErrorLogger),
	}
	s.log.Debug("board generated", "cells", GridLen, "seed", s.seed)
	return s
}

// moveBindings maps directional buttons to movement directions, checked in
// this order each frame.
var moveBindings = [...]struct {
	button core.Button
	dir    Dir
}{
	{core.ButtonUp, DirUp},
	{core.ButtonDown, DirDown},
	{core.ButtonLeft, DirLeft},
	{core.ButtonRight, DirRight},
}

// UpdateAndRender runs one frame: advance animations and commit the
// finished ones, apply input, draw, then bump the frame counter.
func (s *State) UpdateAndRender(dst core.Surface, in core.Input, sp *core.Speaker) {
	s.Update(in, sp)
	s.Render(dst)
	s.frame++
}

// Update advances the simulation by one frame without drawing.
func (s *State) Update(in core.Input, sp *core.Speaker) {
	s.advanceAnimations(sp)
	s.applyDebugBackground(in)

	if in.PressedThisFrame(core.ButtonA) {
		s.confirm(sp)
	}
	for _, m := range moveBindings {
		if in.PressedThisFrame(m.button) {
			s.move(m.dir)
		}
	}
}

// advanceAnimations steps every tween and commits the completed ones.
// Iterating backwards keeps swap-removal from skipping entries.
func (s *State) advanceAnimations(sp *core.Speaker) {
	for i := len(s.animations) - 1; i >= 0; i-- {
		a := &s.animations[i]
		a.ApproachTarget()
		if !a.IsComplete() {
			continue
		}

		s.commit(*a, sp)

		last := len(s.animations) - 1
		s.animations[i] = s.animations[last]
		s.animations = s.animations[:last]
	}
}

// commit lands a finished animation and resolves its hexagon.
func (s *State) commit(a Animation, sp *core.Speaker) {
	idx := CellAt(a.X, a.Y)
	s.grid.Put(idx, a.Spec)

	other := Partner(idx)
	partner := s.grid.At(other)
	if !partner.Filled || !partner.Spec.Matches(a.Spec) {
		return
	}

	s.grid.Clear(idx)
	s.grid.Clear(other)
	s.counters.Matches++
	sp.Request(core.SFXMatch)
	s.log.Debug("hexagon matched", "cell", idx, "partner", other, "spec", a.Spec.Masked())
}

func (s *State) applyDebugBackground(in core.Input) {
	var c core.Color
	switch in.Gamepad {
	case core.ButtonB:
		c = s.debugColors[0]
	case core.ButtonSelect:
		c = s.debugColors[1]
	case core.ButtonStart:
		c = s.debugColors[2]
	default:
		return
	}
	if c != s.background {
		s.log.Debug("background changed", "button", in.Gamepad, "color", uint32(c))
	}
	s.background = c
}

// confirm applies the confirm button to the cursor state machine.
func (s *State) confirm(sp *core.Speaker) {
	c := s.cursor
	if !c.IsSelected() {
		if s.grid.Occupied(c.Active()) {
			s.cursor = Selected(c.Active(), c.Active())
		}
		return
	}

	if s.startSwap(c.Anchor(), c.Active(), sp) {
		s.cursor = Unselected(c.Active())
	}
}

// startSwap empties both cells and launches the two mirrored animations.
// An empty cell at either end leaves everything untouched.
func (s *State) startSwap(anchor, drag int, sp *core.Speaker) bool {
	a, d := s.grid.At(anchor), s.grid.At(drag)
	if !a.Filled || !d.Filled {
		s.errLog.Error("swap on empty cell ignored", "anchor", anchor, "drag", drag)
		return false
	}

	s.grid.Clear(anchor)
	s.grid.Clear(drag)
	s.animations = append(s.animations,
		NewAnimation(anchor, drag, a.Spec),
		NewAnimation(drag, anchor, d.Spec),
	)

	s.counters.Swaps++
	if n := len(s.animations); n > s.counters.PeakAnimations {
		s.counters.PeakAnimations = n
	}
	sp.Request(core.SFXSwap)
	s.log.Debug("swap started", "anchor", anchor, "drag", drag)
	return true
}

// move steps the cursor's active position; rejected moves are silent.
func (s *State) move(d Dir) {
	next, ok := stepCursor(s.cursor, d)
	if !ok {
		s.counters.RejectedMoves++
		return
	}
	s.cursor = next
}

// Grid returns the board.
func (s *State) Grid() *Grid {
	return &s.grid
}

// Cursor returns the cursor state.
func (s *State) Cursor() Cursor {
	return s.cursor
}

// Animations returns the in-flight animations. The slice is reused.
func (s *State) Animations() []Animation {
	return s.animations
}

// Frame returns the number of frames rendered.
func (s *State) Frame() uint64 {
	return s.frame
}

// Background returns the current clear colour.
func (s *State) Background() core.Color {
	return s.background
}

// Counters returns the gameplay counters.
func (s *State) Counters() Counters {
	return s.counters
}
