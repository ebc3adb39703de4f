package core

// Button is a bit set of gamepad buttons.
type Button uint8

const (
	ButtonUp Button = 1 << iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA // confirm
	ButtonB
	ButtonSelect
	ButtonStart
)

// Buttons lists every single button in bit order.
var Buttons = [...]Button{
	ButtonUp, ButtonDown, ButtonLeft, ButtonRight,
	ButtonA, ButtonB, ButtonSelect, ButtonStart,
}

// Contains reports whether every bit of other is set.
func (b Button) Contains(other Button) bool {
	return b&other == other
}

// String returns a human-readable name for a single button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonSelect:
		return "Select"
	case ButtonStart:
		return "Start"
	case 0:
		return "None"
	default:
		return "Combo"
	}
}

// Input is the per-frame gamepad snapshot. Gamepad holds the buttons held
// now, Previous the buttons held at the end of the last frame.
type Input struct {
	Gamepad  Button
	Previous Button
}

// Held reports whether b is currently held.
func (in Input) Held(b Button) bool {
	return in.Gamepad.Contains(b)
}

// PressedThisFrame reports whether b went down since the last frame.
func (in Input) PressedThisFrame(b Button) bool {
	return in.Gamepad.Contains(b) && !in.Previous.Contains(b)
}

// Press marks b as held. If b was already held last frame the previous
// state is rewritten so that a key repeat registers as a fresh press.
func (in *Input) Press(b Button) {
	if in.Previous.Contains(b) {
		in.Previous &^= b
	}
	in.Gamepad |= b
}

// Release marks b as no longer held.
func (in *Input) Release(b Button) {
	in.Gamepad &^= b
}

// EndFrame carries the current state over as the previous state.
func (in *Input) EndFrame() {
	in.Previous = in.Gamepad
}
