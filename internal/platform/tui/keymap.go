package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexswap/internal/core"
)

// KeyMap defines the key bindings of the terminal front end.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	DebugB     key.Binding
	Select     key.Binding
	Start      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Screenshot, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.DebugB, k.Select, k.Start},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "z"),
			key.WithHelp("space/z", "select/swap"),
		),
		DebugB: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "blue bg"),
		),
		Select: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "white bg"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "red bg"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button translates a key message to a gamepad button.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	bindings := [...]struct {
		binding key.Binding
		button  core.Button
	}{
		{k.Up, core.ButtonUp},
		{k.Down, core.ButtonDown},
		{k.Left, core.ButtonLeft},
		{k.Right, core.ButtonRight},
		{k.Confirm, core.ButtonA},
		{k.DebugB, core.ButtonB},
		{k.Select, core.ButtonSelect},
		{k.Start, core.ButtonStart},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.button, true
		}
	}
	return 0, false
}
