package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // Seed for the deterministic generator; unused by the current fill
	Palette  Palette // Colours addressed by the 3-bit colour fields
	// Background is the initial clear colour.
	Background Color
	// DebugColors are the full-screen colours for the B, Select and Start buttons.
	DebugColors [3]Color
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:    60,
		Seed:        0,
		Palette:     DefaultPalette,
		Background:  ColorBlack,
		DebugColors: [3]Color{ColorBlue, ColorWhite, ColorRed},
	}
}
