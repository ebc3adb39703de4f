package config

import (
	_ "embed"

	"github.com/vovakirdan/hexswap/internal/core"
)

//go:embed defaults/hexswap.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration, used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	rc := core.DefaultConfig()

	palette := make([]string, len(rc.Palette))
	for i, c := range rc.Palette {
		palette[i] = FormatColor(c)
	}

	return Config{
		TickRate:   rc.TickRate,
		Scale:      3,
		Palette:    palette,
		Background: FormatColor(rc.Background),
		DebugColors: DebugColorsConfig{
			B:      FormatColor(rc.DebugColors[0]),
			Select: FormatColor(rc.DebugColors[1]),
			Start:  FormatColor(rc.DebugColors[2]),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Screenshots: ScreenshotConfig{
			Dir:   "~/.hexswap/screenshots",
			Scale: 3,
		},
	}
}
