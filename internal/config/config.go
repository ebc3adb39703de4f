// Package config provides YAML-based configuration loading for hexswap.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/hexswap/internal/core"
)

// Config is the full user configuration.
type Config struct {
	TickRate    int               `yaml:"tick_rate"`
	Scale       int               `yaml:"scale"`
	Palette     []string          `yaml:"palette"`
	Background  string            `yaml:"background"`
	DebugColors DebugColorsConfig `yaml:"debug_colors"`
	Audio       AudioConfig       `yaml:"audio"`
	Screenshots ScreenshotConfig  `yaml:"screenshots"`
}

// DebugColorsConfig holds the full-screen colours of the debug keys.
type DebugColorsConfig struct {
	B      string `yaml:"b"`
	Select string `yaml:"select"`
	Start  string `yaml:"start"`
}

// AudioConfig controls the sound effect player.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// ScreenshotConfig controls PNG export.
type ScreenshotConfig struct {
	Dir   string `yaml:"dir"`
	Scale int    `yaml:"scale"`
}

// Validate checks ranges and colour formats.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate %d out of range [1, 240]", c.TickRate)
	}
	if c.Scale < 1 || c.Scale > 8 {
		return fmt.Errorf("config: scale %d out of range [1, 8]", c.Scale)
	}
	if len(c.Palette) != core.PaletteSize {
		return fmt.Errorf("config: palette has %d colours, expected %d", len(c.Palette), core.PaletteSize)
	}
	for i, s := range c.Palette {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("config: palette[%d]: %w", i, err)
		}
	}

	named := []struct {
		name, value string
	}{
		{"background", c.Background},
		{"debug_colors.b", c.DebugColors.B},
		{"debug_colors.select", c.DebugColors.Select},
		{"debug_colors.start", c.DebugColors.Start},
	}
	for _, n := range named {
		if _, err := ParseColor(n.value); err != nil {
			return fmt.Errorf("config: %s: %w", n.name, err)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume %.2f out of range [0, 1]", c.Audio.Volume)
	}
	if c.Screenshots.Scale < 1 || c.Screenshots.Scale > 8 {
		return fmt.Errorf("config: screenshots.scale %d out of range [1, 8]", c.Screenshots.Scale)
	}
	return nil
}

// ParseColor parses a "#rrggbb" string into an opaque colour.
func ParseColor(s string) (core.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("invalid colour %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return core.Color(0xFF000000 | uint32(v)), nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// Runtime converts the configuration into the simulation's RuntimeConfig.
// The config must have passed Validate.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.TickRate
	rc.Seed = seed
	for i, s := range c.Palette {
		rc.Palette[i] = mustColor(s)
	}
	rc.Background = mustColor(c.Background)
	rc.DebugColors = [3]core.Color{
		mustColor(c.DebugColors.B),
		mustColor(c.DebugColors.Select),
		mustColor(c.DebugColors.Start),
	}
	return rc
}

func mustColor(s string) core.Color {
	col, err := ParseColor(strings.TrimSpace(s))
	if err != nil {
		panic("config: " + err.Error())
	}
	return col
}
