package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hexswap/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexswap.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default is invalid: %v", err)
	}

	got := cfg.Runtime(0)
	want := DefaultConfig().Runtime(0)
	if got != want {
		t.Errorf("embedded Runtime() = %+v, expected %+v", got, want)
	}
	if cfg.Scale != DefaultConfig().Scale {
		t.Errorf("embedded scale = %d, expected %d", cfg.Scale, DefaultConfig().Scale)
	}
}

func TestDefaultRuntimeMatchesCore(t *testing.T) {
	got := DefaultConfig().Runtime(0)
	if got != core.DefaultConfig() {
		t.Errorf("Runtime() = %+v, expected %+v", got, core.DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
tick_rate: 30
background: "#102030"
audio:
  enabled: false
  volume: 0.25
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled = true, expected false")
	}
	if cfg.Audio.Volume != 0.25 {
		t.Errorf("Audio.Volume = %v, expected 0.25", cfg.Audio.Volume)
	}

	// Missing keys keep their defaults
	if len(cfg.Palette) != core.PaletteSize {
		t.Errorf("len(Palette) = %d, expected %d", len(cfg.Palette), core.PaletteSize)
	}
	if cfg.Scale != 3 {
		t.Errorf("Scale = %d, expected 3", cfg.Scale)
	}

	rc := cfg.Runtime(7)
	if rc.Background != core.RGB(0x10, 0x20, 0x30) {
		t.Errorf("Background = %#x, expected 0xff102030", uint32(rc.Background))
	}
	if rc.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", rc.Seed)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "tick_rate: [1, 2", "failed to parse"},
		{"tick rate", "tick_rate: 0", "tick_rate"},
		{"short palette", "palette: [\"#000000\"]", "palette has 1 colours"},
		{"bad colour", "background: red", "background"},
		{"volume", "audio:\n  volume: 1.5", "audio.volume"},
		{"scale", "scale: 9", "scale"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("Load() succeeded, expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Load() error = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    core.Color
		wantErr bool
	}{
		{"#000000", core.ColorBlack, false},
		{"#ed1c24", core.ColorRed, false},
		{"#FFF200", core.ColorYellow, false},
		{"ed1c24", 0, true},
		{"#ed1c2", 0, true},
		{"#gg0000", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %#x, expected %#x", tc.in, uint32(got), uint32(tc.want))
		}
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	for _, c := range core.DefaultPalette {
		got, err := ParseColor(FormatColor(c))
		if err != nil || got != c {
			t.Errorf("ParseColor(FormatColor(%#x)) = %#x, %v", uint32(c), uint32(got), err)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/y.db"); got != filepath.Join(home, "x/y.db") {
		t.Errorf("ExpandHome() = %q, expected %q", got, filepath.Join(home, "x/y.db"))
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome() = %q, expected /abs/path", got)
	}
}
