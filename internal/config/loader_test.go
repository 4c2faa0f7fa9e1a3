package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default YAML should parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML and DefaultRunnerConfig() differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("fps: 30\nphysics:\n  gravity: 2.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.FPS)
	}
	if cfg.Physics.Gravity != 2.5 {
		t.Errorf("Gravity = %g, expected 2.5", cfg.Physics.Gravity)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpVelocity != 48 {
		t.Errorf("JumpVelocity = %g, expected default 48", cfg.Physics.JumpVelocity)
	}
	if cfg.Canvas.Width != 3840 {
		t.Errorf("Canvas.Width = %d, expected default 3840", cfg.Canvas.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [not a number"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	data := []byte("obstacles:\n  min_width: 64\n  max_width: 32\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadFileRejectsEmptyDocument(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "runner.yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("LoadFile() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero fps", func(c *RunnerConfig) { c.FPS = 0 }},
		{"zero canvas", func(c *RunnerConfig) { c.Canvas.Width = 0 }},
		{"floor taller than canvas", func(c *RunnerConfig) { c.Floor.Height = c.Canvas.Height }},
		{"zero player", func(c *RunnerConfig) { c.Player.Size = 0 }},
		{"player taller than room", func(c *RunnerConfig) { c.Player.Size = c.Canvas.Height }},
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }},
		{"negative gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1.2 }},
		{"negative jump", func(c *RunnerConfig) { c.Physics.JumpVelocity = -1 }},
		{"stationary obstacles", func(c *RunnerConfig) { c.Obstacles.Velocity = 0 }},
		{"empty width range", func(c *RunnerConfig) { c.Obstacles.MaxWidth = c.Obstacles.MinWidth }},
		{"zero min height", func(c *RunnerConfig) { c.Obstacles.MinHeight = 0 }},
		{"empty delay range", func(c *RunnerConfig) { c.Obstacles.MaxDelayMS = c.Obstacles.MinDelayMS }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestTickIntervalAndFloor(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if got := cfg.TickInterval(); got != time.Second/60 {
		t.Errorf("TickInterval() = %v, expected %v", got, time.Second/60)
	}
	if got := cfg.FloorY(); got != 1648 {
		t.Errorf("FloorY() = %g, expected 1648", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  Preset
		gravity float64
	}{
		{PresetClassic, 1.2},
		{PresetHeavy, 9.8},
		{PresetFloaty, 0.6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			p, err := ParsePreset(string(tc.preset))
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tc.preset, err)
			}
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, p)
			if cfg.Physics.Gravity != tc.gravity {
				t.Errorf("Gravity = %g, expected %g", cfg.Physics.Gravity, tc.gravity)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should be valid: %v", err)
			}
		})
	}

	if _, err := ParsePreset("ludicrous"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(unknown) = %v, expected ErrInvalidConfig", err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected empty preset", p, err)
	}
}
