// Package config provides YAML-based configuration loading for the runner.
// All values are fixed for the duration of one session.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// RunnerConfig contains all configuration for the spike runner.
type RunnerConfig struct {
	Canvas    Canvas    `yaml:"canvas"`
	FPS       int       `yaml:"fps"` // Simulation ticks per second
	Floor     Floor     `yaml:"floor"`
	Player    Player    `yaml:"player"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
}

// Canvas defines the fixed world resolution.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Floor defines the static floor at the bottom of the canvas.
type Floor struct {
	Height int `yaml:"height"`
}

// Player defines the player's spawn position and size.
type Player struct {
	StartX int `yaml:"start_x"`
	Size   int `yaml:"size"`
}

// Physics defines per-tick physics constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity every tick
	JumpVelocity float64 `yaml:"jump_velocity"` // Upward impulse magnitude
}

// Obstacles defines spike movement, size ranges and spawn timing.
// Ranges are min-inclusive, max-exclusive.
type Obstacles struct {
	Velocity   float64 `yaml:"velocity"` // Leftward speed per tick
	MinWidth   int     `yaml:"min_width"`
	MaxWidth   int     `yaml:"max_width"`
	MinHeight  int     `yaml:"min_height"`
	MaxHeight  int     `yaml:"max_height"`
	MinDelayMS int     `yaml:"min_delay_ms"`
	MaxDelayMS int     `yaml:"max_delay_ms"`
}

// TickInterval returns the duration of one simulation tick.
func (c RunnerConfig) TickInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// FloorY returns the y-coordinate of the floor surface.
func (c RunnerConfig) FloorY() float64 {
	return float64(c.Canvas.Height - c.Floor.Height)
}

// Validate checks that the configuration can drive a session.
func (c RunnerConfig) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas size must be positive")
	check(c.FPS > 0, "fps must be positive")
	check(c.Floor.Height > 0 && c.Floor.Height < c.Canvas.Height, "floor height must be within the canvas")
	check(c.Player.Size > 0, "player size must be positive")
	check(c.Player.Size <= c.Canvas.Height-c.Floor.Height, "player must fit above the floor")
	check(c.Physics.Gravity > 0, "gravity must be positive")
	check(c.Physics.JumpVelocity >= 0, "jump velocity must not be negative")
	check(c.Obstacles.Velocity > 0, "obstacle velocity must be positive")
	check(c.Obstacles.MinWidth > 0 && c.Obstacles.MaxWidth > c.Obstacles.MinWidth, "obstacle width range must be non-empty and positive")
	check(c.Obstacles.MinHeight > 0 && c.Obstacles.MaxHeight > c.Obstacles.MinHeight, "obstacle height range must be non-empty and positive")
	check(c.Obstacles.MinDelayMS > 0 && c.Obstacles.MaxDelayMS > c.Obstacles.MinDelayMS, "spawn delay range must be non-empty and positive")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, problems)
}

// Preset represents a named physics tuning.
type Preset string

const (
	PresetClassic Preset = "classic" // Gravity 1.2, as shipped
	PresetHeavy   Preset = "heavy"   // Gravity 9.8 with a matching jump
	PresetFloaty  Preset = "floaty"  // Low gravity, long airtime
)

// ParsePreset converts a CLI string to a Preset.
// An empty string means "no preset" and is not an error.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetClassic, PresetHeavy, PresetFloaty:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, s)
	}
}

// ApplyPreset modifies the config based on a physics preset.
func ApplyPreset(cfg *RunnerConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Physics.Gravity = 1.2
		cfg.Physics.JumpVelocity = 48
	case PresetHeavy:
		cfg.Physics.Gravity = 9.8
		cfg.Physics.JumpVelocity = 137
	case PresetFloaty:
		cfg.Physics.Gravity = 0.6
		cfg.Physics.JumpVelocity = 36
	}
}
