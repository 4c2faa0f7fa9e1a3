package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: Canvas{
			Width:  3840,
			Height: 2160,
		},
		FPS: 60,
		Floor: Floor{
			Height: 512,
		},
		Player: Player{
			StartX: 128,
			Size:   256,
		},
		Physics: Physics{
			Gravity:      1.2,
			JumpVelocity: 48,
		},
		Obstacles: Obstacles{
			Velocity:   10,
			MinWidth:   32,
			MaxWidth:   64,
			MinHeight:  128,
			MaxHeight:  256,
			MinDelayMS: 2000,
			MaxDelayMS: 5000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
