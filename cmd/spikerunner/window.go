package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spike-runner/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the runner in a resizable desktop window.

Controls:
  Space/Up/W - Jump, or restart after a crash
  Esc/Q      - Quit`,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("spikerunner", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	err = window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
