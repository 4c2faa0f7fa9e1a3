package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spike-runner/internal/config"
	"github.com/vovakirdan/spike-runner/internal/platform/tui"
)

var flagMono bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Space/Up/W - Jump, or restart after a crash
  ?          - Toggle help
  Q/Ctrl+C   - Quit

The config file is watched while playing; changes apply on the next restart.

Examples:
  spikerunner play
  spikerunner play --preset heavy
  spikerunner play --config ./runner.yaml --log-file runner.log`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMono, "mono", false, "Use the grayscale theme")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so they are discarded unless
	// written to a file.
	logger, closeLog, err := newLogger("spikerunner", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	theme := tui.DefaultTheme()
	if flagMono {
		theme = tui.MonochromeTheme()
	}

	opts := tui.Options{
		Config: cfg,
		Preset: preset,
		Seed:   flagSeed,
		Theme:  theme,
		Logger: logger,
		Width:  width,
		Height: height,
	}

	if path := watchPath(); path != "" {
		watcher, watchErr := config.NewWatcher(path)
		if watchErr != nil {
			logger.Warn("config hot reload disabled", "path", path, "error", watchErr)
		} else {
			defer watcher.Close()
			opts.Watcher = watcher
		}
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
