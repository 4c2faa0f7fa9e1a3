// spikerunner is a side-scrolling spike-avoidance game.
//
// Usage:
//
//	spikerunner               - Play in the terminal (same as "play")
//	spikerunner play          - Play in the terminal
//	spikerunner window        - Play in a desktop window
//	spikerunner serve         - Start SSH server for remote play
//	spikerunner config        - Print the default configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible spikes
//	--config <path>     - Load configuration from a YAML file
//	--preset <name>     - Physics preset: classic, heavy, floaty
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spike-runner/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spikerunner",
	Short: "Spike Runner - jump over the spikes",
	Long: `Spike Runner is a minimal side-scroller: spikes scroll in from the
right and the only move is to jump over them. A crash freezes the run
until you press the jump key again.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print or install the default configuration

Examples:
  spikerunner
  spikerunner play --preset floaty
  spikerunner window --seed 42
  spikerunner serve --ssh :2222`,
	RunE:          runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Physics preset: classic, heavy, floaty")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the runner config from --config and --preset.
func loadConfig() (config.RunnerConfig, config.Preset, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// newLogger builds the logger from --log-file and --log-level. Without a
// log file, output goes to fallback; a nil fallback discards it.
// The returned function closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// watchPath returns the config file to watch for hot reload, if any.
func watchPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	if p := config.UserConfigPath(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
