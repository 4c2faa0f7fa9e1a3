package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spike-runner/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML.

Config search order:
  1. --config <path>
  2. ~/.spikerunner/configs/runner.yaml
  3. ./configs/runner.yaml
  4. built-in defaults`,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to ~/.spikerunner/configs/runner.yaml",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	_, err := os.Stdout.Write(config.DefaultYAML())
	return err
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	return writeDefaultConfig(config.UserConfigPath(), flagForce)
}

// writeDefaultConfig installs the embedded defaults at path.
func writeDefaultConfig(path string, force bool) error {
	if path == "" {
		return errors.New("cannot determine home directory")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
