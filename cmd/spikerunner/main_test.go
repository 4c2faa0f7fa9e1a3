package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/spike-runner/internal/config"
)

// withFlags sets the global flags for one test and restores them afterwards.
func withFlags(t *testing.T, preset, cfgPath, logFile, logLevel string) {
	t.Helper()
	old := []string{flagPreset, flagConfig, flagLogFile, flagLogLevel}
	flagPreset, flagConfig, flagLogFile, flagLogLevel = preset, cfgPath, logFile, logLevel
	t.Cleanup(func() {
		flagPreset, flagConfig, flagLogFile, flagLogLevel = old[0], old[1], old[2], old[3]
	})
}

func TestCommandsReturnConfigErrors(t *testing.T) {
	withFlags(t, "bogus", "", "", "info")

	tests := []struct {
		name string
		run  func() error
	}{
		{"play", func() error { return runPlay(nil, nil) }},
		{"window", func() error { return runWindow(nil, nil) }},
		{"serve", func() error { return runServe(nil, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("%s returned %v, expected ErrInvalidConfig", tt.name, err)
			}
		})
	}
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("fps: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	withFlags(t, "heavy", path, "", "info")

	cfg, preset, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if preset != config.PresetHeavy || cfg.Physics.Gravity != 9.8 || cfg.FPS != 30 {
		t.Errorf("unexpected config: preset=%q gravity=%g fps=%d", preset, cfg.Physics.Gravity, cfg.FPS)
	}
}

func TestNewLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "runner.log")
	withFlags(t, "", "", logPath, "debug")

	logger, closeLog, err := newLogger("test", nil)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	withFlags(t, "", "", "", "loud")

	if _, _, err := newLogger("test", nil); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "runner.yaml")

	if err := writeDefaultConfig(path, false); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if _, err := config.LoadFile(path); err != nil {
		t.Errorf("written config does not load: %v", err)
	}

	if err := writeDefaultConfig(path, false); err == nil {
		t.Error("existing file should not be overwritten without force")
	}
	if err := writeDefaultConfig(path, true); err != nil {
		t.Errorf("forced write failed: %v", err)
	}
	if err := writeDefaultConfig("", false); err == nil {
		t.Error("empty path should fail")
	}
}
