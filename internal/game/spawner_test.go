package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/spike-runner/internal/config"
)

func TestSpawnBounds(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sp := NewSpawner(42, cfg)

	var sawMinW, sawMinH bool
	for i := 0; i < 10000; i++ {
		spike := sp.Spawn()
		r := spike.Rect

		if r.W < 32 || r.W >= 64 {
			t.Fatalf("sample %d: width %g outside [32, 64)", i, r.W)
		}
		if r.H < 128 || r.H >= 256 {
			t.Fatalf("sample %d: height %g outside [128, 256)", i, r.H)
		}
		if r.X != 3840 {
			t.Fatalf("sample %d: x = %g, expected canvas width", i, r.X)
		}
		if r.Bottom() != cfg.FloorY() {
			t.Fatalf("sample %d: spike should rest on the floor, bottom = %g", i, r.Bottom())
		}
		if spike.Vel.X != -10 || spike.Vel.Y != 0 {
			t.Fatalf("sample %d: velocity = %+v", i, spike.Vel)
		}
		if spike.Accel.X != 0 || spike.Accel.Y != 0 {
			t.Fatalf("sample %d: spikes must not accelerate, got %+v", i, spike.Accel)
		}
		sawMinW = sawMinW || r.W == 32
		sawMinH = sawMinH || r.H == 128
	}

	if !sawMinW || !sawMinH {
		t.Error("lower bounds should be reachable")
	}
}

func TestNextDelayBounds(t *testing.T) {
	sp := NewSpawner(42, config.DefaultRunnerConfig())

	for i := 0; i < 10000; i++ {
		d := sp.NextDelay()
		if d < 2000*time.Millisecond || d >= 5000*time.Millisecond {
			t.Fatalf("sample %d: delay %v outside [2s, 5s)", i, d)
		}
		if d%time.Millisecond != 0 {
			t.Fatalf("sample %d: delay %v is not whole milliseconds", i, d)
		}
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := NewSpawner(99, config.DefaultRunnerConfig())
	b := NewSpawner(99, config.DefaultRunnerConfig())

	for i := 0; i < 100; i++ {
		if a.Spawn() != b.Spawn() || a.NextDelay() != b.NextDelay() {
			t.Fatalf("spawners with the same seed diverged at %d", i)
		}
	}
}

func TestRandRange(t *testing.T) {
	sp := NewSpawner(1, config.DefaultRunnerConfig())

	tests := []struct {
		name     string
		min, max int
	}{
		{"empty range", 5, 5},
		{"inverted range", 9, 3},
		{"single value", 7, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				got := sp.randRange(tt.min, tt.max)
				if got != tt.min {
					t.Fatalf("randRange(%d, %d) = %d, expected %d", tt.min, tt.max, got, tt.min)
				}
			}
		})
	}
}

func TestSpawnerConfigure(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sp := NewSpawner(3, cfg)

	cfg.Canvas.Width = 1000
	cfg.Obstacles.Velocity = 4
	cfg.Obstacles.MinWidth, cfg.Obstacles.MaxWidth = 10, 11
	sp.configure(cfg)

	spike := sp.Spawn()
	if spike.Rect.X != 1000 || spike.Rect.W != 10 || spike.Vel.X != -4 {
		t.Errorf("configure not applied: %+v", spike)
	}
}
