package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/spike-runner/internal/config"
	"github.com/vovakirdan/spike-runner/internal/core"
)

// Spawner generates spikes with randomized size and spawn timing.
// All ranges are min-inclusive, max-exclusive.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.Obstacles
	canvasW float64
	floorY  float64
}

// NewSpawner creates a spawner for the given configuration and RNG seed.
func NewSpawner(seed int64, cfg config.RunnerConfig) *Spawner {
	s := &Spawner{
		rng: rand.New(rand.NewSource(seed)),
	}
	s.configure(cfg)
	return s
}

// configure swaps in new ranges and canvas geometry, keeping the RNG stream.
func (s *Spawner) configure(cfg config.RunnerConfig) {
	s.cfg = cfg.Obstacles
	s.canvasW = float64(cfg.Canvas.Width)
	s.floorY = cfg.FloorY()
}

// Spawn creates a spike just off the right edge of the canvas, resting on
// the floor and moving left at the configured velocity.
func (s *Spawner) Spawn() core.Body {
	w := s.randRange(s.cfg.MinWidth, s.cfg.MaxWidth)
	h := s.randRange(s.cfg.MinHeight, s.cfg.MaxHeight)

	spike := core.NewBody(core.Rect{
		X: s.canvasW,
		Y: s.floorY - float64(h),
		W: float64(w),
		H: float64(h),
	})
	spike.Vel.X = -s.cfg.Velocity
	return spike
}

// NextDelay returns the wait before the following spawn. It is redrawn on
// every call.
func (s *Spawner) NextDelay() time.Duration {
	ms := s.randRange(s.cfg.MinDelayMS, s.cfg.MaxDelayMS)
	return time.Duration(ms) * time.Millisecond
}

// randRange returns an integer in [min, max). Empty ranges yield min.
func (s *Spawner) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}
