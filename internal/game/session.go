// Package game implements the spike runner: a player on a static floor jumps
// over spikes that scroll in from the right. One Session owns all state of a
// run; tick and spawn loops are driven by an injected scheduler.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spike-runner/internal/config"
	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/sched"
)

// State is the lifecycle state of a session.
type State int

const (
	// StateRunning means ticking and spawning are active.
	StateRunning State = iota
	// StateStopped means a collision happened; everything is frozen until reset.
	StateStopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options holds optional session dependencies.
type Options struct {
	Seed   int64       // RNG seed for spike sizes and timing
	Logger *log.Logger // Lifecycle logging; nil discards
}

// Session owns the player, floor, spikes, lifecycle state and the handles
// of its two scheduled loops.
type Session struct {
	cfg     config.RunnerConfig
	pending *config.RunnerConfig // Applied on the next Reset
	sched   sched.Scheduler
	spawner *Spawner
	logger  *log.Logger

	canvas    core.Rect
	floor     core.Rect
	spawn     core.Rect
	player    Player
	obstacles []core.Body
	state     State
	started   bool
	tick      uint64 // Ticks since the last (re)start
	resets    int

	tickHandle  sched.Handle
	spawnHandle sched.Handle
}

// NewSession creates a session in the Running state. Nothing is scheduled
// until Start is called.
func NewSession(cfg config.RunnerConfig, s sched.Scheduler, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sess := &Session{
		sched:     s,
		logger:    logger,
		spawner:   NewSpawner(opts.Seed, cfg),
		obstacles: make([]core.Body, 0, 8),
	}
	if err := sess.configure(cfg); err != nil {
		return nil, err
	}
	sess.player = NewPlayer(sess.spawn, cfg.Physics.Gravity)
	return sess, nil
}

// configure derives the static geometry from cfg.
func (s *Session) configure(cfg config.RunnerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	w, h := float64(cfg.Canvas.Width), float64(cfg.Canvas.Height)
	canvas, err := core.NewRect(0, 0, w, h)
	if err != nil {
		return fmt.Errorf("game: canvas: %w", err)
	}
	floor, err := core.NewRect(0, cfg.FloorY(), w, float64(cfg.Floor.Height))
	if err != nil {
		return fmt.Errorf("game: floor: %w", err)
	}
	size := float64(cfg.Player.Size)
	spawn, err := core.NewRect(float64(cfg.Player.StartX), cfg.FloorY()-size, size, size)
	if err != nil {
		return fmt.Errorf("game: player: %w", err)
	}

	s.cfg = cfg
	s.canvas = canvas
	s.floor = floor
	s.spawn = spawn
	s.spawner.configure(cfg)
	return nil
}

// Start begins the first run: the first spike spawns immediately and the
// tick loop is armed. Calling Start again has no effect.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.logger.Info("session started", "tick_interval", s.cfg.TickInterval())
	s.resume(true)
}

// JumpOrConfirm handles the single player input. While running it requests
// a jump; while stopped it resets the session.
func (s *Session) JumpOrConfirm() {
	switch s.state {
	case StateRunning:
		if s.player.Jump(s.cfg.Physics.JumpVelocity) {
			s.logger.Debug("jump", "tick", s.tick)
		}
	case StateStopped:
		s.Reset()
	}
}

// Reset clears all spikes, returns the player to its spawn rect with zero
// velocity and resumes ticking. The spawner is re-armed with a fresh delay,
// so the field is empty right after a reset. A configuration passed to
// Reconfigure takes effect here.
func (s *Session) Reset() {
	s.cancelLoops()

	if s.pending != nil {
		if err := s.configure(*s.pending); err != nil {
			s.logger.Error("discarding pending config", "error", err)
		}
		s.pending = nil
	}

	s.obstacles = s.obstacles[:0]
	s.player = NewPlayer(s.spawn, s.cfg.Physics.Gravity)
	s.tick = 0
	s.resets++
	s.started = true
	s.logger.Info("session reset", "resets", s.resets)
	s.resume(false)
}

// Reconfigure validates cfg and schedules it for the next Reset. Constants
// never change in the middle of a run.
func (s *Session) Reconfigure(cfg config.RunnerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.pending = &cfg
	return nil
}

// resume enters Running and arms both loops. With spawnNow the first spike
// appears immediately instead of after a random delay.
func (s *Session) resume(spawnNow bool) {
	s.state = StateRunning
	if spawnNow {
		s.spawnObstacle()
	} else {
		s.spawnHandle = s.sched.After(s.spawner.NextDelay(), s.spawnObstacle)
	}
	s.tickHandle = s.sched.After(s.cfg.TickInterval(), s.onTick)
}

// onTick is the self-rescheduling tick callback.
func (s *Session) onTick() {
	s.tickHandle = 0
	s.step()
	if s.state == StateRunning {
		s.tickHandle = s.sched.After(s.cfg.TickInterval(), s.onTick)
	}
}

// spawnObstacle adds one spike and re-arms itself after a fresh random delay.
func (s *Session) spawnObstacle() {
	spike := s.spawner.Spawn()
	s.obstacles = append(s.obstacles, spike)
	s.logger.Debug("spike spawned", "w", spike.Rect.W, "h", spike.Rect.H, "count", len(s.obstacles))

	s.spawnHandle = s.sched.After(s.spawner.NextDelay(), s.spawnObstacle)
}

// step advances the simulation by one fixed tick.
func (s *Session) step() {
	if s.state != StateRunning {
		return
	}
	s.tick++

	s.player.Body.Integrate()
	s.player.clampToFloor(s.floor.Y)

	for i := range s.obstacles {
		s.obstacles[i].Integrate()
		if core.Overlaps(s.player.Body.Rect, s.obstacles[i].Rect) {
			s.stop()
			return
		}
	}

	s.prune()
}

// prune drops spikes that have fully left the screen, keeping order.
func (s *Session) prune() {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Rect.Right() > 0 {
			kept = append(kept, o)
		}
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
}

// stop freezes the session after a collision.
func (s *Session) stop() {
	s.state = StateStopped
	s.cancelLoops()
	s.logger.Info("collision, session stopped", "tick", s.tick, "spikes", len(s.obstacles))
}

// cancelLoops revokes both scheduled callbacks.
func (s *Session) cancelLoops() {
	s.sched.Cancel(s.tickHandle)
	s.sched.Cancel(s.spawnHandle)
	s.tickHandle = 0
	s.spawnHandle = 0
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns a copy of the current spikes in insertion order.
func (s *Session) Obstacles() []core.Body {
	out := make([]core.Body, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Floor returns the floor rectangle.
func (s *Session) Floor() core.Rect {
	return s.floor
}

// Canvas returns the world bounds.
func (s *Session) Canvas() core.Rect {
	return s.canvas
}

// SpawnRect returns where the player appears after a reset.
func (s *Session) SpawnRect() core.Rect {
	return s.spawn
}

// Config returns the configuration of the current run.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}
