package game

import "github.com/vovakirdan/spike-runner/internal/core"

// Snapshot captures the session state for HUDs, determinism testing and logs.
type Snapshot struct {
	State     State
	Tick      uint64
	Resets    int
	Spikes    int
	Player    core.Rect
	PlayerVel core.Vec2
	Grounded  bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state,
		Tick:      s.tick,
		Resets:    s.resets,
		Spikes:    len(s.obstacles),
		Player:    s.player.Body.Rect,
		PlayerVel: s.player.Body.Vel,
		Grounded:  s.player.Grounded,
	}
}
