package game

import "github.com/vovakirdan/spike-runner/internal/core"

// Player is the controllable body. Grounded is true only while the player
// rests on the floor surface.
type Player struct {
	Body     core.Body
	Grounded bool
}

// NewPlayer creates a player at rest at the given spawn rect, pulled down
// by gravity. Grounded starts false; the first floor clamp sets it.
func NewPlayer(spawn core.Rect, gravity float64) Player {
	body := core.NewBody(spawn)
	body.Accel = core.Vec2{Y: gravity}
	return Player{Body: body}
}

// Jump applies an upward impulse if the player is grounded.
// Returns false, leaving the player untouched, when airborne.
func (p *Player) Jump(velocity float64) bool {
	if !p.Grounded {
		return false
	}
	p.Body.Vel.Y = -velocity
	p.Grounded = false
	return true
}

// clampToFloor stops downward penetration of the floor surface at floorY.
// It never lifts a player standing above the surface and never clears
// Grounded; only Jump does that.
func (p *Player) clampToFloor(floorY float64) {
	limit := floorY - p.Body.Rect.H
	if p.Body.Rect.Y > limit {
		p.Body.Rect.Y = limit
		p.Body.Vel.Y = 0
		p.Grounded = true
	}
}
