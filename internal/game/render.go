package game

import "github.com/vovakirdan/spike-runner/internal/core"

// Renderer is the drawing capability the render pass consumes.
// Rectangles are in world coordinates.
type Renderer interface {
	Draw(r core.Rect, c core.Color)
}

// Render issues one draw call per visible element, back to front:
// background, floor, spikes, player. It never mutates the session.
func (s *Session) Render(dst Renderer) {
	dst.Draw(s.canvas, core.ColorBackground)
	dst.Draw(s.floor, core.ColorFloor)
	for _, o := range s.obstacles {
		dst.Draw(o.Rect, core.ColorSpikes)
	}
	dst.Draw(s.player.Body.Rect, core.ColorPlayer)
}
