package tui

import (
	"math"

	"github.com/vovakirdan/spike-runner/internal/core"
)

// fillRune is used for every solid world rectangle.
const fillRune = '█'

// ScreenSink draws world rectangles into a terminal cell buffer, scaling the
// canvas to the screen size. Partially covered cells are filled, so narrow
// spikes stay visible on small terminals.
type ScreenSink struct {
	screen *core.Screen
	canvas core.Rect
}

// NewScreenSink creates a sink mapping canvas onto screen.
func NewScreenSink(screen *core.Screen, canvas core.Rect) *ScreenSink {
	return &ScreenSink{screen: screen, canvas: canvas}
}

// Draw implements game.Renderer.
func (s *ScreenSink) Draw(r core.Rect, c core.Color) {
	x0, y0, x1, y1 := s.cells(r)
	fill := fillRune
	if c == core.ColorBackground {
		fill = ' '
	}
	s.screen.FillRect(x0, y0, x1-x0, y1-y0, fill, c)
}

// cells returns the half-open cell span covered by r.
func (s *ScreenSink) cells(r core.Rect) (x0, y0, x1, y1 int) {
	sx := float64(s.screen.Width()) / s.canvas.W
	sy := float64(s.screen.Height()) / s.canvas.H

	x0 = int(math.Floor((r.X - s.canvas.X) * sx))
	y0 = int(math.Floor((r.Y - s.canvas.Y) * sy))
	x1 = int(math.Ceil((r.Right() - s.canvas.X) * sx))
	y1 = int(math.Ceil((r.Bottom() - s.canvas.Y) * sy))

	x0 = core.Clamp(x0, 0, s.screen.Width())
	x1 = core.Clamp(x1, 0, s.screen.Width())
	y0 = core.Clamp(y0, 0, s.screen.Height())
	y1 = core.Clamp(y1, 0, s.screen.Height())
	return x0, y0, x1, y1
}
