package tui

import (
	"testing"

	"github.com/vovakirdan/spike-runner/internal/core"
)

func TestScreenSinkScaling(t *testing.T) {
	tests := []struct {
		name           string
		rect           core.Rect
		x0, y0, x1, y1 int
	}{
		{"aligned", core.MustRect(10, 20, 30, 40), 1, 2, 4, 6},
		{"partial cell is filled", core.MustRect(15, 15, 1, 1), 1, 1, 2, 2},
		{"straddling cells", core.MustRect(5, 5, 10, 10), 0, 0, 2, 2},
		{"clipped right", core.MustRect(95, 0, 50, 10), 9, 0, 10, 1},
		{"clipped left", core.MustRect(-30, 0, 40, 10), 0, 0, 1, 1},
		{"off-screen", core.MustRect(200, 0, 10, 10), 10, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := NewScreenSink(core.NewScreen(10, 10), core.MustRect(0, 0, 100, 100))
			x0, y0, x1, y1 := sink.cells(tt.rect)
			if x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1 {
				t.Errorf("cells(%+v) = (%d,%d,%d,%d), expected (%d,%d,%d,%d)",
					tt.rect, x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func TestScreenSinkDraw(t *testing.T) {
	screen := core.NewScreen(10, 10)
	sink := NewScreenSink(screen, core.MustRect(0, 0, 100, 100))

	sink.Draw(core.MustRect(0, 0, 100, 100), core.ColorBackground)
	sink.Draw(core.MustRect(0, 80, 100, 20), core.ColorFloor)
	sink.Draw(core.MustRect(20, 60, 20, 20), core.ColorPlayer)

	tests := []struct {
		x, y  int
		rune  rune
		color core.Color
	}{
		{0, 0, ' ', core.ColorBackground},
		{5, 9, fillRune, core.ColorFloor},
		{2, 6, fillRune, core.ColorPlayer},
		{3, 7, fillRune, core.ColorPlayer},
		{4, 7, ' ', core.ColorBackground},
	}

	for _, tt := range tests {
		got := screen.GetCell(tt.x, tt.y)
		if got.Rune != tt.rune || got.Color != tt.color {
			t.Errorf("cell (%d,%d) = %q/%v, expected %q/%v", tt.x, tt.y, got.Rune, got.Color, tt.rune, tt.color)
		}
	}
}
