package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/spike-runner/internal/core"
	"github.com/vovakirdan/spike-runner/internal/game"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// overlayLines is the game-over prompt.
var overlayLines = []string{
	"CRASHED",
	"",
	"press Space, Up or W to restart",
}

// drawOverlay draws a centered game-over box over the scene.
func drawOverlay(s *core.Screen) {
	inner := 0
	for _, line := range overlayLines {
		inner = core.Max(inner, len([]rune(line)))
	}
	w := inner + 4
	h := len(overlayLines) + 2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', core.ColorText)
	s.DrawBox(x, y, w, h)
	for i, line := range overlayLines {
		lx := x + (w-len([]rune(line)))/2
		s.DrawText(lx, y+1+i, line)
	}
}

// renderHUD formats the status line shown above the scene.
func renderHUD(snap game.Snapshot, theme Theme) string {
	sep := theme.HUDSeparator.Render(" │ ")
	return theme.HUDTitle.Render("SPIKE RUNNER") + sep +
		theme.HUDValue.Render(snap.State.String()) + sep +
		theme.HUDValue.Render(fmt.Sprintf("tick %d", snap.Tick)) + sep +
		theme.HUDValue.Render(fmt.Sprintf("spikes %d", snap.Spikes)) + sep +
		theme.HUDValue.Render(fmt.Sprintf("resets %d", snap.Resets))
}
