// Package tui provides the Bubble Tea frontend for the spike runner.
// It drives the session's virtual clock from tick messages, maps keys to the
// single jump/confirm input and draws the scene into a terminal cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the simulation clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
