package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, keys.Jump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, keys.Jump},
		{"w jumps", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, keys.Jump},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, keys.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit},
		{"? toggles help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, keys.Help},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("key %q did not match binding %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	if key.Matches(down, keys.Jump) || key.Matches(down, keys.Quit) {
		t.Error("down should not be bound")
	}
}
