package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spike-runner/internal/core"
)

// Theme contains all visual styles of the terminal frontend.
type Theme struct {
	// Scene and overlay colors, keyed by palette entry
	Cells map[core.Color]lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
}

// DefaultTheme returns the true-color theme using the scene palette.
func DefaultTheme() Theme {
	bg := lipgloss.Color(core.ColorBackground.Hex())
	cell := func(c core.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Background(bg)
	}

	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorBackground: cell(core.ColorBackground),
			core.ColorFloor:      cell(core.ColorFloor),
			core.ColorPlayer:     cell(core.ColorPlayer),
			core.ColorSpikes:     cell(core.ColorSpikes),
			core.ColorText:       cell(core.ColorText).Bold(true),
		},

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without true color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Cells = map[core.Color]lipgloss.Style{
		core.ColorBackground: lipgloss.NewStyle(),
		core.ColorFloor:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		core.ColorSpikes:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	}
	theme.HUDTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

// style returns the cell style for c, falling back to an unstyled cell.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.Cells[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
