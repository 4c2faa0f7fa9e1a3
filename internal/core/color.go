package core

import (
	"fmt"
	"image/color"
)

// Color identifies what is being drawn. Frontends map it to their own palette.
type Color uint8

// Palette entries for the runner's scene.
const (
	ColorBackground Color = iota
	ColorFloor
	ColorPlayer
	ColorSpikes
	ColorText // Overlay text drawn by frontends
)

// colorHex holds the canonical sRGB value of each palette entry.
var colorHex = map[Color]color.RGBA{
	ColorBackground: {R: 0x64, G: 0x95, B: 0xed, A: 0xff}, // cornflowerblue
	ColorFloor:      {R: 0xd8, G: 0xb9, B: 0xaa, A: 0xff},
	ColorPlayer:     {R: 0xd6, G: 0xd7, B: 0xdc, A: 0xff},
	ColorSpikes:     {R: 0x68, G: 0x65, B: 0x73, A: 0xff},
	ColorText:       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// RGBA returns the color as an image/color value.
// Unknown colors render as opaque black.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := colorHex[c]; ok {
		return rgba
	}
	return color.RGBA{A: 0xff}
}

// Hex returns the color as a "#rrggbb" string, suitable for lipgloss.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorBackground:
		return "Background"
	case ColorFloor:
		return "Floor"
	case ColorPlayer:
		return "Player"
	case ColorSpikes:
		return "Spikes"
	case ColorText:
		return "Text"
	default:
		return "Unknown"
	}
}
