package mandel

import (
	"image/color"
	"math"
)

// Palette picks one of the two cosine palettes.
type Palette int

const (
	// PaletteMain is the blue palette of the main view.
	PaletteMain Palette = iota
	// PalettePreview is the pale palette of the Julia preview panel.
	PalettePreview
)

func (p Palette) String() string {
	switch p {
	case PaletteMain:
		return "main"
	case PalettePreview:
		return "preview"
	}
	return "unknown"
}

// Color maps an escape count to a color. Points that never escaped
// (iterations == maxIter) are black in every palette.
func (p Palette) Color(iterations, maxIter int) color.RGBA {
	if iterations >= maxIter {
		return color.RGBA{A: 255}
	}

	t := float64(iterations) / float64(maxIter)
	t = 0.5 + 0.5*math.Cos(math.Log(t+0.0001)*3.0)

	switch p {
	case PalettePreview:
		return color.RGBA{
			R: uint8(255 * t),
			G: uint8(255 * t),
			B: uint8(128 + (1-t)*127),
			A: 255,
		}
	default:
		return color.RGBA{
			R: uint8(255 * t * 0.2),
			G: uint8(255 * t * 0.4),
			B: uint8(255 * t),
			A: 255,
		}
	}
}
