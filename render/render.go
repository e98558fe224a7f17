// Package render turns a region of the complex plane into RGBA pixels.
package render

import (
	"fmt"
	"image"
	"image/color"

	mandel "github.com/marben/julia_explorer"
)

// RendererImpl renders tiles on the local CPU.
type RendererImpl struct {
	// OnTileRender, if set, is called before each tile is rendered.
	OnTileRender func(tile image.Rectangle)
}

var _ mandel.Renderer = RendererImpl{}

func (imp RendererImpl) RenderTile(r mandel.Region, mode mandel.Mode, pal mandel.Palette, tile image.Rectangle, imgW, imgH int) (image.RGBA, error) {
	if tile.Empty() {
		return image.RGBA{}, fmt.Errorf("empty tile %s", tile)
	}
	if imgW <= 0 || imgH <= 0 {
		return image.RGBA{}, fmt.Errorf("invalid grid %dx%d", imgW, imgH)
	}
	if imp.OnTileRender != nil {
		imp.OnTileRender(tile)
	}

	// Image has global coordinates (tile.Min .. tile.Max)
	img := image.NewRGBA(tile)

	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			img.SetRGBA(px, py, Pixel(r, mode, pal, px, py, imgW, imgH))
		}
	}

	return *img, nil
}

// Pixel computes the color of a single grid cell. It has no side effects.
func Pixel(r mandel.Region, mode mandel.Mode, pal mandel.Palette, px, py, imgW, imgH int) color.RGBA {
	p := r.PixelToComplex(px, py, imgW, imgH)
	return pal.Color(mandel.Iterations(mode, p), mandel.MaxIterations)
}
