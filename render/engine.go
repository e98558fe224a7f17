package render

import (
	"fmt"
	"image"
	"runtime"
	"time"

	mandel "github.com/marben/julia_explorer"
)

// DefaultTileSize is the side of the square tiles a frame is split into.
const DefaultTileSize = 64

// Engine renders whole frames by scheduling tiles on a Renderer.
// Every pixel is independent, so the output does not depend on Workers.
type Engine struct {
	// Renderer renders individual tiles. Nil means RendererImpl{}.
	Renderer mandel.Renderer
	// Workers is the number of concurrent tile renderers.
	// Zero or negative means GOMAXPROCS.
	Workers int
	// TileSize defaults to DefaultTileSize.
	TileSize int
}

// Frame renders a w x h grid of region r. Every cell is overwritten.
func (e Engine) Frame(r mandel.Region, mode mandel.Mode, pal mandel.Palette, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", w, h)
	}
	if mode == nil {
		return nil, fmt.Errorf("nil mode")
	}

	renderer := e.Renderer
	if renderer == nil {
		renderer = RendererImpl{}
	}
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	tileSize := e.TileSize
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	start := time.Now()
	fs := newFrameScheduler(w, h, tileSize, r, mode, pal)
	if err := fs.run(renderer, workers); err != nil {
		return nil, err
	}

	mandel.Logger().Debug("frame rendered",
		"mode", mode, "palette", pal, "region", r,
		"size", fmt.Sprintf("%dx%d", w, h), "workers", workers,
		"finished", fs.finished(), "took", time.Since(start))

	return fs.img, nil
}

// Main renders the main view grid.
func (e Engine) Main(v mandel.Viewport, mode mandel.Mode) (*image.RGBA, error) {
	return e.Frame(v.Region, mode, mandel.PaletteMain, mandel.Width, mandel.Height)
}

// Preview renders the Julia set of c on the fixed preview region,
// independent of the main viewport.
func (e Engine) Preview(c complex128) (*image.RGBA, error) {
	return e.Frame(mandel.PreviewRegion, mandel.Julia{C: c}, mandel.PalettePreview, mandel.PreviewSize, mandel.PreviewSize)
}
