package mandel

import (
	"image"
)

// FrameProvider hands out fully rendered frames.
type FrameProvider interface {
	GetImage() (image.RGBA, error)
}

// Renderer renders one tile of an imgW x imgH grid mapped onto region r.
// The returned image carries global coordinates (tile.Min .. tile.Max).
type Renderer interface {
	RenderTile(r Region, mode Mode, pal Palette, tile image.Rectangle, imgW, imgH int) (image.RGBA, error)
}
