package mandel

import (
	"fmt"
	"image"
)

const (
	// Width and Height of the main view grid.
	Width, Height = 800, 600

	// PreviewSize is the side of the square Julia preview grid.
	PreviewSize = 200
)

// Region within the complex plane
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Valid reports whether the region has positive extent on both axes.
func (r Region) Valid() bool {
	return r.Xmin < r.Xmax && r.Ymin < r.Ymax
}

func (r Region) Width() float64  { return r.Xmax - r.Xmin }
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// PixelToComplex maps pixel (px, py) of a w x h grid onto the region.
// No clamping is done.
func (r Region) PixelToComplex(px, py, w, h int) complex128 {
	re := r.Xmin + float64(px)*(r.Xmax-r.Xmin)/float64(w)
	im := r.Ymin + float64(py)*(r.Ymax-r.Ymin)/float64(h)
	return complex(re, im)
}

func (r Region) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

var (
	// DefaultRegion is the startup view of the main grid.
	DefaultRegion = Region{Xmin: -2.0, Xmax: 1.0, Ymin: -1.5, Ymax: 1.5}

	// PreviewRegion is the fixed view of the Julia preview grid.
	PreviewRegion = Region{Xmin: -1.5, Xmax: 1.5, Ymin: -1.5, Ymax: 1.5}
)

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Landmark is a named region that the view can jump to.
type Landmark struct {
	Name   string
	Region Region
}

// Landmarks in the order they are bound to keys 1..6.
var Landmarks = []Landmark{
	{"seahorse", SeahorseValley},
	{"elephant", ElephantValley},
	{"spiral", SpiralMinibrot},
	{"triple", TripleSpiral},
	{"dragon", ValleyOfTheDragon},
	{"minibrot", MinibrotInMiniSpiral},
}

// LookupLandmark finds a landmark by name.
func LookupLandmark(name string) (Landmark, bool) {
	for _, l := range Landmarks {
		if l.Name == name {
			return l, true
		}
	}
	return Landmark{}, false
}

// SplitRect splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func SplitRect(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
