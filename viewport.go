package mandel

import "fmt"

// Wheel zoom factors. They are not reciprocal: one notch in followed by one
// notch out leaves the extent scaled by 0.99.
const (
	ZoomInFactor  = 0.9
	ZoomOutFactor = 1.1
)

// Viewport is the region of the plane shown on the main grid plus the
// cumulative zoom. Zoom is informational and never used to derive bounds.
type Viewport struct {
	Region
	Zoom float64
}

// NewViewport returns the startup viewport.
func NewViewport() Viewport {
	return Viewport{Region: DefaultRegion, Zoom: 1.0}
}

// Reset restores the startup bounds and zoom.
func (v *Viewport) Reset() {
	*v = NewViewport()
}

// ZoomAt scales the extent around the plane point under pixel (px, py).
// The point under the cursor keeps its screen position.
func (v *Viewport) ZoomAt(px, py, w, h int, wheelUp bool) {
	factor := ZoomOutFactor
	if wheelUp {
		factor = ZoomInFactor
	}

	m := v.PixelToComplex(px, py, w, h)
	mr, mi := real(m), imag(m)

	v.apply(Viewport{
		Region: Region{
			Xmin: mr - (mr-v.Xmin)*factor,
			Xmax: mr + (v.Xmax-mr)*factor,
			Ymin: mi - (mi-v.Ymin)*factor,
			Ymax: mi + (v.Ymax-mi)*factor,
		},
		Zoom: v.Zoom * (1 / factor),
	})
}

// Pan moves the view by (dx, dy) pixels relative to base, the bounds
// captured when the drag started. It is never applied incrementally.
func (v *Viewport) Pan(dx, dy int, base Region, w, h int) {
	scaleX := (base.Xmax - base.Xmin) / float64(w)
	scaleY := (base.Ymax - base.Ymin) / float64(h)

	v.apply(Viewport{
		Region: Region{
			Xmin: base.Xmin - float64(dx)*scaleX,
			Xmax: base.Xmax - float64(dx)*scaleX,
			Ymin: base.Ymin - float64(dy)*scaleY,
			Ymax: base.Ymax - float64(dy)*scaleY,
		},
		Zoom: v.Zoom,
	})
}

// Goto replaces the bounds with r and sets zoom relative to the default width.
func (v *Viewport) Goto(r Region) {
	next := Viewport{Region: r, Zoom: DefaultRegion.Width() / r.Width()}
	next.mustValid()
	*v = next
}

// apply installs next unless float64 precision has run out and next has
// collapsed to zero extent, in which case the step is dropped.
func (v *Viewport) apply(next Viewport) {
	if !next.Valid() || !(next.Zoom > 0) {
		Logger().Debug("viewport step dropped, precision exhausted", "from", v.Region, "to", next.Region)
		return
	}
	*v = next
}

// mustValid panics on degenerate bounds. Reaching it means a caller broke
// the viewport contract, there is nothing to recover.
func (v Viewport) mustValid() {
	if !v.Valid() || !(v.Zoom > 0) {
		panic(fmt.Sprintf("mandel: degenerate viewport %s zoom=%g", v.Region, v.Zoom))
	}
}
