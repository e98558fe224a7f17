package control

import (
	"fmt"
	"image"

	mandel "github.com/marben/julia_explorer"
)

// dragOrigin is captured on primary press. Pans are computed against it.
type dragOrigin struct {
	start image.Point
	base  mandel.Region
}

// Controller is the Idle/Dragging state machine owning the viewport.
// It is not safe for concurrent use.
type Controller struct {
	view mandel.Viewport
	w, h int

	pointer image.Point
	drag    *dragOrigin

	julia  bool
	juliaC complex128
}

// New returns an idle controller over the default viewport of a w x h grid.
func New(w, h int) *Controller {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("control: invalid grid %dx%d", w, h))
	}
	return &Controller{view: mandel.NewViewport(), w: w, h: h}
}

// Handle applies one event. While not dragging, the Julia parameter is
// re-derived from the pointer after every event.
func (c *Controller) Handle(ev Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	if ev.Positional() {
		c.pointer = image.Pt(ev.X, ev.Y)
	}

	switch ev.Kind {
	case KindDown:
		if ev.Button == ButtonPrimary {
			c.drag = &dragOrigin{start: c.pointer, base: c.view.Region}
		}
	case KindUp:
		if ev.Button == ButtonPrimary {
			c.drag = nil
		}
	case KindMove:
		if c.drag != nil {
			d := c.pointer.Sub(c.drag.start)
			c.view.Pan(d.X, d.Y, c.drag.base, c.w, c.h)
		}
	case KindWheel:
		if ev.DY != 0 {
			c.view.ZoomAt(c.pointer.X, c.pointer.Y, c.w, c.h, ev.DY > 0)
		}
	case KindToggle:
		c.julia = !c.julia
	case KindReset:
		c.view.Reset()
	case KindGoto:
		l, ok := mandel.LookupLandmark(ev.Name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLandmark, ev.Name)
		}
		c.view.Goto(l.Region)
	}

	if c.drag == nil {
		c.juliaC = c.view.PixelToComplex(c.pointer.X, c.pointer.Y, c.w, c.h)
	}
	return nil
}

// Viewport returns a copy of the current viewport.
func (c *Controller) Viewport() mandel.Viewport { return c.view }

// Mode returns the render mode, carrying the Julia parameter in Julia mode.
func (c *Controller) Mode() mandel.Mode {
	if c.julia {
		return mandel.Julia{C: c.juliaC}
	}
	return mandel.Mandelbrot{}
}

// JuliaParam is the pointer-tracked parameter, frozen while dragging.
func (c *Controller) JuliaParam() complex128 { return c.juliaC }

func (c *Controller) Dragging() bool       { return c.drag != nil }
func (c *Controller) Pointer() image.Point { return c.pointer }

// ResetView restores the default viewport without touching the drag state
// or the Julia parameter. Used by the reset button.
func (c *Controller) ResetView() { c.view.Reset() }
