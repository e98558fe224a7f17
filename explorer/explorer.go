// Package explorer is the top-level control loop shared by the desktop and
// websocket front ends: drain input, then render one frame.
package explorer

import (
	"errors"
	"image"
	"sync"

	mandel "github.com/marben/julia_explorer"
	"github.com/marben/julia_explorer/control"
	"github.com/marben/julia_explorer/render"
	"github.com/marben/julia_explorer/ui"
)

// App owns the viewport (through its controller), the widgets and the last
// presented frame. Input handling and rendering never interleave.
type App struct {
	ctl    *control.Controller
	ui     *ui.UI
	engine render.Engine

	m    sync.Mutex
	last *image.RGBA
}

var _ mandel.FrameProvider = (*App)(nil)

// New returns an app over the default viewport of the main grid.
func New(engine render.Engine) *App {
	return &App{
		ctl:    control.New(mandel.Width, mandel.Height),
		ui:     ui.New(),
		engine: engine,
	}
}

// Handle routes one event: primary presses on a widget are consumed by the
// UI, preview events toggle the panel, everything else reaches the controller.
func (a *App) Handle(ev control.Event) error {
	switch a.ui.Press(ev) {
	case ui.ActionReset:
		a.ctl.ResetView()
		return nil
	case ui.ActionTogglePreview:
		a.ui.ShowPreview = !a.ui.ShowPreview
		return nil
	}

	if ev.Kind == control.KindPreview {
		a.ui.ShowPreview = !a.ui.ShowPreview
		return nil
	}
	return a.ctl.Handle(ev)
}

// HandleBatch applies every event in order. A bad event does not stop the
// rest of the batch; all errors are returned joined.
func (a *App) HandleBatch(evs []control.Event) error {
	var errs []error
	for _, ev := range evs {
		if err := a.Handle(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Frame renders the main grid for the current state and draws the widgets
// over it.
func (a *App) Frame() (*image.RGBA, error) {
	view := a.ctl.Viewport()
	mode := a.ctl.Mode()

	img, err := a.engine.Main(view, mode)
	if err != nil {
		return nil, err
	}

	var preview image.Image
	if a.ui.ShowPreview {
		p, err := a.engine.Preview(a.ctl.JuliaParam())
		if err != nil {
			return nil, err
		}
		preview = p
	}

	a.ui.Draw(img, ui.Status{Zoom: view.Zoom, Mode: mode, JuliaC: a.ctl.JuliaParam()}, preview)

	a.m.Lock()
	a.last = img
	a.m.Unlock()
	return img, nil
}

// GetImage returns the last presented frame, rendering one if there is none.
func (a *App) GetImage() (image.RGBA, error) {
	a.m.Lock()
	last := a.last
	a.m.Unlock()

	if last == nil {
		var err error
		if last, err = a.Frame(); err != nil {
			return image.RGBA{}, err
		}
	}
	return *last, nil
}

// Controller exposes the interaction state, mostly for front ends and tests.
func (a *App) Controller() *control.Controller { return a.ctl }

// UI exposes the widget layout.
func (a *App) UI() *ui.UI { return a.ui }
