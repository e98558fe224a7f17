// Package ui lays out the on-screen widgets of the explorer, hit-tests
// clicks against them and draws them over a rendered frame.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	mandel "github.com/marben/julia_explorer"
	"github.com/marben/julia_explorer/control"
)

// Action is what a consumed click asks the caller to do.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionTogglePreview
)

var (
	buttonFill   = color.RGBA{40, 40, 90, 255}
	buttonBorder = color.RGBA{160, 160, 220, 255}
	labelColor   = color.RGBA{230, 230, 255, 255}
	panelShade   = color.RGBA{0, 0, 0, 160}
)

// UI holds widget rectangles in main grid pixels and the preview toggle.
type UI struct {
	ResetButton   image.Rectangle
	PreviewButton image.Rectangle
	ZoomDisplay   image.Rectangle
	PreviewWindow image.Rectangle

	ShowPreview bool

	face font.Face
}

// New returns the default layout for the 800x600 main grid.
func New() *UI {
	return &UI{
		ResetButton:   image.Rect(10, 10, 90, 34),
		PreviewButton: image.Rect(100, 10, 220, 34),
		ZoomDisplay:   image.Rect(10, mandel.Height-46, 330, mandel.Height-10),
		PreviewWindow: image.Rect(mandel.Width-mandel.PreviewSize-10, 10, mandel.Width-10, 10+mandel.PreviewSize),
		face:          basicfont.Face7x13,
	}
}

// Hit reports the action bound to the widget under p.
func (u *UI) Hit(p image.Point) Action {
	switch {
	case p.In(u.ResetButton):
		return ActionReset
	case p.In(u.PreviewButton):
		return ActionTogglePreview
	}
	return ActionNone
}

// Press hit-tests a primary button press. Other events are never consumed.
func (u *UI) Press(ev control.Event) Action {
	if ev.Kind != control.KindDown || ev.Button != control.ButtonPrimary {
		return ActionNone
	}
	return u.Hit(image.Pt(ev.X, ev.Y))
}

// Status is the state shown in the zoom display.
type Status struct {
	Zoom   float64
	Mode   mandel.Mode
	JuliaC complex128
}

// Draw paints the widgets onto dst. preview is scaled into the preview
// window when ShowPreview is set; a nil preview leaves the window empty.
func (u *UI) Draw(dst *image.RGBA, st Status, preview image.Image) {
	u.button(dst, u.ResetButton, "Reset")
	label := "Julia Preview"
	if u.ShowPreview {
		label = "Hide Preview"
	}
	u.button(dst, u.PreviewButton, label)

	draw.Draw(dst, u.ZoomDisplay, image.NewUniform(panelShade), image.Point{}, draw.Over)
	mode := "Mandelbrot"
	if _, ok := st.Mode.(mandel.Julia); ok {
		mode = "Julia"
	}
	u.text(dst, u.ZoomDisplay.Min.Add(image.Pt(6, 4)), fmt.Sprintf("Zoom: %.2fx  %s", st.Zoom, mode))
	u.text(dst, u.ZoomDisplay.Min.Add(image.Pt(6, 20)), "c = "+mandel.FormatComplex(st.JuliaC))

	if u.ShowPreview && preview != nil {
		xdraw.NearestNeighbor.Scale(dst, u.PreviewWindow, preview, preview.Bounds(), xdraw.Src, nil)
		outline(dst, u.PreviewWindow, buttonBorder)
	}
}

func (u *UI) button(dst *image.RGBA, r image.Rectangle, label string) {
	draw.Draw(dst, r, image.NewUniform(buttonFill), image.Point{}, draw.Src)
	outline(dst, r, buttonBorder)

	adv := font.MeasureString(u.face, label).Round()
	x := r.Min.X + (r.Dx()-adv)/2
	y := r.Min.Y + (r.Dy()-u.face.Metrics().Height.Round())/2
	u.text(dst, image.Pt(x, y), label)
}

// text draws s with its top-left corner at p.
func (u *UI) text(dst *image.RGBA, p image.Point, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: u.face,
		Dot:  fixed.P(p.X, p.Y+u.face.Metrics().Ascent.Round()),
	}
	d.DrawString(s)
}

func outline(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetRGBA(x, r.Min.Y, c)
		dst.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetRGBA(r.Min.X, y, c)
		dst.SetRGBA(r.Max.X-1, y, c)
	}
}
