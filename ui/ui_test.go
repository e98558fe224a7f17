package ui

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	mandel "github.com/marben/julia_explorer"
	"github.com/marben/julia_explorer/control"
)

func TestLayoutFitsMainGrid(t *testing.T) {
	u := New()
	grid := image.Rect(0, 0, mandel.Width, mandel.Height)
	for name, r := range map[string]image.Rectangle{
		"reset":   u.ResetButton,
		"preview": u.PreviewButton,
		"zoom":    u.ZoomDisplay,
		"window":  u.PreviewWindow,
	} {
		if r.Empty() || !r.In(grid) {
			t.Errorf("%s rect %v not inside %v", name, r, grid)
		}
	}
	if got := u.PreviewWindow.Size(); got != image.Pt(mandel.PreviewSize, mandel.PreviewSize) {
		t.Errorf("preview window size = %v", got)
	}
	if u.ResetButton.Overlaps(u.PreviewButton) {
		t.Error("buttons overlap")
	}
}

func TestHit(t *testing.T) {
	u := New()
	tests := []struct {
		name string
		p    image.Point
		want Action
	}{
		{"reset centre", center(u.ResetButton), ActionReset},
		{"reset corner", u.ResetButton.Min, ActionReset},
		{"reset max edge is outside", u.ResetButton.Max, ActionNone},
		{"preview button", center(u.PreviewButton), ActionTogglePreview},
		{"empty canvas", image.Pt(400, 300), ActionNone},
		{"preview window is not a button", center(u.PreviewWindow), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := u.Hit(tt.p); got != tt.want {
				t.Errorf("Hit(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPress(t *testing.T) {
	u := New()
	p := center(u.ResetButton)

	if got := u.Press(control.Down(p.X, p.Y)); got != ActionReset {
		t.Errorf("primary press = %v", got)
	}
	if got := u.Press(control.Up(p.X, p.Y)); got != ActionNone {
		t.Errorf("release consumed: %v", got)
	}
	if got := u.Press(control.Move(p.X, p.Y)); got != ActionNone {
		t.Errorf("move consumed: %v", got)
	}
	secondary := control.Event{Kind: control.KindDown, X: p.X, Y: p.Y, Button: 2}
	if got := u.Press(secondary); got != ActionNone {
		t.Errorf("secondary press consumed: %v", got)
	}
}

func TestDraw_Widgets(t *testing.T) {
	u := New()
	dst := solid(mandel.Width, mandel.Height, color.RGBA{0, 0, 0, 255})
	u.Draw(dst, Status{Zoom: 1, Mode: mandel.Mandelbrot{}}, nil)

	if got := dst.RGBAAt(u.ResetButton.Min.X, u.ResetButton.Min.Y); got != buttonBorder {
		t.Errorf("reset border = %v", got)
	}
	if !hasColor(dst, u.ResetButton, labelColor) {
		t.Error("reset label not drawn")
	}
	if !hasColor(dst, u.ZoomDisplay, labelColor) {
		t.Error("zoom text not drawn")
	}
	// Nothing outside the widgets is touched.
	if got := dst.RGBAAt(400, 300); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("canvas pixel = %v", got)
	}
}

func TestDraw_Preview(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	preview := solid(mandel.PreviewSize, mandel.PreviewSize, red)
	bg := color.RGBA{0, 0, 40, 255}

	u := New()
	dst := solid(mandel.Width, mandel.Height, bg)
	u.Draw(dst, Status{Zoom: 1, Mode: mandel.Julia{}}, preview)
	if got := dst.RGBAAt(center(u.PreviewWindow).X, center(u.PreviewWindow).Y); got != bg {
		t.Errorf("hidden preview drawn: %v", got)
	}

	u.ShowPreview = true
	u.Draw(dst, Status{Zoom: 1, Mode: mandel.Julia{}}, preview)
	if got := dst.RGBAAt(center(u.PreviewWindow).X, center(u.PreviewWindow).Y); got != red {
		t.Errorf("preview centre = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(u.PreviewWindow.Min.X-1, u.PreviewWindow.Min.Y+5); got != bg {
		t.Errorf("preview spilled outside its window: %v", got)
	}
}

func TestDraw_PreviewScaled(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	u := New()
	u.ShowPreview = true
	dst := solid(mandel.Width, mandel.Height, color.RGBA{A: 255})
	u.Draw(dst, Status{Zoom: 2}, solid(50, 50, green))

	inner := u.PreviewWindow.Inset(1)
	for _, p := range []image.Point{inner.Min, center(inner), inner.Max.Sub(image.Pt(1, 1))} {
		if got := dst.RGBAAt(p.X, p.Y); got != green {
			t.Errorf("pixel %v = %v, want %v", p, got, green)
		}
	}
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Size().Div(2))
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func hasColor(img *image.RGBA, r image.Rectangle, c color.RGBA) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}
