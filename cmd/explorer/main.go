// explorer is the desktop front end: an 800x600 window showing the
// Mandelbrot set, or the Julia set of the point under the cursor.
//
//	drag: pan   wheel: zoom   space: julia   r: reset   p: preview
//	1-6: landmarks   esc: quit
package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandel "github.com/marben/julia_explorer"
	"github.com/marben/julia_explorer/control"
	"github.com/marben/julia_explorer/explorer"
	"github.com/marben/julia_explorer/render"
)

var (
	workers = flag.Int("workers", 0, "tile render workers per frame (0 = GOMAXPROCS)")
	verbose = flag.Bool("v", false, "debug logging")
)

var landmarkKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

type game struct {
	app     *explorer.App
	frame   *image.RGBA
	pointer image.Point
}

// poll translates this tick's input into explorer events.
func (g *game) poll() ([]control.Event, bool) {
	var events []control.Event

	x, y := ebiten.CursorPosition()
	if p := image.Pt(x, y); p != g.pointer {
		g.pointer = p
		events = append(events, control.Move(x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, control.Down(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, control.Up(x, y))
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		events = append(events, control.Wheel(x, y, dy))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, control.Toggle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		events = append(events, control.Reset())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		events = append(events, control.Preview())
	}
	for i, k := range landmarkKeys {
		if inpututil.IsKeyJustPressed(k) {
			events = append(events, control.Goto(mandel.Landmarks[i].Name))
		}
	}

	return events, inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Update drains the input of this tick, then renders one frame. Ticks
// without input keep the previous frame.
func (g *game) Update() error {
	events, quit := g.poll()
	if quit {
		return ebiten.Termination
	}
	if len(events) == 0 && g.frame != nil {
		return nil
	}

	if err := g.app.HandleBatch(events); err != nil {
		log.Printf("input: %v", err)
	}
	frame, err := g.app.Frame()
	if err != nil {
		return err
	}
	g.frame = frame
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.WritePixels(g.frame.Pix)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return mandel.Width, mandel.Height
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	g := &game{
		app:     explorer.New(render.Engine{Workers: *workers}),
		pointer: image.Pt(-1, -1),
	}

	ebiten.SetWindowSize(mandel.Width, mandel.Height)
	ebiten.SetWindowTitle("Mandelbrot/Julia Explorer")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
