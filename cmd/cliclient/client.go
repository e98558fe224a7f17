// client.go is a CLI client for the explorer server.
// It connects over websocket, replays a scripted event batch and saves the
// resulting frame as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/julia_explorer"
	"github.com/marben/julia_explorer/control"
	"github.com/marben/julia_explorer/explorer"
)

var (
	addr     = flag.String("addr", "ws://localhost:8080/ws", "server websocket url")
	out      = flag.String("out", "mandel.png", "output PNG file")
	at       = flag.String("at", "400,300", "pointer position x,y for zoom and julia parameter")
	zoom     = flag.Int("zoom", 0, "wheel notches at -at, positive zooms in, negative out")
	pan      = flag.String("pan", "", "drag from -at by dx,dy pixels")
	landmark = flag.String("goto", "", "jump to a landmark before zooming")
	julia    = flag.Bool("julia", false, "switch to julia mode with the parameter under -at")
	preview  = flag.Bool("preview", false, "show the julia preview panel")
	timeout  = flag.Duration("timeout", time.Minute, "overall timeout")
)

// main is the entry point for the CLI client.
func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	events, err := script()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Step 1: Connect to server
	log.Printf("Connecting to explorer server at %s...", *addr)
	c, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer c.CloseNow()
	c.SetReadLimit(32 << 20)

	// Step 2: The server greets every session with the default frame
	if _, err := readFrame(ctx, c); err != nil {
		return fmt.Errorf("initial frame: %w", err)
	}

	// Step 3: Replay our events and wait for the frame they produce
	log.Printf("Sending %d events...", len(events))
	if err := wsjson.Write(ctx, c, explorer.Batch{Events: events}); err != nil {
		return fmt.Errorf("wsjson.Write: %w", err)
	}
	frame, err := readFrame(ctx, c)
	if err != nil {
		return err
	}

	// Step 4: Save the frame
	log.Printf("Saving frame to %q...", *out)
	if err := os.WriteFile(*out, frame, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	c.Close(websocket.StatusNormalClosure, "")
	log.Printf("Frame saved to %q", *out)
	return nil
}

// readFrame reads one binary message and checks it decodes as a main frame.
func readFrame(ctx context.Context, c *websocket.Conn) ([]byte, error) {
	typ, b, err := c.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	if typ != websocket.MessageBinary {
		return nil, fmt.Errorf("unexpected %v message", typ)
	}
	img, err := explorer.DecodeFrame(b)
	if err != nil {
		return nil, err
	}
	if got := img.Bounds().Size(); got != image.Pt(mandel.Width, mandel.Height) {
		return nil, fmt.Errorf("unexpected frame size %v", got)
	}
	return b, nil
}

// script turns the flags into one event batch.
func script() ([]control.Event, error) {
	var x, y int
	if _, err := fmt.Sscanf(*at, "%d,%d", &x, &y); err != nil {
		return nil, fmt.Errorf("bad -at %q: %w", *at, err)
	}

	events := []control.Event{control.Move(x, y)}
	if *landmark != "" {
		if _, ok := mandel.LookupLandmark(*landmark); !ok {
			return nil, fmt.Errorf("unknown landmark %q", *landmark)
		}
		events = append(events, control.Goto(*landmark))
	}
	for i := 0; i < *zoom; i++ {
		events = append(events, control.Wheel(x, y, 1))
	}
	for i := 0; i > *zoom; i-- {
		events = append(events, control.Wheel(x, y, -1))
	}
	if *pan != "" {
		var dx, dy int
		if _, err := fmt.Sscanf(*pan, "%d,%d", &dx, &dy); err != nil {
			return nil, fmt.Errorf("bad -pan %q: %w", *pan, err)
		}
		events = append(events, control.Down(x, y), control.Move(x+dx, y+dy), control.Up(x+dx, y+dy))
	}
	if *julia {
		events = append(events, control.Toggle())
	}
	if *preview {
		events = append(events, control.Preview())
	}
	return events, nil
}
