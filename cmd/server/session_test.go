package main

import (
	"bytes"
	"context"
	"image"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/julia_explorer"
	"github.com/marben/julia_explorer/control"
	"github.com/marben/julia_explorer/explorer"
	"github.com/marben/julia_explorer/render"
)

func startServer(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	l := NewWSListener(ctx, "test/ws")
	srv := httptest.NewServer(websocketHandler(l))
	t.Cleanup(srv.Close)

	hub := newSessionHub(render.Engine{})
	go func() {
		for {
			c, err := l.Accept()
			if err != nil {
				return
			}
			go hub.serve(ctx, c)
		}
	}()

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, ctx context.Context, url string) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	c.SetReadLimit(32 << 20)
	t.Cleanup(func() { c.CloseNow() })
	return c
}

func readFrame(t *testing.T, ctx context.Context, c *websocket.Conn) ([]byte, image.Image) {
	t.Helper()
	typ, b, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if typ != websocket.MessageBinary {
		t.Fatalf("message type = %v", typ)
	}
	img, err := explorer.DecodeFrame(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, mandel.Width, mandel.Height) {
		t.Fatalf("frame bounds = %v", got)
	}
	return b, img
}

func TestSession_FramePerBatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c := dial(t, ctx, startServer(t))
	initial, initialImg := readFrame(t, ctx, c)

	batch := explorer.Batch{Events: []control.Event{
		control.Move(300, 300),
		control.Toggle(),
	}}
	if err := wsjson.Write(ctx, c, batch); err != nil {
		t.Fatalf("wsjson.Write: %v", err)
	}
	julia, _ := readFrame(t, ctx, c)
	if bytes.Equal(initial, julia) {
		t.Error("julia frame equals the initial mandelbrot frame")
	}

	// A batch with a bad event still gets a frame.
	if err := wsjson.Write(ctx, c, explorer.Batch{Events: []control.Event{{Kind: "bogus"}, control.Toggle()}}); err != nil {
		t.Fatal(err)
	}
	_, back := readFrame(t, ctx, c)
	if !sameFractal(initialImg, back) {
		t.Error("toggling back did not restore the mandelbrot view")
	}

	if err := c.Close(websocket.StatusNormalClosure, ""); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSession_Independent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	url := startServer(t)
	a := dial(t, ctx, url)
	b := dial(t, ctx, url)
	readFrame(t, ctx, a)
	initial, _ := readFrame(t, ctx, b)

	if err := wsjson.Write(ctx, a, explorer.Batch{Events: []control.Event{control.Goto("seahorse")}}); err != nil {
		t.Fatal(err)
	}
	readFrame(t, ctx, a)

	if err := wsjson.Write(ctx, b, explorer.Batch{}); err != nil {
		t.Fatal(err)
	}
	frame, _ := readFrame(t, ctx, b)
	if !bytes.Equal(initial, frame) {
		t.Error("session b saw session a's view change")
	}
}

// sameFractal compares the part of two frames that no widget covers.
func sameFractal(a, b image.Image) bool {
	r := image.Rect(0, 40, 580, mandel.Height-50)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}
