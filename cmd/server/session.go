package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/julia_explorer"
	"github.com/marben/julia_explorer/explorer"
	"github.com/marben/julia_explorer/render"
)

// sessionHub runs one explorer per websocket connection. Sessions share the
// render engine but no view state.
type sessionHub struct {
	engine render.Engine

	sessions int
	m        sync.Mutex
}

func newSessionHub(engine render.Engine) *sessionHub {
	return &sessionHub{engine: engine}
}

func (h *sessionHub) incSessions() {
	h.m.Lock()
	h.sessions++
	s := h.sessions
	h.m.Unlock()

	log.Printf("sessions: %d", s)
}

func (h *sessionHub) decSessions() {
	h.m.Lock()
	h.sessions--
	s := h.sessions
	h.m.Unlock()

	log.Printf("sessions: %d", s)
}

// serve sends the initial frame, then answers every event batch with a frame
// until the client goes away.
func (h *sessionHub) serve(ctx context.Context, c *websocket.Conn) {
	h.incSessions()
	defer h.decSessions()
	defer c.CloseNow()

	if err := h.session(ctx, c); err != nil {
		log.Printf("session: %v", err)
		return
	}
	c.Close(websocket.StatusNormalClosure, "")
}

func (h *sessionHub) session(ctx context.Context, c *websocket.Conn) error {
	app := explorer.New(h.engine)
	mandel.Logger().Info("session started")

	if err := sendFrame(ctx, c, app); err != nil {
		return err
	}

	for {
		var batch explorer.Batch
		if err := wsjson.Read(ctx, c, &batch); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				mandel.Logger().Info("session closed by client")
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("wsjson.Read: %w", err)
		}

		// Bad events are reported but the rest of the batch still applies.
		if err := app.HandleBatch(batch.Events); err != nil {
			log.Printf("batch: %v", err)
		}

		if err := sendFrame(ctx, c, app); err != nil {
			return err
		}
	}
}

func sendFrame(ctx context.Context, c *websocket.Conn, app *explorer.App) error {
	img, err := app.Frame()
	if err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	b, err := explorer.EncodeFrame(img)
	if err != nil {
		return err
	}
	if err := c.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
