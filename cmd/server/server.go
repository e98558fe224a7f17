// server serves the explorer to browsers and command line clients over
// websocket. Every connection is an independent explorer session: the client
// sends JSON event batches and receives one PNG frame per batch.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	mandel "github.com/marben/julia_explorer"
	"github.com/marben/julia_explorer/render"
)

var (
	addr    = flag.String("addr", ":8080", "http listen address")
	workers = flag.Int("workers", 0, "tile render workers per frame (0 = GOMAXPROCS)")
	verbose = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hub := newSessionHub(render.Engine{Workers: *workers})
	wsListener, httpServer := webServer(ctx, *addr)

	httpErr := make(chan error, 1)
	go func() {
		log.Printf("listening on http://localhost%s", *addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErr <- err
			stop()
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("httpServer.Shutdown: %v", err)
		}
		wsListener.Close()
	}()

	log.Printf("waiting for websocket connections on %s", wsListener.Addr())
	for {
		c, err := wsListener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				select {
				case err := <-httpErr:
					return fmt.Errorf("httpServer: %w", err)
				default:
					return nil
				}
			}
			return fmt.Errorf("accept: %w", err)
		}
		go hub.serve(ctx, c)
	}
}
