// server renders Mandelbrot scenes for websocket clients and replies with BMP bytes.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marben/mandel_bmp/internal/logger"
	"github.com/marben/mandel_bmp/internal/wsrender"
)

const port = 8080

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := logger.New(logger.Config{Debug: os.Getenv("MANDEL_DEBUG") != ""})

	renderServer := wsrender.NewServer(l)
	renderServer.OriginPatterns = []string{"localhost:*", "127.0.0.1:*"}

	httpServer := webServer(port, renderServer.Handler())

	errCh := make(chan error, 1)
	go func() {
		l.Info("listening", "addr", fmt.Sprintf("ws://localhost:%d/ws", port))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("httpServer: %w", err)
	case <-ctx.Done():
	}

	l.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.Shutdown: %w", err)
	}
	return nil
}
