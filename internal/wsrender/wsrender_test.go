package wsrender

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/marben/mandel_bmp/bmp"
	"github.com/marben/mandel_bmp/internal/logger"
	"github.com/marben/mandel_bmp/internal/scene"
)

func startServer(t *testing.T, srv *Server) string {
	t.Helper()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRenderRoundTrip(t *testing.T) {
	url := startServer(t, NewServer(logger.Discard()))

	sc := scene.Default()
	sc.Width = 16
	sc.Iterations = 30

	got, err := Render(testContext(t), url, sc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := sc.Colored()
	if err != nil {
		t.Fatalf("Colored: %v", err)
	}
	var want bytes.Buffer
	if err := bmp.Encode(&want, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if !bytes.Equal(got, want.Bytes()) {
		t.Fatalf("server bytes differ from local render (%d vs %d bytes)", len(got), want.Len())
	}
}

func TestRenderRejectsOversizedScene(t *testing.T) {
	srv := NewServer(logger.Discard())
	srv.MaxWidth = 8
	url := startServer(t, srv)

	sc := scene.Default()
	sc.Width = 9

	_, err := Render(testContext(t), url, sc)
	if !errors.Is(err, ErrRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if !strings.Contains(err.Error(), "width 9 > 8") {
		t.Fatalf("expected limit in message, got %v", err)
	}
}

func TestRenderRejectsTooManyWorkers(t *testing.T) {
	srv := NewServer(logger.Discard())
	srv.MaxWorkers = 2
	url := startServer(t, srv)

	sc := scene.Default()
	sc.Width = 2
	sc.Workers = 500_000

	_, err := Render(testContext(t), url, sc)
	if !errors.Is(err, ErrRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if !strings.Contains(err.Error(), "workers 500000 > 2") {
		t.Fatalf("expected limit in message, got %v", err)
	}

	sc.Workers = 2
	if _, err := Render(testContext(t), url, sc); err != nil {
		t.Fatalf("workers at the limit: %v", err)
	}
}

func TestNewServerBoundsWorkers(t *testing.T) {
	if srv := NewServer(logger.Discard()); srv.MaxWorkers != runtime.GOMAXPROCS(0) {
		t.Fatalf("MaxWorkers = %d, want GOMAXPROCS", srv.MaxWorkers)
	}
}

func TestServerRejectsInvalidScene(t *testing.T) {
	url := startServer(t, NewServer(logger.Discard()))
	ctx := testContext(t)

	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.CloseNow()

	if err := c.Write(ctx, websocket.MessageText, []byte(`{"width": -1}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	typ, b, err := c.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if typ != websocket.MessageText || !strings.Contains(string(b), "width") {
		t.Fatalf("expected error reply naming width, got %v %q", typ, b)
	}

	_, _, err = c.Read(ctx)
	if websocket.CloseStatus(err) != websocket.StatusPolicyViolation {
		t.Fatalf("expected policy violation close, got %v", err)
	}
}

func TestServerRejectsBinaryRequest(t *testing.T) {
	url := startServer(t, NewServer(logger.Discard()))
	ctx := testContext(t)

	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.CloseNow()

	if err := c.Write(ctx, websocket.MessageBinary, []byte{1, 2, 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, _, err = c.Read(ctx)
	if websocket.CloseStatus(err) != websocket.StatusUnsupportedData {
		t.Fatalf("expected unsupported data close, got %v", err)
	}
}
