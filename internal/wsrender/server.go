// Package wsrender renders scenes on request over a websocket and returns
// the result as BMP bytes.
package wsrender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/marben/mandel_bmp/bmp"
	"github.com/marben/mandel_bmp/internal/scene"
)

const (
	DefaultMaxWidth      = 4096
	DefaultMaxIterations = 100_000

	// scene documents are small; BMP replies are not
	requestReadLimit = 1 << 20
	replyReadLimit   = 1 << 28
)

var ErrTooLarge = errors.New("render request exceeds server limits")

// errorReply is sent as a text message instead of the image when a request fails.
type errorReply struct {
	Error string `json:"error"`
}

type Server struct {
	Log            *slog.Logger
	MaxWidth       int
	MaxIterations  int
	MaxWorkers     int
	OriginPatterns []string
}

func NewServer(log *slog.Logger) *Server {
	return &Server{
		Log:           log,
		MaxWidth:      DefaultMaxWidth,
		MaxIterations: DefaultMaxIterations,
		MaxWorkers:    runtime.GOMAXPROCS(0),
	}
}

// Handler serves the render endpoint at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleRender)
	return mux
}

// handleRender serves one render per connection: read a JSON scene, reply
// with a binary BMP message, close.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.OriginPatterns,
	})
	if err != nil {
		s.Log.Warn("websocket.accept", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer c.CloseNow()

	c.SetReadLimit(requestReadLimit)
	ctx := r.Context()

	typ, b, err := c.Read(ctx)
	if err != nil {
		s.Log.Debug("websocket.read", "remote", r.RemoteAddr, "err", err)
		return
	}
	if typ != websocket.MessageText {
		c.Close(websocket.StatusUnsupportedData, "expected a JSON scene")
		return
	}

	sc, err := scene.DecodeJSON(b)
	if err == nil {
		err = s.checkLimits(sc)
	}
	if err != nil {
		s.Log.Info("render.rejected", "remote", r.RemoteAddr, "err", err)
		s.fail(ctx, c, websocket.StatusPolicyViolation, err)
		return
	}

	start := time.Now()
	img, err := sc.Colored()
	if err != nil {
		s.fail(ctx, c, websocket.StatusInternalError, err)
		return
	}

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		s.fail(ctx, c, websocket.StatusInternalError, err)
		return
	}

	if err := c.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
		s.Log.Warn("websocket.write", "remote", r.RemoteAddr, "err", err)
		return
	}
	s.Log.Info("render.done",
		"remote", r.RemoteAddr,
		"width", len(img[0]),
		"height", len(img),
		"iterations", sc.Iterations,
		"bytes", buf.Len(),
		"took", time.Since(start),
	)

	c.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) checkLimits(sc scene.Scene) error {
	if s.MaxWidth > 0 && sc.Width > s.MaxWidth {
		return fmt.Errorf("%w: width %d > %d", ErrTooLarge, sc.Width, s.MaxWidth)
	}
	if s.MaxIterations > 0 && sc.Iterations > s.MaxIterations {
		return fmt.Errorf("%w: iterations %d > %d", ErrTooLarge, sc.Iterations, s.MaxIterations)
	}
	if s.MaxWorkers > 0 && sc.Workers > s.MaxWorkers {
		return fmt.Errorf("%w: workers %d > %d", ErrTooLarge, sc.Workers, s.MaxWorkers)
	}
	return nil
}

func (s *Server) fail(ctx context.Context, c *websocket.Conn, code websocket.StatusCode, err error) {
	if werr := wsjson.Write(ctx, c, errorReply{Error: err.Error()}); werr != nil {
		s.Log.Debug("websocket.write", "err", werr)
	}
	c.Close(code, "render failed")
}
