package wsrender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/marben/mandel_bmp/internal/scene"
)

// ErrRemote is wrapped around error messages reported by the server.
var ErrRemote = errors.New("render server")

// Render asks the server at url (ws://host/ws) to render sc and returns the
// BMP file bytes.
func Render(ctx context.Context, url string, sc scene.Scene) ([]byte, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial %s: %w", url, err)
	}
	defer c.CloseNow()

	c.SetReadLimit(replyReadLimit)

	if err := wsjson.Write(ctx, c, sc.Document()); err != nil {
		return nil, fmt.Errorf("send scene: %w", err)
	}

	typ, b, err := c.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read reply: %w", err)
	}

	if typ == websocket.MessageText {
		var reply errorReply
		if err := json.Unmarshal(b, &reply); err != nil {
			return nil, fmt.Errorf("%w: unreadable reply: %v", ErrRemote, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrRemote, reply.Error)
	}

	c.Close(websocket.StatusNormalClosure, "")
	return b, nil
}
