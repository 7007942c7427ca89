package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gorilla/websocket"

	"VectorBoard/internal/state"
)

const Scheme = "vectorboard://"

var ErrBadLink = errors.New("not a vectorboard link")

// IsLink reports whether arg looks like a share link.
func IsLink(arg string) bool {
	return strings.HasPrefix(arg, Scheme)
}

// WebsocketURL turns vectorboard://host:port into the hub's websocket URL.
func WebsocketURL(link string) (string, error) {
	addr, ok := strings.CutPrefix(link, Scheme)
	addr = strings.TrimSuffix(addr, "/")
	if !ok || addr == "" {
		return "", fmt.Errorf("%w: %q", ErrBadLink, link)
	}
	return "ws://" + addr + "/ws", nil
}

// Follow connects to a shared board and calls apply for every op, starting
// with a snapshot, until ctx is done or the host goes away.
func Follow(ctx context.Context, link string, apply func(state.Op)) error {
	url, err := WebsocketURL(link)
	if err != nil {
		return err
	}
	return followURL(ctx, url, apply)
}

func followURL(ctx context.Context, url string, apply func(state.Op)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("follow %s: %w", url, err)
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	slog.Info("following shared board", "url", url)
	for {
		var op state.Op
		if err := conn.ReadJSON(&op); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("follow %s: %w", url, err)
		}
		apply(op)
	}
}
