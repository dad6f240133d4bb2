package session

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/formen/formen/internal/typeid"
)

// Options configures ServeWS.
type Options struct {
	OriginPatterns []string
	Width          int
	Height         int
}

// ServeWS upgrades the request and runs an editor session on it until the
// connection closes.
func ServeWS(hub *Hub, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: opts.OriginPatterns,
		})
		if err != nil {
			slog.Error("websocket accept", "error", err)
			return
		}

		client := NewClient(hub, conn, typeid.NewSessionID(), uuid.New().String())
		hub.Register(client)
		client.Welcome(opts.Width, opts.Height)

		ctx := r.Context()
		go client.WritePump(ctx)
		client.ReadPump(ctx)
	}
}
