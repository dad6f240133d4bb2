package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/formen/formen/internal/editor"
	"github.com/formen/formen/internal/grid"
	"github.com/formen/formen/internal/render"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 1 << 20
)

// Client is one websocket connection and the editor session it drives.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	mu     sync.Mutex
	send   chan []byte
	closed bool

	editor   *editor.Editor
	commands *render.CommandList

	SessionID string
	ClientID  string
}

func NewClient(hub *Hub, conn *websocket.Conn, sessionID, clientID string, opts ...editor.Option) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 256),
		editor:    editor.NewEditor(opts...),
		commands:  render.NewCommandList(),
		SessionID: sessionID,
		ClientID:  clientID,
	}
}

// Welcome sends the session greeting with the initial editor state. It must
// be called from the goroutine that runs ReadPump.
func (c *Client) Welcome(width, height int) {
	c.Send(TypeWelcome, WelcomePayload{
		Width:    width,
		Height:   height,
		GridSize: grid.Size,
		State:    c.editor.State(),
	})
}

// ReadPump reads client messages and applies them to the editor until the
// connection closes. It is the only goroutine that touches the editor.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "session", c.SessionID)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "session", c.SessionID)
			c.sendError("invalid message")
			continue
		}

		c.handleMessage(&msg)
	}
}

// WritePump drains the send queue onto the connection and keeps it alive
// with pings.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Debug("write error", "error", err, "session", c.SessionID)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// Send queues a message. It drops the message when the queue is full or the
// client is closed.
func (c *Client) Send(msgType string, payload any) {
	msg := Message{Type: msgType, SessionID: c.SessionID, ClientID: c.ClientID}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			slog.Error("marshal payload", "error", err, "type", msgType)
			return
		}
		msg.Payload = data
	}
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		slog.Warn("client send buffer full, dropping message", "session", c.SessionID)
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) handleMessage(msg *Message) {
	switch msg.Type {
	case TypeEvent:
		var ev editor.Event
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			c.sendError("invalid event payload")
			return
		}
		c.apply(c.editor.Handle(ev))

	case TypeImport:
		c.apply(c.editor.Import(msg.Payload))

	case TypeExport:
		data, err := c.editor.Export()
		if err != nil {
			slog.Error("export document", "error", err, "session", c.SessionID)
			c.sendError("export failed")
			return
		}
		c.Send(TypeExportResult, ExportResultPayload{
			Filename: editor.ExportFilename(time.Now()),
			Document: data,
		})
		c.sendFrame(c.editor.Status())

	case TypeRender:
		c.sendFrame("")

	default:
		slog.Warn("unknown message type", "type", msg.Type, "session", c.SessionID)
		c.sendError("unknown message type: " + msg.Type)
	}
}

func (c *Client) apply(out editor.Outcome) {
	if out.Err != nil {
		slog.Debug("input rejected", "error", out.Err, "session", c.SessionID)
		c.sendError(out.Err.Error())
	}
	c.sendFrame(out.Status)
}

func (c *Client) sendFrame(status string) {
	c.commands.Reset()
	c.editor.Render(c.commands)
	c.Send(TypeFrame, FramePayload{
		Commands: c.commands.Commands(),
		State:    c.editor.State(),
		Status:   status,
		Cursor:   c.editor.Cursor(),
	})
}

func (c *Client) sendError(message string) {
	c.Send(TypeError, ErrorPayload{Message: message})
}
