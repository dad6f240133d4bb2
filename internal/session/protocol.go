package session

import (
	"encoding/json"

	"github.com/formen/formen/internal/editor"
	"github.com/formen/formen/internal/render"
)

// Message is the envelope for every websocket frame in both directions.
type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client → server
	TypeEvent  = "event"
	TypeExport = "export"
	TypeImport = "import"
	TypeRender = "render"

	// Server → client
	TypeWelcome      = "welcome"
	TypeFrame        = "frame"
	TypeExportResult = "export.result"
	TypeError        = "error"
)

type WelcomePayload struct {
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	GridSize float64      `json:"gridSize"`
	State    editor.State `json:"state"`
}

// FramePayload is everything a client needs to repaint after an input.
type FramePayload struct {
	Commands []render.DrawCommand `json:"commands"`
	State    editor.State         `json:"state"`
	Status   string               `json:"status,omitempty"`
	Cursor   editor.Cursor        `json:"cursor"`
}

type ExportResultPayload struct {
	Filename string          `json:"filename"`
	Document json.RawMessage `json:"document"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
