package editor

import (
	"encoding/json"
	"fmt"
)

// EventType names an input delivered to Handle.
type EventType string

const (
	EventPointerDown  EventType = "pointerdown"
	EventPointerMove  EventType = "pointermove"
	EventPointerUp    EventType = "pointerup"
	EventPointerLeave EventType = "pointerleave"
	EventKeyUp        EventType = "keyup"
	EventTool         EventType = "tool"
	EventColor        EventType = "color"
	EventDelete       EventType = "delete"
	EventDeselect     EventType = "deselect"
	EventClearShapes  EventType = "clearShapes"
	EventClearFills   EventType = "clearFills"
	EventToggleGrid   EventType = "toggleGrid"
	EventToggleInfo   EventType = "toggleInfo"
	EventImport       EventType = "import"
	EventSample       EventType = "sample"
)

// Event is one input from the host: a pointer or key event, a toolbar
// command, or an import. Only the fields relevant to Type are read.
type Event struct {
	Type     EventType       `json:"type"`
	X        float64         `json:"x,omitempty"`
	Y        float64         `json:"y,omitempty"`
	Key      string          `json:"key,omitempty"`
	Tool     Tool            `json:"tool,omitempty"`
	Color    *string         `json:"color,omitempty"`
	Document json.RawMessage `json:"document,omitempty"`
}

// Handle applies one event. It is the single entry point used by transports.
func (e *Editor) Handle(ev Event) Outcome {
	switch ev.Type {
	case EventPointerDown:
		return e.PointerDown(ev.X, ev.Y)
	case EventPointerMove:
		return e.PointerMove(ev.X, ev.Y)
	case EventPointerUp:
		return e.PointerUp(ev.X, ev.Y)
	case EventPointerLeave:
		return e.PointerLeave()
	case EventKeyUp:
		return e.KeyUp(ev.Key)
	case EventTool:
		return e.SetTool(ev.Tool)
	case EventColor:
		return e.SetColor(ev.Color)
	case EventDelete:
		return e.DeleteSelected()
	case EventDeselect:
		return e.Deselect()
	case EventClearShapes:
		return e.ClearShapes()
	case EventClearFills:
		return e.ClearFills()
	case EventToggleGrid:
		return e.ToggleGrid()
	case EventToggleInfo:
		return e.ToggleInfo()
	case EventImport:
		return e.Import(ev.Document)
	case EventSample:
		return e.LoadSample()
	default:
		return Outcome{Cursor: e.cursor, Err: fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)}
	}
}
