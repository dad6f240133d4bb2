// Package editor is the interactive drawing state machine. An Editor owns the
// scene, the selection and the in-progress pointer gesture; every input is a
// synchronous method call (or an Event passed to Handle) that returns an
// Outcome describing what the host should do next.
package editor

import (
	"errors"

	"github.com/formen/formen/internal/scene"
	"github.com/formen/formen/internal/shape"
)

var (
	ErrUnknownTool  = errors.New("unknown tool")
	ErrUnknownEvent = errors.New("unknown event")
)

// Tool is the active toolbar tool.
type Tool string

const (
	ToolRectangle Tool = Tool(shape.KindRectangle)
	ToolSquare    Tool = Tool(shape.KindSquare)
	ToolCircle    Tool = Tool(shape.KindCircle)
	ToolTriangle  Tool = Tool(shape.KindTriangle)
	ToolSelect    Tool = "select"
)

// Kind returns the shape kind a drawing tool creates. ok is false for the
// select tool.
func (t Tool) Kind() (shape.Kind, bool) {
	k := shape.Kind(t)
	return k, k.Valid()
}

// Valid reports whether t is a known tool.
func (t Tool) Valid() bool {
	_, drawing := t.Kind()
	return drawing || t == ToolSelect
}

// Mode is the phase of the current pointer gesture.
type Mode string

const (
	ModeIdle     Mode = "idle"
	ModeDrawing  Mode = "drawing"
	ModeDragging Mode = "dragging"
	ModeResizing Mode = "resizing"
)

// Cursor is a CSS cursor name.
type Cursor string

const (
	CursorDefault Cursor = "default"
	CursorMove    Cursor = "move"
	CursorPointer Cursor = "pointer"
)

// ResizeCursor returns the directional cursor for a handle.
func ResizeCursor(p shape.Position) Cursor {
	if p == shape.PositionNone {
		return CursorDefault
	}
	return Cursor(string(p) + "-resize")
}

// gesture is the transient state of one pointer-down to pointer-up session.
type gesture struct {
	mode Mode

	// drawing: snapped origin. resizing: last pointer sample.
	startX, startY float64

	// dragging: pointer minus shape origin at pointer-down.
	offsetX, offsetY float64

	handle shape.Position
}

// Outcome tells the host what changed after an input.
type Outcome struct {
	Redraw bool
	Cursor Cursor
	// Status is the info-line text; empty means unchanged.
	Status string
	// Err is set for inputs that were rejected. The editor state is unchanged.
	Err error
}

// Editor is the single owner of all drawing state. It is not safe for
// concurrent use; one goroutine (or one JS event loop) drives it.
type Editor struct {
	scene *scene.Scene

	selected     shape.ID
	hasSelection bool

	tool  Tool
	color *string

	gesture gesture
	preview *shape.Shape

	gridVisible bool
	infoVisible bool
	status      string
	cursor      Cursor

	newID func() shape.ID
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDs replaces the shape id generator.
func WithIDs(next func() shape.ID) Option {
	return func(e *Editor) {
		e.newID = next
	}
}

// NewEditor creates an editor with an empty scene and the square tool active.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		scene:       scene.New(),
		tool:        ToolSquare,
		gesture:     gesture{mode: ModeIdle},
		gridVisible: true,
		infoVisible: true,
		status:      "Pick a shape tool and click-drag on the canvas to draw.",
		cursor:      CursorDefault,
		newID:       shape.NewID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// --- Queries ---

// Scene returns the editor's scene.
func (e *Editor) Scene() *scene.Scene {
	return e.scene
}

// Selected returns the selected shape, or nil.
func (e *Editor) Selected() *shape.Shape {
	if !e.hasSelection {
		return nil
	}
	return e.scene.Get(e.selected)
}

// Preview returns the uncommitted shape being drawn, or nil.
func (e *Editor) Preview() *shape.Shape {
	return e.preview
}

func (e *Editor) Tool() Tool        { return e.tool }
func (e *Editor) Mode() Mode        { return e.gesture.mode }
func (e *Editor) Status() string    { return e.status }
func (e *Editor) Cursor() Cursor    { return e.cursor }
func (e *Editor) GridVisible() bool { return e.gridVisible }
func (e *Editor) InfoVisible() bool { return e.infoVisible }

// Color returns a copy of the active fill color, nil when none is chosen.
func (e *Editor) Color() *string {
	return shape.CopyColor(e.color)
}

// ActiveHandle returns the handle being dragged while resizing.
func (e *Editor) ActiveHandle() shape.Position {
	return e.gesture.handle
}

// State is a serializable snapshot of the editor for clients.
type State struct {
	Tool        Tool      `json:"tool"`
	Color       *string   `json:"color"`
	Mode        Mode      `json:"mode"`
	Selection   *shape.ID `json:"selection"`
	Cursor      Cursor    `json:"cursor"`
	Status      string    `json:"status"`
	GridVisible bool      `json:"gridVisible"`
	InfoVisible bool      `json:"infoVisible"`
	ShapeCount  int       `json:"shapeCount"`
}

// State returns a snapshot of the editor.
func (e *Editor) State() State {
	st := State{
		Tool:        e.tool,
		Color:       e.Color(),
		Mode:        e.gesture.mode,
		Cursor:      e.cursor,
		Status:      e.status,
		GridVisible: e.gridVisible,
		InfoVisible: e.infoVisible,
		ShapeCount:  e.scene.Len(),
	}
	if sel := e.Selected(); sel != nil {
		id := sel.ID
		st.Selection = &id
	}
	return st
}

// --- internal helpers ---

func (e *Editor) selectShape(s *shape.Shape) {
	e.selected = s.ID
	e.hasSelection = true
}

func (e *Editor) clearSelection() {
	e.selected = 0
	e.hasSelection = false
}

// endGesture returns to idle, dropping any preview.
func (e *Editor) endGesture() {
	e.gesture = gesture{mode: ModeIdle}
	e.preview = nil
}

// nextID returns an id not yet used in the scene.
func (e *Editor) nextID() shape.ID {
	id := e.newID()
	for e.scene.Has(id) {
		id = e.newID()
	}
	return id
}

// report records status and builds the outcome.
func (e *Editor) report(redraw bool, status string) Outcome {
	if status != "" {
		e.status = status
	}
	return Outcome{Redraw: redraw, Cursor: e.cursor, Status: status}
}
