package editor

import (
	"fmt"

	"github.com/formen/formen/internal/grid"
	"github.com/formen/formen/internal/shape"
)

// PointerDown starts a gesture at surface coordinates (x, y).
//
// With a drawing tool it starts a draw at the snapped point. With the select
// tool the selected shape's handles are tested first, then shapes topmost
// first: with a fill color chosen the hit shape is recolored, otherwise it is
// selected and a drag begins. A miss clears the selection.
func (e *Editor) PointerDown(x, y float64) Outcome {
	if e.gesture.mode != ModeIdle {
		return Outcome{Cursor: e.cursor}
	}

	if _, drawing := e.tool.Kind(); drawing {
		e.gesture = gesture{mode: ModeDrawing, startX: grid.Snap(x), startY: grid.Snap(y)}
		return Outcome{Cursor: e.cursor}
	}

	if sel := e.Selected(); sel != nil {
		if h := sel.HandleAt(x, y); h != shape.PositionNone {
			e.gesture = gesture{mode: ModeResizing, startX: x, startY: y, handle: h}
			e.cursor = ResizeCursor(h)
			return Outcome{Cursor: e.cursor}
		}
	}

	if hit := e.scene.FindTopmostAt(x, y); hit != nil {
		if e.color != nil {
			hit.SetColor(e.color)
			return e.report(true, fmt.Sprintf("Color %s applied to shape.", *e.color))
		}

		e.selectShape(hit)
		e.gesture = gesture{mode: ModeDragging, offsetX: x - hit.X, offsetY: y - hit.Y}
		e.cursor = CursorMove
		return e.report(true, "Shape selected. Drag to move it or use the handles to resize it.")
	}

	e.clearSelection()
	if e.color != nil {
		return e.report(true, fmt.Sprintf("Color %s selected. Click a shape to apply it.", *e.color))
	}
	return e.report(true, "Click a shape to select it.")
}

// PointerMove advances the active gesture, or updates the hover cursor when
// idle.
func (e *Editor) PointerMove(x, y float64) Outcome {
	switch e.gesture.mode {
	case ModeDrawing:
		kind, _ := e.tool.Kind()
		g := e.gesture
		e.preview = &shape.Shape{
			Kind:   kind,
			X:      g.startX,
			Y:      g.startY,
			Width:  grid.Snap(x) - g.startX,
			Height: grid.Snap(y) - g.startY,
		}
		return Outcome{Redraw: true, Cursor: e.cursor}

	case ModeDragging:
		sel := e.Selected()
		if sel == nil {
			e.endGesture()
			return Outcome{Cursor: e.cursor}
		}
		sel.Move(grid.Snap(x-e.gesture.offsetX), grid.Snap(y-e.gesture.offsetY))
		return Outcome{Redraw: true, Cursor: e.cursor}

	case ModeResizing:
		sel := e.Selected()
		if sel == nil {
			e.endGesture()
			return Outcome{Cursor: e.cursor}
		}
		Resize(sel, e.gesture.handle, x-e.gesture.startX, y-e.gesture.startY)
		e.gesture.startX = x
		e.gesture.startY = y
		return Outcome{Redraw: true, Cursor: e.cursor}
	}

	e.cursor = e.CursorAt(x, y)
	return Outcome{Cursor: e.cursor}
}

// PointerUp finishes the active gesture. A draw is committed only when both
// snapped extents reach one grid unit; smaller drags are discarded.
func (e *Editor) PointerUp(x, y float64) Outcome {
	g := e.gesture
	e.endGesture()

	switch g.mode {
	case ModeDrawing:
		width := grid.Snap(x) - g.startX
		height := grid.Snap(y) - g.startY
		if grid.TooSmall(width) || grid.TooSmall(height) {
			return Outcome{Redraw: true, Cursor: e.cursor}
		}

		kind, _ := e.tool.Kind()
		s := &shape.Shape{
			ID:     e.nextID(),
			Kind:   kind,
			X:      g.startX,
			Y:      g.startY,
			Width:  width,
			Height: height,
			Color:  shape.CopyColor(e.color),
		}
		if err := e.scene.Add(s); err != nil {
			return Outcome{Redraw: true, Cursor: e.cursor, Err: err}
		}
		return e.report(true, fmt.Sprintf("%s created. Draw another or switch tools.", kindName(kind)))

	case ModeDragging:
		return e.report(false, "Shape moved.")

	case ModeResizing:
		e.cursor = e.CursorAt(x, y)
		return e.report(false, "Shape resized.")
	}

	return Outcome{Cursor: e.cursor}
}

// PointerLeave aborts an in-progress draw. A drag or resize keeps the shape
// where the last move put it.
func (e *Editor) PointerLeave() Outcome {
	mode := e.gesture.mode
	e.endGesture()
	e.cursor = CursorDefault
	return Outcome{Redraw: mode == ModeDrawing, Cursor: e.cursor}
}

// CursorAt returns the cursor for hovering at (x, y). It does not change
// any state.
func (e *Editor) CursorAt(x, y float64) Cursor {
	if e.tool != ToolSelect {
		return CursorDefault
	}

	if e.color != nil {
		if e.scene.FindTopmostAt(x, y) != nil {
			return CursorPointer
		}
		return CursorDefault
	}

	sel := e.Selected()
	if sel == nil {
		return CursorDefault
	}
	if h := sel.HandleAt(x, y); h != shape.PositionNone {
		return ResizeCursor(h)
	}
	if sel.Contains(x, y) {
		return CursorMove
	}
	return CursorDefault
}

func kindName(k shape.Kind) string {
	switch k {
	case shape.KindRectangle:
		return "Rectangle"
	case shape.KindSquare:
		return "Square"
	case shape.KindCircle:
		return "Circle"
	case shape.KindTriangle:
		return "Triangle"
	}
	return string(k)
}
