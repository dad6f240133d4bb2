package editor

import (
	"fmt"
	"time"

	"github.com/formen/formen/internal/document"
	"github.com/formen/formen/internal/shape"
)

// SetTool switches tools. It clears the selection and the fill color and
// abandons any gesture.
func (e *Editor) SetTool(t Tool) Outcome {
	if !t.Valid() {
		return Outcome{Cursor: e.cursor, Err: fmt.Errorf("%w: %q", ErrUnknownTool, t)}
	}
	e.color = nil
	return e.switchTool(t)
}

func (e *Editor) switchTool(t Tool) Outcome {
	e.tool = t
	e.clearSelection()
	e.endGesture()
	e.cursor = CursorDefault

	if kind, drawing := t.Kind(); drawing {
		return e.report(true, fmt.Sprintf("Draw a %s. Click and drag on the canvas.", kindName(kind)))
	}
	return e.report(true, "Click a shape to select it, drag to move it, or drag the handles to resize it.")
}

// SetColor chooses the fill color applied by clicking shapes, and the fill of
// newly drawn shapes. Choosing a color while a drawing tool is active switches
// to the select tool. nil clears the choice.
func (e *Editor) SetColor(color *string) Outcome {
	e.color = shape.CopyColor(color)
	if color == nil {
		return e.report(false, "Fill color cleared.")
	}
	if e.tool != ToolSelect {
		e.switchTool(ToolSelect)
	}
	return e.report(true, fmt.Sprintf("Color %s selected. Click shapes to fill them with it.", *color))
}

// DeleteSelected removes the selected shape. With nothing selected it only
// reports a hint.
func (e *Editor) DeleteSelected() Outcome {
	sel := e.Selected()
	if sel == nil {
		return e.report(false, "Select a shape first to delete it.")
	}
	if err := e.scene.Remove(sel.ID); err != nil {
		return Outcome{Cursor: e.cursor, Err: err}
	}
	e.clearSelection()
	e.endGesture()
	e.cursor = CursorDefault
	return e.report(true, "Shape deleted.")
}

// Deselect clears the selection.
func (e *Editor) Deselect() Outcome {
	if !e.hasSelection {
		return Outcome{Cursor: e.cursor}
	}
	e.clearSelection()
	if e.gesture.mode == ModeDragging || e.gesture.mode == ModeResizing {
		e.endGesture()
	}
	e.cursor = CursorDefault
	return Outcome{Redraw: true, Cursor: e.cursor}
}

// ClearShapes empties the scene.
func (e *Editor) ClearShapes() Outcome {
	e.scene.Clear()
	e.clearSelection()
	e.endGesture()
	e.cursor = CursorDefault
	return e.report(true, "All shapes cleared.")
}

// ClearFills removes the fill color from every shape.
func (e *Editor) ClearFills() Outcome {
	e.scene.RecolorAll(nil)
	return e.report(true, "All fills cleared.")
}

// ToggleGrid flips the grid background flag.
func (e *Editor) ToggleGrid() Outcome {
	e.gridVisible = !e.gridVisible
	return Outcome{Redraw: true, Cursor: e.cursor}
}

// ToggleInfo flips the info-line visibility flag.
func (e *Editor) ToggleInfo() Outcome {
	e.infoVisible = !e.infoVisible
	return Outcome{Cursor: e.cursor}
}

// KeyUp handles a released key: Delete and Backspace delete the selection,
// "." toggles the info line. Other keys are ignored.
func (e *Editor) KeyUp(key string) Outcome {
	switch key {
	case "Delete", "Backspace":
		return e.DeleteSelected()
	case ".":
		return e.ToggleInfo()
	}
	return Outcome{Cursor: e.cursor}
}

// Import replaces the whole scene with the shapes in a JSON document. On any
// error the scene is left exactly as it was.
func (e *Editor) Import(data []byte) Outcome {
	shapes, err := document.Import(data)
	if err != nil {
		out := e.report(false, "Import failed.")
		out.Err = err
		return out
	}
	return e.replace(shapes, fmt.Sprintf("%d shapes imported.", len(shapes)))
}

// LoadSample replaces the scene with the built-in sample drawing.
func (e *Editor) LoadSample() Outcome {
	return e.replace(document.Sample(), "Sample drawing loaded.")
}

func (e *Editor) replace(shapes []*shape.Shape, status string) Outcome {
	if err := e.scene.Replace(shapes); err != nil {
		out := e.report(false, "Import failed.")
		out.Err = err
		return out
	}
	e.clearSelection()
	e.endGesture()
	e.cursor = CursorDefault
	return e.report(true, status)
}

// Export serializes the scene as a JSON shape document.
func (e *Editor) Export() ([]byte, error) {
	data, err := document.Export(e.scene.Shapes())
	if err != nil {
		return nil, err
	}
	e.status = "Shapes exported."
	return data, nil
}

// ExportFilename returns the download name for an export taken at now.
func ExportFilename(now time.Time) string {
	return document.Filename(now, "json")
}
