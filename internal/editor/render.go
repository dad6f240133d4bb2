package editor

import "github.com/formen/formen/internal/shape"

const (
	selectionColor = "#667eea"
	handleSize     = 8
)

// Render draws the scene, the drawing preview and the selection overlay.
func (e *Editor) Render(surface shape.Surface) {
	e.scene.Draw(surface)
	if e.preview != nil {
		e.preview.Draw(surface)
	}
	if sel := e.Selected(); sel != nil {
		DrawSelection(sel, surface)
	}
}

// DrawSelection draws a dashed outline around s and its eight resize handles.
func DrawSelection(s *shape.Shape, surface shape.Surface) {
	b := s.Bounds()
	surface.Rect(b.X, b.Y, b.Width, b.Height, shape.Style{
		Stroke:    selectionColor,
		LineWidth: 2,
		Dash:      []float64{5, 5},
	})

	handleStyle := shape.Style{Fill: selectionColor, Stroke: "white", LineWidth: 1}
	for _, h := range s.Handles() {
		surface.Rect(h.X-handleSize/2, h.Y-handleSize/2, handleSize, handleSize, handleStyle)
	}
}
