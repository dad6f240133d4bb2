package editor

import (
	"github.com/formen/formen/internal/grid"
	"github.com/formen/formen/internal/shape"
)

// Resize applies one pointer step of (dx, dy) through handle h. The edge or
// corner opposite the handle stays fixed. Moved coordinates are snapped to
// the grid. An axis whose resulting extent falls below one grid unit is
// restored to its values from before the step; the two axes are checked
// independently. A square is first set to its on-screen extent so the step
// moves the edge the handle sits on.
func Resize(s *shape.Shape, h shape.Position, dx, dy float64) {
	if s.Kind == shape.KindSquare {
		s.Width, s.Height = s.Extent()
	}
	x, y, w, ht := s.X, s.Y, s.Width, s.Height

	switch h {
	case shape.NW:
		s.X = grid.Snap(x + dx)
		s.Y = grid.Snap(y + dy)
		s.Width = x + w - s.X
		s.Height = y + ht - s.Y
	case shape.N:
		s.Y = grid.Snap(y + dy)
		s.Height = y + ht - s.Y
	case shape.NE:
		s.Y = grid.Snap(y + dy)
		s.Width = grid.Snap(w + dx)
		s.Height = y + ht - s.Y
	case shape.W:
		s.X = grid.Snap(x + dx)
		s.Width = x + w - s.X
	case shape.E:
		s.Width = grid.Snap(w + dx)
	case shape.SW:
		s.X = grid.Snap(x + dx)
		s.Width = x + w - s.X
		s.Height = grid.Snap(ht + dy)
	case shape.S:
		s.Height = grid.Snap(ht + dy)
	case shape.SE:
		s.Width = grid.Snap(w + dx)
		s.Height = grid.Snap(ht + dy)
	}

	if grid.TooSmall(s.Width) {
		s.X, s.Width = x, w
	}
	if grid.TooSmall(s.Height) {
		s.Y, s.Height = y, ht
	}
}
