// Package scene holds the ordered list of shapes on the canvas. Insertion
// order is z-order: later shapes are drawn on top and hit-tested first.
package scene

import (
	"errors"
	"fmt"

	"github.com/formen/formen/internal/shape"
)

var (
	ErrDuplicateID = errors.New("duplicate shape id")
	ErrNotFound    = errors.New("shape not found")
)

// Scene is the ordered shape collection. It is not safe for concurrent use;
// a scene belongs to exactly one editor.
type Scene struct {
	shapes []*shape.Shape
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Len returns the number of shapes.
func (sc *Scene) Len() int {
	return len(sc.shapes)
}

// Shapes returns the shapes bottom to top. The slice is the scene's own;
// callers may mutate the shapes but not the slice.
func (sc *Scene) Shapes() []*shape.Shape {
	return sc.shapes
}

// Get returns the shape with the given id, or nil.
func (sc *Scene) Get(id shape.ID) *shape.Shape {
	for _, s := range sc.shapes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Has reports whether a shape with id is in the scene.
func (sc *Scene) Has(id shape.ID) bool {
	return sc.Get(id) != nil
}

// Add appends s on top of every other shape.
func (sc *Scene) Add(s *shape.Shape) error {
	if sc.Has(s.ID) {
		return fmt.Errorf("add %v: %w", s.ID, ErrDuplicateID)
	}
	sc.shapes = append(sc.shapes, s)
	return nil
}

// Remove deletes the shape with id.
func (sc *Scene) Remove(id shape.ID) error {
	kept := make([]*shape.Shape, 0, len(sc.shapes))
	for _, s := range sc.shapes {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sc.shapes) {
		return fmt.Errorf("remove %v: %w", id, ErrNotFound)
	}
	sc.shapes = kept
	return nil
}

// Clear removes every shape.
func (sc *Scene) Clear() {
	sc.shapes = nil
}

// Replace swaps in a whole new shape list, keeping its order. The scene is
// left untouched if the list contains duplicate ids.
func (sc *Scene) Replace(shapes []*shape.Shape) error {
	seen := make(map[shape.ID]struct{}, len(shapes))
	for _, s := range shapes {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("replace %v: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = struct{}{}
	}
	sc.shapes = append([]*shape.Shape(nil), shapes...)
	return nil
}

// FindTopmostAt returns the last-inserted shape containing (x, y), or nil.
func (sc *Scene) FindTopmostAt(x, y float64) *shape.Shape {
	for i := len(sc.shapes) - 1; i >= 0; i-- {
		if sc.shapes[i].Contains(x, y) {
			return sc.shapes[i]
		}
	}
	return nil
}

// RecolorAll sets every shape's fill. nil clears all fills.
func (sc *Scene) RecolorAll(color *string) {
	for _, s := range sc.shapes {
		s.SetColor(color)
	}
}

// Bounds returns the normalized box enclosing every shape.
func (sc *Scene) Bounds() shape.Box {
	var b shape.Box
	for _, s := range sc.shapes {
		b = b.Union(s.Bounds())
	}
	return b
}

// Draw paints every shape bottom to top.
func (sc *Scene) Draw(surface shape.Surface) {
	for _, s := range sc.shapes {
		s.Draw(surface)
	}
}
