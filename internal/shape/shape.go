// Package shape is the geometry model: the drawable shape variant and the
// hit-testing, resize-handle and drawing operations that match on its kind.
package shape

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Kind discriminates the shape variant. It is fixed when a shape is created.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindSquare    Kind = "square"
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
)

// Kinds lists every drawable kind.
var Kinds = []Kind{KindRectangle, KindSquare, KindCircle, KindTriangle}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindRectangle, KindSquare, KindCircle, KindTriangle:
		return true
	}
	return false
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown shape type %q", s)
	}
	return k, nil
}

// ID identifies a shape within a scene. It is a JSON number on the wire.
type ID float64

// NewID returns a fresh id built from the wall clock in milliseconds plus a
// random fraction.
func NewID() ID {
	return ID(float64(time.Now().UnixMilli()) + rand.Float64())
}

// Shape is one drawn figure. X, Y is the anchor corner; Width and Height are
// signed, a negative value meaning the shape was drawn up or to the left.
// A nil Color means stroke only.
type Shape struct {
	ID     ID
	Kind   Kind
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  *string
}

// New creates a shape with a fresh id.
func New(kind Kind, x, y, width, height float64, color *string) *Shape {
	return &Shape{
		ID:     NewID(),
		Kind:   kind,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Color:  CopyColor(color),
	}
}

// Clone returns a deep copy of s.
func (s *Shape) Clone() *Shape {
	c := *s
	c.Color = CopyColor(s.Color)
	return &c
}

// SetColor replaces the fill color. nil clears the fill.
func (s *Shape) SetColor(color *string) {
	s.Color = CopyColor(color)
}

// Fill returns the fill color or "" when the shape is unfilled.
func (s *Shape) Fill() string {
	if s.Color == nil {
		return ""
	}
	return *s.Color
}

// Extent returns the signed width and height the shape occupies on screen.
// Squares use the larger magnitude on both axes, keeping each axis's sign.
func (s *Shape) Extent() (float64, float64) {
	if s.Kind != KindSquare {
		return s.Width, s.Height
	}
	size := math.Max(math.Abs(s.Width), math.Abs(s.Height))
	w, h := size, size
	if s.Width < 0 {
		w = -size
	}
	if s.Height < 0 {
		h = -size
	}
	return w, h
}

// Bounds returns the on-screen box of the shape, as drawn (not normalized).
func (s *Shape) Bounds() Box {
	w, h := s.Extent()
	return Box{X: s.X, Y: s.Y, Width: w, Height: h}
}

// Center returns the midpoint of the shape's bounds.
func (s *Shape) Center() (float64, float64) {
	return s.Bounds().Center()
}

// Move places the anchor corner at (x, y).
func (s *Shape) Move(x, y float64) {
	s.X = x
	s.Y = y
}

// CopyColor duplicates an optional color so shapes never share storage.
func CopyColor(color *string) *string {
	if color == nil {
		return nil
	}
	c := *color
	return &c
}

// Color is a convenience for building an optional color from a literal.
func Color(c string) *string {
	return &c
}
