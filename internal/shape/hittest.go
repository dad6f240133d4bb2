package shape

import "math"

// triangleTolerance is the slack allowed between the triangle's area and the
// sum of the three sub-triangle areas. It is absolute, in doubled-area units.
const triangleTolerance = 1.0

// Contains reports whether (px, py) lies inside the shape.
func (s *Shape) Contains(px, py float64) bool {
	switch s.Kind {
	case KindCircle:
		cx, cy := s.Center()
		return math.Hypot(px-cx, py-cy) <= s.Radius()
	case KindTriangle:
		return triangleContains(s.Vertices(), px, py)
	default:
		return s.Bounds().Contains(px, py)
	}
}

// Radius returns the circle radius derived from the width.
func (s *Shape) Radius() float64 {
	return math.Abs(s.Width) / 2
}

// Vertices returns the triangle's apex, bottom-right and bottom-left corners.
func (s *Shape) Vertices() [3]Point {
	return [3]Point{
		{X: s.X + s.Width/2, Y: s.Y},
		{X: s.X + s.Width, Y: s.Y + s.Height},
		{X: s.X, Y: s.Y + s.Height},
	}
}

func triangleContains(v [3]Point, px, py float64) bool {
	p := Point{X: px, Y: py}
	whole := doubledArea(v[0], v[1], v[2])
	parts := doubledArea(v[0], v[1], p) + doubledArea(v[1], v[2], p) + doubledArea(v[2], v[0], p)
	return math.Abs(whole-parts) < triangleTolerance
}

// doubledArea is |cross(b-a, c-a)|, twice the area of triangle abc.
func doubledArea(a, b, c Point) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
}
