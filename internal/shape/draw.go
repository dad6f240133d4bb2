package shape

import "math"

// Point is a position on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Style describes how a primitive is painted. An empty Fill or Stroke skips
// that pass. Dash alternates on/off lengths for the stroke.
type Style struct {
	Fill      string
	Stroke    string
	LineWidth float64
	Dash      []float64
}

// Surface is a 2D drawing target.
type Surface interface {
	Rect(x, y, width, height float64, style Style)
	Circle(cx, cy, radius float64, style Style)
	Polygon(points []Point, style Style)
}

const (
	StrokeColor = "#333"
	StrokeWidth = 2
)

// Draw paints the shape onto surface, fill first (when colored) then stroke.
func (s *Shape) Draw(surface Surface) {
	style := Style{
		Fill:      s.Fill(),
		Stroke:    StrokeColor,
		LineWidth: StrokeWidth,
	}

	switch s.Kind {
	case KindCircle:
		cx, cy := s.Center()
		surface.Circle(cx, cy, s.Radius(), style)
	case KindTriangle:
		v := s.Vertices()
		surface.Polygon(v[:], style)
	default:
		b := s.Bounds()
		surface.Rect(b.X, b.Y, b.Width, b.Height, style)
	}
}

// CirclePoints approximates a circle with n evenly spaced points.
func CirclePoints(cx, cy, radius float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: cx + radius*math.Cos(a), Y: cy + radius*math.Sin(a)}
	}
	return pts
}
