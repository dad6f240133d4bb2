package shape

import "math"

// Position names a resize handle by compass direction.
type Position string

const (
	PositionNone Position = ""
	NW           Position = "nw"
	N            Position = "n"
	NE           Position = "ne"
	W            Position = "w"
	E            Position = "e"
	SW           Position = "sw"
	S            Position = "s"
	SE           Position = "se"
)

// HandleReach is how far from a handle point, per axis, a pointer still grabs it.
const HandleReach = 6

// Handle is a resize grip on a shape's bounding box.
type Handle struct {
	X        float64
	Y        float64
	Position Position
}

// Handles returns the four corners and four edge midpoints of the shape's
// bounds in a fixed order: nw, n, ne, w, e, sw, s, se.
func (s *Shape) Handles() [8]Handle {
	b := s.Bounds()
	x0, y0 := b.X, b.Y
	xm, ym := b.X+b.Width/2, b.Y+b.Height/2
	x1, y1 := b.X+b.Width, b.Y+b.Height
	return [8]Handle{
		{X: x0, Y: y0, Position: NW},
		{X: xm, Y: y0, Position: N},
		{X: x1, Y: y0, Position: NE},
		{X: x0, Y: ym, Position: W},
		{X: x1, Y: ym, Position: E},
		{X: x0, Y: y1, Position: SW},
		{X: xm, Y: y1, Position: S},
		{X: x1, Y: y1, Position: SE},
	}
}

// HandleAt returns the first handle within HandleReach of (px, py) on both
// axes, or PositionNone.
func (s *Shape) HandleAt(px, py float64) Position {
	for _, h := range s.Handles() {
		if math.Abs(px-h.X) <= HandleReach && math.Abs(py-h.Y) <= HandleReach {
			return h.Position
		}
	}
	return PositionNone
}
