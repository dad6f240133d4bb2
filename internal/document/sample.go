package document

import "github.com/formen/formen/internal/shape"

// Sample returns a small starter drawing: a house with a roof, a door and a sun.
func Sample() []*shape.Shape {
	return []*shape.Shape{
		shape.New(shape.KindSquare, 200, 240, 200, 200, shape.Color("#f4d35e")),
		shape.New(shape.KindTriangle, 180, 120, 240, 120, shape.Color("#e94560")),
		shape.New(shape.KindRectangle, 280, 340, 40, 100, shape.Color("#8d6e63")),
		shape.New(shape.KindCircle, 520, 80, 80, 80, shape.Color("#ffb400")),
		shape.New(shape.KindRectangle, 60, 440, 600, 40, nil),
	}
}
