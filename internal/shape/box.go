package shape

import "math"

// Box is an axis-aligned box whose width and height may be negative.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Normalize returns the same box with non-negative width and height.
func (b Box) Normalize() Box {
	if b.Width < 0 {
		b.X += b.Width
		b.Width = -b.Width
	}
	if b.Height < 0 {
		b.Y += b.Height
		b.Height = -b.Height
	}
	return b
}

// Contains checks if a point is inside the box, edges included.
func (b Box) Contains(x, y float64) bool {
	n := b.Normalize()
	return x >= n.X && x <= n.X+n.Width && y >= n.Y && y <= n.Y+n.Height
}

// IsEmpty checks if the box has zero area.
func (b Box) IsEmpty() bool {
	return b.Width == 0 || b.Height == 0
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Union returns the smallest normalized box containing both boxes.
func (b Box) Union(other Box) Box {
	if b.IsEmpty() {
		return other.Normalize()
	}
	if other.IsEmpty() {
		return b.Normalize()
	}
	b, other = b.Normalize(), other.Normalize()

	minX := math.Min(b.X, other.X)
	minY := math.Min(b.Y, other.Y)
	maxX := math.Max(b.X+b.Width, other.X+other.Width)
	maxY := math.Max(b.Y+b.Height, other.Y+other.Height)

	return Box{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
