// Package grid quantizes canvas coordinates to the drawing grid.
package grid

import "math"

// Size is the grid spacing in canvas units.
const Size = 20

// Snap rounds v to the nearest multiple of Size.
// Halves round up, so Snap(10) == 20 and Snap(-10) == 0.
func Snap(v float64) float64 {
	return math.Floor(v/Size+0.5) * Size
}

// TooSmall reports whether an extent is below one grid unit.
func TooSmall(extent float64) bool {
	return math.Abs(extent) < Size
}
