package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formen/formen/internal/shape"
)

func TestResizeHandles(t *testing.T) {
	tests := []struct {
		name   string
		handle shape.Position
		dx, dy float64
		want   shape.Box
	}{
		{"e grows width", shape.E, 40, 15, shape.Box{X: 0, Y: 0, Width: 140, Height: 100}},
		{"w moves left edge", shape.W, 40, 0, shape.Box{X: 40, Y: 0, Width: 60, Height: 100}},
		{"n moves top edge", shape.N, 0, -20, shape.Box{X: 0, Y: -20, Width: 100, Height: 120}},
		{"s snaps height", shape.S, 0, 25, shape.Box{X: 0, Y: 0, Width: 100, Height: 120}},
		{"ne", shape.NE, 20, 20, shape.Box{X: 0, Y: 20, Width: 120, Height: 80}},
		{"sw", shape.SW, -20, -20, shape.Box{X: -20, Y: 0, Width: 120, Height: 80}},
		{"nw keeps se corner", shape.NW, 10, 10, shape.Box{X: 20, Y: 20, Width: 80, Height: 80}},
		{"se", shape.SE, 30, -40, shape.Box{X: 0, Y: 0, Width: 140, Height: 60}},
		{"e may flip past the anchor", shape.E, -160, 0, shape.Box{X: 0, Y: 0, Width: -60, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &shape.Shape{Kind: shape.KindRectangle, Width: 100, Height: 100}
			Resize(s, tt.handle, tt.dx, tt.dy)
			assert.Equal(t, tt.want, shape.Box{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height})
		})
	}
}

func TestResizeRollsBackDegenerateAxes(t *testing.T) {
	tests := []struct {
		name   string
		handle shape.Position
		dx, dy float64
		want   shape.Box
	}{
		{"se width only", shape.SE, -95, -50, shape.Box{X: 0, Y: 0, Width: 100, Height: 60}},
		{"se height only", shape.SE, 40, -95, shape.Box{X: 0, Y: 0, Width: 140, Height: 100}},
		{"se both", shape.SE, -95, -95, shape.Box{X: 0, Y: 0, Width: 100, Height: 100}},
		{"w restores x too", shape.W, 100, 0, shape.Box{X: 0, Y: 0, Width: 100, Height: 100}},
		{"nw restores x keeps y", shape.NW, 95, 40, shape.Box{X: 0, Y: 40, Width: 100, Height: 60}},
		{"n restores y", shape.N, 0, 91, shape.Box{X: 0, Y: 0, Width: 100, Height: 100}},
		{"exactly one unit survives", shape.E, -80, 0, shape.Box{X: 0, Y: 0, Width: 20, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &shape.Shape{Kind: shape.KindRectangle, Width: 100, Height: 100}
			Resize(s, tt.handle, tt.dx, tt.dy)
			assert.Equal(t, tt.want, shape.Box{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height})
			assert.False(t, s.Width > -20 && s.Width < 20)
			assert.False(t, s.Height > -20 && s.Height < 20)
		})
	}
}

func TestResizeSmallStepsDoNotMove(t *testing.T) {
	s := &shape.Shape{Kind: shape.KindRectangle, X: 100, Y: 100, Width: 100, Height: 100}
	for i := 0; i < 10; i++ {
		Resize(s, shape.NW, 5, 5)
	}
	assert.Equal(t, 100.0, s.X, "each step snaps back to the same grid line")
	assert.Equal(t, 100.0, s.Width)
}

func TestResizeSquareStartsFromExtent(t *testing.T) {
	tests := []struct {
		name   string
		handle shape.Position
		dx, dy float64
		want   shape.Box
	}{
		{"s moves the visible bottom edge", shape.S, 0, 60, shape.Box{X: 0, Y: 0, Width: 160, Height: 160}},
		{"e on a tall square", shape.E, 20, 0, shape.Box{X: 0, Y: 0, Width: 120, Height: 120}},
		{"n moves the top edge", shape.N, 0, 20, shape.Box{X: 0, Y: 20, Width: 100, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &shape.Shape{Kind: shape.KindSquare, Width: 100, Height: 40}
			if tt.handle == shape.E {
				s.Width, s.Height = 40, 100
			}
			Resize(s, tt.handle, tt.dx, tt.dy)
			assert.Equal(t, tt.want, s.Bounds())
		})
	}
}

func TestResizeSquareThroughPointer(t *testing.T) {
	e := newTestEditor(t)
	draw(t, e, ToolSquare, 0, 0, 100, 40)
	require.NoError(t, e.SetTool(ToolSelect).Err)
	click(e, 50, 50)
	sel := e.Selected()
	require.NotNil(t, sel)

	// the s handle sits on the extent, not the stored height
	e.PointerDown(50, 100)
	require.Equal(t, ModeResizing, e.Mode())
	for _, y := range []float64{120, 140, 160} {
		e.PointerMove(50, y)
	}
	e.PointerUp(50, 160)

	assert.Equal(t, shape.Box{X: 0, Y: 0, Width: 160, Height: 160}, sel.Bounds())
	assert.Equal(t, shape.S, sel.HandleAt(80, 160))
}
