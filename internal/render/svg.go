package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/formen/formen/internal/shape"
)

// SVG is a Surface that writes an SVG document. Coordinates are rounded to
// whole pixels. Colors that do not parse are dropped, never written.
type SVG struct {
	canvas *svg.SVG

	// err is the first color that failed to parse.
	err error
}

// NewSVG starts a width x height document on w. Call End when done.
func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVG{canvas: canvas}
}

// Err returns the first style error seen while drawing, if any.
func (s *SVG) Err() error {
	return s.err
}

// Background fills the whole document.
func (s *SVG) Background(width, height int, fill string) {
	s.canvas.Rect(0, 0, width, height, s.css(shape.Style{Fill: fill}))
}

// DrawGrid draws one-pixel grid lines every size pixels.
func (s *SVG) DrawGrid(width, height, size int, stroke string) {
	if size <= 0 {
		return
	}
	c, ok := s.color(stroke)
	if !ok {
		return
	}
	s.canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:1", c))
	for x := 0; x <= width; x += size {
		s.canvas.Line(x, 0, x, height)
	}
	for y := 0; y <= height; y += size {
		s.canvas.Line(0, y, width, y)
	}
	s.canvas.Gend()
}

func (s *SVG) Rect(x, y, width, height float64, style shape.Style) {
	b := shape.Box{X: x, Y: y, Width: width, Height: height}.Normalize()
	s.canvas.Rect(px(b.X), px(b.Y), px(b.Width), px(b.Height), s.css(style))
}

func (s *SVG) Circle(cx, cy, radius float64, style shape.Style) {
	s.canvas.Circle(px(cx), px(cy), px(math.Abs(radius)), s.css(style))
}

func (s *SVG) Polygon(points []shape.Point, style shape.Style) {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	s.canvas.Polygon(xs, ys, s.css(style))
}

// End closes the document.
func (s *SVG) End() {
	s.canvas.End()
}

func px(v float64) int {
	return int(math.Round(v))
}

// color returns c trimmed when it parses. Anything else reaching the style
// attribute could break out of it.
func (s *SVG) color(c string) (string, bool) {
	if _, err := ParseColor(c); err != nil {
		if s.err == nil {
			s.err = err
		}
		return "", false
	}
	return strings.TrimSpace(c), true
}

func (s *SVG) css(style shape.Style) string {
	var b strings.Builder
	fill := "none"
	if style.Fill != "" {
		if c, ok := s.color(style.Fill); ok {
			fill = c
		}
	}
	b.WriteString("fill:" + fill)
	if style.Stroke == "" || style.LineWidth <= 0 {
		return b.String()
	}
	if stroke, ok := s.color(style.Stroke); ok {
		b.WriteString(";stroke:" + stroke)
		b.WriteString(";stroke-width:" + strconv.FormatFloat(style.LineWidth, 'f', -1, 64))
		if len(style.Dash) > 0 {
			dash := make([]string, len(style.Dash))
			for i, d := range style.Dash {
				dash[i] = strconv.FormatFloat(d, 'f', -1, 64)
			}
			b.WriteString(";stroke-dasharray:" + strings.Join(dash, ","))
		}
	}
	return b.String()
}
