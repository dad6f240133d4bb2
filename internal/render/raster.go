package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/formen/formen/internal/shape"
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 64

// Raster is a Surface that rasterizes onto an RGBA image.
type Raster struct {
	img *image.RGBA
	ras *vector.Rasterizer

	// err is the first color that failed to parse.
	err error
}

// NewRaster creates a width x height image filled with background.
func NewRaster(width, height int, background color.Color) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	return &Raster{
		img: img,
		ras: vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Err returns the first style error seen while drawing, if any. Primitives
// with an unparseable color are skipped.
func (r *Raster) Err() error {
	return r.err
}

func (r *Raster) Rect(x, y, width, height float64, style shape.Style) {
	r.Polygon([]shape.Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}, style)
}

func (r *Raster) Circle(cx, cy, radius float64, style shape.Style) {
	r.Polygon(shape.CirclePoints(cx, cy, radius, circleSegments), style)
}

// Polygon fills then strokes a closed polygon.
func (r *Raster) Polygon(points []shape.Point, style shape.Style) {
	if len(points) < 2 {
		return
	}
	if style.Fill != "" {
		if c, ok := r.color(style.Fill); ok {
			r.ras.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
			r.ras.MoveTo(float32(points[0].X), float32(points[0].Y))
			for _, p := range points[1:] {
				r.ras.LineTo(float32(p.X), float32(p.Y))
			}
			r.ras.ClosePath()
			r.paint(c)
		}
	}
	if style.Stroke != "" && style.LineWidth > 0 {
		if c, ok := r.color(style.Stroke); ok {
			closed := append(append([]shape.Point(nil), points...), points[0])
			r.stroke(closed, style.LineWidth, style.Dash, c)
		}
	}
}

// DrawGrid draws one-pixel lines every size pixels in both directions.
func (r *Raster) DrawGrid(size float64, c color.Color) {
	if size <= 0 {
		return
	}
	b := r.img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	r.ras.Reset(b.Dx(), b.Dy())
	for x := 0.0; x <= w; x += size {
		r.quad(shape.Point{X: x + 0.5, Y: 0}, shape.Point{X: x + 0.5, Y: h}, 1)
	}
	for y := 0.0; y <= h; y += size {
		r.quad(shape.Point{X: 0, Y: y + 0.5}, shape.Point{X: w, Y: y + 0.5}, 1)
	}
	r.paint(c)
}

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) color(s string) (color.RGBA, bool) {
	c, err := ParseColor(s)
	if err != nil {
		if r.err == nil {
			r.err = err
		}
		return color.RGBA{}, false
	}
	return c, c.A != 0
}

func (r *Raster) paint(c color.Color) {
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// stroke outlines a polyline. Every segment becomes a quad with square caps
// so corners join without gaps; dash runs carry across vertices.
func (r *Raster) stroke(path []shape.Point, width float64, dash []float64, c color.Color) {
	r.ras.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())

	d := dasher{pattern: dash}
	for i := 1; i < len(path); i++ {
		for _, seg := range d.split(path[i-1], path[i]) {
			r.quad(seg[0], seg[1], width)
		}
	}
	r.paint(c)
}

// quad adds a rectangle of the given width centered on segment a-b, extended
// by half the width at both ends. All quads wind the same way so overlaps
// saturate instead of cancelling.
func (r *Raster) quad(a, b shape.Point, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := width / 2
	ux, uy := dx/length*half, dy/length*half
	nx, ny := -uy, ux

	a = shape.Point{X: a.X - ux, Y: a.Y - uy}
	b = shape.Point{X: b.X + ux, Y: b.Y + uy}

	r.ras.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.ras.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.ras.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.ras.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.ras.ClosePath()
}

// dasher splits segments into the "on" runs of a dash pattern. An empty
// pattern is a solid line.
type dasher struct {
	pattern []float64
	index   int

	// used is how far into pattern[index] the previous segment ended.
	used float64
}

func (d *dasher) split(a, b shape.Point) [][2]shape.Point {
	if !d.dashed() {
		return [][2]shape.Point{{a, b}}
	}

	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	if length == 0 {
		return nil
	}
	at := func(t float64) shape.Point {
		return shape.Point{X: a.X + (b.X-a.X)*t/length, Y: a.Y + (b.Y-a.Y)*t/length}
	}

	var runs [][2]shape.Point
	pos := 0.0
	for pos < length {
		remaining := d.pattern[d.index] - d.used
		if remaining <= 0 {
			d.advance()
			continue
		}
		end := math.Min(pos+remaining, length)
		if d.index%2 == 0 {
			runs = append(runs, [2]shape.Point{at(pos), at(end)})
		}
		d.used += end - pos
		pos = end
		if d.used >= d.pattern[d.index] {
			d.advance()
		}
	}
	return runs
}

func (d *dasher) dashed() bool {
	total := 0.0
	for _, v := range d.pattern {
		if v < 0 {
			return false
		}
		total += v
	}
	return total > 0
}

func (d *dasher) advance() {
	d.index = (d.index + 1) % len(d.pattern)
	d.used = 0
}
