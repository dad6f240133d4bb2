package export

import (
	"io"
	"log/slog"

	"github.com/formen/formen/internal/grid"
	"github.com/formen/formen/internal/render"
	"github.com/formen/formen/internal/scene"
	"github.com/formen/formen/internal/shape"
)

const (
	background = "white"
	gridColor  = "#e0e0e0"
)

// Options sizes an exported image.
type Options struct {
	Width  int
	Height int
	Grid   bool
}

// PNG rasterizes shapes onto a white canvas. Fills that are not valid colors
// are skipped and logged.
func PNG(w io.Writer, shapes []*shape.Shape, opts Options) error {
	sc, err := sceneOf(shapes)
	if err != nil {
		return err
	}

	bg, _ := render.ParseColor(background)
	r := render.NewRaster(opts.Width, opts.Height, bg)
	if opts.Grid {
		gc, _ := render.ParseColor(gridColor)
		r.DrawGrid(grid.Size, gc)
	}
	sc.Draw(r)
	if err := r.Err(); err != nil {
		slog.Warn("png export skipped a fill", "error", err)
	}
	return r.EncodePNG(w)
}

// SVG writes shapes as an SVG document. Like PNG, fills that are not valid
// colors are left out and logged.
func SVG(w io.Writer, shapes []*shape.Shape, opts Options) error {
	sc, err := sceneOf(shapes)
	if err != nil {
		return err
	}

	s := render.NewSVG(w, opts.Width, opts.Height)
	s.Background(opts.Width, opts.Height, background)
	if opts.Grid {
		s.DrawGrid(opts.Width, opts.Height, grid.Size, gridColor)
	}
	sc.Draw(s)
	s.End()
	if err := s.Err(); err != nil {
		slog.Warn("svg export skipped a color", "error", err)
	}
	return nil
}

func sceneOf(shapes []*shape.Shape) (*scene.Scene, error) {
	sc := scene.New()
	if err := sc.Replace(shapes); err != nil {
		return nil, err
	}
	return sc, nil
}
