// Package render provides drawing surfaces for the editor: a JSON command
// list for browser canvases, an RGBA rasterizer with PNG output, and an SVG
// writer.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("unknown color")

// ParseColor converts a CSS color string into RGBA. It accepts #rgb, #rrggbb,
// CSS color names and "transparent".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.RGBA{}, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func parseHex(hex string) (color.RGBA, error) {
	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: #%s", ErrUnknownColor, hex)
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 0xff}, nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: #%s", ErrUnknownColor, hex)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: #%s", ErrUnknownColor, hex)
}
