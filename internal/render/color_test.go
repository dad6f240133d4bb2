package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}},
		{"#00FF00", color.RGBA{G: 0xff, A: 0xff}},
		{"#333", color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}},
		{"#667eea", color.RGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}},
		{"white", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{" Orange ", color.RGBA{R: 0xff, G: 0xa5, A: 0xff}},
		{"transparent", color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "#zzzzzz", "blurple", "rgb(1,2,3)"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrUnknownColor, "input %q", in)
	}
}
