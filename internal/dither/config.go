package dither

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds the render settings of a Generator.
type Config struct {
	// Color is the particle color. Its alpha channel is ignored; Opacity
	// drives the alpha of lit blocks.
	Color            color.RGBA
	Opacity          uint8
	DensityReduction float64
	PixelSize        int
}

// DefaultConfig returns the standard configuration: black particles at alpha
// 50, 30% density reduction and 2px blocks.
func DefaultConfig() Config {
	return Config{
		Color:            color.RGBA{A: 255},
		Opacity:          50,
		DensityReduction: 0.3,
		PixelSize:        2,
	}
}

// Normalized returns a copy with out-of-range values pulled back into range.
func (c Config) Normalized() Config {
	if c.PixelSize < 1 {
		c.PixelSize = 1
	}
	if c.DensityReduction < 0 || c.DensityReduction != c.DensityReduction {
		c.DensityReduction = 0
	}
	if c.DensityReduction > 1 {
		c.DensityReduction = 1
	}
	return c
}

// ParseColor parses a CSS-style hex color ("#000", "#1a2b3c").
func ParseColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
