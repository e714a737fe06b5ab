package app

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"ditherbg/internal/dither"
)

// KeyValues collects repeatable key=value flags.
type KeyValues []string

func (l *KeyValues) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KeyValues) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by every driver.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int

	Color      string
	Background string
	Opacity    int
	Density    float64
	PixelSize  int

	// Page is the scrollable page height in viewport heights.
	Page      float64
	WheelStep float64

	Verbose   bool
	Overrides KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := dither.DefaultConfig()
	return &Config{
		Width:      960,
		Height:     540,
		Scale:      1,
		TPS:        60,
		Color:      "#000000",
		Background: "#ffffff",
		Opacity:    int(d.Opacity),
		Density:    d.DensityReduction,
		PixelSize:  d.PixelSize,
		Page:       2,
		WheelStep:  40,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial viewport width")
	fs.IntVar(&c.Height, "height", c.Height, "initial viewport height")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Color, "color", c.Color, "particle color (hex)")
	fs.StringVar(&c.Background, "background", c.Background, "page background color (hex)")
	fs.IntVar(&c.Opacity, "opacity", c.Opacity, "alpha of lit blocks (0-255)")
	fs.Float64Var(&c.Density, "density", c.Density, "density reduction (0-1)")
	fs.IntVar(&c.PixelSize, "pixel-size", c.PixelSize, "side of each dithered block in pixels")
	fs.Float64Var(&c.Page, "page", c.Page, "scrollable page height in viewport heights")
	fs.Float64Var(&c.WheelStep, "wheel-step", c.WheelStep, "scroll distance per wheel notch in pixels")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log lifecycle events")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// ApplyOverrides applies every -set pair. Unknown keys and malformed values
// are reported.
func (c *Config) ApplyOverrides() error {
	for _, kv := range c.Overrides {
		key, value, _ := strings.Cut(kv, "=")
		if err := c.Apply(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Apply sets a single parameter by key.
func (c *Config) Apply(key, value string) error {
	var err error
	switch key {
	case "color":
		c.Color = value
	case "background":
		c.Background = value
	case "opacity":
		c.Opacity, err = strconv.Atoi(value)
	case "density":
		c.Density, err = strconv.ParseFloat(value, 64)
	case "pixel_size":
		c.PixelSize, err = strconv.Atoi(value)
	case "tps":
		c.TPS, err = strconv.Atoi(value)
	case "scale":
		c.Scale, err = strconv.Atoi(value)
	case "page":
		c.Page, err = strconv.ParseFloat(value, 64)
	default:
		return fmt.Errorf("unknown parameter %q", key)
	}
	if err != nil {
		return fmt.Errorf("parameter %s: %w", key, err)
	}
	return nil
}

// RenderConfig converts the flags into a generator config.
func (c *Config) RenderConfig() (dither.Config, error) {
	col, err := dither.ParseColor(c.Color)
	if err != nil {
		return dither.Config{}, fmt.Errorf("color %q: %w", c.Color, err)
	}
	if c.Opacity < 0 || c.Opacity > 255 {
		return dither.Config{}, fmt.Errorf("opacity %d out of range 0-255", c.Opacity)
	}
	cfg := dither.Config{
		Color:            col,
		Opacity:          uint8(c.Opacity),
		DensityReduction: c.Density,
		PixelSize:        c.PixelSize,
	}
	return cfg.Normalized(), nil
}

// BackgroundColor parses the page background.
func (c *Config) BackgroundColor() (color.RGBA, error) {
	bg, err := dither.ParseColor(c.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("background %q: %w", c.Background, err)
	}
	return bg, nil
}

// MaxScroll returns the scroll range for a viewport of the given height.
func (c *Config) MaxScroll(viewportHeight int) float64 {
	if c.Page <= 0 || viewportHeight <= 0 {
		return 0
	}
	return c.Page * float64(viewportHeight)
}
