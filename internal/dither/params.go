package dither

import (
	"math"

	"ditherbg/internal/core"
)

var controls = []core.ParameterControl{
	{Key: "density", Label: "Density reduction", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	{Key: "opacity", Label: "Opacity", Type: core.ParamTypeInt, Step: 10, Min: 0, Max: 255},
	{Key: "pixel_size", Label: "Pixel size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 16},
}

// Parameters reports the tunables of the generator.
func (g *Generator) Parameters() core.ParameterSnapshot {
	c := g.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Dither",
			Params: []core.Parameter{
				core.FloatParam("density", "Density reduction", c.DensityReduction),
				core.IntParam("opacity", "Opacity", int(c.Opacity)),
				core.IntParam("pixel_size", "Pixel size", c.PixelSize),
			},
		},
		{
			Name: "Viewport",
			Params: []core.Parameter{
				core.IntParam("w", "Width", g.size.W),
				core.IntParam("h", "Height", g.size.H),
			},
		},
	}}
}

// ParameterControls lists the parameters adjustable at runtime.
func (g *Generator) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// SetIntParameter updates opacity or pixel_size. Values are clamped to the
// control bounds; unknown keys are rejected.
func (g *Generator) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	v := int(ctrl.Clamp(float64(value)))
	switch key {
	case "opacity":
		g.cfg.Opacity = uint8(v)
	case "pixel_size":
		g.cfg.PixelSize = v
		g.resizeMask()
	}
	return true
}

// SetFloatParameter updates the density reduction.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key, core.ParamTypeFloat)
	if !ok || math.IsNaN(value) {
		return false
	}
	g.cfg.DensityReduction = ctrl.Clamp(value)
	return true
}

func controlFor(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}
