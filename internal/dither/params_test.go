package dither

import (
	"image/color"
	"testing"

	"ditherbg/internal/core"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("1a2b3c")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}) {
		t.Fatalf("unexpected color %+v", c)
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Fatal("expected error for malformed color")
	}
}

func TestParameterSetters(t *testing.T) {
	g := New(DefaultConfig())
	g.Configure(core.Size{W: 10, H: 10})

	if !g.SetIntParameter("pixel_size", 100) {
		t.Fatal("pixel_size must be settable")
	}
	if g.Config().PixelSize != 16 {
		t.Fatalf("pixel size must clamp to 16, got %d", g.Config().PixelSize)
	}
	if m := g.Mask(); m.W != 1 || m.H != 1 {
		t.Fatalf("mask must follow pixel size, got %dx%d", m.W, m.H)
	}
	if !g.SetIntParameter("opacity", -5) || g.Config().Opacity != 0 {
		t.Fatalf("opacity must clamp to 0, got %d", g.Config().Opacity)
	}
	if !g.SetFloatParameter("density", 0.45) || g.Config().DensityReduction != 0.45 {
		t.Fatalf("density not applied: %v", g.Config().DensityReduction)
	}
	if g.SetFloatParameter("opacity", 1) {
		t.Fatal("opacity is an int parameter")
	}
	if g.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}

	p, ok := g.Parameters().Lookup("pixel_size")
	if !ok || p.Value != "16" {
		t.Fatalf("snapshot out of date: %+v", p)
	}
	if len(g.ParameterControls()) != 3 {
		t.Fatalf("expected 3 controls, got %d", len(g.ParameterControls()))
	}
}
