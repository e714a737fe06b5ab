package app

import (
	"flag"
	"image/color"
	"io"
	"testing"
)

func TestBindAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-density", "0.5", "-set", "opacity=90", "-set", "color=#ff0000"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.ApplyOverrides(); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	rc, err := cfg.RenderConfig()
	if err != nil {
		t.Fatalf("RenderConfig: %v", err)
	}
	if rc.DensityReduction != 0.5 || rc.Opacity != 90 || rc.Color != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("unexpected render config %+v", rc)
	}
}

func TestMalformedSetFlag(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "opacity"}); err == nil {
		t.Fatal("expected error for -set without '='")
	}
}

func TestApplyRejectsUnknownKeys(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Apply("speed", "3"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if err := cfg.Apply("opacity", "lots"); err == nil {
		t.Fatal("expected error for malformed value")
	}
}

func TestRenderConfigValidation(t *testing.T) {
	cfg := NewConfig()
	cfg.Opacity = 400
	if _, err := cfg.RenderConfig(); err == nil {
		t.Fatal("expected opacity range error")
	}
	cfg = NewConfig()
	cfg.Background = "#zzz"
	if _, err := cfg.BackgroundColor(); err == nil {
		t.Fatal("expected background parse error")
	}
	if cfg.MaxScroll(300) != 600 {
		t.Fatalf("expected 600px of scroll, got %v", cfg.MaxScroll(300))
	}
}
