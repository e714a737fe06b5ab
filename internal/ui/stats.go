package ui

import (
	"fmt"

	"ditherbg/internal/core"
	"ditherbg/internal/dither"
)

// Stats is the per-frame state shown by the overlay.
type Stats struct {
	Ticks    int
	TPS      float64
	Size     core.Size
	Scale    int
	Coverage float64
	Pointer  dither.Point
	Target   dither.Point
	ScrollY  float64
	Offset   float64
	Phase    string
	Paused   bool
}

// Lines formats the stats for display.
func (s Stats) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("tick %d (%s) %.1f tps", s.Ticks, state, s.TPS),
		fmt.Sprintf("viewport %dx%d x%d", s.Size.W, s.Size.H, s.Scale),
		fmt.Sprintf("coverage %.1f%%", s.Coverage*100),
		fmt.Sprintf("pointer %.3f,%.3f -> %.3f,%.3f", s.Pointer.X, s.Pointer.Y, s.Target.X, s.Target.Y),
		fmt.Sprintf("scroll %.0fpx offset %.2f %s", s.ScrollY, s.Offset, s.Phase),
	}
}
