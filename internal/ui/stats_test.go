package ui

import (
	"strings"
	"testing"

	"ditherbg/internal/core"
	"ditherbg/internal/dither"
)

func TestStatsLines(t *testing.T) {
	s := Stats{
		Ticks:    12,
		Size:     core.Size{W: 320, H: 200},
		Scale:    2,
		Coverage: 0.25,
		Pointer:  dither.Center,
		Target:   dither.Point{X: 1, Y: 0},
		Offset:   8,
		Phase:    "flow-out",
		Paused:   true,
	}
	lines := s.Lines()
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"tick 12 (paused)", "320x200 x2", "coverage 25.0%", "-> 1.000,0.000", "flow-out"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in %q", want, joined)
		}
	}
}
