package dither

import (
	"testing"

	"ditherbg/internal/core"
)

func TestSweepGrid(t *testing.T) {
	points := SweepGrid([]float64{0, 0.5}, []int{1, 2, 4})
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	if points[0] != (SweepPoint{Density: 0, PixelSize: 1}) || points[5] != (SweepPoint{Density: 0.5, PixelSize: 4}) {
		t.Fatalf("unexpected grid order: %+v", points)
	}
}

func TestSweepMatchesSerialMeasurement(t *testing.T) {
	size := core.Size{W: 32, H: 24}
	points := SweepGrid([]float64{0, 0.3, 0.9}, []int{1, 3})
	results := Sweep(DefaultConfig(), size, 8, points, 4)
	if len(results) != len(points) {
		t.Fatalf("expected %d results, got %d", len(points), len(results))
	}
	for i, res := range results {
		cfg := DefaultConfig()
		cfg.DensityReduction = res.Density
		cfg.PixelSize = res.PixelSize
		if want := MeasureCoverage(cfg, size, 8); res.Coverage != want {
			t.Fatalf("%+v: coverage %+v, want %+v", res.SweepPoint, res.Coverage, want)
		}
		if i > 0 && results[i-1].Coverage.Mean < res.Coverage.Mean {
			t.Fatalf("results not sorted by mean at %d", i)
		}
	}
}
