package dither

import (
	"math"

	"ditherbg/internal/core"
)

// CoverageStats summarizes the lit-block fraction over a run of ticks.
type CoverageStats struct {
	Ticks int
	Mean  float64
	Min   float64
	Max   float64
}

// MeasureCoverage renders ticks frames of the given size with the pointer
// resting at the center and no scroll offset, and reports how much of the
// block grid was lit.
func MeasureCoverage(cfg Config, size core.Size, ticks int) CoverageStats {
	stats := CoverageStats{Min: math.Inf(1), Max: math.Inf(-1)}
	if ticks <= 0 || size.Empty() {
		return CoverageStats{}
	}
	gen := New(cfg)
	gen.Configure(size)
	clock := core.NewClock(core.DefaultTimeStep)

	sum := 0.0
	for i := 0; i < ticks; i++ {
		gen.Tick(clock.Advance(), Center, 0)
		c := gen.Coverage()
		sum += c
		stats.Min = math.Min(stats.Min, c)
		stats.Max = math.Max(stats.Max, c)
	}
	stats.Ticks = ticks
	stats.Mean = sum / float64(ticks)
	return stats
}
