package dither

import (
	"cmp"
	"runtime"
	"slices"
	"sync"

	"ditherbg/internal/core"
)

// SweepPoint is one density and pixel size combination to measure.
type SweepPoint struct {
	Density   float64
	PixelSize int
}

// SweepResult pairs a sweep point with its measured coverage.
type SweepResult struct {
	SweepPoint
	Coverage CoverageStats
}

// SweepGrid returns every combination of the given densities and pixel sizes.
func SweepGrid(densities []float64, pixelSizes []int) []SweepPoint {
	points := make([]SweepPoint, 0, len(densities)*len(pixelSizes))
	for _, d := range densities {
		for _, px := range pixelSizes {
			points = append(points, SweepPoint{Density: d, PixelSize: px})
		}
	}
	return points
}

// Sweep measures coverage for every point on a pool of workers. Each worker
// owns its generators. Results are ordered by descending mean coverage, ties
// broken by density and then pixel size.
func Sweep(base Config, size core.Size, ticks int, points []SweepPoint, workers int) []SweepResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	jobs := make(chan SweepPoint)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				cfg := base
				cfg.DensityReduction = p.Density
				cfg.PixelSize = p.PixelSize
				results <- SweepResult{SweepPoint: p, Coverage: MeasureCoverage(cfg.Normalized(), size, ticks)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, p := range points {
			jobs <- p
		}
		close(jobs)
	}()

	all := make([]SweepResult, 0, len(points))
	for res := range results {
		all = append(all, res)
	}
	slices.SortFunc(all, func(a, b SweepResult) int {
		if c := cmp.Compare(b.Coverage.Mean, a.Coverage.Mean); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Density, b.Density); c != 0 {
			return c
		}
		return cmp.Compare(a.PixelSize, b.PixelSize)
	})
	return all
}
