package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"ditherbg/internal/core"
	"ditherbg/internal/dither"
)

func main() {
	ticks := flag.Int("ticks", 240, "ticks to render per combination")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 320, "viewport width")
	height := flag.Int("height", 180, "viewport height")
	densities := flag.String("densities", "0,0.1,0.2,0.3,0.4,0.5,0.6,0.7,0.8", "comma-separated density reductions")
	sizes := flag.String("pixel-sizes", "1,2,3,4,6,8", "comma-separated pixel sizes")
	top := flag.Int("top", 0, "print only the first N rows (0 prints all)")
	flag.Parse()

	ds, err := parseFloats(*densities)
	if err != nil {
		log.Fatalf("densities: %v", err)
	}
	ps, err := parseInts(*sizes)
	if err != nil {
		log.Fatalf("pixel-sizes: %v", err)
	}

	points := dither.SweepGrid(ds, ps)
	fmt.Printf("Sweeping %d combinations (%d workers, %d ticks, %dx%d)\n", len(points), *workers, *ticks, *width, *height)

	start := time.Now()
	results := dither.Sweep(dither.DefaultConfig(), core.Size{W: *width, H: *height}, *ticks, points, *workers)
	elapsed := time.Since(start)

	fmt.Printf("\n%8s %6s %8s %8s %8s\n", "density", "pixel", "mean", "min", "max")
	for i, res := range results {
		if *top > 0 && i >= *top {
			break
		}
		fmt.Printf("%8.2f %6d %8.4f %8.4f %8.4f\n",
			res.Density, res.PixelSize, res.Coverage.Mean, res.Coverage.Min, res.Coverage.Max)
	}
	fmt.Printf("\nElapsed %s\n", elapsed.Round(time.Millisecond))
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
