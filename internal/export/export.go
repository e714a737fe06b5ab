// Package export renders frame sequences without a display and writes them as
// PNG stills or animated PNGs.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/kettek/apng"

	"ditherbg/internal/core"
	"ditherbg/internal/dither"
	"ditherbg/internal/render"
	"ditherbg/internal/scroll"
)

// Every APNG frame is shown for one tick at 60 Hz.
const (
	delayNum uint16 = 1
	delayDen uint16 = 60
)

// OrbitRadius is how far the scripted pointer strays from the center.
const OrbitRadius = 0.35

// ErrNoFrames is returned when there is nothing to render or save.
var ErrNoFrames = errors.New("export: no frames")

// Options describes a scripted run.
type Options struct {
	Size   core.Size
	Frames int
	Config dither.Config

	// Background is composited under each frame unless Transparent is set.
	Background  color.RGBA
	Transparent bool

	// ScrollEnd is the virtual scroll position reached on the last frame.
	// Scrolling starts at zero and ramps linearly.
	ScrollEnd float64
}

// Orbit returns the scripted pointer target for frame i of n: a 1:2
// Lissajous figure around the viewport center.
func Orbit(i, n int) dither.Point {
	if n <= 0 {
		return dither.Center
	}
	phase := 2 * math.Pi * float64(i) / float64(n)
	return dither.Point{
		X: 0.5 + OrbitRadius*math.Sin(phase),
		Y: 0.5 + OrbitRadius*math.Sin(2*phase),
	}
}

// Render runs the generator for opts.Frames ticks and returns one image per
// tick. Flattened frames are *image.RGBA; transparent ones are *image.NRGBA.
func Render(opts Options) ([]image.Image, error) {
	if opts.Frames <= 0 || opts.Size.Empty() {
		return nil, ErrNoFrames
	}
	gen := dither.New(opts.Config)
	gen.Configure(opts.Size)
	clock := core.NewClock(core.DefaultTimeStep)
	tracker := scroll.NewTracker()
	comp := render.NewCompositor(opts.Background)

	frames := make([]image.Image, 0, opts.Frames)
	for i := range opts.Frames {
		if opts.Frames > 1 {
			y := opts.ScrollEnd * float64(i) / float64(opts.Frames-1)
			tracker.Update(y, float64(opts.Size.H))
		}
		tracker.Advance()
		buf := gen.Tick(clock.Advance(), Orbit(i, opts.Frames), tracker.Offset())
		if opts.Transparent {
			frames = append(frames, copyNRGBA(buf, opts.Size))
			continue
		}
		frames = append(frames, comp.FlattenImage(buf, opts.Size))
	}
	return frames, nil
}

func copyNRGBA(buf []byte, size core.Size) *image.NRGBA {
	pix := make([]byte, len(buf))
	copy(pix, buf)
	return render.NRGBA(pix, size)
}

// SavePNG writes img to path as a PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// SaveAPNG writes frames to path as an endlessly looping animated PNG.
func SaveAPNG(path string, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := apng.APNG{Frames: make([]apng.Frame, len(frames))}
	for i, img := range frames {
		anim.Frames[i] = apng.Frame{
			Image:            img,
			DelayNumerator:   delayNum,
			DelayDenominator: delayDen,
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := apng.Encode(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
