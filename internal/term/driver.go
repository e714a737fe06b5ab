// Package term drives the frame generator inside a terminal. Every cell
// shows two vertically stacked pixels, so a cols x rows terminal is a
// cols x 2*rows viewport.
package term

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"ditherbg/internal/core"
	"ditherbg/internal/dither"
	"ditherbg/internal/render"
	"ditherbg/internal/scroll"
)

// Options configures a Driver.
type Options struct {
	TPS        int
	Background color.RGBA
	// WheelStep is the virtual scroll distance of one wheel notch, in pixels.
	WheelStep float64
	// Page is the scrollable length in viewport heights.
	Page float64
}

// Driver owns a generator and a tcell screen. All generator access happens on
// the goroutine that calls Run.
type Driver struct {
	screen  tcell.Screen
	gen     *dither.Generator
	painter *render.TermPainter
	opts    Options

	clock   *core.Clock
	step    *core.FixedStep
	tracker *scroll.Tracker

	size    core.Size
	target  dither.Point
	scrollY float64
	paused  bool
	stopped bool
}

// New returns a driver sized to the current screen.
func New(screen tcell.Screen, gen *dither.Generator, opts Options) *Driver {
	d := &Driver{
		screen:  screen,
		gen:     gen,
		painter: render.NewTermPainter(opts.Background),
		opts:    opts,
		clock:   core.NewClock(core.DefaultTimeStep),
		step:    core.NewFixedStep(opts.TPS),
		tracker: scroll.NewTracker(),
		target:  dither.Center,
	}
	d.resize(screen.Size())
	return d
}

// Run ticks at the configured rate until a quit key arrives or ctx is done.
// Once Run returns the driver no longer ticks or writes to the screen.
func (d *Driver) Run(ctx context.Context) error {
	defer func() { d.stopped = true }()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.step.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			d.Step()
		}
	}
}

// HandleEvent applies a terminal event. It returns false when the event asks
// the driver to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			d.paused = !d.paused
		}
	case *tcell.EventResize:
		d.resize(ev.Size())
		d.screen.Sync()
	case *tcell.EventMouse:
		d.handleMouse(ev)
	}
	return true
}

func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		d.scrollBy(-d.opts.WheelStep)
		return
	case buttons&tcell.WheelDown != 0:
		d.scrollBy(d.opts.WheelStep)
		return
	}
	if d.size.Empty() {
		return
	}
	col, row := ev.Position()
	d.target = dither.Point{
		X: (float64(col) + 0.5) / float64(d.size.W),
		Y: float64(row*2+1) / float64(d.size.H),
	}
}

func (d *Driver) scrollBy(delta float64) {
	limit := max(0, d.opts.Page*float64(d.size.H))
	next := max(0, min(d.scrollY+delta, limit))
	if next == d.scrollY {
		return
	}
	d.scrollY = next
	d.tracker.Update(d.scrollY, float64(d.size.H))
}

func (d *Driver) resize(cols, rows int) {
	d.size = render.TermSize(cols, rows)
	d.gen.Configure(d.size)
	d.scrollY = min(d.scrollY, max(0, d.opts.Page*float64(d.size.H)))
	d.tracker.Update(d.scrollY, float64(d.size.H))
}

// Step advances one tick and presents the frame. It reports whether a frame
// was drawn.
func (d *Driver) Step() bool {
	if d.stopped {
		return false
	}
	d.tracker.Advance()
	if !d.paused {
		d.gen.Tick(d.clock.Advance(), d.target, d.tracker.Offset())
	}
	d.painter.Draw(d.screen, d.gen.Buffer(), d.size)
	d.screen.Show()
	return true
}

// Size returns the pixel viewport.
func (d *Driver) Size() core.Size { return d.size }

// Target returns the latest pointer target.
func (d *Driver) Target() dither.Point { return d.target }

// ScrollY returns the virtual scroll position.
func (d *Driver) ScrollY() float64 { return d.scrollY }

// Offset returns the scroll offset handed to the generator.
func (d *Driver) Offset() float64 { return d.tracker.Offset() }
