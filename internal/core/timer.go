package core

import "time"

// DefaultTimeStep is the animation time added per tick. It matches a 60 Hz
// refresh expressed in milliseconds and is a convention, not wall-clock time.
const DefaultTimeStep = 16.0

// Clock is the animation time accumulator shared by every driver.
type Clock struct {
	step float64
	now  float64
}

// NewClock returns a clock that advances by step per tick. A non-positive step
// falls back to DefaultTimeStep.
func NewClock(step float64) *Clock {
	if step <= 0 {
		step = DefaultTimeStep
	}
	return &Clock{step: step}
}

// Advance moves the clock forward by one tick and returns the new time.
func (c *Clock) Advance() float64 {
	c.now += c.step
	return c.now
}

// Now returns the current animation time.
func (c *Clock) Now() float64 { return c.now }

// Ticks returns how many ticks the clock has advanced.
func (c *Clock) Ticks() int { return int(c.now / c.step) }

// FixedStep holds the wall-clock interval between ticks for drivers that
// schedule their own refresh.
type FixedStep struct {
	tps  int
	step time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the configured ticks per second.
func (f *FixedStep) TPS() int { return f.tps }

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }
