// Package scroll turns page scroll progress into the phase offset that
// accelerates the flow field, including the delayed boost applied when the
// background flows out of view and the reset when it flows back in.
package scroll

const (
	// TriggerRatio is the fraction of the viewport height that must be
	// scrolled before the background flows out.
	TriggerRatio = 0.75
	// ProgressScale converts scroll progress in [0,1] to a phase offset.
	ProgressScale = 8.0
	// FlowOutBoost is added to the offset once the background has flowed out.
	FlowOutBoost = 20.0

	// BoostDelay is the number of ticks (about 100ms at 60 Hz) between
	// flowing out and applying the boost.
	BoostDelay = 6
	// ResetDelay is the number of ticks (about 50ms) between scrolling back
	// above the trigger and flowing back in.
	ResetDelay = 3
)

// Phase is the visibility state of the background.
type Phase int

const (
	FlowIn Phase = iota
	FlowOut
)

func (p Phase) String() string {
	if p == FlowOut {
		return "flow-out"
	}
	return "flow-in"
}

type pending struct {
	ticks  int
	offset float64
	show   bool
}

// Tracker holds the scroll-derived offset. Update is fed scroll positions and
// Advance is called once per tick.
type Tracker struct {
	offset  float64
	visible bool
	next    *pending
}

// NewTracker returns a tracker in the visible, unscrolled state.
func NewTracker() *Tracker {
	return &Tracker{visible: true}
}

// Progress maps a scroll position to [.., 1] relative to the trigger point.
func Progress(scrollY, viewportHeight float64) float64 {
	trigger := viewportHeight * TriggerRatio
	if trigger <= 0 {
		if scrollY > 0 {
			return 1
		}
		return 0
	}
	return min(scrollY/trigger, 1)
}

// Update records a new scroll position. The plain progress offset applies
// immediately; phase changes schedule delayed offset changes. A pending boost
// is replaced by a reset, but a pending reset is never re-armed.
func (t *Tracker) Update(scrollY, viewportHeight float64) {
	flowOffset := Progress(scrollY, viewportHeight) * ProgressScale
	t.offset = flowOffset

	trigger := viewportHeight * TriggerRatio
	switch {
	case scrollY >= trigger && t.visible:
		t.visible = false
		t.next = &pending{ticks: BoostDelay, offset: flowOffset + FlowOutBoost}
	case scrollY < trigger && !t.visible:
		// An armed reset keeps its deadline while scrolling continues.
		if t.next != nil && t.next.show {
			return
		}
		t.next = &pending{ticks: ResetDelay, offset: 0, show: true}
	}
}

// Advance counts down a scheduled change and applies it when due.
func (t *Tracker) Advance() {
	if t.next == nil {
		return
	}
	t.next.ticks--
	if t.next.ticks > 0 {
		return
	}
	t.offset = t.next.offset
	if t.next.show {
		t.visible = true
	}
	t.next = nil
}

// Offset returns the phase offset to hand to the generator.
func (t *Tracker) Offset() float64 { return t.offset }

// Phase reports whether the background is flowing in or out.
func (t *Tracker) Phase() Phase {
	if t.visible {
		return FlowIn
	}
	return FlowOut
}

// Pending reports whether a delayed change is scheduled.
func (t *Tracker) Pending() bool { return t.next != nil }
