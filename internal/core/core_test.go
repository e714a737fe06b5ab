package core

import (
	"testing"
	"time"
)

func TestClockAdvancesByFixedStep(t *testing.T) {
	c := NewClock(0)
	for i := 1; i <= 5; i++ {
		if got := c.Advance(); got != float64(i)*DefaultTimeStep {
			t.Fatalf("tick %d: time=%v, expected %v", i, got, float64(i)*DefaultTimeStep)
		}
	}
	if c.Ticks() != 5 {
		t.Fatalf("expected 5 ticks, got %d", c.Ticks())
	}
}

func TestFixedStepInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("expected default TPS 60, got %d", fs.TPS())
	}
	fs.SetTPS(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("expected 50ms interval, got %v", fs.Interval())
	}
}

func TestSizeBlocksRoundsUp(t *testing.T) {
	cases := []struct {
		size   Size
		stride int
		want   Size
	}{
		{Size{W: 8, H: 8}, 2, Size{W: 4, H: 4}},
		{Size{W: 5, H: 5}, 2, Size{W: 3, H: 3}},
		{Size{W: 5, H: 3}, 0, Size{W: 5, H: 3}},
		{Size{W: 0, H: 3}, 2, Size{}},
	}
	for _, tc := range cases {
		if got := tc.size.Blocks(tc.stride); got != tc.want {
			t.Fatalf("%+v.Blocks(%d) = %+v, expected %+v", tc.size, tc.stride, got, tc.want)
		}
	}
}

func TestByteGridCount(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(0, 0, 1)
	g.Set(2, 1, 1)
	if g.Count() != 2 {
		t.Fatalf("expected 2 set cells, got %d", g.Count())
	}
	if g.At(2, 1) != 1 || g.Cells()[g.Index(2, 1)] != 1 {
		t.Fatal("Set/At disagree with Index")
	}
	g.Clear()
	if g.Count() != 0 {
		t.Fatal("Clear left cells set")
	}
	if empty := NewByteGrid(0, 4); len(empty.Cells()) != 0 || !empty.Matches(0, 0) {
		t.Fatal("non-positive dimensions must produce an empty grid")
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Dither",
		Params: []Parameter{IntParam("opacity", "Opacity", 50), FloatParam("density", "Density", 0.3)},
	}}}
	p, ok := snap.Lookup("density")
	if !ok || p.Value != "0.3" || p.Type != ParamTypeFloat {
		t.Fatalf("unexpected lookup result %+v (ok=%v)", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of unknown key must fail")
	}
}
