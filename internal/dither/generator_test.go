package dither

import (
	"image/color"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"ditherbg/internal/core"
)

func TestBayerIsPermutationOverEveryAlignedBlock(t *testing.T) {
	for _, origin := range [][2]int{{0, 0}, {4, 8}, {-4, -4}, {12, -8}} {
		seen := map[float64]bool{}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				seen[Bayer(origin[0]+x, origin[1]+y)*16] = true
			}
		}
		for v := 0; v < 16; v++ {
			if !seen[float64(v)] {
				t.Fatalf("block at %v missing threshold %d", origin, v)
			}
		}
	}
}

func TestBayerPeriodicity(t *testing.T) {
	for y := -8; y < 8; y++ {
		for x := -8; x < 8; x++ {
			v := Bayer(x, y)
			if v != Bayer(x+4, y) || v != Bayer(x, y+4) {
				t.Fatalf("Bayer(%d,%d) not periodic", x, y)
			}
		}
	}
	if Bayer(0, 0) != 0 || Bayer(0, 3) != 15.0/16.0 || Bayer(1, 0) != 0.5 {
		t.Fatal("matrix layout does not match [y][x] indexing")
	}
}

func TestAdjustedThresholdBounds(t *testing.T) {
	for i := 0; i < 16; i++ {
		th := float64(i) / 16
		if AdjustedThreshold(th, 0) != th {
			t.Fatalf("d=0 must leave %v unchanged", th)
		}
		if AdjustedThreshold(th, 1) != 1 {
			t.Fatalf("d=1 must yield 1 for %v", th)
		}
		prev := th
		for d := 0.05; d <= 1.0; d += 0.05 {
			cur := AdjustedThreshold(th, d)
			if cur < prev {
				t.Fatalf("threshold %v decreased at d=%v", th, d)
			}
			prev = cur
		}
	}
}

func TestFlowIsFiniteAndPure(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for i := 0; i < 2000; i++ {
		nx := rng.Float64()*4 - 2
		ny := rng.Float64()*4 - 2
		tm := rng.Float64() * 1e7
		mx := rng.Float64()*3 - 1
		my := rng.Float64()*3 - 1
		sc := rng.Float64() * 30
		a := Flow(nx, ny, tm, mx, my, sc)
		b := Flow(nx, ny, tm, mx, my, sc)
		if math.IsNaN(a) || math.IsInf(a, 0) {
			t.Fatalf("non-finite flow %v for inputs %v %v %v %v %v %v", a, nx, ny, tm, mx, my, sc)
		}
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Fatal("flow differs between identical calls")
		}
	}
}

func TestFlowFieldUsesScrollOffset(t *testing.T) {
	g := New(DefaultConfig())
	g.Configure(core.Size{W: 100, H: 50})
	base := g.FlowField(25, 10, 0, 0.5, 0.5)
	if base != Flow(0.25, 0.2, 0, 0.5, 0.5, 0) {
		t.Fatal("FlowField must normalize by the viewport size")
	}
	g.Tick(0, Center, 3)
	if g.ScrollOffset() != 3 {
		t.Fatalf("scroll offset = %v, want 3", g.ScrollOffset())
	}
	if got := g.FlowField(25, 10, 0, 0.5, 0.5); got != Flow(0.25, 0.2, 0, 0.5, 0.5, 3) {
		t.Fatalf("scroll offset not applied: %v", got)
	}
}

func TestPointerConvergesGeometrically(t *testing.T) {
	g := New(DefaultConfig())
	g.Configure(core.Size{W: 4, H: 4})
	target := Point{X: 1, Y: 0}
	dist := func(p Point) float64 { return math.Hypot(target.X-p.X, target.Y-p.Y) }

	prev := dist(g.Pointer())
	for i := 0; i < 50; i++ {
		g.Tick(float64(i)*core.DefaultTimeStep, target, 0)
		cur := dist(g.Pointer())
		if cur > prev {
			t.Fatalf("tick %d moved away from target", i)
		}
		if math.Abs(cur-prev*(1-Smoothing)) > 1e-12 {
			t.Fatalf("tick %d: distance %v, expected %v", i, cur, prev*(1-Smoothing))
		}
		prev = cur
	}
}

func TestBufferFillScenario(t *testing.T) {
	cfg := Config{Color: color.RGBA{}, Opacity: 50, DensityReduction: 0, PixelSize: 2}
	g := New(cfg)
	g.Configure(core.Size{W: 8, H: 8})
	buf := g.Tick(0, Center, 0)

	if len(buf) != 8*8*4 {
		t.Fatalf("buffer length %d, expected %d", len(buf), 8*8*4)
	}
	if Bayer(0, 0) != 0 {
		t.Fatal("block (0,0) threshold must be 0")
	}
	for by := 0; by < 4; by++ {
		for bx := 0; bx < 4; bx++ {
			want := buf[((by*2)*8+bx*2)*4+3]
			if want != 0 && want != 50 {
				t.Fatalf("block (%d,%d) has alpha %d", bx, by, want)
			}
			flow := Flow(float64(bx*2)/8, float64(by*2)/8, 0, 0.5, 0.5, 0)
			expectOn := flow > Bayer(bx, by)
			if (want == 50) != expectOn {
				t.Fatalf("block (%d,%d) alpha %d disagrees with flow %v", bx, by, want, flow)
			}
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					if a := buf[((by*2+dy)*8+bx*2+dx)*4+3]; a != want {
						t.Fatalf("block (%d,%d) not uniform: %d vs %d", bx, by, a, want)
					}
				}
			}
		}
	}
	// flow at the origin sits just above 0.5 and the threshold there is 0.
	if buf[3] != 50 {
		t.Fatalf("origin block should be lit, alpha=%d", buf[3])
	}
	if g.Mask().At(0, 0) != 1 {
		t.Fatal("mask must record the lit origin block")
	}
}

func TestResizeDiscardsPreviousFrame(t *testing.T) {
	g := New(Config{Opacity: 255, PixelSize: 1})
	g.Configure(core.Size{W: 16, H: 12})
	g.Tick(16, Center, 0)
	g.Configure(core.Size{W: 6, H: 4})

	buf := g.Buffer()
	if len(buf) != 6*4*4 {
		t.Fatalf("buffer length %d, expected %d", len(buf), 6*4*4)
	}
	if slices.ContainsFunc(buf, func(b byte) bool { return b != 0 }) {
		t.Fatal("reconfigured buffer carries data from the previous viewport")
	}
	if g.Pointer() != Center {
		t.Fatalf("pointer changed unexpectedly: %+v", g.Pointer())
	}
}

func TestEdgeBlocksAreClipped(t *testing.T) {
	cfg := Config{Color: color.RGBA{R: 1, G: 2, B: 3}, Opacity: 255, PixelSize: 2}
	g := New(cfg)
	g.Configure(core.Size{W: 5, H: 5})
	buf := g.Tick(0, Center, 0)
	if len(buf) != 5*5*4 {
		t.Fatalf("buffer length %d, expected 100", len(buf))
	}
	for i := 0; i < 25; i++ {
		if buf[i*4] != 1 || buf[i*4+1] != 2 || buf[i*4+2] != 3 {
			t.Fatalf("pixel %d not painted: %v", i, buf[i*4:i*4+4])
		}
	}
	alpha := func(x, y int) byte { return buf[(y*5+x)*4+3] }
	m := g.Mask()
	if m.W != 3 || m.H != 3 {
		t.Fatalf("mask is %dx%d, expected 3x3", m.W, m.H)
	}
	// the 1px column at x=4 and row at y=4 are clipped blocks
	for by := 0; by < 3; by++ {
		want := m.At(2, by) * 255
		for y := by * 2; y < min(by*2+2, 5); y++ {
			if alpha(4, y) != want {
				t.Fatalf("edge pixel (4,%d) alpha %d, expected %d", y, alpha(4, y), want)
			}
		}
	}
	if alpha(4, 4) != m.At(2, 2)*255 || alpha(0, 4) != m.At(0, 2)*255 {
		t.Fatal("bottom edge pixels disagree with their blocks")
	}
}

func TestEmptyViewportTicks(t *testing.T) {
	g := New(DefaultConfig())
	g.Configure(core.Size{W: 0, H: 10})
	if buf := g.Tick(16, Point{X: 1, Y: 1}, 0); len(buf) != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", len(buf))
	}
	if g.Coverage() != 0 {
		t.Fatal("empty viewport must report zero coverage")
	}
}

func TestDensityThinsPattern(t *testing.T) {
	size := core.Size{W: 64, H: 48}
	prev := math.Inf(1)
	for _, d := range []float64{0, 0.3, 0.6, 1} {
		cfg := DefaultConfig()
		cfg.DensityReduction = d
		stats := MeasureCoverage(cfg, size, 20)
		if stats.Ticks != 20 {
			t.Fatalf("expected 20 ticks, got %d", stats.Ticks)
		}
		if stats.Mean > prev {
			t.Fatalf("coverage rose from %v to %v at density %v", prev, stats.Mean, d)
		}
		if stats.Min > stats.Mean || stats.Mean > stats.Max {
			t.Fatalf("inconsistent stats %+v", stats)
		}
		prev = stats.Mean
	}
}
