package dither

import "ditherbg/internal/core"

// Smoothing is the fraction of the remaining distance the pointer covers each
// tick.
const Smoothing = 0.08

// Point is a position in normalized viewport coordinates.
type Point struct {
	X, Y float64
}

// Center is the middle of the viewport.
var Center = Point{X: 0.5, Y: 0.5}

// Approach moves p toward target by factor k of the remaining distance.
func (p Point) Approach(target Point, k float64) Point {
	return Point{
		X: p.X + (target.X-p.X)*k,
		Y: p.Y + (target.Y-p.Y)*k,
	}
}

// Generator produces dithered flow-field frames into an RGBA buffer it owns.
// It is not safe for concurrent use; a single driver goroutine must call
// Configure and Tick.
type Generator struct {
	cfg  Config
	size core.Size

	buf  []byte
	mask *core.ByteGrid

	pointer Point
	scroll  float64
	time    float64
}

// New returns a Generator with the given config. Configure must be called
// before the first Tick produces pixels.
func New(cfg Config) *Generator {
	return &Generator{
		cfg:     cfg.Normalized(),
		mask:    core.NewByteGrid(0, 0),
		pointer: Center,
	}
}

// Configure reallocates the frame buffer for a viewport of the given size.
// Pointer and scroll state survive.
func (g *Generator) Configure(size core.Size) {
	if size.Empty() {
		size = core.Size{}
	}
	g.size = size
	g.buf = make([]byte, size.Pixels()*4)
	g.resizeMask()
}

func (g *Generator) resizeMask() {
	blocks := g.size.Blocks(g.cfg.PixelSize)
	if !g.mask.Matches(blocks.W, blocks.H) {
		g.mask = core.NewByteGrid(blocks.W, blocks.H)
	}
}

// Tick advances the pointer smoothing toward target and repaints the whole
// buffer for time t and the given scroll offset. The returned slice is the
// generator's buffer and is overwritten by the next Tick.
func (g *Generator) Tick(t float64, target Point, scroll float64) []byte {
	g.pointer = g.pointer.Approach(target, Smoothing)
	g.time = t
	g.scroll = scroll
	if g.size.Empty() {
		return g.buf
	}
	g.resizeMask()

	stride := g.cfg.PixelSize
	r, gr, b := g.cfg.Color.R, g.cfg.Color.G, g.cfg.Color.B
	w, h := g.size.W, g.size.H

	for y, by := 0, 0; y < h; y, by = y+stride, by+1 {
		rows := min(stride, h-y)
		for x, bx := 0, 0; x < w; x, bx = x+stride, bx+1 {
			flow := g.FlowField(x, y, t, g.pointer.X, g.pointer.Y)
			threshold := AdjustedThreshold(Bayer(bx, by), g.cfg.DensityReduction)

			var alpha uint8
			var bit uint8
			if flow > threshold {
				alpha = g.cfg.Opacity
				bit = 1
			}
			g.mask.Set(bx, by, bit)

			cols := min(stride, w-x)
			for dy := 0; dy < rows; dy++ {
				base := ((y+dy)*w + x) * 4
				for dx := 0; dx < cols; dx++ {
					i := base + dx*4
					g.buf[i+0] = r
					g.buf[i+1] = gr
					g.buf[i+2] = b
					g.buf[i+3] = alpha
				}
			}
		}
	}
	return g.buf
}

// FlowField evaluates the flow field at pixel (x, y) of the configured
// viewport using the generator's current scroll offset.
func (g *Generator) FlowField(x, y int, t, mouseX, mouseY float64) float64 {
	nx, ny := 0.0, 0.0
	if g.size.W > 0 {
		nx = float64(x) / float64(g.size.W)
	}
	if g.size.H > 0 {
		ny = float64(y) / float64(g.size.H)
	}
	return Flow(nx, ny, t, mouseX, mouseY, g.scroll)
}

// ScrollOffset returns the scroll offset of the last Tick.
func (g *Generator) ScrollOffset() float64 { return g.scroll }

// Buffer exposes the current frame buffer.
func (g *Generator) Buffer() []byte { return g.buf }

// Size returns the configured viewport.
func (g *Generator) Size() core.Size { return g.size }

// Pointer returns the smoothed pointer position.
func (g *Generator) Pointer() Point { return g.pointer }

// Time returns the time of the last Tick.
func (g *Generator) Time() float64 { return g.time }

// Config returns the active render configuration.
func (g *Generator) Config() Config { return g.cfg }

// Mask exposes the per-block on/off state of the last Tick.
func (g *Generator) Mask() *core.ByteGrid { return g.mask }

// Coverage returns the fraction of blocks that were lit by the last Tick.
func (g *Generator) Coverage() float64 {
	total := len(g.mask.Cells())
	if total == 0 {
		return 0
	}
	return float64(g.mask.Count()) / float64(total)
}
