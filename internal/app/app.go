//go:build ebiten

package app

import (
	"image/color"
	"log"

	"ditherbg/internal/core"
	"ditherbg/internal/dither"
	"ditherbg/internal/render"
	"ditherbg/internal/scroll"
	"ditherbg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts the frame generator to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	gen     *dither.Generator
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD

	clock  *core.Clock
	scroll *scroll.Tracker

	background color.RGBA
	target     dither.Point
	scrollY    float64

	size   core.Size
	layout core.Size
	scale  int

	// screenW is the unscaled window width reported by Layout, which is also
	// the width of the screen image handed to Draw.
	screenW int

	paused   bool
	tickOnce bool
}

// New constructs a Game from the parsed configuration.
func New(cfg *Config) (*Game, error) {
	rc, err := cfg.RenderConfig()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	gen := dither.New(rc)
	size := core.Size{W: cfg.Width / scale, H: cfg.Height / scale}
	gen.Configure(size)
	return &Game{
		cfg:        cfg,
		gen:        gen,
		painter:    render.NewPainter(size),
		overlay:    ui.NewOverlay(),
		hud:        ui.NewHUD(gen, hudWidth),
		clock:      core.NewClock(core.DefaultTimeStep),
		scroll:     scroll.NewTracker(),
		background: bg,
		target:     dither.Center,
		size:       size,
		layout:     size,
		scale:      scale,
		screenW:    cfg.Width,
	}, nil
}

// Update handles input and advances the animation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update()

	if g.layout != g.size {
		g.resize(g.layout)
	}

	if !g.hud.Update(g.screenW) {
		g.updatePointer()
	}
	g.updateScroll()
	g.scroll.Advance()

	if !g.paused || g.tickOnce {
		g.gen.Tick(g.clock.Advance(), g.target, g.scroll.Offset())
		g.tickOnce = false
	}
	return nil
}

func (g *Game) resize(size core.Size) {
	g.size = size
	g.gen.Configure(size)
	g.painter.Resize(size)
	g.scrollY = min(g.scrollY, g.cfg.MaxScroll(size.H))
	g.scroll.Update(g.scrollY, float64(size.H))
	if g.cfg.Verbose {
		log.Printf("viewport resized to %dx%d", size.W, size.H)
	}
}

func (g *Game) updatePointer() {
	if g.size.Empty() {
		return
	}
	mx, my := ebiten.CursorPosition()
	g.target = dither.Point{
		X: float64(mx) / float64(g.size.W*g.scale),
		Y: float64(my) / float64(g.size.H*g.scale),
	}
}

func (g *Game) updateScroll() {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return
	}
	next := g.scrollY - wy*g.cfg.WheelStep
	next = max(0, min(next, g.cfg.MaxScroll(g.size.H)))
	if next == g.scrollY {
		return
	}
	g.scrollY = next
	g.scroll.Update(g.scrollY, float64(g.size.H))
}

// Draw renders the current frame over the page background.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Blit(screen, g.gen.Buffer(), g.scale)
	g.overlay.Draw(screen, g.stats())
	g.hud.Draw(screen)
}

func (g *Game) stats() ui.Stats {
	return ui.Stats{
		Ticks:    g.clock.Ticks(),
		TPS:      ebiten.ActualTPS(),
		Size:     g.size,
		Scale:    g.scale,
		Coverage: g.gen.Coverage(),
		Pointer:  g.gen.Pointer(),
		Target:   g.target,
		ScrollY:  g.scrollY,
		Offset:   g.gen.ScrollOffset(),
		Phase:    g.scroll.Phase().String(),
		Paused:   g.paused,
	}
}

// Layout records the window size; the generator is reconfigured on the next
// Update so that resizes never land in the middle of a tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layout = core.Size{W: outsideWidth / g.scale, H: outsideHeight / g.scale}
	g.screenW = outsideWidth
	return outsideWidth, outsideHeight
}
