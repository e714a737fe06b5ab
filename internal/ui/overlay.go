//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const lineSpacing = 16

// Overlay draws debugging visuals on top of the dithered background.
type Overlay struct {
	visible bool
	marker  color.RGBA
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{marker: color.RGBA{R: 230, G: 60, B: 60, A: 200}}
}

// Update toggles the overlay with the D key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the stats text and a crosshair at the smoothed pointer.
func (o *Overlay) Draw(screen *ebiten.Image, s Stats) {
	if !o.visible {
		return
	}
	for i, line := range s.Lines() {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*lineSpacing)
	}

	scale := float32(max(s.Scale, 1))
	px := float32(s.Pointer.X*float64(s.Size.W)) * scale
	py := float32(s.Pointer.Y*float64(s.Size.H)) * scale
	vector.StrokeLine(screen, px-6, py, px+6, py, 1, o.marker, false)
	vector.StrokeLine(screen, px, py-6, px, py+6, 1, o.marker, false)

	tx := float32(s.Target.X*float64(s.Size.W)) * scale
	ty := float32(s.Target.Y*float64(s.Size.H)) * scale
	vector.StrokeCircle(screen, tx, ty, 4, 1, o.marker, false)
}
