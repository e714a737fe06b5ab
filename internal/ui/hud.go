//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"ditherbg/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a parameter panel anchored to the right edge of the window.
type HUD struct {
	target  core.ParameterProvider
	visible bool
	panel   panelLayout

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided target and panel width. Controls
// are taken from the target when it implements core.ParameterControlsProvider.
func NewHUD(target core.ParameterProvider, width int) *HUD {
	var controls []core.ParameterControl
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		controls = provider.ParameterControls()
	}
	h := &HUD{target: target, panel: newPanelLayout(controls, width)}
	if setter, ok := target.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := target.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update refreshes control values and handles clicks on the +/- buttons.
// screenWidth must be the width of the image later passed to Draw. It reports
// whether the click was consumed by the panel.
func (h *HUD) Update(screenWidth int) bool {
	if !h.Visible() {
		return false
	}
	h.refreshControlValues()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	i, dir, inside := h.panel.hit(screenWidth, image.Pt(mx, my))
	if i >= 0 && h.panel.controls[i].hasValue {
		h.applyAdjustment(&h.panel.controls[i], dir)
	}
	return inside
}

func (h *HUD) refreshControlValues() {
	snap := h.target.Parameters()
	for i := range h.panel.controls {
		state := &h.panel.controls[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		state.hasValue = err == nil
		state.value = parsed
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	ctrl := state.control
	target := ctrl.Clamp(state.value + float64(direction)*ctrl.Step)
	if math.Abs(target-state.value) < 1e-9 {
		return
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil && h.intSetter.SetIntParameter(ctrl.Key, int(math.Round(target))) {
			state.value = math.Round(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(ctrl.Key, target) {
			state.value = target
		}
	}
}

// Draw paints the panel onto the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() || h.panel.width <= 0 {
		return
	}
	screenWidth := screen.Bounds().Dx()
	ox := h.panel.origin(screenWidth)
	vector.DrawFilledRect(screen, float32(ox), 0, float32(h.panel.width), float32(screen.Bounds().Dy()), color.RGBA{R: 16, G: 16, B: 20, A: 220}, false)

	face := basicfont.Face7x13
	text.Draw(screen, "Dither Controls", face, ox+panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.panel.controls) == 0 {
		text.Draw(screen, "No adjustable parameters", face, ox+panelPadding, panelPadding+headerBaseline+lineHeight, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.panel.controls {
		state := &h.panel.controls[i]
		minus, plus := h.panel.buttons(i, screenWidth)
		labelY := state.top + labelBaseline
		text.Draw(screen, state.control.Label, face, ox+panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := "--"
		if state.hasValue {
			value = formatValue(state.control, state.value)
		}
		valueWidth := text.BoundString(face, value).Dx()
		text.Draw(screen, value, face, minus.Min.X-buttonGap-valueWidth, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		h.drawButton(screen, minus, "-", state.hasValue && state.value > state.control.Min)
		h.drawButton(screen, plus, "+", state.hasValue && state.value < state.control.Max)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}
