package ui

import (
	"image"
	"math"
	"strconv"

	"ditherbg/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

type hudControlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// panelLayout places the HUD controls in panel-local coordinates. Hit testing
// and drawing both go through buttons so they agree for any screen width.
type panelLayout struct {
	width    int
	controls []hudControlState
}

func newPanelLayout(controls []core.ParameterControl, width int) panelLayout {
	p := panelLayout{width: max(width, 0)}
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls = append(p.controls, hudControlState{
			control:   ctrl,
			top:       top,
			minusRect: minusRect,
			plusRect:  plusRect,
		})
	}
	return p
}

// origin is the screen x of the panel's left edge.
func (p *panelLayout) origin(screenWidth int) int { return screenWidth - p.width }

// buttons returns the screen-space -/+ rectangles of control i.
func (p *panelLayout) buttons(i, screenWidth int) (minus, plus image.Rectangle) {
	off := image.Pt(p.origin(screenWidth), 0)
	return p.controls[i].minusRect.Add(off), p.controls[i].plusRect.Add(off)
}

// hit reports the control and direction (-1 or +1) under pt. inside is true
// whenever pt lies over the panel, button or not.
func (p *panelLayout) hit(screenWidth int, pt image.Point) (index, dir int, inside bool) {
	if p.width <= 0 || pt.X < p.origin(screenWidth) {
		return -1, 0, false
	}
	for i := range p.controls {
		minus, plus := p.buttons(i, screenWidth)
		switch {
		case pt.In(minus):
			return i, -1, true
		case pt.In(plus):
			return i, 1, true
		}
	}
	return -1, 0, true
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}
