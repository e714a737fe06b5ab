package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"ditherbg/internal/core"
)

// HalfBlock is drawn in every terminal cell: the foreground paints the upper
// pixel and the background paints the lower one.
const HalfBlock = '▀'

// TermSize returns the pixel viewport covered by a terminal of cols x rows.
func TermSize(cols, rows int) core.Size {
	if cols <= 0 || rows <= 0 {
		return core.Size{}
	}
	return core.Size{W: cols, H: rows * 2}
}

// TermPainter draws frame buffers onto a tcell screen, two pixels per cell.
type TermPainter struct {
	comp *Compositor
	bg   color.RGBA
}

// NewTermPainter returns a painter compositing over bg.
func NewTermPainter(bg color.RGBA) *TermPainter {
	return &TermPainter{comp: NewCompositor(bg), bg: color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}}
}

// CellColors returns the composited upper and lower pixel colors of terminal
// cell (col, row). Pixels outside the frame show the background.
func (p *TermPainter) CellColors(buf []byte, size core.Size, col, row int) (top, bottom color.RGBA) {
	return p.pixel(buf, size, col, row*2), p.pixel(buf, size, col, row*2+1)
}

func (p *TermPainter) pixel(buf []byte, size core.Size, x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		return p.bg
	}
	i := (y*size.W + x) * 4
	if i+3 >= len(buf) {
		return p.bg
	}
	return p.comp.Over(buf[i], buf[i+1], buf[i+2], buf[i+3])
}

// Draw writes every cell covering size onto the screen. It does not call Show.
func (p *TermPainter) Draw(s tcell.Screen, buf []byte, size core.Size) {
	rows := (size.H + 1) / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < size.W; col++ {
			top, bottom := p.CellColors(buf, size, col, row)
			style := tcell.StyleDefault.
				Foreground(tcellColor(top)).
				Background(tcellColor(bottom))
			s.SetContent(col, row, HalfBlock, nil, style)
		}
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
