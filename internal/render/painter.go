//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ditherbg/internal/core"
)

// Painter uploads frame buffers into an ebiten image and draws it.
type Painter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for frames of the given size.
func NewPainter(size core.Size) *Painter {
	p := &Painter{}
	p.Resize(size)
	return p
}

// Resize reallocates the backing image when the frame size changes.
func (p *Painter) Resize(size core.Size) {
	if size == p.size && p.img != nil {
		return
	}
	p.size = size
	p.img = nil
	p.buf = nil
	if !size.Empty() {
		p.img = ebiten.NewImage(size.W, size.H)
		p.buf = make([]byte, size.Pixels()*4)
	}
}

// Blit uploads the straight-alpha frame buf and draws it onto dst scaled by
// scale. Buffers that do not match the painter size are skipped.
func (p *Painter) Blit(dst *ebiten.Image, buf []byte, scale int) {
	if p.img == nil || len(buf) != p.size.Pixels()*4 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	Premultiply(p.buf, buf)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() core.Size { return p.size }
