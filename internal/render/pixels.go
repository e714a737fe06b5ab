package render

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"ditherbg/internal/core"
)

// NRGBA wraps a straight-alpha RGBA frame buffer as an image without copying.
// The buffer must hold size.W*size.H*4 bytes.
func NRGBA(buf []byte, size core.Size) *image.NRGBA {
	return &image.NRGBA{
		Pix:    buf,
		Stride: size.W * 4,
		Rect:   image.Rect(0, 0, size.W, size.H),
	}
}

// Compositor blends straight-alpha pixels over an opaque background. Frames
// carry a single particle color at one or two alpha levels, so the last
// result is cached.
type Compositor struct {
	bg colorful.Color

	lastIn  [4]uint8
	lastOut color.RGBA
	primed  bool
}

// NewCompositor returns a compositor for the given page background. The
// background alpha is ignored.
func NewCompositor(bg color.RGBA) *Compositor {
	c, _ := colorful.MakeColor(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
	return &Compositor{bg: c}
}

// Over returns the opaque color of pixel (r, g, b, a) drawn over the
// background.
func (c *Compositor) Over(r, g, b, a uint8) color.RGBA {
	in := [4]uint8{r, g, b, a}
	if c.primed && in == c.lastIn {
		return c.lastOut
	}
	fg := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	out := c.bg.BlendRgb(fg, float64(a)/255).Clamped()
	or, og, ob := out.RGB255()
	c.lastIn = in
	c.lastOut = color.RGBA{R: or, G: og, B: ob, A: 255}
	c.primed = true
	return c.lastOut
}

// Flatten composites the frame buffer over the background into dst, which must
// cover size. It mirrors how the browser shows the canvas above the page.
func (c *Compositor) Flatten(dst *image.RGBA, buf []byte, size core.Size) {
	n := size.Pixels()
	if len(buf) < n*4 {
		return
	}
	for y := 0; y < size.H; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < size.W; x++ {
			src := (y*size.W + x) * 4
			px := c.Over(buf[src], buf[src+1], buf[src+2], buf[src+3])
			i := x * 4
			row[i+0] = px.R
			row[i+1] = px.G
			row[i+2] = px.B
			row[i+3] = px.A
		}
	}
}

// FlattenImage allocates an opaque image of the frame over the background.
func (c *Compositor) FlattenImage(buf []byte, size core.Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	c.Flatten(img, buf, size)
	return img
}

// Premultiply converts straight-alpha pixels in src to premultiplied alpha in
// dst, which must be at least as long as src.
func Premultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		a := uint16(src[i+3])
		switch a {
		case 255:
			copy(dst[i:i+4], src[i:i+4])
		case 0:
			dst[i+0], dst[i+1], dst[i+2], dst[i+3] = 0, 0, 0, 0
		default:
			dst[i+0] = uint8((uint16(src[i+0])*a + 127) / 255)
			dst[i+1] = uint8((uint16(src[i+1])*a + 127) / 255)
			dst[i+2] = uint8((uint16(src[i+2])*a + 127) / 255)
			dst[i+3] = uint8(a)
		}
	}
}
