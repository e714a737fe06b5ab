package core

// Size describes the dimensions of a viewport in pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Pixels returns the number of pixels covered by the size.
func (s Size) Pixels() int {
	if s.Empty() {
		return 0
	}
	return s.W * s.H
}

// Blocks returns how many stride-sized blocks are needed to cover the size
// along each axis. Partial blocks at the right and bottom edges count.
func (s Size) Blocks(stride int) Size {
	if stride < 1 {
		stride = 1
	}
	if s.Empty() {
		return Size{}
	}
	return Size{W: (s.W + stride - 1) / stride, H: (s.H + stride - 1) / stride}
}
