package dinopet

// Image is an immutable straight-alpha RGBA pixel buffer plus an anchor
// point. Pix is row-major from the top-left, 4 bytes per pixel. The anchor,
// in source-pixel coordinates, is the point placed at the requested (x, y)
// when compositing; by default it is the geometric center.
//
// Images are never mutated in place. The flip and scale transforms return
// derived copies.
type Image struct {
	Pix     []byte
	Width   int
	Height  int
	AnchorX float64
	AnchorY float64
}

// NewImage creates a fully transparent image with the anchor at the center.
func NewImage(width, height int) *Image {
	return &Image{
		Pix:     make([]byte, width*height*4),
		Width:   width,
		Height:  height,
		AnchorX: float64(width) / 2,
		AnchorY: float64(height) / 2,
	}
}

// At returns the color at (x, y). Out-of-bounds coordinates return the zero
// RGBA.
func (m *Image) At(x, y int) RGBA {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return RGBA{}
	}
	i := (y*m.Width + x) * 4
	return RGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]}
}

// SetAt writes the color at (x, y). Out-of-bounds coordinates are ignored.
// Intended for building images programmatically (tests, placeholders);
// loaded assets are treated as immutable.
func (m *Image) SetAt(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	i := (y*m.Width + x) * 4
	m.Pix[i] = c.R
	m.Pix[i+1] = c.G
	m.Pix[i+2] = c.B
	m.Pix[i+3] = c.A
}

// FlipH returns a copy mirrored along the vertical axis. The anchor is
// carried over unchanged: placement math always works in the source
// image's own coordinates.
func (m *Image) FlipH() *Image {
	out := &Image{
		Pix:     make([]byte, len(m.Pix)),
		Width:   m.Width,
		Height:  m.Height,
		AnchorX: m.AnchorX,
		AnchorY: m.AnchorY,
	}
	for y := 0; y < m.Height; y++ {
		row := y * m.Width * 4
		for x := 0; x < m.Width; x++ {
			src := row + x*4
			dst := row + (m.Width-1-x)*4
			copy(out.Pix[dst:dst+4], m.Pix[src:src+4])
		}
	}
	return out
}

// FlipV returns a copy mirrored along the horizontal axis. The anchor is
// carried over unchanged.
func (m *Image) FlipV() *Image {
	out := &Image{
		Pix:     make([]byte, len(m.Pix)),
		Width:   m.Width,
		Height:  m.Height,
		AnchorX: m.AnchorX,
		AnchorY: m.AnchorY,
	}
	rowLen := m.Width * 4
	for y := 0; y < m.Height; y++ {
		src := y * rowLen
		dst := (m.Height - 1 - y) * rowLen
		copy(out.Pix[dst:dst+rowLen], m.Pix[src:src+rowLen])
	}
	return out
}

// Scaled returns a copy resized by the given uniform factor using
// nearest-neighbor sampling: output pixel (i, j) reads source pixel
// (floor(i/scale), floor(j/scale)). The anchor scales with the image so it
// keeps marking the same point. A factor that truncates either dimension to
// zero yields an empty image.
func (m *Image) Scaled(scale float64) *Image {
	w := int(float64(m.Width) * scale)
	h := int(float64(m.Height) * scale)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	out := &Image{
		Pix:     make([]byte, w*h*4),
		Width:   w,
		Height:  h,
		AnchorX: m.AnchorX * scale,
		AnchorY: m.AnchorY * scale,
	}
	if w == 0 || h == 0 {
		return out
	}

	xIdx := make([]int, w)
	for i := range xIdx {
		xIdx[i] = int(float64(i) / scale)
	}
	for j := 0; j < h; j++ {
		sy := int(float64(j) / scale)
		srcRow := sy * m.Width * 4
		dstRow := j * w * 4
		for i := 0; i < w; i++ {
			src := srcRow + xIdx[i]*4
			dst := dstRow + i*4
			copy(out.Pix[dst:dst+4], m.Pix[src:src+4])
		}
	}
	return out
}
