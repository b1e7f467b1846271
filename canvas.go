package dinopet

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Canvas is a mutable straight-alpha RGBA pixel buffer that one frame is
// composed onto. It is owned by whichever caller is producing the frame;
// there is no internal locking.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
}

// NewCanvas creates a fully transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Clear sets every pixel to the given color.
func (c *Canvas) Clear(col RGBA) {
	if col == (RGBA{}) {
		clear(c.Pix)
		return
	}
	for i := 0; i < len(c.Pix); i += 4 {
		c.Pix[i] = col.R
		c.Pix[i+1] = col.G
		c.Pix[i+2] = col.B
		c.Pix[i+3] = col.A
	}
}

// At returns the color at (x, y). Out-of-bounds coordinates return the zero
// RGBA.
func (c *Canvas) At(x, y int) RGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return RGBA{}
	}
	i := (y*c.Width + x) * 4
	return RGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: c.Pix[i+3]}
}

// NRGBA returns the canvas as a standard library image sharing the same
// pixel memory. Useful for handing the frame to display or encoding layers.
func (c *Canvas) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.Pix,
		Stride: c.Width * 4,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}

// SavePNG writes the canvas contents to a PNG file at the given path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dinopet: create %s: %w", path, err)
	}
	if err := png.Encode(f, c.NRGBA()); err != nil {
		f.Close()
		return fmt.Errorf("dinopet: encode %s: %w", path, err)
	}
	return f.Close()
}
