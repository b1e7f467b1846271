package dinopet

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	_ "image/png"

	_ "golang.org/x/image/webp"
)

// DecodeFile reads an image file and returns it as an Image with the anchor
// at its center. PNG and WebP are recognized; any registered image.Decode
// format works. Decode failures wrap ErrDecode.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dinopet: open %s: %w", path, ErrDecode)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dinopet: decode %s: %v: %w", path, err, ErrDecode)
	}
	return fromStdImage(src), nil
}

// fromStdImage converts any image.Image into a straight-alpha Image.
func fromStdImage(src image.Image) *Image {
	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)

	out := NewImage(b.Dx(), b.Dy())
	// NRGBA stride may exceed the row width; copy row by row.
	rowLen := out.Width * 4
	for y := 0; y < out.Height; y++ {
		copy(out.Pix[y*rowLen:(y+1)*rowLen], nrgba.Pix[y*nrgba.Stride:])
	}
	return out
}

// isImageFile reports whether the path has a supported raster extension.
func isImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".webp":
		return true
	}
	return false
}
