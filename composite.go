package dinopet

// Composite blends an image onto the canvas so that the image's anchor
// lands at (x, y), applying horizontal/vertical mirroring and uniform
// nearest-neighbor scaling first. Rotation is deliberately not offered.
//
// The blend is the standard source-over operator, computed per pixel on
// straight-alpha channels in float32 and truncated back to 8 bits:
//
//	rgb_out = rgb_src*a_s + rgb_dst*(1 - a_s)
//	a_out   = a_s + a_d*(1 - a_s)
//
// The exact arithmetic (float32 intermediates, truncation toward zero) is
// part of the contract; visual-diff tests depend on bit-identical output.
//
// Source and destination rectangles are clipped to their mutual overlap
// with the canvas; an image placed fully outside the canvas is a silent
// no-op.
func Composite(dst *Canvas, img *Image, x, y float64, flipH, flipV bool, scale float64) {
	if dst == nil || img == nil {
		return
	}

	src := img
	if flipH {
		src = src.FlipH()
	}
	if flipV {
		src = src.FlipV()
	}
	if scale != 1.0 {
		src = src.Scaled(scale)
	}

	// Anchor-relative top-left corner, truncated to canvas pixels.
	dstX := int(x - src.AnchorX)
	dstY := int(y - src.AnchorY)

	// Overlap of the source rect with the canvas.
	sx0, sy0 := 0, 0
	if dstX < 0 {
		sx0 = -dstX
	}
	if dstY < 0 {
		sy0 = -dstY
	}
	sx1 := src.Width
	if m := dst.Width - dstX; m < sx1 {
		sx1 = m
	}
	sy1 := src.Height
	if m := dst.Height - dstY; m < sy1 {
		sy1 = m
	}
	if sx1 <= sx0 || sy1 <= sy0 {
		return
	}

	dx0 := dstX + sx0
	dy0 := dstY + sy0

	for sy := sy0; sy < sy1; sy++ {
		srcRow := sy * src.Width * 4
		dstRow := ((dy0 + sy - sy0) * dst.Width) * 4
		for sx := sx0; sx < sx1; sx++ {
			si := srcRow + sx*4
			di := dstRow + (dx0+sx-sx0)*4
			blendPixel(dst.Pix[di:di+4:di+4], src.Pix[si:si+4:si+4])
		}
	}
}

// blendPixel applies source-over for one pixel. d and s are 4-byte RGBA
// slices; d is written in place.
func blendPixel(d, s []byte) {
	as := float32(s[3]) / 255
	ad := float32(d[3]) / 255

	d[0] = uint8(float32(s[0])*as + float32(d[0])*(1-as))
	d[1] = uint8(float32(s[1])*as + float32(d[1])*(1-as))
	d[2] = uint8(float32(s[2])*as + float32(d[2])*(1-as))
	d[3] = uint8((as + ad*(1-as)) * 255)
}
