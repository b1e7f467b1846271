package dinopet

// RGBA is a straight-alpha (non-premultiplied) 8-bit color. The zero value
// is fully transparent black.
type RGBA struct {
	R, G, B, A uint8
}

// Transparent is the default canvas clear color.
var Transparent = RGBA{}

// SkyBlue is the background the pet host clears to when no config is given.
var SkyBlue = RGBA{R: 135, G: 206, B: 235, A: 255}

// Rect is an axis-aligned rectangle in canvas coordinates. The coordinate
// system has its origin at the top-left, Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range. Used by the pet's wander logic
// to pick random targets.
type Range struct {
	Min, Max float64
}
