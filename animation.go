package dinopet

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenMove, TweenScale) and call Update(dt)
// each frame; values are written straight into the target fields.
//
// There is no global animation manager; the Pet (or any other owner) calls
// Update itself.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the current values to
// the target fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenMove creates a TweenGroup that animates the pet's X and Y to the
// given target coordinates over the specified duration using the easing
// function. It bypasses the pet's own target-seeking physics, so it is
// meant for scripted moves while the pet is otherwise at rest.
func TweenMove(p *Pet, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(p.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(toY), duration, fn)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	return g
}

// TweenScale creates a TweenGroup that animates the pet's render scale to
// the given value over the specified duration using the easing function.
func TweenScale(p *Pet, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(p.Scale), float32(to), duration, fn)
	g.fields[0] = &p.Scale
	return g
}
