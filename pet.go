package dinopet

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

// Tuning constants for the pet simulation. Distances in canvas pixels,
// velocities in px/s.
const (
	arriveRadius   = 5.0   // within this distance of the target the pet stops
	velocityDamp   = 0.9   // per-update damping once arrived
	restitution    = 0.5   // ground bounce energy retention
	restVelocity   = 1.0   // vertical speeds below this snap to zero
	groundOffset   = 100.0 // distance of the ground line above the canvas bottom
	edgeMargin     = 50.0  // pet center stays this far inside the canvas
	feedHunger     = 20.0
	maxHunger      = 100.0
	feedHopSpeed   = 120.0 // upward kick on feed
	pulseFactor    = 1.15  // transient scale bump on feed/play
	pulseDuration  = 0.12  // seconds, each half of the pulse
	maxUpdateDelta = 0.1   // dt cap to avoid huge jumps after stalls
)

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Pet is the simulated creature: an AssetTree plus the movement, hunger,
// and animation-timing state the host loop drives. All Update logic is
// plain synchronous math; the Pet owns its Selection and mutates only its
// tree's Stats.
type Pet struct {
	Tree      *AssetTree
	Selection *Selection

	X, Y             float64
	TargetX, TargetY float64
	FlipH            bool
	Scale            float64

	velX, velY float64

	frameClock  float64
	hungerClock float64

	baseScale float64
	pulse     *TweenGroup // in-flight scale pulse
	pulseUp   bool        // true while the outgoing half is playing

	bounds Rect
	cfg    Config
}

// NewPet wraps a loaded tree in a simulation centered on the configured
// canvas. Each part's initial variant is its first-inserted one, matching
// what a variant dropdown would show first.
func NewPet(tree *AssetTree, cfg Config) *Pet {
	p := &Pet{
		Tree:      tree,
		Selection: NewSelection(),
		X:         float64(cfg.CanvasWidth) / 2,
		Y:         float64(cfg.CanvasHeight) / 2,
		Scale:     cfg.PetScale,
		baseScale: cfg.PetScale,
		bounds:    Rect{Width: float64(cfg.CanvasWidth), Height: float64(cfg.CanvasHeight)},
		cfg:       cfg,
	}
	p.TargetX, p.TargetY = p.X, p.Y
	for _, partName := range tree.PartNames() {
		if vs := tree.Variants(partName); len(vs) > 0 {
			p.Selection.Variants[partName] = vs[0]
		}
	}
	return p
}

// Update advances the simulation by dt seconds: target-seeking movement
// with facing flip, gravity and ground bounce, walk-cycle frame advance,
// hunger decay, and any in-flight tweens. dt is capped so a stalled host
// cannot teleport the pet.
func (p *Pet) Update(dt float64) {
	if dt > maxUpdateDelta {
		dt = maxUpdateDelta
	}

	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	dist := math.Hypot(dx, dy)

	if dist > arriveRadius {
		p.velX = dx / dist * p.cfg.MoveSpeed
		p.velY = dy / dist * p.cfg.MoveSpeed
		if dx > 0 {
			p.FlipH = false
		} else if dx < 0 {
			p.FlipH = true
		}
	} else {
		p.velX *= velocityDamp
		p.velY *= velocityDamp
	}

	p.X += p.velX * dt
	p.Y += p.velY * dt

	// Gravity feeds the feed-hop bounce; it is not full projectile motion.
	p.velY += p.cfg.Gravity * dt
	ground := p.bounds.Height - groundOffset
	if p.Y > ground {
		p.Y = ground
		p.velY *= -restitution
		if math.Abs(p.velY) < restVelocity {
			p.velY = 0
		}
	}

	p.X = clamp(p.X, edgeMargin, p.bounds.Width-edgeMargin)
	p.Y = clamp(p.Y, edgeMargin, p.bounds.Height-edgeMargin)

	// Walk cycle: frames advance only while moving, at the configured rate.
	if dist > arriveRadius {
		p.frameClock += dt * p.cfg.AnimationFPS
		frame := int(p.frameClock)
		for _, partName := range p.Tree.PartNames() {
			seq := p.Tree.Resolve(partName, p.Selection.Variants[partName])
			if seq != nil && seq.Len() > 1 {
				p.Selection.Frames[partName] = frame % seq.Len()
			}
		}
	}

	p.hungerClock += dt
	if p.hungerClock >= p.cfg.HungerInterval {
		p.hungerClock -= p.cfg.HungerInterval
		if h := p.Tree.Stats["hunger"]; h > 0 {
			p.Tree.Stats["hunger"] = math.Max(0, h-1)
		}
	}

	if p.pulse != nil {
		p.pulse.Update(float32(dt))
		if p.pulse.Done {
			if p.pulseUp {
				// Return half starts from the pulsed scale just reached.
				p.pulseUp = false
				p.pulse = TweenScale(p, p.baseScale, pulseDuration, ease.InQuad)
			} else {
				p.pulse = nil
			}
		}
	}
}

// Feed raises hunger by 20 (capped at 100) and acknowledges with a small
// upward hop and a scale pulse.
func (p *Pet) Feed() {
	h := p.Tree.Stats["hunger"]
	p.Tree.Stats["hunger"] = math.Min(maxHunger, h+feedHunger)
	p.velY = -feedHopSpeed
	p.startPulse()
}

// Play sends the pet trotting to a random spot well inside the canvas.
func (p *Pet) Play() {
	margin := groundOffset
	p.TargetX = (Range{Min: margin, Max: p.bounds.Width - margin}).Random()
	p.TargetY = (Range{Min: margin, Max: p.bounds.Height - margin}).Random()
	p.startPulse()
}

// MoveTo sets the target the pet walks toward.
func (p *Pet) MoveTo(x, y float64) {
	p.TargetX = x
	p.TargetY = y
}

// Moving reports whether the pet is still outside the arrive radius of its
// target.
func (p *Pet) Moving() bool {
	return math.Hypot(p.TargetX-p.X, p.TargetY-p.Y) > arriveRadius
}

// Hunger returns the current hunger stat.
func (p *Pet) Hunger() float64 {
	return p.Tree.Stats["hunger"]
}

// SetVariant selects the variant drawn for a part. Unknown variants are
// fine; rendering falls back through the tree's resolution chain.
func (p *Pet) SetVariant(partName string, v Variant) {
	p.Selection.Variants[partName] = v
}

// CycleVariant advances a part to its next available variant in insertion
// order, wrapping around. Parts with fewer than two variants are left
// alone.
func (p *Pet) CycleVariant(partName string) {
	vs := p.Tree.Variants(partName)
	if len(vs) < 2 {
		return
	}
	cur := p.Selection.Variants[partName]
	next := vs[0]
	for i, v := range vs {
		if v == cur {
			next = vs[(i+1)%len(vs)]
			break
		}
	}
	p.Selection.Variants[partName] = next
}

// Render composites the pet onto the canvas at its current position.
func (p *Pet) Render(c *Canvas) {
	Render(c, p.Tree, p.X, p.Y, p.Selection, p.FlipH, p.Scale)
}

// startPulse kicks off the two-stage scale pulse: up, then back to the base
// scale. A pulse already in flight is restarted.
func (p *Pet) startPulse() {
	p.pulse = TweenScale(p, p.baseScale*pulseFactor, pulseDuration, ease.OutQuad)
	p.pulseUp = true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
