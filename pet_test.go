package dinopet

import (
	"math"
	"testing"
)

func petFixture() *Pet {
	tree := NewAssetTree("test", "")
	tree.AddFrame(PartBody, DefaultVariant, solidImage(2, 2, green))
	tree.AddFrame(PartLegs, DefaultVariant, solidImage(2, 2, red))
	tree.AddFrame(PartLegs, DefaultVariant, solidImage(2, 2, blue))
	tree.AddFrame(PartHead, NamedVariant("happy"), solidImage(2, 2, red))
	tree.AddFrame(PartHead, NamedVariant("grumpy"), solidImage(2, 2, blue))
	return NewPet(tree, DefaultConfig())
}

func TestPetWalksTowardTarget(t *testing.T) {
	p := petFixture()
	startX := p.X

	p.MoveTo(p.X+200, p.Y)
	for i := 0; i < 5; i++ {
		p.Update(0.1)
	}

	if p.X <= startX {
		t.Errorf("X = %v, want > %v after walking right", p.X, startX)
	}
	if p.FlipH {
		t.Error("walking right must face right (no flip)")
	}

	p.MoveTo(p.X-200, p.Y)
	p.Update(0.1)
	if !p.FlipH {
		t.Error("walking left must flip")
	}
}

func TestPetStopsInsideBounds(t *testing.T) {
	p := petFixture()
	p.MoveTo(-1000, -1000)
	for i := 0; i < 200; i++ {
		p.Update(0.1)
	}
	if p.X < edgeMargin || p.Y < edgeMargin {
		t.Errorf("pet escaped bounds: (%v, %v)", p.X, p.Y)
	}
}

func TestPetWalkCycleAdvancesFrames(t *testing.T) {
	p := petFixture()
	p.MoveTo(p.X+300, p.Y)

	p.Update(0.1) // frameClock += 0.1 * 10fps = 1
	if got := p.Selection.Frames[PartLegs]; got != 1 {
		t.Errorf("legs frame = %d, want 1", got)
	}
	// Single-frame parts are left alone.
	if got := p.Selection.Frames[PartBody]; got != 0 {
		t.Errorf("body frame = %d, want 0", got)
	}

	p.Update(0.1) // wraps back around the 2-frame sequence
	if got := p.Selection.Frames[PartLegs]; got != 0 {
		t.Errorf("legs frame = %d, want 0 after wrap", got)
	}
}

func TestPetHungerDecay(t *testing.T) {
	tree := NewAssetTree("test", "")
	tree.AddFrame(PartBody, DefaultVariant, solidImage(1, 1, green))
	cfg := DefaultConfig()
	cfg.HungerInterval = 0.2
	p := NewPet(tree, cfg)

	start := p.Hunger()
	for i := 0; i < 3; i++ {
		p.Update(0.1)
	}
	if got := p.Hunger(); got != start-1 {
		t.Errorf("hunger = %v, want %v after one interval", got, start-1)
	}
}

func TestPetFeed(t *testing.T) {
	p := petFixture()

	p.Feed()
	if got := p.Hunger(); got != startingHunger+feedHunger {
		t.Errorf("hunger = %v, want %v", got, float64(startingHunger+feedHunger))
	}
	if p.velY >= 0 {
		t.Error("feed should kick the pet upward")
	}

	// The acknowledgment pulse briefly scales the pet up, then settles back.
	p.Update(0.05)
	if p.Scale <= p.baseScale {
		t.Errorf("scale = %v, want > base during pulse", p.Scale)
	}
	for i := 0; i < 20; i++ {
		p.Update(0.1)
	}
	if math.Abs(p.Scale-p.baseScale) > 0.01 {
		t.Errorf("scale = %v, want back at base %v", p.Scale, p.baseScale)
	}

	// Hunger caps at 100.
	p.Feed()
	p.Feed()
	p.Feed()
	if got := p.Hunger(); got != maxHunger {
		t.Errorf("hunger = %v, want capped at %v", got, float64(maxHunger))
	}
}

func TestPetPlayPicksBoundedTarget(t *testing.T) {
	p := petFixture()
	for i := 0; i < 20; i++ {
		p.Play()
		if p.TargetX < groundOffset || p.TargetX > p.bounds.Width-groundOffset ||
			p.TargetY < groundOffset || p.TargetY > p.bounds.Height-groundOffset {
			t.Fatalf("play target (%v, %v) outside safe area", p.TargetX, p.TargetY)
		}
	}
}

func TestPetCycleVariant(t *testing.T) {
	p := petFixture()

	if got := p.Selection.Variants[PartHead]; got != NamedVariant("happy") {
		t.Fatalf("initial head variant = %v, want first-inserted happy", got)
	}
	p.CycleVariant(PartHead)
	if got := p.Selection.Variants[PartHead]; got != NamedVariant("grumpy") {
		t.Errorf("after cycle = %v, want grumpy", got)
	}
	p.CycleVariant(PartHead)
	if got := p.Selection.Variants[PartHead]; got != NamedVariant("happy") {
		t.Errorf("after second cycle = %v, want happy again", got)
	}

	// Single-variant parts do not cycle.
	p.CycleVariant(PartBody)
	if got := p.Selection.Variants[PartBody]; got != DefaultVariant {
		t.Errorf("body variant = %v, want default", got)
	}
}

func TestPetRender(t *testing.T) {
	p := petFixture()
	c := NewCanvas(600, 400)
	p.Render(c)

	// The head's first-inserted variant draws on top at the pet's center.
	if got := c.At(int(p.X)-1, int(p.Y)-1); got != red {
		t.Errorf("pixel at pet center = %v, want the happy head's red", got)
	}
}
