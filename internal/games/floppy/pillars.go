package floppy

import (
	"math/rand"

	"github.com/vovakirdan/floppy-dot/internal/config"
	"github.com/vovakirdan/floppy-dot/internal/core"
)

// Pillar is one slot of the obstacle ring: an upper and a lower pillar
// around a gap.
type Pillar struct {
	X      float64 // Left edge
	GapY   float64 // Centre of the gap
	Passed bool    // Whether the player has cleared this pillar since it was placed
}

// Pillars is a fixed-size ring of pillar slots. Slots that scroll off the
// left edge are moved behind their predecessor instead of being reallocated,
// so the ring keeps a uniform spacing.
type Pillars struct {
	objects []Pillar
	stale   []bool // Scratch: slots that were off-screen at the start of a tick

	gap      float64
	distance float64
	width    float64
	height   float64
	windowW  float64
	windowH  float64

	rng *rand.Rand
}

// NewPillars creates a ring and places it at its initial position.
func NewPillars(cfg config.PillarsConfig, window config.WindowConfig, rng *rand.Rand) *Pillars {
	p := &Pillars{
		objects:  make([]Pillar, cfg.Count),
		stale:    make([]bool, cfg.Count),
		gap:      cfg.Gap,
		distance: cfg.Distance,
		width:    cfg.Width,
		height:   cfg.Height,
		windowW:  window.Width,
		windowH:  window.Height,
		rng:      rng,
	}
	p.Reset()
	return p
}

// Reset lines the slots up from the right window edge, distance apart,
// with fresh gaps.
func (p *Pillars) Reset() {
	x := p.windowW
	for i := range p.objects {
		p.objects[i] = Pillar{
			X:    x,
			GapY: p.randomGap(),
		}
		x += p.distance
	}
}

// Tick advances the ring by dt seconds at the given horizontal speed.
// Slots that were fully off-screen when the tick began are recycled instead
// of moved; recycling happens after the others advanced so a recycled slot
// ends the tick exactly distance behind its predecessor.
func (p *Pillars) Tick(dt, speed float64) {
	anchor := -1
	for i := range p.objects {
		p.stale[i] = p.offScreen(i)
		if !p.stale[i] {
			p.objects[i].X += speed * dt
			anchor = i
		}
	}
	if anchor < 0 {
		p.Reset()
		return
	}

	// Walk in ring order from a moved slot so a run of stale slots that
	// wraps past the end of the array is chained front to back.
	n := len(p.objects)
	for k := 1; k < n; k++ {
		i := (anchor + k) % n
		if p.stale[i] {
			p.Recycle(i)
		}
	}
}

// Recycle moves slot i behind its predecessor in ring order and draws a new gap.
func (p *Pillars) Recycle(i int) {
	prev := p.objects[p.Predecessor(i)]
	p.objects[i] = Pillar{
		X:    prev.X + p.distance,
		GapY: p.randomGap(),
	}
}

// Predecessor returns the index before i, wrapping around the ring.
func (p *Pillars) Predecessor(i int) int {
	n := len(p.objects)
	return (i - 1 + n) % n
}

// offScreen reports whether slot i is entirely left of the window.
func (p *Pillars) offScreen(i int) bool {
	return p.objects[i].X+p.width < 0
}

// randomGap draws a gap centre uniformly so the whole gap stays inside the window.
func (p *Pillars) randomGap() float64 {
	lo, hi := p.GapBounds()
	return lo + p.rng.Float64()*(hi-lo)
}

// GapBounds returns the valid range for gap centres.
func (p *Pillars) GapBounds() (lo, hi float64) {
	half := p.gap / 2
	return half, p.windowH - half
}

// Upper returns the rectangle of slot i's upper pillar.
func (p *Pillars) Upper(i int) core.RectF {
	o := p.objects[i]
	return core.RectF{X: o.X, Y: o.GapY - p.gap/2 - p.height, W: p.width, H: p.height}
}

// Lower returns the rectangle of slot i's lower pillar.
func (p *Pillars) Lower(i int) core.RectF {
	o := p.objects[i]
	return core.RectF{X: o.X, Y: o.GapY + p.gap/2, W: p.width, H: p.height}
}

// Len returns the number of slots.
func (p *Pillars) Len() int {
	return len(p.objects)
}

// At returns a copy of slot i.
func (p *Pillars) At(i int) Pillar {
	return p.objects[i]
}

// Slots returns a copy of all slots in ring order.
func (p *Pillars) Slots() []Pillar {
	out := make([]Pillar, len(p.objects))
	copy(out, p.objects)
	return out
}

// Distance returns the spacing between adjacent slots.
func (p *Pillars) Distance() float64 {
	return p.distance
}
