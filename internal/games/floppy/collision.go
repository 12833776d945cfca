package floppy

// Collides reports whether the player overlaps any pillar.
// Every slot is tested; the results are OR-ed together.
func (p *Pillars) Collides(pl Player) bool {
	c := pl.Circle()
	hit := false
	for i := range p.objects {
		hit = c.Intersects(p.Upper(i)) || hit
		hit = c.Intersects(p.Lower(i)) || hit
	}
	return hit
}

// MarkPassed flags every slot whose trailing edge is now behind the player's
// leading edge and returns how many flipped this call. A slot flips at most
// once until it is recycled.
func (p *Pillars) MarkPassed(pl Player) int {
	passed := 0
	for i := range p.objects {
		o := &p.objects[i]
		if !o.Passed && o.X+p.width < pl.Leading() {
			o.Passed = true
			passed++
		}
	}
	return passed
}
