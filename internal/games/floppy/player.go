package floppy

import (
	"github.com/vovakirdan/floppy-dot/internal/config"
	"github.com/vovakirdan/floppy-dot/internal/core"
)

// Slack allowed past the window edges before the player counts as lost.
const (
	topMargin    = 20
	bottomMargin = 50
)

// Player is the falling dot.
type Player struct {
	Radius      float64
	JumpImpulse float64 // Velocity set on jump (negative = up)
	Velocity    float64 // Vertical velocity, px/s
	Position    core.Vec2
}

// NewPlayer places a fresh player at its start position.
func NewPlayer(cfg config.PlayerConfig, window config.WindowConfig) Player {
	return Player{
		Radius:      cfg.Radius,
		JumpImpulse: cfg.JumpImpulse,
		Position: core.Vec2{
			X: window.Width / cfg.XDivisor,
			Y: window.Height / 2,
		},
	}
}

// Integrate advances the player by dt seconds with explicit Euler.
// A jump replaces the velocity instead of adding gravity for this tick.
// Neither velocity nor position is clamped.
func (p *Player) Integrate(gravity, dt float64, jump bool) {
	if jump {
		p.Velocity = p.JumpImpulse
	} else {
		p.Velocity += gravity * dt
	}
	p.Position.Y += p.Velocity * dt
}

// OutOfBounds reports whether the player has left the window vertically.
func (p Player) OutOfBounds(windowHeight float64) bool {
	return p.Position.Y+p.Radius < -topMargin || p.Position.Y-p.Radius > windowHeight+bottomMargin
}

// Circle returns the player's collision shape.
func (p Player) Circle() core.Circle {
	return core.Circle{Center: p.Position, Radius: p.Radius}
}

// Leading returns the x-coordinate of the player's left edge.
func (p Player) Leading() float64 {
	return p.Position.X - p.Radius
}
