package floppy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/floppy-dot/internal/config"
)

func TestNewPlayerStartPosition(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg.Player, cfg.Window)

	assert.InDelta(t, 320.0, p.Position.X, 1e-9)
	assert.InDelta(t, 400.0, p.Position.Y, 1e-9)
	assert.Zero(t, p.Velocity)
	assert.Equal(t, 30.0, p.Radius)
}

func TestPlayerIntegrateGravity(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg.Player, cfg.Window)

	p.Integrate(600, tick, false)

	assert.InDelta(t, 10.0, p.Velocity, 1e-9)
	assert.InDelta(t, 400.0+10.0/60, p.Position.Y, 1e-9)
}

func TestPlayerIntegrateJumpReplacesVelocity(t *testing.T) {
	cfg := config.Default()

	for _, before := range []float64{0, 250, -120} {
		p := NewPlayer(cfg.Player, cfg.Window)
		p.Velocity = before

		p.Integrate(600, tick, true)

		require.InDelta(t, -300.0, p.Velocity, 1e-9, "prior velocity %v", before)
		assert.InDelta(t, 400.0-300.0/60, p.Position.Y, 1e-9)
	}
}

func TestPlayerOutOfBounds(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg.Player, cfg.Window)
	h := cfg.Window.Height

	tests := []struct {
		name string
		y    float64
		out  bool
	}{
		{"centre", 400, false},
		{"touching top slack", -topMargin - p.Radius, false},
		{"above top slack", -topMargin - p.Radius - 1, true},
		{"touching bottom slack", h + bottomMargin + p.Radius, false},
		{"below bottom slack", h + bottomMargin + p.Radius + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Position.Y = tt.y
			assert.Equal(t, tt.out, p.OutOfBounds(h))
		})
	}
}

func TestPlayerLeading(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg.Player, cfg.Window)
	assert.InDelta(t, 290.0, p.Leading(), 1e-9)
}
