package floppy

import "github.com/vovakirdan/floppy-dot/internal/core"

// State is the active screen of the game.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// stateHandler runs one tick of a state.
type stateHandler func(g *Game, in core.InputFrame)

// handlers is the dispatch table used by Game.Update.
var handlers = map[State]stateHandler{
	StateMenu:    (*Game).updateMenu,
	StatePlaying: (*Game).updatePlaying,
	StatePaused:  (*Game).updatePaused,
}

// updateMenu waits for any key or click.
func (g *Game) updateMenu(in core.InputFrame) {
	if in.Has(core.ActionAny) {
		g.state = StatePlaying
	}
}

// updatePlaying runs the simulation.
func (g *Game) updatePlaying(in core.InputFrame) {
	if g.round.GameOver {
		g.endRound()
		return
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return
	}

	if !g.music.Playing() {
		g.music.Play()
	}

	g.round.Ticks++

	g.player.Integrate(g.cfg.Physics.Gravity, g.dt, in.Has(core.ActionJump))
	if g.player.OutOfBounds(g.cfg.Window.Height) {
		g.round.GameOver = true
	}

	speed := g.difficulty.Speed(g.cfg.Pillars.Speed, g.round.Score, g.round.Ticks)
	g.pillars.Tick(g.dt, speed)

	if g.pillars.Collides(g.player) {
		g.round.GameOver = true
	}
	g.round.Score += g.pillars.MarkPassed(g.player)
}

// updatePaused only listens for the pause toggle; nothing else moves.
func (g *Game) updatePaused(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.state = StatePlaying
	}
}
