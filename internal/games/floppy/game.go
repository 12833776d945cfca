// Package floppy implements Floppy Dot: a dot falls under gravity and has to
// slip through the gaps of a stream of pillars. The package is pure game
// logic; shells feed it elapsed time and input edges and draw its draw list.
package floppy

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floppy-dot/internal/config"
	"github.com/vovakirdan/floppy-dot/internal/core"
	"github.com/vovakirdan/floppy-dot/internal/storage"
)

// HighScoreStore persists the best score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// RoundRecorder keeps the history of finished rounds.
type RoundRecorder interface {
	RecordRound(r storage.Round) (int64, error)
}

// Round is the state of the round in progress.
type Round struct {
	Score    int
	GameOver bool
	Ticks    int
}

// Game owns every piece of game state: the state machine, the player, the
// pillar ring, the current round and the high score.
type Game struct {
	cfg        config.FloppyConfig
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	state   State
	player  Player
	pillars *Pillars
	round   Round
	dt      float64 // Elapsed seconds of the current tick

	highScore int
	scores    HighScoreStore
	history   RoundRecorder
	music     Music
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithHighScoreStore loads the high score from s once and saves new records to it.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(g *Game) { g.scores = s }
}

// WithHistory records every finished round with a non-zero score.
func WithHistory(r RoundRecorder) Option {
	return func(g *Game) { g.history = r }
}

// WithMusic sets the background stream.
func WithMusic(m Music) Option {
	return func(g *Game) { g.music = m }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithPreset records the difficulty preset name in the round history.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) { g.preset = p }
}

// New creates a game in the menu state.
// A zero seed picks one from the clock.
func New(cfg config.FloppyConfig, rt core.RuntimeConfig, opts ...Option) *Game {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:        cfg,
		preset:     config.DifficultyFixed,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		state:      StateMenu,
		music:      &Silence{},
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.player = NewPlayer(cfg.Player, cfg.Window)
	g.pillars = NewPillars(cfg.Pillars, cfg.Window, g.rng)
	g.loadHighScore()

	return g
}

// loadHighScore reads the persisted high score once. Failures leave the
// high score at 0 and in memory only.
func (g *Game) loadHighScore() {
	if g.scores == nil {
		return
	}
	score, err := g.scores.Load()
	if err != nil {
		g.logger.Warn("high score unavailable, starting from 0", "error", err)
		return
	}
	g.highScore = score
}

// Update advances the game by one frame of dt seconds.
func (g *Game) Update(dt float64, in core.InputFrame) {
	g.dt = dt
	g.music.Update()
	if h, ok := handlers[g.state]; ok {
		h(g, in)
	}
}

// endRound persists a new record, returns to the menu and resets the round.
func (g *Game) endRound() {
	final := g.round
	g.logger.Info("round over", "score", final.Score, "ticks", final.Ticks, "high_score", g.highScore)

	if final.Score > g.highScore {
		g.highScore = final.Score
		g.logger.Info("new high score", "score", final.Score)
		if g.scores != nil {
			if err := g.scores.Save(final.Score); err != nil {
				g.logger.Warn("could not persist high score", "error", err)
			}
		}
	}

	if g.history != nil && final.Score > 0 {
		round := storage.Round{Score: final.Score, Ticks: final.Ticks, Difficulty: string(g.preset)}
		if _, err := g.history.RecordRound(round); err != nil {
			g.logger.Warn("could not record round", "error", err)
		}
	}

	g.state = StateMenu
	g.softReset()
}

// softReset puts the player and the pillars back and clears the round.
func (g *Game) softReset() {
	g.round = Round{}
	g.player = NewPlayer(g.cfg.Player, g.cfg.Window)
	g.pillars.Reset()
}

// State returns the active state.
func (g *Game) State() State {
	return g.state
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Pillars returns the obstacle ring. Callers must not mutate it.
func (g *Game) Pillars() *Pillars {
	return g.pillars
}

// Round returns the round in progress.
func (g *Game) Round() Round {
	return g.round
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FloppyConfig {
	return g.cfg
}

// Snapshot returns the shell-facing summary of the game.
func (g *Game) Snapshot() core.GameState {
	return core.GameState{
		Score:     g.round.Score,
		HighScore: g.highScore,
		InMenu:    g.state == StateMenu,
		Paused:    g.state == StatePaused,
		GameOver:  g.round.GameOver,
	}
}
