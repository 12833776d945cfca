package floppy

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/floppy-dot/internal/config"
	"github.com/vovakirdan/floppy-dot/internal/core"
	"github.com/vovakirdan/floppy-dot/internal/storage"
)

const tick = 1.0 / 60

var errDiskFull = errors.New("disk full")

type memScores struct {
	score   int
	loadErr error
	saveErr error
	saves   []int
}

func (m *memScores) Load() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.score, nil
}

func (m *memScores) Save(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.score = score
	return nil
}

type memHistory struct {
	rounds []storage.Round
}

func (m *memHistory) RecordRound(r storage.Round) (int64, error) {
	m.rounds = append(m.rounds, r)
	return int64(len(m.rounds)), nil
}

type countingMusic struct {
	Silence
	plays   int
	updates int
}

func (m *countingMusic) Update() { m.updates++ }
func (m *countingMusic) Play()   { m.plays++; m.Silence.Play() }

func newTestGame(opts ...Option) *Game {
	return New(config.Default(), core.RuntimeConfig{TickRate: 60, Seed: 42}, opts...)
}

// playing returns a game that has already left the menu.
func playing(opts ...Option) *Game {
	g := newTestGame(opts...)
	g.Update(tick, core.NewInputFrame(core.ActionAny))
	return g
}

func newTestPillars() *Pillars {
	cfg := config.Default()
	return NewPillars(cfg.Pillars, cfg.Window, rand.New(rand.NewSource(7)))
}

func idle() core.InputFrame { return core.NewInputFrame() }
