package floppy

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/floppy-dot/internal/config"
	"github.com/vovakirdan/floppy-dot/internal/core"
)

func TestNewStartsInMenu(t *testing.T) {
	g := newTestGame()

	assert.Equal(t, StateMenu, g.State())
	assert.Zero(t, g.Round().Score)
	assert.False(t, g.Round().GameOver)
	assert.True(t, g.Snapshot().InMenu)
}

func TestMenuWaitsForAnyInput(t *testing.T) {
	g := newTestGame()
	start := g.Player()

	for i := 0; i < 30; i++ {
		g.Update(tick, idle())
	}
	g.Update(tick, core.NewInputFrame(core.ActionJump))
	assert.Equal(t, StateMenu, g.State(), "jump alone is not a menu key")
	assert.Equal(t, start, g.Player(), "nothing moves in the menu")

	g.Update(tick, core.NewInputFrame(core.ActionAny))
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, start, g.Player(), "the menu tick does not simulate")
}

func TestPlayingAppliesGravity(t *testing.T) {
	g := playing()

	g.Update(tick, idle())

	p := g.Player()
	assert.InDelta(t, 10.0, p.Velocity, 1e-9)
	assert.InDelta(t, 400.0+10.0/60, p.Position.Y, 1e-9)
	assert.Equal(t, 1, g.Round().Ticks)
}

func TestPlayingJump(t *testing.T) {
	g := playing()
	for i := 0; i < 10; i++ {
		g.Update(tick, idle())
	}
	y := g.Player().Position.Y

	g.Update(tick, core.NewInputFrame(core.ActionAny, core.ActionJump))

	assert.InDelta(t, -300.0, g.Player().Velocity, 1e-9)
	assert.InDelta(t, y-300.0/60, g.Player().Position.Y, 1e-9)
}

func TestPauseFreezesEverything(t *testing.T) {
	g := playing()
	g.Update(tick, idle())

	g.Update(tick, core.NewInputFrame(core.ActionPause))
	require.Equal(t, StatePaused, g.State())
	assert.True(t, g.Snapshot().Paused)

	player, slots, round := g.Player(), g.Pillars().Slots(), g.Round()
	for i := 0; i < 100; i++ {
		g.Update(tick, core.NewInputFrame(core.ActionJump, core.ActionAny))
	}
	assert.Equal(t, player, g.Player())
	assert.Equal(t, slots, g.Pillars().Slots())
	assert.Equal(t, round, g.Round())

	g.Update(tick, core.NewInputFrame(core.ActionPause))
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, player, g.Player(), "unpausing does not simulate")
}

func TestPauseTickDoesNotSimulate(t *testing.T) {
	g := playing()
	g.Update(tick, idle())
	before := g.Player()

	g.Update(tick, core.NewInputFrame(core.ActionPause))

	assert.Equal(t, before, g.Player())
	assert.Equal(t, 1, g.Round().Ticks)
}

func TestOutOfBoundsEndsRound(t *testing.T) {
	g := playing()
	g.player.Position.Y = 1000

	g.Update(tick, idle())
	assert.True(t, g.Round().GameOver)
	assert.Equal(t, StatePlaying, g.State())

	g.Update(tick, idle())
	assert.Equal(t, StateMenu, g.State())
	assert.False(t, g.Round().GameOver)
}

func TestCollisionEndsRoundAndLatches(t *testing.T) {
	g := playing()
	g.pillars.objects[0] = Pillar{X: 300, GapY: 100}

	g.Update(tick, idle())
	require.True(t, g.Round().GameOver, "overlap ends the round on the same tick")
	assert.True(t, g.Snapshot().GameOver)

	g.Update(tick, idle())
	assert.Equal(t, StateMenu, g.State())
	assert.False(t, g.Round().GameOver, "returning to the menu clears game over")
	assert.Equal(t, NewPlayer(g.cfg.Player, g.cfg.Window), g.Player())
	assert.InDelta(t, 800.0, g.Pillars().At(0).X, 1e-9)
}

func TestPassingPillarScores(t *testing.T) {
	g := playing()
	g.pillars.objects[0].X = 221 // trailing edge 291, behind the player after one tick

	g.Update(tick, idle())
	assert.Equal(t, 1, g.Round().Score)
	assert.False(t, g.Round().GameOver)

	for i := 0; i < 5; i++ {
		g.Update(tick, core.NewInputFrame(core.ActionJump))
	}
	assert.Equal(t, 1, g.Round().Score, "a pillar is worth one point")
}

func TestScoreResetsOnReturnToMenu(t *testing.T) {
	g := playing()
	g.round.Score = 4
	g.round.GameOver = true

	g.Update(tick, idle())

	assert.Zero(t, g.Round().Score)
	assert.Equal(t, 4, g.HighScore())
}

func TestHighScorePersistence(t *testing.T) {
	store := &memScores{score: 10}
	g := newTestGame(WithHighScoreStore(store))
	require.Equal(t, 10, g.HighScore())

	endRoundWith := func(score int) {
		g.state = StatePlaying
		g.round = Round{Score: score, GameOver: true}
		g.Update(tick, idle())
	}

	endRoundWith(12)
	assert.Equal(t, 12, g.HighScore())
	assert.Equal(t, 12, store.score)

	endRoundWith(5)
	assert.Equal(t, 12, g.HighScore())
	assert.Equal(t, []int{12}, store.saves, "lower scores are not written")

	endRoundWith(12)
	assert.Equal(t, []int{12}, store.saves, "ties are not written")
}

func TestHighScoreLoadFailureStartsAtZero(t *testing.T) {
	var buf bytes.Buffer
	store := &memScores{score: 99, loadErr: errDiskFull}

	g := newTestGame(WithHighScoreStore(store), WithLogger(log.New(&buf)))

	assert.Zero(t, g.HighScore())
	assert.Contains(t, buf.String(), "disk full")
}

func TestHighScoreSaveFailureKeepsMemoryValue(t *testing.T) {
	var buf bytes.Buffer
	store := &memScores{saveErr: errDiskFull}
	g := playing(WithHighScoreStore(store), WithLogger(log.New(&buf)))

	g.round = Round{Score: 3, GameOver: true}
	g.Update(tick, idle())

	assert.Equal(t, 3, g.HighScore())
	assert.Equal(t, StateMenu, g.State())
	assert.Contains(t, buf.String(), "could not persist high score")
}

func TestRoundHistory(t *testing.T) {
	hist := &memHistory{}
	g := playing(WithHistory(hist), WithPreset(config.DifficultyHard))

	g.round = Round{Score: 0, GameOver: true, Ticks: 20}
	g.Update(tick, idle())
	assert.Empty(t, hist.rounds, "empty rounds are not recorded")

	g.Update(tick, core.NewInputFrame(core.ActionAny))
	g.round = Round{Score: 7, GameOver: true, Ticks: 900}
	g.Update(tick, idle())

	require.Len(t, hist.rounds, 1)
	assert.Equal(t, 7, hist.rounds[0].Score)
	assert.Equal(t, 900, hist.rounds[0].Ticks)
	assert.Equal(t, "hard", hist.rounds[0].Difficulty)
}

func TestMusicStartsWhenPlaying(t *testing.T) {
	m := &countingMusic{}
	g := newTestGame(WithMusic(m))

	g.Update(tick, idle())
	assert.Zero(t, m.plays, "menu is silent")
	assert.Equal(t, 1, m.updates)

	g.Update(tick, core.NewInputFrame(core.ActionAny))
	for i := 0; i < 10; i++ {
		g.Update(tick, idle())
	}

	assert.Equal(t, 1, m.plays, "music is started once and then loops")
	assert.Equal(t, 12, m.updates)
}

func TestDifficultySpeedsUpPillars(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = 1
	cfg.Difficulty.Scaling.SpeedMultiplier = 1

	g := New(cfg, core.RuntimeConfig{Seed: 42})
	g.Update(tick, core.NewInputFrame(core.ActionAny))
	x := g.Pillars().At(0).X

	g.Update(tick, idle())

	assert.InDelta(t, x-200.0/60, g.Pillars().At(0).X, 1e-9)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame(core.ActionAny)
		if i%20 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() *Game {
		g := newTestGame()
		for _, in := range inputs {
			g.Update(tick, in)
		}
		return g
	}

	g1, g2 := run(), run()
	assert.Equal(t, g1.Player(), g2.Player())
	assert.Equal(t, g1.Pillars().Slots(), g2.Pillars().Slots())
	assert.Equal(t, g1.Round(), g2.Round())
	assert.Equal(t, g1.State(), g2.State())
}
