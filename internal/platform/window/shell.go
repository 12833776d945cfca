// Package window is the desktop shell: an Ebitengine window that draws the
// game with vector shapes and plays the background music.
package window

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/floppy-dot/internal/games/floppy"
	"github.com/vovakirdan/floppy-dot/internal/registry"
)

func init() {
	registry.Register(ShellName, func() registry.Shell { return Shell{} })
}

// ShellName is the registry name of the window shell.
const ShellName = "window"

// Shell plays the game in a native window.
type Shell struct{}

// Name implements registry.Shell.
func (Shell) Name() string { return ShellName }

// Title implements registry.Shell.
func (Shell) Title() string { return "Desktop window (Ebitengine)" }

// Run implements registry.Shell.
func (Shell) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	music := NewMusic(opts.MusicPath, logger)
	game := opts.NewGame(floppy.WithMusic(music))
	window := game.Config().Window

	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowSize(int(window.Width), int(window.Height))
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetTPS(tps)
	// Keep Update running while unfocused so the frame clock can be held.
	ebiten.SetRunnableOnUnfocused(true)

	return ebiten.RunGame(newRunner(ctx, game, tps))
}

// runner adapts a floppy.Game to ebiten.Game.
type runner struct {
	ctx      context.Context
	game     *floppy.Game
	tps      int
	lastTick time.Time
	painter  *painter
}

func newRunner(ctx context.Context, game *floppy.Game, tps int) *runner {
	return &runner{
		ctx:     ctx,
		game:    game,
		tps:     tps,
		painter: newPainter(),
	}
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	if r.ctx.Err() != nil {
		return ebiten.Termination
	}

	dt, ok := r.frameDelta(time.Now(), ebiten.IsFocused())
	if !ok {
		return nil
	}
	r.game.Update(dt, pollInput())
	return nil
}

// frameDelta returns the seconds since the previous frame. While the window
// is unfocused the game is held and the clock restarts, so the first frame
// after refocus advances by one nominal tick.
func (r *runner) frameDelta(now time.Time, focused bool) (float64, bool) {
	if !focused {
		r.lastTick = time.Time{}
		return 0, false
	}
	dt := 1 / float64(r.tps)
	if !r.lastTick.IsZero() {
		dt = now.Sub(r.lastTick).Seconds()
	}
	r.lastTick = now
	return dt, true
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	r.painter.paint(screen, r.game.DrawList())
}

// Layout implements ebiten.Game. The logical screen is the world, so draw
// commands need no scaling.
func (r *runner) Layout(_, _ int) (int, int) {
	w := r.game.Config().Window
	return int(w.Width), int(w.Height)
}

var _ ebiten.Game = (*runner)(nil)
