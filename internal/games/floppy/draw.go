package floppy

import (
	"fmt"

	"github.com/vovakirdan/floppy-dot/internal/core"
)

// DrawKind selects how a DrawCmd is interpreted.
type DrawKind int

const (
	DrawClear   DrawKind = iota // Fill the whole frame with Color
	DrawCircle                  // Disc at Pos with Radius
	DrawRect                    // Rectangle at Pos with Size
	DrawText                    // Text with its top-left corner at Pos
	DrawOverlay                 // Translucent full-frame tint
)

// DrawCmd is one entry of the declarative draw list. Coordinates are world
// pixels; shells scale them to their surface.
type DrawCmd struct {
	Kind     DrawKind
	Pos      core.Vec2
	Size     core.Vec2
	Radius   float64
	Text     string
	FontSize float64
	Color    core.Color
}

// Menu layout as fractions of the window, measured on an 800x800 window.
var (
	titlePos     = core.Vec2{X: 110.0 / 800, Y: 100.0 / 800}
	promptPos    = core.Vec2{X: 120.0 / 800, Y: 400.0 / 800}
	highScorePos = core.Vec2{X: 300.0 / 800, Y: 275.0 / 800}
	scorePos     = core.Vec2{X: 0.5, Y: 50.0 / 800}
)

// Font sizes as fractions of the window height.
const (
	titleSize     = 85.0 / 800
	promptSize    = 50.0 / 800
	highScoreSize = 30.0 / 800
	scoreSize     = 80.0 / 800
)

// DrawList returns what the current state looks like.
func (g *Game) DrawList() []DrawCmd {
	switch g.state {
	case StateMenu:
		return g.drawMenu()
	case StatePaused:
		cmds := g.drawPlaying()
		return append(cmds, DrawCmd{
			Kind:  DrawOverlay,
			Size:  core.Vec2{X: g.cfg.Window.Width, Y: g.cfg.Window.Height},
			Color: core.ColorDarkGray,
		})
	default:
		return g.drawPlaying()
	}
}

func (g *Game) drawMenu() []DrawCmd {
	return []DrawCmd{
		{Kind: DrawClear, Color: core.ColorBlack},
		g.text("Floppy Dot!?", titlePos, titleSize),
		g.text("Press SPACE to Play", promptPos, promptSize),
		g.text(fmt.Sprintf("High Score: %d", g.highScore), highScorePos, highScoreSize),
	}
}

func (g *Game) drawPlaying() []DrawCmd {
	cmds := make([]DrawCmd, 0, 3+2*g.pillars.Len())
	cmds = append(cmds,
		DrawCmd{Kind: DrawClear, Color: core.ColorBlack},
		DrawCmd{
			Kind:   DrawCircle,
			Pos:    g.player.Position,
			Radius: g.player.Radius,
			Color:  core.ColorBrightWhite,
		},
	)

	for i := 0; i < g.pillars.Len(); i++ {
		for _, r := range []core.RectF{g.pillars.Lower(i), g.pillars.Upper(i)} {
			cmds = append(cmds, DrawCmd{
				Kind:  DrawRect,
				Pos:   core.Vec2{X: r.X, Y: r.Y},
				Size:  core.Vec2{X: r.W, Y: r.H},
				Color: core.ColorGray,
			})
		}
	}

	return append(cmds, g.text(fmt.Sprintf("%d", g.round.Score), scorePos, scoreSize))
}

// text places a string at a window-relative position.
func (g *Game) text(s string, at core.Vec2, size float64) DrawCmd {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	return DrawCmd{
		Kind:     DrawText,
		Pos:      core.Vec2{X: at.X * w, Y: at.Y * h},
		Text:     s,
		FontSize: size * h,
		Color:    core.ColorWhite,
	}
}
