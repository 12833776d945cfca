package tui

import (
	"math"

	"github.com/vovakirdan/floppy-dot/internal/core"
	"github.com/vovakirdan/floppy-dot/internal/games/floppy"
)

// Glyphs used for filled shapes.
const (
	dotRune    = '●'
	pillarRune = '█'
	shadeRune  = '░'
)

// Rasterize draws cmds into dst, scaling the world (in pixels) to the
// screen's cells. A cell is filled when its centre lies inside the shape.
// Text is placed at the scaled position but keeps one glyph per cell.
func Rasterize(cmds []floppy.DrawCmd, world core.Vec2, dst *core.Screen) {
	sx := float64(dst.Width()) / world.X
	sy := float64(dst.Height()) / world.Y

	for _, c := range cmds {
		switch c.Kind {
		case floppy.DrawClear:
			dst.Clear()
		case floppy.DrawRect:
			r := core.RectF{X: c.Pos.X, Y: c.Pos.Y, W: c.Size.X, H: c.Size.Y}
			dst.DrawRect(cellSpan(r, sx, sy), pillarRune, c.Color)
		case floppy.DrawCircle:
			drawDisc(dst, c.Pos, c.Radius, sx, sy, c.Color)
		case floppy.DrawText:
			x := int(math.Round(c.Pos.X * sx))
			y := int(math.Round(c.Pos.Y * sy))
			dst.DrawText(x, y, c.Text, c.Color)
		case floppy.DrawOverlay:
			dst.Tint(shadeRune, c.Color)
		}
	}
}

// cellSpan returns the cells whose centres fall inside r.
func cellSpan(r core.RectF, sx, sy float64) core.Rect {
	x0 := int(math.Ceil(r.X*sx - 0.5))
	y0 := int(math.Ceil(r.Y*sy - 0.5))
	x1 := int(math.Ceil(r.Right()*sx - 0.5))
	y1 := int(math.Ceil(r.Bottom()*sy - 0.5))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func drawDisc(dst *core.Screen, center core.Vec2, radius, sx, sy float64, c core.Color) {
	box := cellSpan(core.RectF{
		X: center.X - radius,
		Y: center.Y - radius,
		W: 2 * radius,
		H: 2 * radius,
	}, sx, sy)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dx := (float64(x)+0.5)/sx - center.X
			dy := (float64(y)+0.5)/sy - center.Y
			if dx*dx+dy*dy <= radius*radius {
				dst.Set(x, y, dotRune, c)
			}
		}
	}

	// Keep tiny dots visible on coarse screens.
	dst.Set(int(center.X*sx), int(center.Y*sy), dotRune, c)
}
