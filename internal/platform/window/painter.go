package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/floppy-dot/internal/games/floppy"
)

// Size of one glyph of the Ebitengine debug font.
const (
	glyphW = 6
	glyphH = 16
)

// maxCachedLabels bounds the label cache; the score changes every few seconds.
const maxCachedLabels = 64

// painter draws a draw list onto an Ebitengine image. Text is printed with
// the debug font into a cached image and scaled to the requested size.
type painter struct {
	labels map[string]*ebiten.Image
}

func newPainter() *painter {
	return &painter{labels: make(map[string]*ebiten.Image)}
}

func (p *painter) paint(screen *ebiten.Image, cmds []floppy.DrawCmd) {
	for _, c := range cmds {
		col := c.Color.NRGBA()
		switch c.Kind {
		case floppy.DrawClear:
			screen.Fill(col)
		case floppy.DrawCircle:
			vector.DrawFilledCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Radius), col, true)
		case floppy.DrawRect:
			vector.DrawFilledRect(screen, float32(c.Pos.X), float32(c.Pos.Y), float32(c.Size.X), float32(c.Size.Y), col, false)
		case floppy.DrawOverlay:
			vector.DrawFilledRect(screen, 0, 0, float32(c.Size.X), float32(c.Size.Y), col, false)
		case floppy.DrawText:
			p.text(screen, c)
		}
	}
}

func (p *painter) text(screen *ebiten.Image, c floppy.DrawCmd) {
	label := p.label(c.Text)

	op := &ebiten.DrawImageOptions{}
	s := textScale(c.FontSize)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(c.Pos.X, c.Pos.Y)
	op.ColorScale.ScaleWithColor(c.Color.NRGBA())
	screen.DrawImage(label, op)
}

// label returns a white-on-transparent image of s.
func (p *painter) label(s string) *ebiten.Image {
	if img, ok := p.labels[s]; ok {
		return img
	}
	if len(p.labels) >= maxCachedLabels {
		for k, img := range p.labels {
			img.Deallocate()
			delete(p.labels, k)
		}
	}

	w := max(len([]rune(s))*glyphW, 1)
	img := ebiten.NewImage(w, glyphH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	p.labels[s] = img
	return img
}

// textScale maps a font size in pixels to a scale for the debug font.
func textScale(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1
	}
	return fontSize / glyphH
}
