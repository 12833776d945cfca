package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/floppy-dot/internal/core"
)

var jumpKeys = map[ebiten.Key]bool{
	ebiten.KeySpace:   true,
	ebiten.KeyArrowUp: true,
	ebiten.KeyW:       true,
}

// pollInput collects the key and button edges of the current tick.
func pollInput() core.InputFrame {
	keys := inpututil.AppendJustPressedKeys(nil)
	click := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return mapInput(keys, click)
}

// mapInput turns pressed keys and a primary click into actions.
// Any key or click counts as ActionAny.
func mapInput(keys []ebiten.Key, click bool) core.InputFrame {
	frame := core.NewInputFrame()
	if len(keys) > 0 || click {
		frame.Set(core.ActionAny)
	}
	if click {
		frame.Set(core.ActionJump)
	}
	for _, k := range keys {
		switch {
		case jumpKeys[k]:
			frame.Set(core.ActionJump)
		case k == ebiten.KeyP:
			frame.Set(core.ActionPause)
		}
	}
	return frame
}
