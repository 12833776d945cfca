package window

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/vovakirdan/floppy-dot/internal/games/floppy"
)

const sampleRate = 44100

// Music loops an mp3 file through the Ebitengine audio context.
type Music struct {
	player *audio.Player
}

// NewMusic loads path as a looping stream. When the file is missing or
// cannot be decoded the game runs silently.
func NewMusic(path string, logger *log.Logger) floppy.Music {
	m, err := openMusic(path)
	if err != nil {
		logger.Warn("music unavailable, playing silently", "path", path, "error", err)
		return &floppy.Silence{}
	}
	return m
}

func openMusic(path string) (*Music, error) {
	if path == "" {
		return nil, fmt.Errorf("window: no music file configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("window: cannot read music: %w", err)
	}

	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: cannot decode music: %w", err)
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("window: cannot create music player: %w", err)
	}
	return &Music{player: player}, nil
}

// Update implements floppy.Music. Ebitengine streams on its own goroutine.
func (m *Music) Update() {}

// Playing implements floppy.Music.
func (m *Music) Playing() bool { return m.player.IsPlaying() }

// Play implements floppy.Music.
func (m *Music) Play() { m.player.Play() }
