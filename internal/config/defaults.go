package config

import (
	_ "embed"
)

//go:embed defaults/floppydot.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching defaults/floppydot.yaml.
func Default() FloppyConfig {
	return FloppyConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 800,
			Title:  "Floppy Dot",
		},
		Physics: PhysicsConfig{
			Gravity: 600,
		},
		Player: PlayerConfig{
			Radius:      30,
			JumpImpulse: -300,
			XDivisor:    2.5,
		},
		Pillars: PillarsConfig{
			Count:    8,
			Gap:      200,
			Distance: 300,
			Width:    70,
			Height:   600,
			Speed:    -100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Storage: StorageConfig{
			HighScorePath: "~/.floppydot/highscore",
			DBPath:        "~/.floppydot/rounds.db",
		},
		Audio: AudioConfig{
			MusicPath: "resources/music.mp3",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
