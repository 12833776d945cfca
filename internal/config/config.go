// Package config provides YAML/TOML game configuration loading and
// difficulty management for Floppy Dot.
package config

import (
	"errors"
	"fmt"
)

// FloppyConfig contains all tunables of the game.
type FloppyConfig struct {
	Window     WindowConfig     `yaml:"window" toml:"window"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Pillars    PillarsConfig    `yaml:"pillars" toml:"pillars"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage" toml:"storage"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
}

// WindowConfig defines the size of the world in pixels.
type WindowConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Title  string  `yaml:"title" toml:"title"`
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity" toml:"gravity"` // Downward acceleration, px/s²
}

// PlayerConfig defines the falling dot.
type PlayerConfig struct {
	Radius      float64 `yaml:"radius" toml:"radius"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // Velocity set on jump (negative = up)
	XDivisor    float64 `yaml:"x_divisor" toml:"x_divisor"`       // Player x = window width / XDivisor
}

// PillarsConfig defines the obstacle ring.
type PillarsConfig struct {
	Count    int     `yaml:"count" toml:"count"`
	Gap      float64 `yaml:"gap" toml:"gap"`           // Vertical opening between upper and lower pillar
	Distance float64 `yaml:"distance" toml:"distance"` // Horizontal distance between adjacent pillars
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	Speed    float64 `yaml:"speed" toml:"speed"` // Horizontal velocity, px/s (negative = left)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to the speed factor at max difficulty
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	HighScorePath string `yaml:"highscore_path" toml:"highscore_path"`
	DBPath        string `yaml:"db_path" toml:"db_path"`
}

// AudioConfig defines the background music asset.
type AudioConfig struct {
	MusicPath string `yaml:"music_path" toml:"music_path"`
}

// Validate reports every setting that would make the game unplayable.
func (c FloppyConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Player.Radius <= 0 {
		errs = append(errs, fmt.Errorf("player radius must be positive, got %v", c.Player.Radius))
	}
	if c.Player.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("jump impulse must be negative, got %v", c.Player.JumpImpulse))
	}
	if c.Player.XDivisor <= 0 {
		errs = append(errs, fmt.Errorf("player x divisor must be positive, got %v", c.Player.XDivisor))
	}
	if c.Pillars.Count < 2 {
		errs = append(errs, fmt.Errorf("pillar count must be at least 2, got %d", c.Pillars.Count))
	}
	if c.Pillars.Gap <= 0 || c.Pillars.Gap >= c.Window.Height {
		errs = append(errs, fmt.Errorf("pillar gap must be in (0, %v), got %v", c.Window.Height, c.Pillars.Gap))
	}
	if c.Pillars.Width <= 0 || c.Pillars.Height <= 0 {
		errs = append(errs, fmt.Errorf("pillar size must be positive, got %vx%v", c.Pillars.Width, c.Pillars.Height))
	}
	if c.Pillars.Distance <= c.Pillars.Width {
		errs = append(errs, fmt.Errorf("pillar distance %v must exceed pillar width %v", c.Pillars.Distance, c.Pillars.Width))
	}
	if c.Pillars.Speed >= 0 {
		errs = append(errs, fmt.Errorf("pillar speed must be negative, got %v", c.Pillars.Speed))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means DifficultyFixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
