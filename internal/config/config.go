// Package config provides YAML-based game configuration loading and
// difficulty presets for Fruit Box.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// FruitBoxConfig contains all configuration for the Fruit Box game.
type FruitBoxConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Clock   ClockConfig   `yaml:"clock"`
	Effects EffectsConfig `yaml:"effects"`
}

// BoardConfig defines the canvas and the token grid, in board-local units.
type BoardConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Margin      float64 `yaml:"margin"`
	Cols        int     `yaml:"cols"`
	Rows        int     `yaml:"rows"`
	TokenRadius float64 `yaml:"token_radius"` // Upper bound; the real radius also depends on cell size
}

// CellW returns the width of one grid cell.
func (b BoardConfig) CellW() float64 {
	return (b.Width - b.Margin*2) / float64(b.Cols)
}

// CellH returns the height of one grid cell.
func (b BoardConfig) CellH() float64 {
	return (b.Height - b.Margin*2) / float64(b.Rows)
}

// Radius returns the token radius: 36% of the smaller cell side,
// at least 10 units and at most TokenRadius.
func (b BoardConfig) Radius() float64 {
	r := math.Max(10, math.Min(b.CellW(), b.CellH())*0.36)
	return math.Min(b.TokenRadius, r)
}

// ClockConfig defines the round timer.
type ClockConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// EffectsConfig defines the animation parameters. Ages are counted in frames.
type EffectsConfig struct {
	Ejected EjectedConfig `yaml:"ejected"`
	Toast   ToastConfig   `yaml:"toast"`
}

// EjectedConfig defines the flight of removed tokens.
type EjectedConfig struct {
	MaxAge       int     `yaml:"max_age"`
	Gravity      float64 `yaml:"gravity"`       // Added to vy every frame
	Drag         float64 `yaml:"drag"`          // vx multiplier every frame
	LaunchSpeed  float64 `yaml:"launch_speed"`  // Minimum upward speed
	LaunchSpread float64 `yaml:"launch_spread"` // Random extra upward speed
	Jitter       float64 `yaml:"jitter"`        // Horizontal speed range, centered on zero
	PopAmplitude float64 `yaml:"pop_amplitude"` // Peak extra scale at mid-life
}

// ToastConfig defines the floating score text.
type ToastConfig struct {
	MaxAge int     `yaml:"max_age"`
	Rise   float64 `yaml:"rise"` // Units moved up per frame
}

// Validate reports configuration values the game cannot run with.
func (c FruitBoxConfig) Validate() error {
	var errs []error
	b := c.Board
	if b.Cols <= 0 || b.Rows <= 0 {
		errs = append(errs, fmt.Errorf("board: cols and rows must be positive, got %dx%d", b.Cols, b.Rows))
	}
	if b.Width <= b.Margin*2 || b.Height <= b.Margin*2 {
		errs = append(errs, fmt.Errorf("board: %gx%g leaves no room inside margin %g", b.Width, b.Height, b.Margin))
	}
	if b.Margin < 0 {
		errs = append(errs, fmt.Errorf("board: negative margin %g", b.Margin))
	}
	if b.TokenRadius <= 0 {
		errs = append(errs, fmt.Errorf("board: token_radius must be positive, got %g", b.TokenRadius))
	}
	if c.Clock.Duration <= 0 {
		errs = append(errs, fmt.Errorf("clock: duration must be positive, got %s", c.Clock.Duration))
	}
	if c.Effects.Ejected.MaxAge <= 0 || c.Effects.Toast.MaxAge <= 0 {
		errs = append(errs, errors.New("effects: max_age must be positive"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named round length.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DurationForPreset returns the clock duration for a difficulty preset.
// Unknown presets return zero.
func DurationForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 3 * time.Minute
	case DifficultyNormal:
		return 2 * time.Minute
	case DifficultyHard:
		return time.Minute
	default:
		return 0
	}
}

// ParsePreset validates a preset name. The empty string means "keep the config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}
