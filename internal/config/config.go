// Package config provides YAML-based game configuration loading for the
// flappy game and its hosts.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Bird        BirdConfig        `yaml:"bird"`
	Pipes       PipesConfig       `yaml:"pipes"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Timing      TimingConfig      `yaml:"timing"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Player      PlayerConfig      `yaml:"player"`
}

// BoardConfig defines the play field in world pixels.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the bird hitbox. A zero X or Y means the default
// placement (width/8, height/2).
type BirdConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// PipesConfig defines the size of a single pipe.
type PipesConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick motion parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to the bird's velocity each tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set on jump (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Pipe velocity per tick (negative = left)
}

// TimingConfig defines the scheduler periods.
type TimingConfig struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// LeaderboardConfig defines the in-memory ranking.
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// PlayerConfig defines player defaults.
type PlayerConfig struct {
	DefaultName string `yaml:"default_name"`
}

// BirdStart returns the bird's initial position, applying the default
// placement for unset coordinates.
func (c FlappyConfig) BirdStart() (x, y float64) {
	x, y = c.Bird.X, c.Bird.Y
	if x == 0 {
		x = c.Board.Width / 8
	}
	if y == 0 {
		y = c.Board.Height / 2
	}
	return x, y
}

// Validate checks that the configuration can drive a game.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("config: board must have positive size: %w", ErrInvalid)
	case c.Bird.Width <= 0 || c.Bird.Height <= 0:
		return fmt.Errorf("config: bird must have positive size: %w", ErrInvalid)
	case c.Pipes.Width <= 0 || c.Pipes.Height <= 0:
		return fmt.Errorf("config: pipes must have positive size: %w", ErrInvalid)
	case c.Physics.ScrollSpeed >= 0:
		return fmt.Errorf("config: scroll_speed must be negative, got %v: %w", c.Physics.ScrollSpeed, ErrInvalid)
	case c.Timing.SpawnInterval <= 0:
		return fmt.Errorf("config: spawn_interval must be positive: %w", ErrInvalid)
	case c.Leaderboard.Size < 1:
		return fmt.Errorf("config: leaderboard size must be at least 1: %w", ErrInvalid)
	}
	return nil
}
