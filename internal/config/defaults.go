package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded YAML and is the last fallback if that fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Board: BoardConfig{
			Width:  480,
			Height: 720,
		},
		Bird: BirdConfig{
			Width:  68,
			Height: 48,
		},
		Pipes: PipesConfig{
			Width:  64,
			Height: 512,
		},
		Physics: PhysicsConfig{
			Gravity:     0.3,
			JumpImpulse: -6,
			ScrollSpeed: -4,
		},
		Timing: TimingConfig{
			SpawnInterval: 1500 * time.Millisecond,
		},
		Leaderboard: LeaderboardConfig{
			Size: 5,
		},
		Player: PlayerConfig{
			DefaultName: "Player",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
