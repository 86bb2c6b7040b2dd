// Package flappy implements the Flappy Bird simulation: the bird, the
// scrolling pipe pairs, scoring and the start/play/game-over/retry lifecycle.
// It is pure logic; hosts drive it with frame and spawn ticks and render it
// through core.Surface.
package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Bird is the player-controlled entity. X never changes after creation.
type Bird struct {
	X, Y float64 // Top-left corner
	W, H float64 // Hitbox size
}

// Rect returns the bird's collision rectangle.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// PipeKind tells the two halves of a gate apart. Only renderers care.
type PipeKind int

const (
	PipeTop PipeKind = iota
	PipeBottom
)

// Sprite returns the image used to draw a pipe of this kind.
func (k PipeKind) Sprite() core.Sprite {
	if k == PipeBottom {
		return core.SpriteBottomPipe
	}
	return core.SpriteTopPipe
}

// Pipe is one half of a gate. Y is fixed at creation; X decreases each tick.
type Pipe struct {
	Kind   PipeKind
	X, Y   float64
	W, H   float64
	Passed bool // Set once the bird's leading edge clears the trailing edge
}

// Rect returns the pipe's collision rectangle.
func (p Pipe) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
