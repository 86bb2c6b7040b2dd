package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EndReason explains why a round ended.
type EndReason int

const (
	EndNone        EndReason = iota
	EndOutOfBounds           // Fell below the board
	EndCollision             // Hit a pipe
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndOutOfBounds:
		return "out of bounds"
	case EndCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// StepResult describes what a single tick did.
type StepResult struct {
	Ran    bool      // False when the round was not running
	Passed int       // Pipes passed this tick
	Ended  bool      // The round ended this tick
	Reason EndReason // First cause of the end, if Ended
}

// Step advances a running round by one frame: gravity, pipe scrolling,
// pass-detection scoring, collision and pruning. It does nothing unless the
// round is running.
func Step(s *State) StepResult {
	if s.Phase != PhaseRunning {
		return StepResult{}
	}
	res := StepResult{Ran: true}
	s.Ticks++

	// The ceiling clamp leaves velocity alone, so it keeps growing while
	// the bird is pinned at y = 0.
	s.VelocityY += s.cfg.Physics.Gravity
	s.Bird.Y = math.Max(s.Bird.Y+s.VelocityY, 0)

	if s.Bird.Y > s.cfg.Board.Height {
		res.end(EndOutOfBounds)
	}

	bird := s.Bird.Rect()
	for _, p := range s.Pipes.All() {
		p.X += s.cfg.Physics.ScrollSpeed

		if !p.Passed && s.Bird.X > p.X+p.W {
			p.Passed = true
			s.Score += ScorePerPipe
			res.Passed++
		}

		if core.Overlaps(bird, p.Rect()) {
			res.end(EndCollision)
		}
	}

	// Pipes leave in creation order, so the front is always the first out.
	for front, ok := s.Pipes.Front(); ok && front.X < -s.cfg.Pipes.Width; front, ok = s.Pipes.Front() {
		s.Pipes.PopFront()
	}

	if res.Ended {
		s.Phase = PhaseGameOver
	}
	return res
}

func (r *StepResult) end(reason EndReason) {
	if r.Ended {
		return
	}
	r.Ended = true
	r.Reason = reason
}
