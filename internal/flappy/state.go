package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// ScorePerPipe is awarded for each pipe the bird passes, so a full gate is
// worth one point.
const ScorePerPipe = 0.5

// State is everything the simulation mutates. Step and Spawn take it
// explicitly; Session owns one.
type State struct {
	Phase     Phase
	Bird      Bird
	VelocityY float64
	Pipes     PipeQueue
	Score     float64
	Ticks     uint64 // Frames simulated in the current round

	cfg    config.FlappyConfig
	startY float64
}

// NewState creates a not-yet-started state for the given configuration.
func NewState(cfg config.FlappyConfig) *State {
	x, y := cfg.BirdStart()
	return &State{
		Phase: PhaseNotStarted,
		Bird: Bird{
			X: x,
			Y: y,
			W: cfg.Bird.Width,
			H: cfg.Bird.Height,
		},
		cfg:    cfg,
		startY: y,
	}
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.FlappyConfig {
	return s.cfg
}

// StartY returns the bird's initial height.
func (s *State) StartY() float64 {
	return s.startY
}

// reset returns the round to its initial layout and resumes play.
func (s *State) reset() {
	s.Bird.Y = s.startY
	s.VelocityY = 0
	s.Pipes.Clear()
	s.Score = 0
	s.Ticks = 0
	s.Phase = PhaseRunning
}
