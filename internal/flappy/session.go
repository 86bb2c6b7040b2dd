package flappy

import (
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/leaderboard"
)

// Session runs the game lifecycle on top of a State:
//
//	NotStarted --Start--> Running --crash--> GameOver --Retry--> Running
//
// Hosts call Tick on every frame and SpawnTick on every spawn interval
// regardless of phase; the session decides whether anything happens.
// A Session is not safe for concurrent use. Each host loop owns one.
type Session struct {
	state       *State
	board       *leaderboard.Board
	rng         *rand.Rand
	name        string
	defaultName string
	highScore   int
	events      []Event
}

// NewSession creates a session in the NotStarted phase.
func NewSession(cfg config.FlappyConfig, seed int64) *Session {
	defaultName := strings.TrimSpace(cfg.Player.DefaultName)
	if defaultName == "" {
		defaultName = "Player"
	}
	return &Session{
		state:       NewState(cfg),
		board:       leaderboard.New(cfg.Leaderboard.Size),
		rng:         rand.New(rand.NewSource(seed)),
		name:        defaultName,
		defaultName: defaultName,
	}
}

// Start begins the first round. Only the first call changes anything; it
// returns true exactly then, telling the host to start its schedulers.
// Every call hides the start control.
func (s *Session) Start() bool {
	s.emit(StartControlHiddenEvent{})
	if s.state.Phase != PhaseNotStarted {
		return false
	}
	s.state.Phase = PhaseRunning
	return true
}

// Started reports whether Start has taken effect.
func (s *Session) Started() bool {
	return s.state.Phase != PhaseNotStarted
}

// Tick is the frame callback. It steps the simulation while running and
// handles the transition to game over.
func (s *Session) Tick() StepResult {
	res := Step(s.state)
	if res.Passed > 0 {
		s.emit(ScoredEvent{Passed: res.Passed, Score: s.state.Score})
	}
	if res.Ended {
		s.finish(res.Reason)
	}
	return res
}

// SpawnTick is the spawn interval callback. It adds a gate while running and
// reports whether it did.
func (s *Session) SpawnTick() bool {
	if s.state.Phase != PhaseRunning {
		return false
	}
	return Spawn(s.state, s.rng.Float64())
}

// Jump applies the upward impulse, replacing the current velocity. It is
// ignored unless a round is running.
func (s *Session) Jump() bool {
	if s.state.Phase != PhaseRunning {
		return false
	}
	s.state.VelocityY = s.state.cfg.Physics.JumpImpulse
	s.emit(FlappedEvent{})
	return true
}

// Retry starts a new round after a game over. It is ignored in any other
// phase. Schedulers keep running; high score and leaderboard are kept.
func (s *Session) Retry() bool {
	if s.state.Phase != PhaseGameOver {
		return false
	}
	s.state.reset()
	s.emit(RetryControlEvent{Visible: false})
	return true
}

// Handle applies a logical input action and reports whether it had an effect.
// Start reports true only on the call that started the game.
func (s *Session) Handle(a core.Action) bool {
	switch a {
	case core.ActionJump:
		return s.Jump()
	case core.ActionRetry:
		return s.Retry()
	case core.ActionStart:
		return s.Start()
	default:
		return false
	}
}

// SetPlayerName sets the name recorded on the leaderboard. Blank names fall
// back to the default.
func (s *Session) SetPlayerName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultName
	}
	s.name = name
}

// PlayerName returns the current player name.
func (s *Session) PlayerName() string {
	return s.name
}

// State returns the live simulation state. Callers must not retain it across
// ticks on another goroutine.
func (s *Session) State() *State {
	return s.state
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Score returns the current round score.
func (s *Session) Score() float64 {
	return s.state.Score
}

// HighScore returns the best floored score seen by this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Leaderboard returns the ranked entries.
func (s *Session) Leaderboard() []leaderboard.Entry {
	return s.board.Entries()
}

// DrainEvents returns queued events in order and clears the queue.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// finish records a finished round.
func (s *Session) finish(reason EndReason) {
	score := s.state.Score
	floored := int(math.Floor(score))
	if score > float64(s.highScore) {
		s.highScore = floored
	}
	s.board.Record(s.name, floored)

	s.emit(LeaderboardChangedEvent{Entries: s.board.Entries()})
	s.emit(RetryControlEvent{Visible: true})
	s.emit(GameOverEvent{
		Name:      s.name,
		Score:     floored,
		HighScore: s.highScore,
		Reason:    reason,
	})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
