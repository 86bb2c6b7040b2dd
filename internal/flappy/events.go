package flappy

import "github.com/vovakirdan/tui-flappy/internal/leaderboard"

// Event is something a host may want to react to: UI control changes,
// leaderboard updates, sound cues. Sessions queue events until drained.
type Event interface {
	flappyEvent()
}

// StartControlHiddenEvent asks the host to hide its start control.
type StartControlHiddenEvent struct{}

func (StartControlHiddenEvent) flappyEvent() {}

// RetryControlEvent shows or hides the host's retry control.
type RetryControlEvent struct {
	Visible bool
}

func (RetryControlEvent) flappyEvent() {}

// LeaderboardChangedEvent carries the ranked entries after a game over.
type LeaderboardChangedEvent struct {
	Entries []leaderboard.Entry
}

func (LeaderboardChangedEvent) flappyEvent() {}

// FlappedEvent is sent when a jump was applied.
type FlappedEvent struct{}

func (FlappedEvent) flappyEvent() {}

// ScoredEvent is sent on ticks where the bird passed at least one pipe.
type ScoredEvent struct {
	Passed int
	Score  float64
}

func (ScoredEvent) flappyEvent() {}

// GameOverEvent is sent once per round when it ends.
type GameOverEvent struct {
	Name      string
	Score     int // Floored round score, as recorded
	HighScore int
	Reason    EndReason
}

func (GameOverEvent) flappyEvent() {}
