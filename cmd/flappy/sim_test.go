package main

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func TestSimulateWithoutAutopilotFalls(t *testing.T) {
	var seen []simRound
	report, err := simulate(context.Background(), simOptions{
		Game:     config.DefaultFlappyConfig(),
		TickRate: 60,
		Seed:     1,
		Frames:   100,
		Name:     "sim",
		OnRound:  func(r simRound) { seen = append(seen, r) },
	})
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if report.Frames != 100 {
		t.Errorf("Frames = %d, expected 100", report.Frames)
	}
	// Falling from y=360 leaves the 720px board on the 49th tick.
	if len(report.Rounds) != 2 {
		t.Fatalf("Rounds = %+v, expected 2", report.Rounds)
	}
	for i, r := range report.Rounds {
		if r.Number != i+1 || r.Frames != 49 || r.Reason != flappy.EndOutOfBounds || r.Score != 0 {
			t.Errorf("round %d = %+v, expected out of bounds after 49 frames", i, r)
		}
	}
	if len(seen) != len(report.Rounds) {
		t.Errorf("OnRound called %d times, expected %d", len(seen), len(report.Rounds))
	}
	if len(report.Leaderboard) != 2 || report.Leaderboard[0].Name != "sim" {
		t.Errorf("Leaderboard = %+v", report.Leaderboard)
	}
}

func TestSimulateAutopilotOutlastsFreeFall(t *testing.T) {
	opts := simOptions{
		Game:     config.DefaultFlappyConfig(),
		TickRate: 60,
		Seed:     7,
		Frames:   1800,
	}
	idle, err := simulate(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	opts.Autopilot = true
	bot, err := simulate(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	if len(bot.Rounds) >= len(idle.Rounds) {
		t.Errorf("autopilot lost %d rounds, free fall lost %d", len(bot.Rounds), len(idle.Rounds))
	}
	if bot.Score < 10 && bot.HighScore < 10 {
		t.Errorf("autopilot scored %v (best %d), expected at least 10", bot.Score, bot.HighScore)
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := simulate(ctx, simOptions{
		Game:   config.DefaultFlappyConfig(),
		Frames: 10,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("simulate() error = %v, expected context.Canceled", err)
	}
	if report.Frames != 0 {
		t.Errorf("Frames = %d, expected 0", report.Frames)
	}
}
