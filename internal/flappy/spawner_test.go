package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSpawnGateGeometry(t *testing.T) {
	for _, r := range []float64{0, 0.25, 0.5, 0.75} {
		s := runningState(t, nil)
		if !Spawn(s, r) {
			t.Fatalf("Spawn(%v) should succeed", r)
		}
		if s.Pipes.Len() != 2 {
			t.Fatalf("Spawn(%v) added %d pipes, expected 2", r, s.Pipes.Len())
		}

		top, bottom := s.Pipes.At(0), s.Pipes.At(1)
		pipeH := s.cfg.Pipes.Height

		if top.Kind != PipeTop || bottom.Kind != PipeBottom {
			t.Errorf("Spawn(%v): order = %v,%v, expected top then bottom", r, top.Kind, bottom.Kind)
		}
		if expected := -pipeH/4 - r*(pipeH/2); top.Y != expected {
			t.Errorf("Spawn(%v): top.Y = %v, expected %v", r, top.Y, expected)
		}
		if gap := bottom.Y - (top.Y + pipeH); gap != s.cfg.Board.Height/4 {
			t.Errorf("Spawn(%v): opening = %v, expected %v", r, gap, s.cfg.Board.Height/4)
		}
		if top.X != s.cfg.Board.Width || bottom.X != top.X {
			t.Errorf("Spawn(%v): x = %v,%v, expected both at %v", r, top.X, bottom.X, s.cfg.Board.Width)
		}
		if top.Passed || bottom.Passed {
			t.Errorf("Spawn(%v): new pipes must not be passed", r)
		}
	}
}

func TestSpawnOpeningForRandomOffsets(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := runningState(t, nil)
	for i := 0; i < 100; i++ {
		Spawn(s, rng.Float64())
	}

	for i := 0; i < s.Pipes.Len(); i += 2 {
		top, bottom := s.Pipes.At(i), s.Pipes.At(i+1)
		gap := bottom.Y - (top.Y + top.H)
		if math.Abs(gap-180) > 1e-9 {
			t.Fatalf("pair %d: opening = %v, expected 180", i/2, gap)
		}
		if top.Y > -128 || top.Y <= -384 {
			t.Fatalf("pair %d: top.Y = %v outside (-384, -128]", i/2, top.Y)
		}
	}
}

func TestSpawnOnlyWhileRunning(t *testing.T) {
	s := NewState(config.DefaultFlappyConfig())
	if Spawn(s, 0.5) {
		t.Error("Spawn() before start should do nothing")
	}

	s.Phase = PhaseGameOver
	if Spawn(s, 0.5) {
		t.Error("Spawn() after game over should do nothing")
	}
	if s.Pipes.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Pipes.Len())
	}
}
