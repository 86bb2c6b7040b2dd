package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIntervalInertUntilStarted(t *testing.T) {
	iv := NewInterval(100 * time.Millisecond)

	if n := iv.Advance(time.Second); n != 0 {
		t.Errorf("Advance() on stopped interval = %d, expected 0", n)
	}
	if !iv.Start() {
		t.Error("first Start() should report true")
	}
	if iv.Start() {
		t.Error("second Start() should report false")
	}
	if !iv.Running() {
		t.Error("Running() should be true after Start")
	}
}

func TestIntervalAdvance(t *testing.T) {
	tests := []struct {
		name     string
		steps    []time.Duration
		expected []int
	}{
		{"exact period", []time.Duration{100 * time.Millisecond}, []int{1}},
		{"accumulates", []time.Duration{40 * time.Millisecond, 40 * time.Millisecond, 40 * time.Millisecond}, []int{0, 0, 1}},
		{"multiple periods", []time.Duration{350 * time.Millisecond}, []int{3}},
		{"carries remainder", []time.Duration{150 * time.Millisecond, 50 * time.Millisecond}, []int{1, 1}},
		{"ignores negative", []time.Duration{-time.Second, 100 * time.Millisecond}, []int{0, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			iv := NewInterval(100 * time.Millisecond)
			iv.Start()
			total := 0
			for i, d := range tc.steps {
				n := iv.Advance(d)
				if n != tc.expected[i] {
					t.Errorf("Advance(%v) #%d = %d, expected %d", d, i, n, tc.expected[i])
				}
				total += n
			}
			if iv.Fired() != uint64(total) {
				t.Errorf("Fired() = %d, expected %d", iv.Fired(), total)
			}
		})
	}
}

func TestIntervalNonPositivePeriod(t *testing.T) {
	iv := NewInterval(0)
	if iv.Period() <= 0 {
		t.Errorf("Period() = %v, expected a positive period", iv.Period())
	}
}

func TestLoopSpawnCadence(t *testing.T) {
	frames, spawns := 0, 0
	l := NewLoop(60, 1500*time.Millisecond, func() { frames++ }, func() { spawns++ })

	// Nothing spawns before the interval is started.
	for i := 0; i < 120; i++ {
		l.Step()
	}
	if spawns != 0 {
		t.Fatalf("spawns = %d before StartSpawns, expected 0", spawns)
	}

	l.StartSpawns()
	if l.StartSpawns() {
		t.Error("second StartSpawns() should report false")
	}

	// 60 fps for 3 seconds: two 1.5s periods, give or take frame rounding.
	for i := 0; i < 181; i++ {
		l.Step()
	}
	if frames != 301 {
		t.Errorf("frames = %d, expected 301", frames)
	}
	if spawns != 2 {
		t.Errorf("spawns = %d, expected 2", spawns)
	}
	if l.Frames() != 301 {
		t.Errorf("Frames() = %d, expected 301", l.Frames())
	}
	if l.Now() != 301*l.FrameDuration() {
		t.Errorf("Now() = %v, expected %v", l.Now(), 301*l.FrameDuration())
	}
}

func TestLoopSpawnBeforeFrame(t *testing.T) {
	var order []string
	l := NewLoop(10, 100*time.Millisecond,
		func() { order = append(order, "frame") },
		func() { order = append(order, "spawn") },
	)
	l.StartSpawns()
	l.Step()

	if len(order) != 2 || order[0] != "spawn" || order[1] != "frame" {
		t.Errorf("order = %v, expected [spawn frame]", order)
	}
}

func TestLoopRunStops(t *testing.T) {
	frames := 0
	l := NewLoop(60, time.Second, func() { frames++ }, nil)

	if err := l.Run(context.Background(), 100, func() bool { return frames == 10 }); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if frames != 10 {
		t.Errorf("frames = %d, expected stop after 10", frames)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx, 100, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() with cancelled context = %v, expected context.Canceled", err)
	}
	if frames != 10 {
		t.Errorf("frames = %d, cancelled run should not step", frames)
	}
}

func TestLoopDefaultTickRate(t *testing.T) {
	l := NewLoop(0, time.Second, nil, nil)
	if l.FrameDuration() != time.Second/60 {
		t.Errorf("FrameDuration() = %v, expected 1/60s", l.FrameDuration())
	}
	l.Step() // nil callbacks are allowed
}
