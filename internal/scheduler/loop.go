package scheduler

import (
	"context"
	"time"
)

// Loop runs a frame callback at a fixed rate on a virtual clock and a spawn
// callback on an Interval alongside it. The frame callback runs on every
// step regardless of game state; callers gate inside it.
type Loop struct {
	frame   time.Duration
	spawn   *Interval
	onFrame func()
	onSpawn func()
	now     time.Duration
	frames  uint64
}

// NewLoop creates a loop. tickRate is frames per second; below 1 it is
// treated as 60. The spawn interval starts stopped.
func NewLoop(tickRate int, spawnPeriod time.Duration, onFrame, onSpawn func()) *Loop {
	if tickRate < 1 {
		tickRate = 60
	}
	if onFrame == nil {
		onFrame = func() {}
	}
	if onSpawn == nil {
		onSpawn = func() {}
	}
	return &Loop{
		frame:   time.Second / time.Duration(tickRate),
		spawn:   NewInterval(spawnPeriod),
		onFrame: onFrame,
		onSpawn: onSpawn,
	}
}

// StartSpawns starts the spawn interval. Only the first call has an effect.
func (l *Loop) StartSpawns() bool {
	return l.spawn.Start()
}

// FrameDuration returns the virtual time per frame.
func (l *Loop) FrameDuration() time.Duration {
	return l.frame
}

// Now returns the virtual time elapsed.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Frames returns the number of frames run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Step advances one frame. Spawns that came due during the frame fire
// before the frame callback.
func (l *Loop) Step() {
	l.now += l.frame
	for n := l.spawn.Advance(l.frame); n > 0; n-- {
		l.onSpawn()
	}
	l.frames++
	l.onFrame()
}

// Run steps frames times, or until ctx is done or stop returns true after
// a frame. A nil stop never stops. It returns ctx.Err() if cancelled.
func (l *Loop) Run(ctx context.Context, frames int, stop func() bool) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.Step()
		if stop != nil && stop() {
			return nil
		}
	}
	return nil
}
