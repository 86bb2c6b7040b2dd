// Package sfx plays short synthesized cues for game events: a chirp on
// flap, a coin on scoring, a thud on game over.
package sfx

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueFlap Cue = iota
	CuePoint
	CueHit
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CuePoint:
		return "point"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Player plays cues. Implementations must not block the game loop.
type Player interface {
	Play(c Cue)
	Close() error
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Close() error { return nil }

// CueFor maps a session event to its sound, if it has one.
func CueFor(e flappy.Event) (Cue, bool) {
	switch e.(type) {
	case flappy.FlappedEvent:
		return CueFlap, true
	case flappy.ScoredEvent:
		return CuePoint, true
	case flappy.GameOverEvent:
		return CueHit, true
	}
	return 0, false
}

// PlayEvents plays the cue of every event that has one.
func PlayEvents(p Player, events []flappy.Event) {
	for _, e := range events {
		if c, ok := CueFor(e); ok {
			p.Play(c)
		}
	}
}

// Speaker plays cues on the default audio device through a shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker initializes the audio device. It fails when no device is
// available; callers usually fall back to Nop.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues a cue on the mixer.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(Sound(c, SampleRate))
	speaker.Unlock()
}

// Close silences pending cues and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}

// Sound synthesizes a finite streamer for the cue.
func Sound(c Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueFlap:
		return volume(beep.Seq(
			tone(sr, 660, 40*time.Millisecond),
			tone(sr, 880, 40*time.Millisecond),
		), 0.3)
	case CuePoint:
		return volume(beep.Seq(
			tone(sr, 988, 60*time.Millisecond),
			fade(tone(sr, 1319, 180*time.Millisecond), sr.N(180*time.Millisecond), sr.N(120*time.Millisecond)),
		), 0.35)
	case CueHit:
		d := 250 * time.Millisecond
		return volume(fade(beep.Mix(
			tone(sr, 110, d),
			tone(sr, 82, d),
		), sr.N(d), sr.N(200*time.Millisecond)), 0.5)
	}
	return beep.Silence(0)
}

// Duration returns how long the cue plays.
func Duration(c Cue) time.Duration {
	switch c {
	case CueFlap:
		return 80 * time.Millisecond
	case CuePoint:
		return 240 * time.Millisecond
	case CueHit:
		return 250 * time.Millisecond
	}
	return 0
}

func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return beep.Take(n, sine)
}

// volume scales amplitude linearly; 0 is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// fadeOut ramps the last release samples of a total-sample streamer down
// to zero.
type fadeOut struct {
	s       beep.Streamer
	pos     int
	total   int
	release int
}

func fade(s beep.Streamer, total, release int) beep.Streamer {
	return &fadeOut{s: s, total: total, release: release}
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		remaining := f.total - f.pos
		if f.release > 0 && remaining < f.release {
			if remaining < 0 {
				remaining = 0
			}
			g := float64(remaining) / float64(f.release)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.s.Err() }
