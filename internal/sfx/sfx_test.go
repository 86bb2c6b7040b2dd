package sfx

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer did not end")
	return 0, 0
}

func TestSoundLengths(t *testing.T) {
	for _, c := range []Cue{CueFlap, CuePoint} {
		total, peak := drain(t, Sound(c, SampleRate))
		if expected := SampleRate.N(Duration(c)); total != expected {
			t.Errorf("%s: %d samples, expected %d", c, total, expected)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("%s: peak = %v, expected audible and unclipped", c, peak)
		}
	}
}

func TestSoundHitEnds(t *testing.T) {
	total, peak := drain(t, Sound(CueHit, SampleRate))
	if total == 0 || total > SampleRate.N(Duration(CueHit)) {
		t.Errorf("hit: %d samples, expected at most %d", total, SampleRate.N(Duration(CueHit)))
	}
	if peak > 1 {
		t.Errorf("hit: peak = %v, expected unclipped", peak)
	}
}

func TestFadeEndsSilent(t *testing.T) {
	n := 100
	s := fade(beep.Take(n, constant(1)), n, 50)

	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	if got != n {
		t.Fatalf("Stream() = %d samples, expected %d", got, n)
	}
	if buf[0][0] != 1 {
		t.Errorf("sample before release = %v, expected 1", buf[0][0])
	}
	if buf[75][0] != 0.5 {
		t.Errorf("sample halfway through release = %v, expected 0.5", buf[75][0])
	}
	if buf[n-1][0] >= 0.05 {
		t.Errorf("last sample = %v, expected near silence", buf[n-1][0])
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event flappy.Event
		cue   Cue
		ok    bool
	}{
		{flappy.FlappedEvent{}, CueFlap, true},
		{flappy.ScoredEvent{Passed: 2, Score: 1}, CuePoint, true},
		{flappy.GameOverEvent{Score: 3}, CueHit, true},
		{flappy.StartControlHiddenEvent{}, 0, false},
		{flappy.RetryControlEvent{Visible: true}, 0, false},
	}
	for _, tc := range tests {
		cue, ok := CueFor(tc.event)
		if ok != tc.ok || (ok && cue != tc.cue) {
			t.Errorf("CueFor(%T) = (%v, %v), expected (%v, %v)", tc.event, cue, ok, tc.cue, tc.ok)
		}
	}
}

type recordingPlayer struct {
	played []Cue
}

func (r *recordingPlayer) Play(c Cue)   { r.played = append(r.played, c) }
func (r *recordingPlayer) Close() error { return nil }

func TestPlayEvents(t *testing.T) {
	var p recordingPlayer
	PlayEvents(&p, []flappy.Event{
		flappy.StartControlHiddenEvent{},
		flappy.FlappedEvent{},
		flappy.ScoredEvent{},
		flappy.GameOverEvent{},
	})

	expected := []Cue{CueFlap, CuePoint, CueHit}
	if len(p.played) != len(expected) {
		t.Fatalf("played = %v, expected %v", p.played, expected)
	}
	for i := range expected {
		if p.played[i] != expected[i] {
			t.Errorf("played[%d] = %v, expected %v", i, p.played[i], expected[i])
		}
	}

	// Nop accepts everything
	PlayEvents(Nop{}, []flappy.Event{flappy.FlappedEvent{}})
}

// constant streams a fixed value forever.
func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}
