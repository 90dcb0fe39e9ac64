package audio

import (
	"math"
	"testing"
	"time"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	dur := 50 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSine, sampleRate)

	samples := drain(t, osc)
	want := sampleRate.N(dur)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
}

func TestOscillatorSineRange(t *testing.T) {
	osc := NewOscillator(440, 20*time.Millisecond, WaveSine, sampleRate)

	for i, s := range drain(t, osc) {
		if math.Abs(s[0]) > 1.0 || math.Abs(s[1]) > 1.0 {
			t.Fatalf("Sample %d out of [-1, 1]: %v", i, s)
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(440, 20*time.Millisecond, WaveSquare, sampleRate)

	for i, s := range drain(t, osc) {
		if s[0] != 1.0 && s[0] != -1.0 {
			t.Fatalf("Square sample %d not +-1: %v", i, s[0])
		}
	}
}

func TestSweepDuration(t *testing.T) {
	dur := 60 * time.Millisecond
	sw := NewSweep(220, 440, dur, sampleRate)

	samples := drain(t, sw)
	want := sampleRate.N(dur)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
}

func TestEnvelopeAttackStartsQuiet(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSquare, sampleRate)
	env := NewEnvelope(osc, dur, 20*time.Millisecond, 20*time.Millisecond, sampleRate)

	samples := drain(t, env)
	if len(samples) == 0 {
		t.Fatal("Envelope produced no samples")
	}

	// First sample is fully attenuated by the attack ramp.
	if math.Abs(samples[0][0]) > 0.01 {
		t.Errorf("Expected near-silent first sample, got %v", samples[0][0])
	}

	// Last samples are attenuated by the release ramp.
	last := samples[len(samples)-1]
	if math.Abs(last[0]) > 0.05 {
		t.Errorf("Expected near-silent last sample, got %v", last[0])
	}

	// Middle of the sustain is at full square amplitude.
	mid := samples[len(samples)/2]
	if math.Abs(mid[0]) < 0.9 {
		t.Errorf("Expected full amplitude mid-note, got %v", mid[0])
	}
}

func TestPlayerSafeWithoutInitialize(t *testing.T) {
	p := NewPlayer()

	// None of these should panic or block when the speaker is not open.
	p.PlayChomp()
	p.PlayFruit()
	p.PlayDeath()
	p.PlayLevelUp()
	p.Cleanup()

	if !p.Enabled() {
		t.Error("Player should start enabled")
	}
	if p.ToggleMute() {
		t.Error("ToggleMute should return false after first toggle")
	}
	if p.Enabled() {
		t.Error("Player should be muted after toggle")
	}
}
