package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player manages the speaker and plays the game's sound effects.
// All methods are safe to call before Initialize; they just do nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	chompHigh   bool
}

// NewPlayer creates an uninitialized audio player.
func NewPlayer() *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		enabled: true,
	}
}

// Initialize opens the speaker and starts the mixer. Idempotent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself stays open since beep
// exposes no close.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// SetEnabled toggles sound output without closing the speaker.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
	if !enabled {
		p.mixer.Clear()
	}
}

// Enabled reports whether sound output is on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// ToggleMute flips the enabled state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	if !p.enabled {
		p.mixer.Clear()
	}
	return p.enabled
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || !p.enabled {
		return
	}
	p.mixer.Add(s)
}

// PlayChomp plays the dot-eating sound. Alternates between a rising and a
// falling slide so a run of dots makes the classic waka-waka.
func (p *Player) PlayChomp() {
	p.mu.Lock()
	high := p.chompHigh
	p.chompHigh = !p.chompHigh
	p.mu.Unlock()

	var s beep.Streamer
	if high {
		s = NewSweep(220, 440, 60*time.Millisecond, sampleRate)
	} else {
		s = NewSweep(440, 220, 60*time.Millisecond, sampleRate)
	}
	s = NewEnvelope(s, 60*time.Millisecond, 5*time.Millisecond, 15*time.Millisecond, sampleRate)
	p.play(newVolume(s, 0.35))
}

// PlayFruit plays the fruit pickup chime, a quick two-note sine arpeggio.
func (p *Player) PlayFruit() {
	first := NewEnvelope(
		NewOscillator(660, 90*time.Millisecond, WaveSine, sampleRate),
		90*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond, sampleRate)
	second := NewEnvelope(
		NewOscillator(990, 140*time.Millisecond, WaveSine, sampleRate),
		140*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, sampleRate)
	p.play(newVolume(beep.Seq(first, second), 0.4))
}

// PlayDeath plays the losing-a-life sound, a long falling slide.
func (p *Player) PlayDeath() {
	s := NewSweep(600, 80, 700*time.Millisecond, sampleRate)
	s = NewEnvelope(s, 700*time.Millisecond, 10*time.Millisecond, 200*time.Millisecond, sampleRate)
	p.play(newVolume(s, 0.45))
}

// PlayLevelUp plays the level-cleared fanfare, a rising three-note run.
func (p *Player) PlayLevelUp() {
	notes := []float64{523.25, 659.25, 783.99}
	var seq []beep.Streamer
	for _, f := range notes {
		n := NewEnvelope(
			NewOscillator(f, 110*time.Millisecond, WaveSquare, sampleRate),
			110*time.Millisecond, 5*time.Millisecond, 25*time.Millisecond, sampleRate)
		seq = append(seq, n)
	}
	p.play(newVolume(beep.Seq(seq...), 0.3))
}
