package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues.
type Player interface {
	Play(c Cue)
}

// Nop discards every cue. It is used for headless and SSH sessions.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Beeper plays cues through the system speaker.
// The speaker can be opened only once per process, so Close mutes the
// beeper and a later Initialize unmutes it without reopening.
type Beeper struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	master float64
	opened bool // speaker is open and playing mixer
	muted  bool
	open   func(m *beep.Mixer) error
}

// NewBeeper creates a beeper with a master volume in 0..1.
func NewBeeper(master float64) *Beeper {
	return &Beeper{
		mixer:  &beep.Mixer{},
		master: master,
		open:   openSpeaker,
	}
}

func openSpeaker(m *beep.Mixer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(m)
	return nil
}

// Initialize opens the speaker. It may fail on machines without audio output.
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.opened {
		if err := b.open(b.mixer); err != nil {
			return err
		}
		b.opened = true
	}
	b.muted = false
	return nil
}

// Play queues the beep for c on the mixer.
func (b *Beeper) Play(c Cue) {
	t, ok := ToneFor(c)
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.opened || b.muted {
		return
	}

	speaker.Lock()
	b.mixer.Add(withVolume(NewTone(t, sampleRate), b.master))
	speaker.Unlock()
}

// Close silences pending beeps and ignores further cues until Initialize.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.opened || b.muted {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.muted = true
}

// withVolume scales a stream by a linear factor.
// math.Log2(0) is -Inf, so zero volume is made silent instead.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
