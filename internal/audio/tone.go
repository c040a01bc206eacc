// Package audio synthesizes the short beeps played on game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a game sound.
type Cue int

const (
	CueJump Cue = iota
	CueCoin
	CueHit
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCoin:
		return "coin"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Tone describes a single decaying sine beep.
type Tone struct {
	Freq     float64 // Hz
	Volume   float64 // Starting gain, 0..1
	Duration time.Duration
}

const beepDuration = 120 * time.Millisecond

// tones maps each cue to its beep.
var tones = map[Cue]Tone{
	CueJump: {Freq: 800, Volume: 0.06, Duration: beepDuration},
	CueCoin: {Freq: 1200, Volume: 0.04, Duration: beepDuration},
	CueHit:  {Freq: 200, Volume: 0.12, Duration: beepDuration},
}

// ToneFor returns the beep for a cue.
func ToneFor(c Cue) (Tone, bool) {
	t, ok := tones[c]
	return t, ok
}

// floorGain is where the exponential fade ends.
const floorGain = 0.001

// tone streams a sine wave whose gain falls exponentially from Volume
// to floorGain over Duration.
type tone struct {
	freq     float64
	phase    float64
	gain     float64
	decay    float64 // per-sample gain multiplier
	position int
	total    int
	rate     beep.SampleRate
}

// NewTone creates a streamer for t at the given sample rate.
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	decay := 1.0
	if total > 0 && t.Volume > floorGain {
		decay = math.Pow(floorGain/t.Volume, 1/float64(total))
	}
	return &tone{
		freq:  t.Freq,
		gain:  t.Volume,
		decay: decay,
		total: total,
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		val := t.gain * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		t.gain *= t.decay
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
