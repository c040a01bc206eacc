package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneFor(t *testing.T) {
	tests := []struct {
		cue  Cue
		freq float64
		vol  float64
	}{
		{CueJump, 800, 0.06},
		{CueCoin, 1200, 0.04},
		{CueHit, 200, 0.12},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			tone, ok := ToneFor(tc.cue)
			if !ok {
				t.Fatalf("ToneFor(%v) not found", tc.cue)
			}
			if tone.Freq != tc.freq || tone.Volume != tc.vol {
				t.Errorf("ToneFor(%v) = %+v, expected %vHz at %v", tc.cue, tone, tc.freq, tc.vol)
			}
			if tone.Duration != 120*time.Millisecond {
				t.Errorf("Duration = %v, expected 120ms", tone.Duration)
			}
		})
	}

	if _, ok := ToneFor(Cue(99)); ok {
		t.Error("unknown cue should have no tone")
	}
}

func TestToneStreamsWholeDuration(t *testing.T) {
	rate := beep.SampleRate(8000)
	tn := Tone{Freq: 440, Volume: 0.5, Duration: 100 * time.Millisecond}
	s := NewTone(tn, rate)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > tn.Volume+1e-9 {
				t.Fatalf("sample %v exceeds starting volume %v", buf[i][0], tn.Volume)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("channels differ at sample %d", total-n+i)
			}
		}
		if !ok {
			break
		}
	}

	if want := rate.N(tn.Duration); total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, expected nil", s.Err())
	}
}

func TestToneDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewTone(Tone{Freq: 1000, Volume: 0.2, Duration: 200 * time.Millisecond}, rate)

	buf := make([][2]float64, rate.N(200*time.Millisecond))
	n, _ := s.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for i := from; i < to; i++ {
			m = math.Max(m, math.Abs(buf[i][0]))
		}
		return m
	}

	head := peak(0, n/10)
	tail := peak(n-n/10, n)
	if tail >= head/10 {
		t.Errorf("tail peak %v should be far below head peak %v", tail, head)
	}
}

func TestVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := withVolume(NewTone(Tone{Freq: 440, Volume: 1, Duration: 10 * time.Millisecond}, rate), 0)

	buf := make([][2]float64, 40)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("silent stream produced %v at %d", buf[i][0], i)
		}
	}
}

func TestNopAndUninitializedBeeper(t *testing.T) {
	// Neither touches the speaker
	Nop{}.Play(CueHit)

	b := NewBeeper(1)
	b.Play(CueJump)
	b.Close()
}

func TestBeeperCloseThenInitialize(t *testing.T) {
	opens := 0
	b := NewBeeper(1)
	b.open = func(*beep.Mixer) error {
		opens++
		return nil
	}

	if err := b.Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	b.Play(CueJump)
	if n := b.mixer.Len(); n != 1 {
		t.Errorf("mixer Len() = %d after Play, expected 1", n)
	}

	b.Close()
	if n := b.mixer.Len(); n != 0 {
		t.Errorf("mixer Len() = %d after Close, expected 0", n)
	}
	b.Play(CueCoin)
	if n := b.mixer.Len(); n != 0 {
		t.Errorf("closed beeper queued a cue, mixer Len() = %d", n)
	}

	if err := b.Initialize(); err != nil {
		t.Fatalf("second Initialize() failed: %v", err)
	}
	if opens != 1 {
		t.Errorf("speaker opened %d times, expected 1", opens)
	}
	b.Play(CueHit)
	if n := b.mixer.Len(); n != 1 {
		t.Errorf("mixer Len() = %d after reinitialize, expected 1", n)
	}
}
