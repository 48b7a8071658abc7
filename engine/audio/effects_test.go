package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func drain(s beep.Streamer) [][2]float64 {
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

func TestOscillatorLength(t *testing.T) {
	dur := 50 * time.Millisecond
	got := len(drain(NewOscillator(440, dur, WaveSine, testRate)))
	want := testRate.N(dur)
	if got != want {
		t.Fatalf("streamed %d samples, want %d", got, want)
	}
}

func TestOscillatorAmplitude(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		samples := drain(NewOscillator(440, 20*time.Millisecond, wave, testRate))
		for i, s := range samples {
			if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
				t.Fatalf("wave %d sample %d out of range: %v", wave, i, s)
			}
			if s[0] != s[1] {
				t.Fatalf("wave %d sample %d not mono: %v", wave, i, s)
			}
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	samples := drain(NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate))
	for i, s := range samples {
		if s[0] != 1.0 && s[0] != -1.0 {
			t.Fatalf("sample %d: square wave value %v", i, s[0])
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSquare, testRate)
	env := NewEnvelope(osc, dur, 5*time.Millisecond, 20*time.Millisecond, testRate)
	samples := drain(env)

	if len(samples) != testRate.N(dur) {
		t.Fatalf("envelope changed stream length: %d", len(samples))
	}
	// The very first sample sits at zero gain, the last near zero; the middle
	// of the tone passes through at full amplitude.
	if samples[0][0] != 0 {
		t.Errorf("attack does not start silent: %v", samples[0][0])
	}
	if last := math.Abs(samples[len(samples)-1][0]); last > 0.01 {
		t.Errorf("release does not end near silence: %v", last)
	}
	mid := samples[len(samples)/2][0]
	if math.Abs(mid) != 1.0 {
		t.Errorf("sustain not at full gain: %v", mid)
	}
}

func TestManagerSilentWithoutSpeaker(t *testing.T) {
	// Playing before Start must be a harmless no-op.
	m := NewManager()
	m.PlayClick()
	m.PlayWin()
	if m.mixer.Len() != 0 {
		t.Fatalf("unstarted manager queued %d streams", m.mixer.Len())
	}
}
