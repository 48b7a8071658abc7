package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager synthesizes and plays the game's sound effects. Everything is
// generated, no asset files. If the speaker cannot be opened the manager
// goes silent rather than failing the game.
type Manager struct {
	MasterVolume float64
	SFXVolume    float64

	mixer   *beep.Mixer
	silent  bool
	started bool
}

func NewManager() *Manager {
	return &Manager{
		MasterVolume: 1.0,
		SFXVolume:    0.8,
		mixer:        &beep.Mixer{},
	}
}

// Start opens the speaker once. Failure flips to silent mode, not an error.
func (m *Manager) Start() {
	if m.started {
		return
	}
	m.started = true
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		m.silent = true
		return
	}
	speaker.Play(m.mixer)
}

func (m *Manager) play(s beep.Streamer) {
	if !m.started || m.silent {
		return
	}
	vol := m.MasterVolume * m.SFXVolume
	if vol <= 0 {
		return
	}
	v := &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
	speaker.Lock()
	m.mixer.Add(v)
	speaker.Unlock()
}

func tone(freq float64, dur time.Duration, wave WaveType) beep.Streamer {
	osc := NewOscillator(freq, dur, wave, sampleRate)
	return NewEnvelope(osc, dur, 4*time.Millisecond, 30*time.Millisecond, sampleRate)
}

// PlayClick is the UI/button blip.
func (m *Manager) PlayClick() {
	m.play(tone(880, 50*time.Millisecond, WaveSquare))
}

// PlaySelect marks a red box starting to grow.
func (m *Manager) PlaySelect() {
	m.play(tone(140, 120*time.Millisecond, WaveSine))
}

// PlayPush marks a box being shoved onto a new cell.
func (m *Manager) PlayPush() {
	m.play(tone(330, 70*time.Millisecond, WaveSaw))
}

// PlayWin is a short rising chime.
func (m *Manager) PlayWin() {
	m.play(beep.Seq(
		tone(523.25, 110*time.Millisecond, WaveSine),
		tone(659.25, 110*time.Millisecond, WaveSine),
		tone(783.99, 200*time.Millisecond, WaveSine),
	))
}
