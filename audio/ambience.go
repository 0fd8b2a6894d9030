package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferSize = 100 * time.Millisecond
)

// Ambience plays the wind bed through the system speaker
type Ambience struct {
	mu          sync.Mutex
	wind        *WindGenerator
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	initialized bool
}

// NewAmbience creates an ambience; nothing plays until Initialize
func NewAmbience() *Ambience {
	wind := NewWindGenerator(sampleRate, time.Now().UnixNano())
	ctrl := &beep.Ctrl{Streamer: wind, Paused: false}
	return &Ambience{
		wind:   wind,
		ctrl:   ctrl,
		volume: &effects.Volume{Streamer: ctrl, Base: 2, Volume: 0},
	}
}

// Initialize opens the speaker and starts the stream
func (a *Ambience) Initialize() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return err
	}
	speaker.Play(a.volume)
	a.initialized = true
	return nil
}

// Streamer exposes the output chain, used for offline rendering
func (a *Ambience) Streamer() beep.Streamer {
	return a.volume
}

// SetWind follows the effect's wind setting
func (a *Ambience) SetWind(enabled bool, speed float64) {
	a.wind.SetGain(WindGain(enabled, speed))
}

// SetPaused silences the bed while the effect is paused
func (a *Ambience) SetPaused(paused bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	a.ctrl.Paused = paused
}

// SetMuted toggles output without stopping the stream
func (a *Ambience) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	a.volume.Silent = muted
}

// Muted reports the mute state
func (a *Ambience) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.volume.Silent
}

// Cleanup stops playback and releases the device
func (a *Ambience) Cleanup() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.initialized = false
}
