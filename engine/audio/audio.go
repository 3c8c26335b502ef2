package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Cue is a short sound effect played over the ambient pad.
type Cue int

const (
	// CueClick plays when a button or card is clicked.
	CueClick Cue = iota
	// CueHover plays when the pointer enters an interactive element.
	CueHover
	// CueSection plays when the camera starts moving to a new section.
	CueSection
)

// Audio owns the speaker, a mixer carrying a looping ambient pad, and the short interface cues.
//
// Every method is safe before Init and after a failed Init: the mute and volume state is kept
// and cues are dropped, so the rest of the program never has to check whether sound is available.
// Thread-safe for concurrent access.
type Audio interface {
	// Init opens the audio device and starts the mixer. Calling it again is a no-op.
	//
	// Returns:
	//   - error: an error if the device could not be opened
	Init() error

	// Initialized reports whether the device is open.
	//
	// Returns:
	//   - bool: true after a successful Init
	Initialized() bool

	// Muted reports whether output is silenced.
	//
	// Returns:
	//   - bool: true if muted
	Muted() bool

	// SetMuted silences or restores output. The ambient pad keeps its position while muted.
	//
	// Parameters:
	//   - muted: the new mute state
	SetMuted(muted bool)

	// Volume returns the master volume in [0, 1].
	//
	// Returns:
	//   - float64: the linear volume
	Volume() float64

	// SetVolume sets the master volume, clamped to [0, 1].
	//
	// Parameters:
	//   - volume: the linear volume
	SetVolume(volume float64)

	// Play mixes a cue in. Cues are dropped while muted or before Init.
	//
	// Parameters:
	//   - cue: the cue to play
	Play(cue Cue)

	// Streamer returns the master output stream: the mixer behind the volume and mute stage.
	//
	// Returns:
	//   - beep.Streamer: the master stream
	Streamer() beep.Streamer

	// Release stops every sound and clears the speaker.
	Release()
}

// audioImpl is the implementation of the Audio interface.
type audioImpl struct {
	mu *sync.Mutex

	sampleRate beep.SampleRate
	bufferSize time.Duration

	mixer   *beep.Mixer
	master  *effects.Volume
	ambient *beep.Ctrl

	ambientEnabled bool
	volume         float64
	muted          bool
	initialized    bool
}

var _ Audio = &audioImpl{}

// NewAudio creates a new Audio, muted at volume 0.6 with the ambient pad enabled.
// No device is opened until Init.
//
// Parameters:
//   - options: functional options to configure the audio
//
// Returns:
//   - Audio: the newly created audio
func NewAudio(options ...AudioBuilderOption) Audio {
	a := &audioImpl{
		mu:             &sync.Mutex{},
		sampleRate:     beep.SampleRate(44100),
		bufferSize:     100 * time.Millisecond,
		mixer:          &beep.Mixer{},
		ambientEnabled: true,
		volume:         0.6,
		muted:          true,
	}
	for _, option := range options {
		option(a)
	}

	a.master = &effects.Volume{Streamer: a.mixer, Base: 2}
	a.applyVolume()

	if a.ambientEnabled {
		a.ambient = &beep.Ctrl{Streamer: newPad(a.sampleRate)}
		a.mixer.Add(a.ambient)
	}
	return a
}

func (a *audioImpl) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.initialized {
		return nil
	}
	if err := speaker.Init(a.sampleRate, a.sampleRate.N(a.bufferSize)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(a.master)
	a.initialized = true
	return nil
}

func (a *audioImpl) Initialized() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initialized
}

func (a *audioImpl) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

func (a *audioImpl) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.muted == muted {
		return
	}
	a.muted = muted
	a.withSpeakerLock(a.applyVolume)
	log.Printf("[audio] muted=%t", muted)
}

func (a *audioImpl) Volume() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.volume
}

func (a *audioImpl) SetVolume(volume float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.volume = math.Max(0, math.Min(1, volume))
	a.withSpeakerLock(a.applyVolume)
}

func (a *audioImpl) Play(cue Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized || a.muted {
		return
	}
	s := newCue(cue, a.sampleRate)
	if s == nil {
		return
	}
	a.withSpeakerLock(func() { a.mixer.Add(s) })
}

func (a *audioImpl) Streamer() beep.Streamer {
	return a.master
}

func (a *audioImpl) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.initialized {
		return
	}
	speaker.Lock()
	if a.ambient != nil {
		a.ambient.Paused = true
	}
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	a.initialized = false
}

// applyVolume maps the linear volume and mute flag onto the master volume stage.
// effects.Volume works in log2 units, so zero volume is expressed as Silent.
// Caller must hold the mutex.
func (a *audioImpl) applyVolume() {
	if a.muted || a.volume <= 0 {
		a.master.Silent = true
		a.master.Volume = 0
		return
	}
	a.master.Silent = false
	a.master.Volume = math.Log2(a.volume)
}

// withSpeakerLock runs fn under the speaker lock once the speaker is streaming.
// Caller must hold the mutex.
func (a *audioImpl) withSpeakerLock(fn func()) {
	if !a.initialized {
		fn()
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}
