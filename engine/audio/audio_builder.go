package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// AudioBuilderOption is a functional option for configuring an Audio.
// Use the With* functions to create options.
type AudioBuilderOption func(a *audioImpl)

// WithMuted sets the initial mute state. Audio starts muted by default.
//
// Parameters:
//   - muted: the initial mute state
//
// Returns:
//   - AudioBuilderOption: option function to apply
func WithMuted(muted bool) AudioBuilderOption {
	return func(a *audioImpl) {
		a.muted = muted
	}
}

// WithVolume sets the initial master volume, clamped to [0, 1].
//
// Parameters:
//   - volume: the linear volume
//
// Returns:
//   - AudioBuilderOption: option function to apply
func WithVolume(volume float64) AudioBuilderOption {
	return func(a *audioImpl) {
		a.volume = math.Max(0, math.Min(1, volume))
	}
}

// WithSampleRate sets the output sample rate. Defaults to 44100 Hz.
//
// Parameters:
//   - rate: samples per second
//
// Returns:
//   - AudioBuilderOption: option function to apply
func WithSampleRate(rate int) AudioBuilderOption {
	return func(a *audioImpl) {
		if rate > 0 {
			a.sampleRate = beep.SampleRate(rate)
		}
	}
}

// WithAmbient enables or disables the looping ambient pad.
//
// Parameters:
//   - enabled: true to mix the pad in
//
// Returns:
//   - AudioBuilderOption: option function to apply
func WithAmbient(enabled bool) AudioBuilderOption {
	return func(a *audioImpl) {
		a.ambientEnabled = enabled
	}
}
