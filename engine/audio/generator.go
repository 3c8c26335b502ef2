package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// padNotes is an A minor add9 voicing in Hz.
var padNotes = []float64{110.00, 164.81, 220.00, 261.63, 329.63, 493.88}

// pad is an endless soft chord whose voices swell in and out of phase with each other.
type pad struct {
	rate beep.SampleRate
	pos  int
}

func newPad(rate beep.SampleRate) beep.Streamer {
	return &pad{rate: rate}
}

func (p *pad) Stream(samples [][2]float64) (n int, ok bool) {
	gain := 0.5 / float64(len(padNotes))
	for i := range samples {
		t := float64(p.pos) / float64(p.rate)
		var left, right float64
		for v, freq := range padNotes {
			// Each voice swells on its own slow cycle so the chord never sounds static.
			swell := 0.55 + 0.45*math.Sin(2*math.Pi*t/(7+float64(v)*1.3)+float64(v))
			s := swell * math.Sin(2*math.Pi*freq*t)
			if v%2 == 0 {
				left += s
				right += 0.6 * s
			} else {
				left += 0.6 * s
				right += s
			}
		}
		samples[i][0] = left * gain
		samples[i][1] = right * gain
		p.pos++
	}
	return len(samples), true
}

func (p *pad) Err() error { return nil }

// tone is a sine with a linear attack and an exponential release.
type tone struct {
	rate     beep.SampleRate
	freq     float64
	sweep    float64
	gain     float64
	attack   int
	duration int
	pos      int
	phase    float64
}

// newTone creates a tone that glides from freq to freq+sweep over its duration.
func newTone(rate beep.SampleRate, freq, sweep, gain float64, attack, duration time.Duration) beep.Streamer {
	return &tone{
		rate:     rate,
		freq:     freq,
		sweep:    sweep,
		gain:     gain,
		attack:   max(rate.N(attack), 1),
		duration: max(rate.N(duration), 1),
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.duration {
			return i, i > 0
		}
		progress := float64(o.pos) / float64(o.duration)
		env := math.Exp(-5 * progress)
		if o.pos < o.attack {
			env *= float64(o.pos) / float64(o.attack)
		}
		val := o.gain * env * math.Sin(2*math.Pi*o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += (o.freq + o.sweep*progress) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// newCue builds the streamer for a cue, or nil for an unknown cue.
func newCue(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueClick:
		return newTone(rate, 880, -220, 0.35, 2*time.Millisecond, 90*time.Millisecond)
	case CueHover:
		return newTone(rate, 1320, 0, 0.12, time.Millisecond, 35*time.Millisecond)
	case CueSection:
		return newTone(rate, 330, 330, 0.25, 20*time.Millisecond, 450*time.Millisecond)
	default:
		return nil
	}
}
