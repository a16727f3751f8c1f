package audio

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"pong/internal/geom"
	"pong/internal/pong"
)

// SampleRate is the rate every cue is synthesised at.
const SampleRate = beep.SampleRate(48000)

const (
	cueLength  = 80 * time.Millisecond
	cueRelease = 20 * time.Millisecond
	resampleQ  = 4
)

// ErrUnknownSound is returned for cue keys with no tone.
var ErrUnknownSound = errors.New("audio: unknown sound")

var tones = map[string]float64{
	pong.SoundLeft:  440,
	pong.SoundRight: 660,
}

// Frequency returns the tone pitch for a sound key.
func Frequency(sound string) (float64, bool) {
	f, ok := tones[sound]
	return f, ok
}

// sine is an endless sine oscillator.
type sine struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }

// release fades the last samples of a fixed-length stream to zero.
type release struct {
	streamer beep.Streamer
	position int
	total    int
	fade     int
}

func (r *release) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		remaining := r.total - r.position
		if remaining < r.fade && r.fade > 0 {
			vol := float64(remaining) / float64(r.fade)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		r.position++
	}
	return n, ok
}

func (r *release) Err() error { return r.streamer.Err() }

// Tone returns the raw 80 ms cue for a sound key.
func Tone(sound string) (beep.Streamer, error) {
	freq, ok := tones[sound]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, sound)
	}
	total := SampleRate.N(cueLength)
	return &release{
		streamer: beep.Take(total, &sine{freq: freq, rate: SampleRate}),
		total:    total,
		fade:     SampleRate.N(cueRelease),
	}, nil
}

// Build turns a cue into a finite streamer with pitch, volume and pan applied.
func Build(c pong.Cue) (beep.Streamer, error) {
	s, err := Tone(c.Sound)
	if err != nil {
		return nil, err
	}
	if c.Pitch != 0 {
		s = beep.ResampleRatio(resampleQ, math.Pow(2, c.Pitch), s)
	}
	s = newVolume(s, c.Volume)
	return &effects.Pan{Streamer: s, Pan: geom.Clamp(c.Pan, -1, 1)}, nil
}

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
