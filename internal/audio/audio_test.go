package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/gopxl/beep"

	"pong/internal/pong"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end")
	return nil
}

func TestToneFrequencies(t *testing.T) {
	if f, ok := Frequency(pong.SoundLeft); !ok || f != 440 {
		t.Fatalf("left tone = %v, %v", f, ok)
	}
	if f, ok := Frequency(pong.SoundRight); !ok || f != 660 {
		t.Fatalf("right tone = %v, %v", f, ok)
	}
}

func TestToneLengthAndRange(t *testing.T) {
	s, err := Tone(pong.SoundLeft)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}
	samples := drain(t, s)
	if want := SampleRate.N(cueLength); len(samples) != want {
		t.Fatalf("len = %d, want %d", len(samples), want)
	}
	peak := 0.0
	for i, smp := range samples {
		if math.Abs(smp[0]) > 1 || smp[0] != smp[1] {
			t.Fatalf("sample %d = %v", i, smp)
		}
		peak = math.Max(peak, math.Abs(smp[0]))
	}
	if peak < 0.9 {
		t.Fatalf("peak = %v, tone too quiet", peak)
	}
	if last := samples[len(samples)-1][0]; math.Abs(last) > 0.01 {
		t.Fatalf("last sample %v, release should fade to zero", last)
	}
}

func TestUnknownSound(t *testing.T) {
	if _, err := Tone("boom"); !errors.Is(err, ErrUnknownSound) {
		t.Fatalf("err = %v, want ErrUnknownSound", err)
	}
	if _, err := Build(pong.Cue{Sound: "boom"}); !errors.Is(err, ErrUnknownSound) {
		t.Fatalf("Build err = %v", err)
	}
}

func TestBuildPanAndVolume(t *testing.T) {
	s, err := Build(pong.Cue{Sound: pong.SoundRight, Volume: 1, Pan: -1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	left := 0.0
	for _, smp := range drain(t, s) {
		if smp[1] != 0 {
			t.Fatalf("right channel should be silent when panned left, got %v", smp[1])
		}
		left = math.Max(left, math.Abs(smp[0]))
	}
	if left == 0 {
		t.Fatalf("left channel silent")
	}

	s, _ = Build(pong.Cue{Sound: pong.SoundRight, Volume: 0})
	for _, smp := range drain(t, s) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("zero volume should be silent, got %v", smp)
		}
	}
}

func TestBuildPitchShortensCue(t *testing.T) {
	s, err := Build(pong.Cue{Sound: pong.SoundLeft, Volume: 1, Pitch: 1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	n := len(drain(t, s))
	want := SampleRate.N(cueLength) / 2
	if tol := want / 20; n < want-tol || n > want+tol {
		t.Fatalf("octave-up cue has %d samples, want about %d", n, want)
	}
}

func TestSinkMixesAndMutes(t *testing.T) {
	sink := NewSink()
	sink.Play(pong.Cue{Sound: pong.SoundLeft, Volume: 1})
	sink.Play(pong.Cue{Sound: pong.SoundRight, Volume: 1})
	sink.Play(pong.Cue{Sound: "nope", Volume: 1})
	if sink.Active() != 2 || sink.Dropped() != 1 {
		t.Fatalf("active=%d dropped=%d", sink.Active(), sink.Dropped())
	}

	buf := make([][2]float64, SampleRate.N(cueLength)+1)
	sink.Streamer().Stream(buf)
	sink.Streamer().Stream(buf[:1])
	if sink.Active() != 0 {
		t.Fatalf("cues should finish, %d still active", sink.Active())
	}

	if !sink.ToggleMute() || !sink.Muted() {
		t.Fatalf("ToggleMute should mute")
	}
	sink.Play(pong.Cue{Sound: pong.SoundLeft, Volume: 1})
	if sink.Active() != 0 {
		t.Fatalf("muted sink accepted a cue")
	}
	if sink.ToggleMute() {
		t.Fatalf("second toggle should unmute")
	}
}

func TestSinkServesWorld(t *testing.T) {
	var _ pong.Audio = NewSink()
	var _ pong.Audio = NewSpeaker()
}
