//go:build ebiten

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"pong/internal/pong"
)

type speakerLock struct{}

func (speakerLock) Lock() { speaker.Lock() }

func (speakerLock) Unlock() { speaker.Unlock() }

// Speaker plays a Sink on the default output device. Until Init succeeds it
// discards every cue.
type Speaker struct {
	*Sink
	ready bool
}

func NewSpeaker() *Speaker { return &Speaker{Sink: NewSink()} }

// Init opens the output device. It is safe to call more than once.
func (s *Speaker) Init() error {
	if s.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	s.Sink.lock = speakerLock{}
	speaker.Play(s.Sink.Streamer())
	s.ready = true
	return nil
}

func (s *Speaker) Ready() bool { return s.ready }

func (s *Speaker) Play(c pong.Cue) {
	if !s.ready {
		return
	}
	s.Sink.Play(c)
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	if !s.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.ready = false
}
