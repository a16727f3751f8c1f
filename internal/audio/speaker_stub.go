//go:build !ebiten

package audio

import (
	"errors"

	"pong/internal/pong"
)

var errNoDevice = errors.New("audio: no output device in headless build")

// Speaker is a silent placeholder for headless builds.
type Speaker struct {
	*Sink
}

func NewSpeaker() *Speaker { return &Speaker{Sink: NewSink()} }

// Init always fails in the headless build.
func (s *Speaker) Init() error { return errNoDevice }

func (s *Speaker) Ready() bool { return false }

func (s *Speaker) Play(pong.Cue) {}

func (s *Speaker) Close() {}
