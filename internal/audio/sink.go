package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"pong/internal/pong"
)

// Sink mixes cues into a single stream. It satisfies pong.Audio.
type Sink struct {
	lock  sync.Locker
	mixer *beep.Mixer
	muted bool
	drops int
}

// NewSink returns a sink guarded by its own mutex.
func NewSink() *Sink {
	return &Sink{lock: &sync.Mutex{}, mixer: &beep.Mixer{}}
}

// Play queues a cue. Unknown sounds are counted and dropped.
func (s *Sink) Play(c pong.Cue) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.muted {
		return
	}
	st, err := Build(c)
	if err != nil {
		s.drops++
		return
	}
	s.mixer.Add(st)
}

func (s *Sink) SetMuted(muted bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.muted = muted
	if muted {
		s.mixer.Clear()
	}
}

// ToggleMute flips the mute flag and returns the new value.
func (s *Sink) ToggleMute() bool {
	s.lock.Lock()
	muted := !s.muted
	s.lock.Unlock()
	s.SetMuted(muted)
	return muted
}

func (s *Sink) Muted() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.muted
}

// Active returns the number of cues still playing.
func (s *Sink) Active() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.mixer.Len()
}

// Dropped returns how many cues had no tone.
func (s *Sink) Dropped() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.drops
}

// Streamer is the mixed output.
func (s *Sink) Streamer() beep.Streamer { return s.mixer }
