package screen

import "pong/internal/pong"

// Screen is one layer of the interface.
type Screen interface {
	Update(s *Stack, in Input)
	Draw(c pong.Canvas)
	// Overlay reports whether the screen below stays visible.
	Overlay() bool
}

// Stack holds the active screens. Only the top screen updates.
type Stack struct {
	screens  []Screen
	disposed map[Screen]bool
	quit     bool
}

// NewStack returns a stack with the given screens pushed in order.
func NewStack(screens ...Screen) *Stack {
	s := &Stack{}
	for _, sc := range screens {
		s.Push(sc)
	}
	return s
}

func (s *Stack) Push(sc Screen) {
	if sc == nil {
		return
	}
	s.screens = append(s.screens, sc)
}

// Pop removes and returns the top screen, or nil when empty.
func (s *Stack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

func (s *Stack) Top() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

func (s *Stack) Len() int { return len(s.screens) }

// Dispose marks a screen for removal once the current update finishes.
func (s *Stack) Dispose(sc Screen) {
	if s.disposed == nil {
		s.disposed = make(map[Screen]bool)
	}
	s.disposed[sc] = true
}

// Quit asks the host to stop after this frame.
func (s *Stack) Quit() { s.quit = true }

// Done reports whether the host should stop.
func (s *Stack) Done() bool { return s.quit || len(s.screens) == 0 }

// Update runs the top screen and then drops disposed screens.
func (s *Stack) Update(in Input) {
	if in == nil {
		in = NoInput{}
	}
	if top := s.Top(); top != nil && !s.quit {
		top.Update(s, in)
	}
	s.sweep()
}

func (s *Stack) sweep() {
	if len(s.disposed) == 0 {
		return
	}
	kept := s.screens[:0]
	for _, sc := range s.screens {
		if !s.disposed[sc] {
			kept = append(kept, sc)
		}
	}
	for i := len(kept); i < len(s.screens); i++ {
		s.screens[i] = nil
	}
	s.screens = kept
	clear(s.disposed)
}

// Draw paints from the lowest visible screen up to the top.
func (s *Stack) Draw(c pong.Canvas) {
	if len(s.screens) == 0 {
		return
	}
	from := len(s.screens) - 1
	for from > 0 && s.screens[from].Overlay() {
		from--
	}
	for _, sc := range s.screens[from:] {
		sc.Draw(c)
	}
}
