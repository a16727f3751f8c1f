package screen

import (
	"pong/internal/core"
	"pong/internal/geom"
	"pong/internal/pong"
)

// Pause freezes the match beneath it.
type Pause struct {
	menu Menu
	play *Play
}

func NewPause(play *Play, size core.Size) *Pause {
	p := &Pause{play: play}
	p.menu = Menu{
		Title:    "Paused",
		Position: geom.V(float64(size.W)/2, float64(size.H)/3),
		Back:     p.resume,
		Entries: []Entry{
			{Label: "Resume", Action: p.resume},
			{Label: "Main Menu", Action: p.leave},
		},
	}
	return p
}

func (p *Pause) resume(s *Stack) { s.Dispose(p) }

func (p *Pause) leave(s *Stack) {
	s.Dispose(p)
	if p.play != nil {
		s.Dispose(p.play)
	}
}

func (p *Pause) Menu() *Menu { return &p.menu }

func (p *Pause) Update(s *Stack, in Input) {
	if in.Pressed(ActionPause) {
		p.resume(s)
		return
	}
	p.menu.Update(s, in)
}

func (p *Pause) Draw(c pong.Canvas) { p.menu.Draw(c) }

func (p *Pause) Overlay() bool { return true }
