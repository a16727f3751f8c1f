package screen

import (
	"errors"

	"pong/internal/core"
	"pong/internal/geom"
	"pong/internal/pong"
)

// ErrNoMatch is reported when Play is chosen without a match factory.
var ErrNoMatch = errors.New("screen: no match factory")

// MatchFactory builds a fresh match each time Play is chosen.
type MatchFactory func() (*pong.World, error)

// Main is the title screen.
type Main struct {
	menu     Menu
	size     core.Size
	newMatch MatchFactory
	err      error
}

// NewMain builds the title menu for a canvas of the given size.
func NewMain(size core.Size, newMatch MatchFactory) *Main {
	m := &Main{size: size, newMatch: newMatch}
	m.menu = Menu{
		Title:    "PONG",
		Position: geom.V(float64(size.W)/2, float64(size.H)/3),
		Entries: []Entry{
			{Label: "Play", Action: m.play},
			{Label: "Quit", Action: func(s *Stack) { s.Quit() }},
		},
	}
	return m
}

func (m *Main) play(s *Stack) {
	if m.newMatch == nil {
		m.err = ErrNoMatch
		return
	}
	w, err := m.newMatch()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	s.Push(NewPlay(w, m.size))
}

// Err returns the error from the last failed attempt to start a match.
func (m *Main) Err() error { return m.err }

func (m *Main) Menu() *Menu { return &m.menu }

func (m *Main) Update(s *Stack, in Input) { m.menu.Update(s, in) }

func (m *Main) Draw(c pong.Canvas) {
	m.menu.Draw(c)
	if m.err != nil {
		c.DrawText(pong.Text{
			Value:    m.err.Error(),
			Position: geom.V(float64(m.size.W)/2, float64(m.size.H)*0.8),
			Scale:    2,
			Depth:    pong.DepthOverlay,
			Centered: true,
		})
	}
}

func (m *Main) Overlay() bool { return false }
