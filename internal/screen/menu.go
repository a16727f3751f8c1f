package screen

import (
	"pong/internal/geom"
	"pong/internal/pong"
)

const (
	menuSpacing    = 70.0
	menuTitleScale = 5.0
	menuEntryScale = 3.0
)

// Entry is a labelled menu action.
type Entry struct {
	Label  string
	Action func(s *Stack)
}

// Menu is a vertical list with wrap-around navigation.
type Menu struct {
	Title    string
	Entries  []Entry
	Back     func(s *Stack)
	Position geom.Vec2
	selected int
}

func (m *Menu) Selected() int { return m.selected }

// Select moves the cursor, wrapping at both ends.
func (m *Menu) Select(i int) {
	n := len(m.Entries)
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = ((i % n) + n) % n
}

func (m *Menu) Update(s *Stack, in Input) {
	switch {
	case in.Pressed(ActionUp):
		m.Select(m.selected - 1)
	case in.Pressed(ActionDown):
		m.Select(m.selected + 1)
	case in.Pressed(ActionSelect):
		if m.selected < len(m.Entries) && m.Entries[m.selected].Action != nil {
			m.Entries[m.selected].Action(s)
		}
	case in.Pressed(ActionBack):
		if m.Back != nil {
			m.Back(s)
		}
	}
}

func (m *Menu) Draw(c pong.Canvas) {
	pos := m.Position
	if m.Title != "" {
		c.DrawText(pong.Text{Value: m.Title, Position: pos, Scale: menuTitleScale, Depth: pong.DepthOverlay, Centered: true})
		pos.Y += 2 * menuSpacing
	}
	for i, e := range m.Entries {
		label := e.Label
		if i == m.selected {
			label = "> " + label + " <"
		}
		c.DrawText(pong.Text{Value: label, Position: pos, Scale: menuEntryScale, Depth: pong.DepthOverlay, Centered: true})
		pos.Y += menuSpacing
	}
}
