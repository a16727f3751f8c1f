package screen

import "pong/internal/pong"

// Action is a discrete, edge-triggered menu or game command.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionSelect
	ActionBack
	ActionPause
	ActionToggleHUD
	ActionToggleOverlay
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	case ActionPause:
		return "pause"
	case ActionToggleHUD:
		return "toggle-hud"
	case ActionToggleOverlay:
		return "toggle-overlay"
	default:
		return "unknown"
	}
}

// Input is polled once per update. Pressed reports actions that started
// this frame; Vertical is the held paddle axis.
type Input interface {
	pong.VerticalInput
	Pressed(a Action) bool
}

// NoInput never reports anything.
type NoInput struct{}

func (NoInput) Vertical() float64 { return 0 }

func (NoInput) Pressed(Action) bool { return false }
