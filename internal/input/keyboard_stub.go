//go:build !ebiten

package input

import "pong/internal/screen"

// Keyboard is an inert placeholder for headless builds.
type Keyboard struct{}

func NewKeyboard() *Keyboard { return &Keyboard{} }

func (k *Keyboard) Vertical() float64 { return 0 }

func (k *Keyboard) Pressed(screen.Action) bool { return false }
