package control

import "pong/internal/pong"

// PurePursuit always heads for the ball's current height.
type PurePursuit struct{}

func (PurePursuit) Update(p *pong.Paddle, w *pong.World) {
	p.GoTo(w.Ball().Position.Y)
}
