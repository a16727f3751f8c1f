package control

import (
	"pong/internal/core"
	"pong/internal/pong"
)

// edgeMargin is how far inside the travel limits a drifting paddle is sent back.
const edgeMargin = 10.0

// Random drives a paddle with a random walk over jerk: each frame the jerk
// is ±1, acceleration integrates jerk and velocity integrates acceleration.
type Random struct {
	rng *core.RNG

	velocity     float64
	acceleration float64
	jerk         float64
}

// NewRandom returns a random-walk controller drawing from rng.
func NewRandom(rng *core.RNG) *Random {
	return &Random{rng: rng}
}

func (r *Random) Update(p *pong.Paddle, _ *pong.World) {
	p.GoTo(p.Position() + r.velocity)
	r.velocity += r.acceleration
	r.acceleration += r.jerk
	r.jerk = r.rng.Sign()

	if p.Position() >= p.MaxY() {
		p.GoTo(p.MaxY() - edgeMargin)
		r.acceleration = 0
		r.velocity = 0
	}
	if p.Position() <= p.MinY() {
		p.GoTo(p.MinY() + edgeMargin)
		r.acceleration = 0
		r.velocity = 0
	}
}
