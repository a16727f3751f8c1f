package control

import "pong/internal/pong"

// humanReach is how far ahead of the paddle a full input deflection aims.
const humanReach = 100.0

// Human steers a paddle from a vertical input source. The input acts like a
// velocity: zero keeps the paddle where it is.
type Human struct {
	input pong.VerticalInput
}

// NewHuman returns a controller reading from input.
func NewHuman(input pong.VerticalInput) *Human {
	if input == nil {
		input = pong.StillInput{}
	}
	return &Human{input: input}
}

func (h *Human) Update(p *pong.Paddle, _ *pong.World) {
	p.GoTo(p.Position() - humanReach*h.input.Vertical())
}
