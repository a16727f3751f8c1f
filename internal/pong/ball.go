package pong

import (
	"math"

	"pong/internal/geom"
)

const (
	DefaultBallRadius = 75.0

	// MaxBallSpeed caps each velocity component, in units per frame.
	MaxBallSpeed = 40.0

	minBallSpeedX = 1.0
	minBallSpeedY = 0.01

	// roundedSpread is the deflection in radians at the paddle tips.
	roundedSpread = 0.4
)

// Ball is the single moving body of a match.
type Ball struct {
	Position geom.Vec2
	Velocity geom.Vec2
	Radius   float64

	world *World
}

// Update advances the ball one frame and resolves wall and paddle contacts.
func (b *Ball) Update() {
	b.limit()
	b.Position = b.Position.Add(b.Velocity)

	f := b.world.field
	r := b.Radius

	if b.Position.X-r < f.Left {
		b.snapX(f.Left + r)
		b.Velocity.X = -b.Velocity.X
		b.contact(b.world.left)
	}
	if b.Position.X+r > f.Right {
		b.snapX(f.Right - r)
		b.Velocity.X = -b.Velocity.X
		b.contact(b.world.right)
	}

	if b.Position.Y-r < f.Top {
		b.snapY(f.Top + r)
		b.Velocity.Y = -b.Velocity.Y
	}
	if b.Position.Y+r > f.Bottom {
		b.snapY(f.Bottom - r)
		b.Velocity.Y = -b.Velocity.Y
	}

	b.limit()
}

// limit keeps each velocity component away from zero and under MaxBallSpeed.
func (b *Ball) limit() {
	if b.Velocity.Y == 0 {
		b.Velocity.Y = minBallSpeedY
	}
	if math.Abs(b.Velocity.X) < minBallSpeedX {
		if b.Velocity.X < 0 {
			b.Velocity.X = -minBallSpeedX
		} else {
			b.Velocity.X = minBallSpeedX
		}
	}
	b.Velocity.X = geom.Clamp(b.Velocity.X, -MaxBallSpeed, MaxBallSpeed)
	b.Velocity.Y = geom.Clamp(b.Velocity.Y, -MaxBallSpeed, MaxBallSpeed)
}

// snapX moves the ball back along its travel line until its centre is at x.
func (b *Ball) snapX(x float64) {
	if b.Velocity.X != 0 {
		b.Position.Y -= (b.Position.X - x) * b.Velocity.Y / b.Velocity.X
	}
	b.Position.X = x
}

// snapY moves the ball back along its travel line until its centre is at y.
// The horizontal correction never pushes the ball through a side wall.
func (b *Ball) snapY(y float64) {
	if b.Velocity.Y != 0 {
		b.Position.X -= (b.Position.Y - y) * b.Velocity.X / b.Velocity.Y
	}
	b.Position.Y = y
	f := b.world.field
	b.Position.X = geom.Clamp(b.Position.X, f.Left+b.Radius, f.Right-b.Radius)
}

// contact decides whether the paddle on the wall just reached returned the
// ball and reports the outcome to it. The velocity has already been mirrored.
func (b *Ball) contact(p *Paddle) {
	offset := b.Position.Y - p.Position()
	if math.Abs(offset) > PaddleHeight/2 {
		p.NegativeFeedback(b.Velocity.Angle(), b.Position.Y)
		return
	}

	if b.world.cfg.RoundedPaddles {
		rel := offset / (PaddleHeight / 2)
		base, spread := 0.0, roundedSpread*rel
		if p.Side() == Right {
			base, spread = math.Pi, -spread
		}
		speed := b.Velocity.Len()
		b.Velocity = geom.AngleToVector(base + spread).Scale(speed)
		b.Velocity.Y += p.YSpeed() * (1 + math.Abs(rel))
	}
	p.PositiveFeedback(b.Velocity.Angle(), b.Position.Y)
}

// Draw emits the ball sprite.
func (b *Ball) Draw(c Canvas) {
	c.DrawSprite(Sprite{
		Texture:  TextureBall,
		Position: b.Position,
		Origin:   geom.V(b.Radius, b.Radius),
		Scale:    1,
		Depth:    DepthBodies,
	})
}
