package pong

import (
	"math"
	"strconv"

	"pong/internal/geom"
)

const (
	PaddleWidth  = 100.0
	PaddleHeight = 400.0

	// MaxHistory bounds the number of retained PaddleState entries.
	MaxHistory = 4096
)

// Side identifies which wall a paddle defends.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Paddle is a vertical bat fixed to one side of the field.
type Paddle struct {
	world      *World
	controller Controller
	side       Side

	x      float64
	y      float64
	target float64
	ySpeed float64

	history  []PaddleState
	recorded int

	hits     int
	attempts int
}

func newPaddle(w *World, side Side, c Controller) *Paddle {
	f := w.field
	x := f.Left - PaddleWidth/2
	if side == Right {
		x = f.Right + PaddleWidth/2
	}
	y := f.Center().Y
	return &Paddle{world: w, controller: c, side: side, x: x, y: y, target: y}
}

// Update runs the controller and moves toward the target by at most the
// configured paddle speed, then clamps into the field.
func (p *Paddle) Update() {
	prev := p.y
	if p.controller != nil {
		p.controller.Update(p, p.world)
	}

	maxStep := p.world.cfg.MaxPaddleSpeed
	delta := p.target - p.y
	if math.Abs(delta) > maxStep {
		delta = math.Copysign(maxStep, delta)
	}
	p.y += delta
	p.y = geom.Clamp(p.y, p.MinY(), p.MaxY())
	p.ySpeed = p.y - prev
}

// GoTo sets the position the paddle moves toward. The last call in a frame wins.
func (p *Paddle) GoTo(target float64) { p.target = target }

// Position returns the vertical centre of the paddle.
func (p *Paddle) Position() float64 { return p.y }

// Target returns the current goal position.
func (p *Paddle) Target() float64 { return p.target }

// X returns the fixed horizontal centre of the paddle.
func (p *Paddle) X() float64 { return p.x }

// YSpeed returns how far the paddle moved during its last update.
func (p *Paddle) YSpeed() float64 { return p.ySpeed }

func (p *Paddle) Side() Side { return p.side }

func (p *Paddle) Controller() Controller { return p.controller }

// MinY and MaxY bound the paddle centre so the paddle stays inside the field.
func (p *Paddle) MinY() float64 { return p.world.field.Top + PaddleHeight/2 }

func (p *Paddle) MaxY() float64 { return p.world.field.Bottom - PaddleHeight/2 }

// PositiveFeedback records that the paddle returned the ball.
func (p *Paddle) PositiveFeedback(ballAngle, ballY float64) {
	p.hits++
	p.attempts++
	p.record(PaddleState{Success: true, PaddlePosition: p.y, BallAngle: ballAngle, BallPosition: ballY})
	p.world.env.Audio.Play(Cue{Sound: p.sound(), Volume: 1})
}

// NegativeFeedback records that the ball reached the wall past the paddle.
func (p *Paddle) NegativeFeedback(ballAngle, ballY float64) {
	p.attempts++
	p.record(PaddleState{Success: false, PaddlePosition: p.y, BallAngle: ballAngle, BallPosition: ballY})
	pan := 1.0
	if p.side == Left {
		pan = -1
	}
	p.world.env.Audio.Play(Cue{Sound: p.sound(), Volume: 1, Pan: pan})
}

func (p *Paddle) sound() string {
	if p.side == Left {
		return SoundLeft
	}
	return SoundRight
}

func (p *Paddle) record(s PaddleState) {
	if len(p.history) >= MaxHistory {
		n := copy(p.history, p.history[1:])
		p.history = p.history[:n]
	}
	p.history = append(p.history, s)
	p.recorded++
}

// History returns the retained states, oldest first. Callers must not modify it.
func (p *Paddle) History() []PaddleState { return p.history }

// HistoryCount returns how many states were ever recorded, including any
// dropped by the MaxHistory bound.
func (p *Paddle) HistoryCount() int { return p.recorded }

// LastState returns the most recent state, if any.
func (p *Paddle) LastState() (PaddleState, bool) {
	if len(p.history) == 0 {
		return PaddleState{}, false
	}
	return p.history[len(p.history)-1], true
}

// Other returns the opposing paddle.
func (p *Paddle) Other() *Paddle {
	if p.side == Left {
		return p.world.right
	}
	return p.world.left
}

func (p *Paddle) Hits() int { return p.hits }

func (p *Paddle) Attempts() int { return p.attempts }

// Accuracy returns hits/attempts, or 0 before the first attempt.
func (p *Paddle) Accuracy() float64 {
	if p.attempts == 0 {
		return 0
	}
	return float64(p.hits) / float64(p.attempts)
}

// Draw emits the paddle sprite and its hit counter.
func (p *Paddle) Draw(c Canvas) {
	tex := TexturePaddleA
	scoreX := p.world.field.Left + 70
	if p.side == Right {
		tex = TexturePaddleB
		scoreX = p.world.field.Right - 70
	}
	c.DrawSprite(Sprite{
		Texture:  tex,
		Position: geom.V(p.x, p.y),
		Origin:   geom.V(PaddleWidth/2, PaddleHeight/2),
		Scale:    1,
		Depth:    DepthBodies,
	})
	c.DrawText(Text{
		Value:    strconv.Itoa(p.hits),
		Position: geom.V(scoreX, p.world.field.Bottom-60),
		Scale:    2,
		Depth:    DepthScore,
		Centered: true,
	})
}
