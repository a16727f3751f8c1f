package pong

import (
	"errors"
	"fmt"
	"math"

	"pong/internal/core"
	"pong/internal/geom"
)

// ErrInvalidField is returned when the playing field cannot hold the bodies.
var ErrInvalidField = errors.New("pong: invalid playing field")

// ErrInvalidSpeed is returned when a ball or paddle speed is not a positive
// finite number.
var ErrInvalidSpeed = errors.New("pong: invalid speed")

// Config holds the settings fixed at round construction.
type Config struct {
	Field          geom.Rect
	BallSpeed      float64
	BallRadius     float64
	MaxPaddleSpeed float64
	RoundedPaddles bool
	LeftAI         AIType
	RightAI        AIType
}

// DefaultConfig returns the standard match on a 1920x1080 canvas.
func DefaultConfig() Config {
	return Config{
		Field:          geom.RectXYWH(200, 40, 1920-2*200, 1080-2*40),
		BallSpeed:      40,
		BallRadius:     DefaultBallRadius,
		MaxPaddleSpeed: 5,
		RoundedPaddles: true,
		LeftAI:         AILeadPursuit,
		RightAI:        AIHuman,
	}
}

// Validate reports whether the field can hold the ball and the paddles and
// whether the speeds are usable.
func (c Config) Validate() error {
	f := c.Field
	switch {
	case !finite(f.Left, f.Top, f.Right, f.Bottom) || !f.Valid():
		return fmt.Errorf("%w: edges %+v", ErrInvalidField, f)
	case f.Height() < PaddleHeight:
		return fmt.Errorf("%w: height %.0f below paddle height %.0f", ErrInvalidField, f.Height(), PaddleHeight)
	case !finite(c.BallRadius) || c.BallRadius < 0 || f.Width() <= 2*c.BallRadius || f.Height() <= 2*c.BallRadius:
		return fmt.Errorf("%w: ball radius %.0f does not fit", ErrInvalidField, c.BallRadius)
	case !finite(c.BallSpeed) || c.BallSpeed <= 0:
		return fmt.Errorf("%w: ball speed %v", ErrInvalidSpeed, c.BallSpeed)
	case !finite(c.MaxPaddleSpeed) || c.MaxPaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed %v", ErrInvalidSpeed, c.MaxPaddleSpeed)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// World owns the field, the ball and both paddles for one round.
type World struct {
	cfg   Config
	env   Env
	field geom.Rect

	ball  *Ball
	left  *Paddle
	right *Paddle

	frame int
}

// NewWorld builds a round using the registered controllers for the
// configured AI types.
func NewWorld(cfg Config, env Env) (*World, error) {
	env = env.withDefaults()
	left, err := NewController(cfg.LeftAI, env)
	if err != nil {
		return nil, fmt.Errorf("left paddle: %w", err)
	}
	right, err := NewController(cfg.RightAI, env)
	if err != nil {
		return nil, fmt.Errorf("right paddle: %w", err)
	}
	return NewWorldWithControllers(cfg, env, left, right)
}

// NewWorldWithControllers builds a round with explicit controllers. A nil
// controller leaves its paddle in place.
func NewWorldWithControllers(cfg Config, env Env, left, right Controller) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	env = env.withDefaults()

	w := &World{cfg: cfg, env: env, field: cfg.Field}
	w.left = newPaddle(w, Left, left)
	w.right = newPaddle(w, Right, right)

	rng := env.RNG
	dir := geom.V(
		rng.Sign()*rng.Range(0.1, 1.0),
		rng.Sign()*rng.Range(0.1, 1.0),
	).Normalize()
	w.ball = &Ball{
		Position: w.field.Center(),
		Velocity: dir.Scale(cfg.BallSpeed),
		Radius:   cfg.BallRadius,
		world:    w,
	}
	return w, nil
}

// Update advances the round by one frame. The ball moves first so that
// paddle controllers see feedback from this frame.
func (w *World) Update() {
	w.ball.Update()
	w.left.Update()
	w.right.Update()
	w.frame++
}

// Draw emits the draw intents for the whole round.
func (w *World) Draw(c Canvas) {
	c.DrawSprite(Sprite{Texture: TextureBackground, Scale: 1, Depth: DepthBackground})
	w.ball.Draw(c)
	w.left.Draw(c)
	w.right.Draw(c)
	c.DrawOutline(w.field, DepthOutline)
}

func (w *World) Ball() *Ball { return w.ball }

func (w *World) Left() *Paddle { return w.left }

func (w *World) Right() *Paddle { return w.right }

// Paddle returns the paddle defending the given side.
func (w *World) Paddle(s Side) *Paddle {
	if s == Left {
		return w.left
	}
	return w.right
}

func (w *World) Field() geom.Rect { return w.field }

func (w *World) Config() Config { return w.cfg }

func (w *World) Env() Env { return w.env }

// Frame returns the number of completed updates.
func (w *World) Frame() int { return w.frame }

// Parameters exposes the round settings and running statistics.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Match",
			Params: []core.Parameter{
				core.IntParam("frame", "Frame", w.frame),
				core.BoolParam("rounded", "Rounded paddles", w.cfg.RoundedPaddles),
				core.FloatParam("paddle_speed", "Max paddle speed", w.cfg.MaxPaddleSpeed),
			},
		},
		{
			Name: "Ball",
			Params: []core.Parameter{
				core.FloatParam("ball_speed", "Launch speed", w.cfg.BallSpeed),
				core.FloatParam("ball_radius", "Radius", w.ball.Radius),
				core.FloatParam("ball_velocity", "Current speed", round2(w.ball.Velocity.Len())),
			},
		},
		paddleGroup("Left paddle", "left", w.cfg.LeftAI, w.left),
		paddleGroup("Right paddle", "right", w.cfg.RightAI, w.right),
	}
	return core.ParameterSnapshot{Groups: groups}
}

func paddleGroup(name, key string, ai AIType, p *Paddle) core.ParameterGroup {
	return core.ParameterGroup{
		Name: name,
		Params: []core.Parameter{
			core.StringParam(key+"_ai", "Controller", ai.String()),
			core.IntParam(key+"_hits", "Hits", p.Hits()),
			core.IntParam(key+"_attempts", "Attempts", p.Attempts()),
			core.FloatParam(key+"_accuracy", "Accuracy", round2(p.Accuracy())),
		},
	}
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
