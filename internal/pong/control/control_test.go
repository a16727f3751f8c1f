package control

import (
	"math"
	"testing"

	"pong/internal/core"
	"pong/internal/geom"
	"pong/internal/pong"
)

type fixedInput float64

func (f fixedInput) Vertical() float64 { return float64(f) }

func square(t *testing.T, left, right pong.Controller) *pong.World {
	t.Helper()
	cfg := pong.Config{
		Field:          geom.Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000},
		BallSpeed:      10,
		BallRadius:     50,
		MaxPaddleSpeed: 5,
		RoundedPaddles: false,
	}
	w, err := pong.NewWorldWithControllers(cfg, pong.Env{RNG: core.NewRNG(11)}, left, right)
	if err != nil {
		t.Fatalf("NewWorldWithControllers: %v", err)
	}
	return w
}

func TestRegistered(t *testing.T) {
	for _, kind := range []pong.AIType{pong.AIHuman, pong.AIRandom, pong.AIPurePursuit, pong.AILeadPursuit} {
		if _, ok := pong.Controllers()[kind]; !ok {
			t.Fatalf("%v not registered", kind)
		}
	}
	w, err := pong.NewWorld(pong.DefaultConfig(), pong.Env{RNG: core.NewRNG(1)})
	if err != nil {
		t.Fatalf("NewWorld with default config: %v", err)
	}
	if _, ok := w.Left().Controller().(*LeadPursuit); !ok {
		t.Fatalf("left controller = %T, want *LeadPursuit", w.Left().Controller())
	}
	if _, ok := w.Right().Controller().(*Human); !ok {
		t.Fatalf("right controller = %T, want *Human", w.Right().Controller())
	}
}

func TestPurePursuitTracksBall(t *testing.T) {
	w := square(t, PurePursuit{}, nil)
	w.Ball().Position = geom.V(500, 300)
	p := w.Left()

	PurePursuit{}.Update(p, w)

	if p.Target() != 300 {
		t.Fatalf("target = %f, want 300", p.Target())
	}
}

func TestHumanInputActsAsVelocity(t *testing.T) {
	w := square(t, nil, nil)
	p := w.Left()

	NewHuman(fixedInput(0.5)).Update(p, w)
	if want := p.Position() - 50; p.Target() != want {
		t.Fatalf("target = %f, want %f", p.Target(), want)
	}

	NewHuman(fixedInput(-1)).Update(p, w)
	if want := p.Position() + 100; p.Target() != want {
		t.Fatalf("target = %f, want %f", p.Target(), want)
	}

	NewHuman(nil).Update(p, w)
	if p.Target() != p.Position() {
		t.Fatalf("idle input moved target to %f", p.Target())
	}
}

func TestRandomResetsAtEdges(t *testing.T) {
	random := NewRandom(core.NewRNG(4))
	pushed := false
	driver := pong.ControllerFunc(func(p *pong.Paddle, w *pong.World) {
		if !pushed {
			p.GoTo(1e6)
			return
		}
		random.Update(p, w)
	})
	w := square(t, driver, nil)
	p := w.Left()
	for i := 0; i < 200; i++ {
		p.Update()
	}
	if p.Position() != p.MaxY() {
		t.Fatalf("paddle at %f, want parked at %f", p.Position(), p.MaxY())
	}

	random.velocity, random.acceleration = 30, 4
	pushed = true
	p.Update()

	if p.Target() != p.MaxY()-edgeMargin {
		t.Fatalf("target = %f, want %f", p.Target(), p.MaxY()-edgeMargin)
	}
	if random.velocity != 0 || random.acceleration != 0 {
		t.Fatalf("velocity/acceleration = %f/%f, want reset", random.velocity, random.acceleration)
	}
}

func TestRandomIntegratesJerk(t *testing.T) {
	const seed = 33
	random := NewRandom(core.NewRNG(seed))
	mirror := core.NewRNG(seed)
	w := square(t, nil, nil)
	p := w.Left()
	start := p.Position()

	var vel, acc, jerk float64
	for i := 0; i < 25; i++ {
		random.Update(p, w)

		if got, want := p.Target(), start+vel; got != want {
			t.Fatalf("step %d: target = %f, want %f", i, got, want)
		}
		vel += acc
		acc += jerk
		jerk = mirror.Sign()
		if random.velocity != vel || random.acceleration != acc || random.jerk != jerk {
			t.Fatalf("step %d: vel/acc/jerk = %f/%f/%f, want %f/%f/%f",
				i, random.velocity, random.acceleration, random.jerk, vel, acc, jerk)
		}
		if jerk != 1 && jerk != -1 {
			t.Fatalf("step %d: jerk = %f, want ±1", i, jerk)
		}
	}
}

func TestRandomWalkDeterministicAndBounded(t *testing.T) {
	run := func() []float64 {
		w := square(t, NewRandom(core.NewRNG(21)), nil)
		var trace []float64
		for i := 0; i < 2000; i++ {
			w.Left().Update()
			y := w.Left().Position()
			if y < w.Left().MinY() || y > w.Left().MaxY() {
				t.Fatalf("frame %d: paddle at %f", i, y)
			}
			trace = append(trace, y)
		}
		return trace
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d diverged: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestInterceptHorizontalShot(t *testing.T) {
	got := Intercept(math.Pi, 500, 900, 50, 950)
	if math.Abs(got-500) > 1e-9 {
		t.Fatalf("straight shot intercept = %f, want 500", got)
	}
	if got := Intercept(0, 321, 900, 50, 950); got != 321 {
		t.Fatalf("angle 0 intercept = %f, want 321", got)
	}
}

func TestInterceptReflects(t *testing.T) {
	cases := []struct {
		name  string
		angle float64
		y     float64
		dist  float64
		want  float64
	}{
		{"down-right no bounce", math.Pi / 4, 200, 300, 500},
		{"down-right one bounce", math.Pi / 4, 500, 1000, 500},
		{"down-left one bounce", 3 * math.Pi / 4, 800, 400, 800},
		{"up-left off top", 5 * math.Pi / 4, 100, 300, 200},
		{"many bounces", math.Pi / 4, 0, 5500, 500},
	}
	for _, tc := range cases {
		got := Intercept(tc.angle, tc.y, tc.dist, 0, 1000)
		if math.Abs(got-tc.want) > 1e-6 {
			t.Fatalf("%s: intercept = %f, want %f", tc.name, got, tc.want)
		}
	}
}

func TestInterceptVerticalStaysFinite(t *testing.T) {
	got := Intercept(math.Pi/2, 500, 900, 50, 950)
	if math.IsNaN(got) || got < 50 || got > 950 {
		t.Fatalf("vertical shot intercept = %f, want inside [50,950]", got)
	}
}

func TestLeadPursuitDefendsAgainstOpponentShot(t *testing.T) {
	lead := NewLeadPursuit()
	w := square(t, lead, nil)
	b := w.Ball()
	b.Position = geom.V(945, 300)
	b.Velocity = geom.V(10, 5)

	w.Update()

	last, ok := w.Right().LastState()
	if !ok {
		t.Fatal("right paddle recorded no state")
	}
	want := Intercept(last.BallAngle, last.BallPosition, 900, 50, 950)
	if got := w.Left().Target(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("defend target = %f, want %f", got, want)
	}

	w.Left().GoTo(123)
	b.Position = geom.V(500, 500)
	b.Velocity = geom.V(-10, 1)
	w.Update()
	if w.Left().Target() != 123 {
		t.Fatalf("target recomputed without a new state: %f", w.Left().Target())
	}
}

func TestLeadPursuitPrePredictsReturn(t *testing.T) {
	lead := NewLeadPursuit()
	w := square(t, lead, nil)
	b := w.Ball()
	b.Position = geom.V(55, 520)
	b.Velocity = geom.V(-10, 3)

	w.Update()

	last, ok := w.Left().LastState()
	if !ok || !last.Success {
		t.Fatalf("left paddle state = %+v, %v; want a hit", last, ok)
	}
	want := Intercept(last.BallAngle, last.BallPosition, 1800, 50, 950)
	if got := w.Left().Target(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("pre-predict target = %f, want %f", got, want)
	}
}

func TestMatchesRunWithoutEscapes(t *testing.T) {
	kinds := []pong.AIType{pong.AIRandom, pong.AIPurePursuit, pong.AILeadPursuit}
	for _, left := range kinds {
		for _, right := range kinds {
			cfg := pong.DefaultConfig()
			cfg.LeftAI, cfg.RightAI = left, right
			w, err := pong.NewWorld(cfg, pong.Env{RNG: core.NewRNG(int64(left)*10 + int64(right))})
			if err != nil {
				t.Fatalf("%v vs %v: %v", left, right, err)
			}
			f := w.Field()
			for i := 0; i < 2000; i++ {
				w.Update()
				for _, p := range []*pong.Paddle{w.Left(), w.Right()} {
					if y := p.Position(); y < f.Top+pong.PaddleHeight/2 || y > f.Bottom-pong.PaddleHeight/2 {
						t.Fatalf("%v vs %v frame %d: %s paddle at %f", left, right, i, p.Side(), y)
					}
				}
			}
			if w.Left().Attempts()+w.Right().Attempts() == 0 {
				t.Fatalf("%v vs %v: no wall contacts in 2000 frames", left, right)
			}
		}
	}
}
