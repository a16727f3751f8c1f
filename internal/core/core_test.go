package core

import (
	"testing"
	"time"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestRNGRangeAndSign(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 200; i++ {
		v := r.Range(0.1, 1.0)
		if v < 0.1 || v >= 1.0 {
			t.Fatalf("Range out of bounds: %f", v)
		}
		if s := r.Sign(); s != 1 && s != -1 {
			t.Fatalf("Sign returned %f", s)
		}
	}
	if got := r.Range(2, 2); got != 2 {
		t.Fatalf("empty range should return lo, got %f", got)
	}
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}

func TestFixedStepPause(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatal("first call should step with the primed accumulator")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick should not step")
	}
	now = now.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("accumulated tick should step")
	}

	fs.Pause()
	now = now.Add(time.Second)
	if fs.ShouldStep() {
		t.Fatal("paused clock stepped")
	}
	fs.Resume()
	if fs.ShouldStep() {
		t.Fatal("resume must not replay the paused interval")
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Ball", Params: []Parameter{FloatParam("ball_speed", "Ball speed", 40)}},
		{Name: "Paddles", Params: []Parameter{StringParam("left_ai", "Left AI", "lead"), BoolParam("rounded", "Rounded", true)}},
	}}
	p, ok := snap.Lookup("left_ai")
	if !ok || p.Value != "lead" {
		t.Fatalf("Lookup(left_ai) = %+v, %v", p, ok)
	}
	if p, _ := snap.Lookup("ball_speed"); p.Value != "40" || p.Type != ParamTypeFloat {
		t.Fatalf("ball_speed = %+v", p)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key reported present")
	}
}
