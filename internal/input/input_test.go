package input

import (
	"math"
	"testing"

	"pong/internal/screen"
)

func TestStickVerticalDeadZone(t *testing.T) {
	for _, raw := range []float64{0, 0.1, -0.15, math.NaN()} {
		if got := StickVertical(raw); got != 0 {
			t.Fatalf("StickVertical(%v) = %v, want 0", raw, got)
		}
	}
}

func TestStickVerticalNegatesAndRescales(t *testing.T) {
	cases := []struct {
		raw, want float64
	}{
		{1, -1},
		{-1, 1},
		{2, -1},
		{-(DeadZone + (1-DeadZone)/2), 0.5},
	}
	for _, tc := range cases {
		if got := StickVertical(tc.raw); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("StickVertical(%v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestCombineKeysWin(t *testing.T) {
	if got := Combine(true, false, -0.4); got != 1 {
		t.Fatalf("up = %v", got)
	}
	if got := Combine(false, true, 0.4); got != -1 {
		t.Fatalf("down = %v", got)
	}
	if got := Combine(true, true, 0.4); got != 0 {
		t.Fatalf("both = %v", got)
	}
	if got := Combine(false, false, 0.4); got != 0.4 {
		t.Fatalf("stick = %v", got)
	}
}

func TestKeyboardIsScreenInput(t *testing.T) {
	var _ screen.Input = NewKeyboard()
}
