package pong

import "math"

// ScaledBallAngle maps an angle in [0, π] to [0, 1], clamping outside values.
func (w *World) ScaledBallAngle(angle float64) float64 {
	return scale(angle, 0, math.Pi)
}

// ScaledBallPosition maps a ball centre y in [top+r, bottom-r] to [0, 1].
func (w *World) ScaledBallPosition(y float64) float64 {
	lo, hi := w.ballRange()
	return scale(y, lo, hi)
}

// UnscaledBallPosition is the inverse of ScaledBallPosition.
func (w *World) UnscaledBallPosition(s float64) float64 {
	lo, hi := w.ballRange()
	return unscale(s, lo, hi)
}

// ScaledPaddlePosition maps a paddle centre y in [top+h/2, bottom-h/2] to [0, 1].
func (w *World) ScaledPaddlePosition(y float64) float64 {
	return scale(y, w.left.MinY(), w.left.MaxY())
}

// UnscaledPaddlePosition is the inverse of ScaledPaddlePosition.
func (w *World) UnscaledPaddlePosition(s float64) float64 {
	return unscale(s, w.left.MinY(), w.left.MaxY())
}

func (w *World) ballRange() (float64, float64) {
	return w.field.Top + w.ball.Radius, w.field.Bottom - w.ball.Radius
}

func scale(v, lo, hi float64) float64 {
	if v < lo {
		return 0
	}
	if v > hi {
		return 1
	}
	if lo == hi {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func unscale(s, lo, hi float64) float64 {
	if s < 0 {
		return lo
	}
	if s > 1 {
		return hi
	}
	return (hi-lo)*s + lo
}
