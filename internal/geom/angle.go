package geom

import "math"

// AngleToVector returns the unit vector pointing along angle (radians).
// Angle 0 points right, π/2 points down.
func AngleToVector(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// VectorToAngle is the inverse of AngleToVector, normalised to [0, 2π).
func VectorToAngle(x, y float64) float64 {
	a := math.Atan2(y, x)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Fold mirrors v back into [lo, hi] as many times as needed, as if v were a
// point travelling between two reflecting walls. An empty range returns lo and
// non-finite input returns the midpoint.
func Fold(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo + span/2
	}
	t := math.Mod(v-lo, 2*span)
	if t < 0 {
		t += 2 * span
	}
	if t > span {
		t = 2*span - t
	}
	return lo + t
}
