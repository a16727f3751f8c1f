package input

import "math"

// DeadZone is the stick deflection ignored around centre.
const DeadZone = 0.15

// StickVertical converts a raw stick reading (positive down) into the paddle
// axis (positive up), zeroing the dead zone and rescaling the rest to [-1, 1].
func StickVertical(raw float64) float64 {
	if math.IsNaN(raw) || math.Abs(raw) <= DeadZone {
		return 0
	}
	v := (math.Abs(raw) - DeadZone) / (1 - DeadZone)
	if v > 1 {
		v = 1
	}
	if raw > 0 {
		return -v
	}
	return v
}

// Combine merges key and stick readings. Keys take precedence.
func Combine(up, down bool, stick float64) float64 {
	switch {
	case up && !down:
		return 1
	case down && !up:
		return -1
	case up && down:
		return 0
	}
	return stick
}
