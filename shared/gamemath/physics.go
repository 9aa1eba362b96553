package gamemath

import "math"

// SnapEpsilon is the distance under which a clamped speed lands exactly on its limit.
const SnapEpsilon = 1e-9

// Decay reduces speed toward zero by at most decel, never crossing zero.
func Decay(speed, decel float64) float64 {
	switch {
	case speed > 0:
		return speed - math.Min(decel, speed)
	case speed < 0:
		return speed + math.Min(decel, -speed)
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
// Values within SnapEpsilon of either limit snap onto it, so repeated
// fractional steps reach the limit on the tick they are supposed to.
func ClampSpeed(speed, max float64) float64 {
	if speed >= max-SnapEpsilon {
		return max
	}
	if speed <= -max+SnapEpsilon {
		return -max
	}
	return speed
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lerp moves from toward to by the given fraction.
func Lerp(from, to, fraction float64) float64 {
	return from + (to-from)*fraction
}
