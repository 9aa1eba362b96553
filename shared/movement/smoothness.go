package movement

import (
	"fmt"
	"math"
)

// SentinelAngle is recorded instead of a turning angle when two consecutive
// positions share the same x. It is 1 radian, not pi/2, and the score's
// numeric behaviour depends on that value.
const SentinelAngle = 1.0

// TurningAngle returns |atan(dy/dx)| between two positions, or
// SentinelAngle when dx is zero.
func TurningAngle(prev, cur Vec) float64 {
	if cur.X == prev.X {
		return SentinelAngle
	}
	return math.Abs(math.Atan((cur.Y - prev.Y) / (cur.X - prev.X)))
}

// SmoothnessEstimator scores how steady a path's heading is.
//
// The angle ring starts filled with SentinelAngle, so every window has zero
// variance and Score is 1 until real samples have pushed the sentinels out.
// Window variances live in a second ring aligned with the angle windows;
// each push adds the newest window, evicts the oldest and updates a running
// total. The total is re-summed once per revolution to bound float drift.
type SmoothnessEstimator struct {
	window    int
	last      Vec
	angles    *Ring[float64]
	variances *Ring[float64]
	total     float64
	pushes    int
	score     float64
}

// NewSmoothnessEstimator tracks historyLen angles starting at spawn.
func NewSmoothnessEstimator(historyLen, window int, spawn Vec) (*SmoothnessEstimator, error) {
	if window < 2 || window > historyLen {
		return nil, fmt.Errorf("%w: smoothness window %d does not fit history of %d",
			ErrInvalidProfile, window, historyLen)
	}
	return &SmoothnessEstimator{
		window:    window,
		last:      spawn,
		angles:    NewRing(historyLen, SentinelAngle),
		variances: NewRing(historyLen-window+1, 0.0),
		score:     1,
	}, nil
}

// Push records the turning angle from the previous position to p.
func (s *SmoothnessEstimator) Push(p Vec) {
	s.angles.Push(TurningAngle(s.last, p))
	s.last = p

	v := s.newestWindowVariance()
	s.total += v - s.variances.Push(v)

	s.pushes++
	if s.pushes%s.variances.Len() == 0 {
		s.total = 0
		for _, w := range s.variances.All() {
			s.total += w
		}
	}

	mean := s.total / float64(s.variances.Len())
	s.score = math.Max(0, math.Min(1, 1-100*mean))
}

// Score is in [0, 1]; 1 is a perfectly steady heading.
func (s *SmoothnessEstimator) Score() float64 {
	return s.score
}

// LastAngle is the most recently recorded angle.
func (s *SmoothnessEstimator) LastAngle() float64 {
	return s.angles.At(0)
}

// newestWindowVariance is the population variance of the newest window.
func (s *SmoothnessEstimator) newestWindowVariance() float64 {
	var sum float64
	for i := 0; i < s.window; i++ {
		sum += s.angles.At(i)
	}
	mean := sum / float64(s.window)

	var sq float64
	for i := 0; i < s.window; i++ {
		d := s.angles.At(i) - mean
		sq += d * d
	}
	return sq / float64(s.window)
}
