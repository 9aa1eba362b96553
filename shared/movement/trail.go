package movement

import (
	"image/color"
	"iter"
)

// TrailSample is one recorded position with the colour it had at the time.
type TrailSample struct {
	Pos   Vec
	Color color.RGBA
}

// TrailPoint is a sample annotated with its age; 0 is the newest.
type TrailPoint struct {
	TrailSample
	Age int
}

// TrailHistory keeps the most recent samples of a player's path.
// Its length is fixed for its lifetime.
type TrailHistory struct {
	samples *Ring[TrailSample]
}

// NewTrailHistory returns a trail of length n filled with the spawn sample.
func NewTrailHistory(n int, spawn TrailSample) *TrailHistory {
	return &TrailHistory{samples: NewRing(n, spawn)}
}

func (t *TrailHistory) Push(s TrailSample) {
	t.samples.Push(s)
}

func (t *TrailHistory) Len() int {
	return t.samples.Len()
}

func (t *TrailHistory) At(age int) TrailSample {
	return t.samples.At(age)
}

func (t *TrailHistory) Newest() TrailSample {
	return t.samples.At(0)
}

// Points yields the trail from newest to oldest. The sequence can be
// ranged over any number of times.
func (t *TrailHistory) Points() iter.Seq[TrailPoint] {
	return func(yield func(TrailPoint) bool) {
		for age, s := range t.samples.All() {
			if !yield(TrailPoint{TrailSample: s, Age: age}) {
				return
			}
		}
	}
}

// FadeScale is the size factor for a sample of the given age:
// 1 for the newest, 1/Len for the oldest.
func (t *TrailHistory) FadeScale(age int) float64 {
	n := t.Len()
	return float64(n-age) / float64(n)
}
