package movement

import (
	"fmt"
	"iter"
)

// Ring is a fixed-length, always-full sequence ordered newest first.
// Push overwrites the oldest slot in O(1).
type Ring[T any] struct {
	buf  []T
	head int // slot holding the newest value
}

// NewRing returns a ring of length n with every slot set to fill.
func NewRing[T any](n int, fill T) *Ring[T] {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = fill
	}
	return &Ring[T]{buf: buf}
}

func (r *Ring[T]) Len() int {
	return len(r.buf)
}

// Push inserts v as the newest value and returns the evicted oldest one.
func (r *Ring[T]) Push(v T) T {
	r.head--
	if r.head < 0 {
		r.head = len(r.buf) - 1
	}
	evicted := r.buf[r.head]
	r.buf[r.head] = v
	return evicted
}

// At returns the value pushed age pushes ago; age 0 is the newest.
func (r *Ring[T]) At(age int) T {
	if age < 0 || age >= len(r.buf) {
		panic(fmt.Sprintf("movement: ring age %d out of range [0,%d)", age, len(r.buf)))
	}
	return r.buf[(r.head+age)%len(r.buf)]
}

// All yields (age, value) pairs from newest to oldest.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := len(r.buf)
		for age := 0; age < n; age++ {
			if !yield(age, r.buf[(r.head+age)%n]) {
				return
			}
		}
	}
}
