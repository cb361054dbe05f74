package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange returns start, start+step, ... up to but excluding end. A
// non-positive step yields an empty slice.
func MakeRange[T constraints.Integer](start, end, step T) []T {
	if step <= 0 || start >= end {
		return []T{}
	}
	// counting steps instead of comparing i to end keeps unsigned types
	// from wrapping around near their maximum
	size := (end - start) / step
	if (end-start)%step != 0 {
		size++
	}
	sequence := make([]T, 0, int(size))
	for i := T(0); i < size; i++ {
		sequence = append(sequence, start+i*step)
	}
	return sequence
}
