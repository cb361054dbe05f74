package product

import (
	"product-with-repeat/ds"
)

// Counter is a mixed-radix counter. Digit i ranges over [0, radices[i]) and
// digit 0 is the most significant one, so incrementing it walks index tuples
// in lexicographic order.
//
// For example, with radices [2, 3] the counter goes through
//
//	[0 0] [0 1] [0 2] [1 0] [1 1] [1 2]
//
// and the next Increment reports a carry out of digit 0.
type Counter struct {
	radices []int
	digits  []int
}

func NewCounter(radices []int) *Counter {
	return &Counter{
		radices: ds.ShallowCopy(radices),
		digits:  ds.Repeat(len(radices), 0),
	}
}

// NewUniformCounter returns a counter of size digits that all share radix.
func NewUniformCounter(size int, radix int) *Counter {
	return &Counter{
		radices: ds.Repeat(size, radix),
		digits:  ds.Repeat(size, 0),
	}
}

func (r *Counter) Len() int {
	return len(r.digits)
}

// Digits returns a copy of the current digits.
func (r *Counter) Digits() []int {
	return ds.ShallowCopy(r.digits)
}

func (r *Counter) Digit(i int) int {
	return r.digits[i]
}

// Empty reports whether some digit has radix zero, in which case the
// counter has no valid state at all.
func (r *Counter) Empty() bool {
	for _, radix := range r.radices {
		if radix <= 0 {
			return true
		}
	}
	return false
}

// Increment adds one to the least significant digit and propagates the
// carry leftward. It returns true when the carry goes past digit 0; every
// digit is back to zero at that point.
func (r *Counter) Increment() bool {
	for i := len(r.digits) - 1; i >= 0; i-- {
		r.digits[i]++
		if r.digits[i] < r.radices[i] {
			return false
		}
		r.digits[i] = 0
	}
	return true
}

func (r *Counter) Reset() {
	for i := range r.digits {
		r.digits[i] = 0
	}
}

// Capacity returns the number of distinct states, the product of all
// radices. It is false when the product overflows.
func (r *Counter) Capacity() (uint64, bool) {
	if r.Empty() {
		return 0, true
	}
	capacity := uint64(1)
	for _, radix := range r.radices {
		var ok bool
		capacity, ok = ds.MulUint64(capacity, uint64(radix))
		if !ok {
			return 0, false
		}
	}
	return capacity, true
}

// Value returns the rank of the current digits in enumeration order, that
// is the number of increments needed to reach them from all zeros.
func (r *Counter) Value() (uint64, bool) {
	value := uint64(0)
	for i, digit := range r.digits {
		var ok bool
		value, ok = ds.MulUint64(value, uint64(r.radices[i]))
		if !ok {
			return 0, false
		}
		value, ok = ds.AddUint64(value, uint64(digit))
		if !ok {
			return 0, false
		}
	}
	return value, true
}
