// Package product enumerates the Cartesian power of a slice: every ordered
// tuple of a fixed length drawn, with repetition, from the slice's elements.
package product

import (
	"fmt"
	"iter"

	"github.com/samber/lo"

	"product-with-repeat/ds"
)

// Iter lazily yields the tuples of items^repeat in lexicographic order of
// their indices. Tuples hold pointers into items, which must not be
// modified while iterating.
//
// An Iter is not safe for concurrent use. Goroutines that need the same
// product should each build their own Iter over the shared slice.
type Iter[T any] struct {
	items   []T
	counter *Counter
	done    bool
}

// New returns an iterator over the tuples of length repeat drawn from
// items. It panics with ds.ErrNegativeRepeat when repeat is negative.
//
//	it := product.New([]int{0, 1}, 2)
//	for tuple, ok := it.Next(); ok; tuple, ok = it.Next() {
//		// [0 0], [0 1], [1 0], [1 1]
//	}
func New[T any](items []T, repeat int) *Iter[T] {
	if repeat < 0 {
		panic(ds.ErrNegativeRepeat{Repeat: repeat})
	}
	return &Iter[T]{
		items:   items,
		counter: NewUniformCounter(repeat, len(items)),
		// an empty slice has no tuple of positive length
		done: repeat > 0 && len(items) == 0,
	}
}

// Repeat returns the length of the produced tuples.
func (r *Iter[T]) Repeat() int {
	return r.counter.Len()
}

// Done reports whether the iterator is exhausted. It never resets.
func (r *Iter[T]) Done() bool {
	return r.done
}

// Next returns the next tuple, or false once every tuple has been produced.
func (r *Iter[T]) Next() ([]*T, bool) {
	if r.done {
		return nil, false
	}
	tuple := make([]*T, r.counter.Len())
	r.fill(tuple)
	r.advance()
	return tuple, true
}

// NextInto writes the next tuple into dst instead of allocating one. dst
// must have length Repeat().
func (r *Iter[T]) NextInto(dst []*T) bool {
	if len(dst) != r.counter.Len() {
		panic(fmt.Sprintf("product.Iter.NextInto: buffer of length %d, want %d", len(dst), r.counter.Len()))
	}
	if r.done {
		return false
	}
	r.fill(dst)
	r.advance()
	return true
}

func (r *Iter[T]) fill(dst []*T) {
	for i := range dst {
		dst[i] = &r.items[r.counter.Digit(i)]
	}
}

func (r *Iter[T]) advance() {
	// carrying out of the most significant position means the counter
	// wrapped back to the first tuple
	r.done = r.counter.Increment()
}

// Indices returns the source positions of the tuple the next call to Next
// will produce, or nil once exhausted.
func (r *Iter[T]) Indices() []int {
	if r.done {
		return nil
	}
	return r.counter.Digits()
}

// Remaining returns how many tuples are left. It is false when
// len(items)^repeat does not fit in an uint64.
func (r *Iter[T]) Remaining() (uint64, bool) {
	if r.done {
		return 0, true
	}
	total, ok := r.counter.Capacity()
	if !ok {
		return 0, false
	}
	emitted, _ := r.counter.Value()
	return total - emitted, true
}

// All drains the iterator as a range-over-func sequence. Breaking out of
// the loop leaves the remaining tuples available to Next.
func (r *Iter[T]) All() iter.Seq[[]*T] {
	return func(yield func([]*T) bool) {
		for {
			tuple, ok := r.Next()
			if !ok || !yield(tuple) {
				return
			}
		}
	}
}

// Values dereferences a tuple into a slice of element copies.
func Values[T any](tuple []*T) []T {
	return lo.Map(
		tuple,
		func(t *T, _ int) T {
			return *t
		},
	)
}

const maxPreallocated = 1 << 16

// Collect eagerly builds every tuple of items^repeat as value slices.
func Collect[T any](items []T, repeat int) [][]T {
	it := New(items, repeat)
	capacity, ok := it.Remaining()
	if !ok || capacity > maxPreallocated {
		capacity = maxPreallocated
	}
	tuples := make([][]T, 0, int(capacity))
	for tuple := range it.All() {
		tuples = append(tuples, Values(tuple))
	}
	return tuples
}

// Count returns n^repeat, the number of tuples New produces for a slice of
// length n, with 0^0 = 1. It is false on overflow.
func Count(n int, repeat int) (uint64, bool) {
	if repeat < 0 {
		panic(ds.ErrNegativeRepeat{Repeat: repeat})
	}
	return ds.PowUint64(uint64(n), uint64(repeat))
}
