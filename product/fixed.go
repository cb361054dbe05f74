package product

import (
	"iter"
)

// Fixed2 yields items^2 as arrays, which callers can destructure or use as
// map keys without a slice allocation per tuple.
type Fixed2[T any] struct {
	it *Iter[T]
}

func Pairs[T any](items []T) *Fixed2[T] {
	return &Fixed2[T]{it: New(items, 2)}
}

func (r *Fixed2[T]) Next() ([2]*T, bool) {
	var tuple [2]*T
	ok := r.it.NextInto(tuple[:])
	return tuple, ok
}

func (r *Fixed2[T]) Remaining() (uint64, bool) {
	return r.it.Remaining()
}

func (r *Fixed2[T]) All() iter.Seq[[2]*T] {
	return func(yield func([2]*T) bool) {
		for {
			tuple, ok := r.Next()
			if !ok || !yield(tuple) {
				return
			}
		}
	}
}

// Fixed3 is the three element counterpart of Fixed2.
type Fixed3[T any] struct {
	it *Iter[T]
}

func Triples[T any](items []T) *Fixed3[T] {
	return &Fixed3[T]{it: New(items, 3)}
}

func (r *Fixed3[T]) Next() ([3]*T, bool) {
	var tuple [3]*T
	ok := r.it.NextInto(tuple[:])
	return tuple, ok
}

func (r *Fixed3[T]) Remaining() (uint64, bool) {
	return r.it.Remaining()
}

func (r *Fixed3[T]) All() iter.Seq[[3]*T] {
	return func(yield func([3]*T) bool) {
		for {
			tuple, ok := r.Next()
			if !ok || !yield(tuple) {
				return
			}
		}
	}
}
