package ds

import (
	"fmt"
)

type (
	ErrUnreachableCode struct {
		Caller string
	}
	// ErrNegativeRepeat is the panic value of constructors given a repeat
	// count below zero.
	ErrNegativeRepeat struct {
		Repeat int
	}
	// ErrCountOverflow reports that n^repeat does not fit in an uint64.
	ErrCountOverflow struct {
		N      int
		Repeat int
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}

func (r ErrNegativeRepeat) Error() string {
	return fmt.Sprintf("negative repeat count %d", r.Repeat)
}

func (r ErrCountOverflow) Error() string {
	return fmt.Sprintf("%d^%d overflows uint64", r.N, r.Repeat)
}
