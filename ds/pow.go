package ds

import (
	"math/bits"
)

// MulUint64 returns a*b and whether the product fits in an uint64.
func MulUint64(a, b uint64) (uint64, bool) {
	hi, low := bits.Mul64(a, b)
	return low, hi == 0
}

// AddUint64 returns a+b and whether the sum fits in an uint64.
func AddUint64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// PowUint64 returns base^exp with 0^0 = 1, and false when the result
// overflows.
func PowUint64(base, exp uint64) (uint64, bool) {
	switch {
	case exp == 0:
		return 1, true
	case base <= 1:
		return base, true
	}

	result := uint64(1)
	for i := uint64(0); i < exp; i++ {
		var ok bool
		result, ok = MulUint64(result, base)
		if !ok {
			return 0, false
		}
	}
	return result, true
}
