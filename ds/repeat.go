package ds

// Repeat returns a slice of length n where every element is initial.
func Repeat[T any](n int, initial T) []T {
	ts := make([]T, n)
	for i := range ts {
		ts[i] = initial
	}
	return ts
}
