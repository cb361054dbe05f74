package ds

// ShallowCopy returns a new slice holding the same elements as ts. A nil
// input stays nil.
func ShallowCopy[T any](ts []T) []T {
	if ts == nil {
		return nil
	}
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}
