package product

import (
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-with-repeat/ds"
)

// drainIndices returns the source positions of every emitted tuple.
func drainIndices[T any](items []T, it *Iter[T]) [][]int {
	indices := make([][]int, 0)
	for tuple := range it.All() {
		indices = append(
			indices,
			lo.Map(
				tuple,
				func(t *T, _ int) int {
					for i := range items {
						if &items[i] == t {
							return i
						}
					}
					return -1
				},
			),
		)
	}
	return indices
}

func TestIter_Next(t *testing.T) {
	items := []int{0, 1, 2, 3}
	it := New(items, 3)

	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 0}, Values(first))

	second, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 1}, Values(second))

	count := 2
	var last []*int
	for tuple, ok := it.Next(); ok; tuple, ok = it.Next() {
		last = tuple
		count++
	}
	assert.Equal(t, 64, count)
	assert.Equal(t, []int{3, 3, 3}, Values(last))
	assert.True(t, it.Done())

	tuple, ok := it.Next()
	assert.False(t, ok)
	assert.Nil(t, tuple)
}

func TestIter_PointsIntoSource(t *testing.T) {
	items := []string{"a", "b"}
	it := New(items, 2)

	tuple, ok := it.Next()
	require.True(t, ok)
	assert.Same(t, &items[0], tuple[0])
	assert.Same(t, &items[0], tuple[1])

	tuple, ok = it.Next()
	require.True(t, ok)
	assert.Same(t, &items[0], tuple[0])
	assert.Same(t, &items[1], tuple[1])
}

func TestIter_Count(t *testing.T) {
	for n := 0; n <= 4; n++ {
		for repeat := 0; repeat <= 4; repeat++ {
			items := ds.MakeRange(0, n, 1)
			tuples := Collect(items, repeat)

			expected, ok := Count(n, repeat)
			require.True(t, ok)
			assert.Equal(t, int(expected), len(tuples), "n = %d, repeat = %d", n, repeat)
		}
	}
}

func TestIter_LexicographicOrder(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for repeat := 1; repeat <= 4; repeat++ {
			tuples := Collect(ds.MakeRange(0, n, 1), repeat)
			for i := 1; i < len(tuples); i++ {
				assert.Equal(
					t,
					-1,
					slices.Compare(tuples[i-1], tuples[i]),
					"n = %d, repeat = %d: %v then %v", n, repeat, tuples[i-1], tuples[i],
				)
			}
		}
	}
}

func TestIter_FullCoverage(t *testing.T) {
	n, repeat := 3, 4
	tuples := Collect(ds.MakeRange(0, n, 1), repeat)

	seen := lo.SliceToMap(
		tuples,
		func(tuple []int) ([4]int, bool) {
			return [4]int(tuple), true
		},
	)
	assert.Len(t, seen, 81)
	for key := range seen {
		assert.True(
			t,
			lo.EveryBy(key[:], func(i int) bool { return i >= 0 && i < n }),
			"%v out of range", key,
		)
	}
}

func TestIter_ZeroRepeat(t *testing.T) {
	it := New([]int{7}, 0)

	remaining, ok := it.Remaining()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), remaining)

	tuple, ok := it.Next()
	require.True(t, ok)
	assert.NotNil(t, tuple)
	assert.Empty(t, tuple)

	_, ok = it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIter_ZeroRepeatEmptySource(t *testing.T) {
	tuples := Collect([]int{}, 0)
	assert.Equal(t, [][]int{{}}, tuples)
}

func TestIter_EmptySource(t *testing.T) {
	it := New([]int{}, 3)
	assert.True(t, it.Done())

	remaining, ok := it.Remaining()
	assert.True(t, ok)
	assert.Zero(t, remaining)

	_, ok = it.Next()
	assert.False(t, ok)
	assert.Nil(t, it.Indices())
}

func TestIter_NilSource(t *testing.T) {
	_, ok := New[string](nil, 1).Next()
	assert.False(t, ok)
}

func TestIter_Singletons(t *testing.T) {
	items := []string{"x", "y", "z"}
	tuples := Collect(items, 1)
	assert.Equal(t, [][]string{{"x"}, {"y"}, {"z"}}, tuples)
}

func TestIter_Remaining(t *testing.T) {
	it := New([]int{0, 1, 2}, 3)
	for expected := uint64(27); expected > 0; expected-- {
		remaining, ok := it.Remaining()
		require.True(t, ok)
		assert.Equal(t, expected, remaining)
		_, ok = it.Next()
		require.True(t, ok)
	}
	remaining, ok := it.Remaining()
	assert.True(t, ok)
	assert.Zero(t, remaining)
}

func TestIter_RemainingOverflow(t *testing.T) {
	it := New(ds.MakeRange(0, 10, 1), 20)
	_, ok := it.Remaining()
	assert.False(t, ok)

	tuple, ok := it.Next()
	require.True(t, ok)
	assert.Len(t, tuple, 20)
}

func TestIter_Indices(t *testing.T) {
	it := New([]string{"a", "b", "c"}, 2)
	assert.Equal(t, []int{0, 0}, it.Indices())
	it.Next()
	it.Next()
	it.Next()
	assert.Equal(t, []int{1, 0}, it.Indices())

	indices := it.Indices()
	indices[0] = 2
	assert.Equal(t, []int{1, 0}, it.Indices())
}

func TestIter_IndicesMatchTuples(t *testing.T) {
	items := []string{"a", "b", "c"}
	expected := make([][]int, 0)
	it := New(items, 2)
	for !it.Done() {
		expected = append(expected, it.Indices())
		it.Next()
	}

	assert.Equal(t, expected, drainIndices(items, New(items, 2)))
}

func TestIter_NextInto(t *testing.T) {
	items := []int{4, 5, 6}
	it := New(items, 2)
	reference := New(items, 2)

	buf := make([]*int, 2)
	for it.NextInto(buf) {
		tuple, ok := reference.Next()
		require.True(t, ok)
		assert.Equal(t, Values(tuple), Values(buf))
	}
	assert.True(t, reference.Done())
	assert.False(t, it.NextInto(buf))
}

func TestIter_NextIntoWrongLength(t *testing.T) {
	it := New([]int{1, 2}, 2)
	assert.Panics(t, func() { it.NextInto(make([]*int, 3)) })
}

func TestIter_AllBreak(t *testing.T) {
	it := New([]int{0, 1}, 2)
	for tuple := range it.All() {
		assert.Equal(t, []int{0, 0}, Values(tuple))
		break
	}

	tuple, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, Values(tuple))
}

func TestIter_Idempotence(t *testing.T) {
	items := []string{"p", "q", "r"}
	assert.Equal(t, Collect(items, 3), Collect(items, 3))
	assert.Equal(t, drainIndices(items, New(items, 3)), drainIndices(items, New(items, 3)))
}

func TestIter_DoesNotMutateSource(t *testing.T) {
	items := []int{3, 1, 2}
	Collect(items, 3)
	assert.Equal(t, []int{3, 1, 2}, items)
}

func TestNew_NegativeRepeat(t *testing.T) {
	assert.PanicsWithValue(t, ds.ErrNegativeRepeat{Repeat: -1}, func() { New([]int{1}, -1) })
}

func TestCount(t *testing.T) {
	expectedValues := map[[2]int]uint64{
		{0, 0}: 1,
		{0, 3}: 0,
		{4, 3}: 64,
		{1, 9}: 1,
		{7, 0}: 1,
	}
	for input, expected := range expectedValues {
		count, ok := Count(input[0], input[1])
		assert.True(t, ok)
		assert.Equal(t, expected, count)
	}

	_, ok := Count(2, 64)
	assert.False(t, ok)
	assert.Panics(t, func() { Count(2, -1) })
}
