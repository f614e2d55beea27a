package algorithms_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/AlekhinALex/SegmentedDeque/algorithms"
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_Ascending(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			s := st.make(t, 5, 3, 9, 1, 3, 0, 7)
			require.NoError(t, algorithms.Sort[int](s, algorithms.Ascending[int]))
			assert.Equal(t, []int{0, 1, 3, 3, 5, 7, 9}, collect(s))

			// Sorting sorted input is a no-op on order.
			require.NoError(t, algorithms.Sort[int](s, algorithms.Ascending[int]))
			assert.Equal(t, []int{0, 1, 3, 3, 5, 7, 9}, collect(s))
		})
	}
}

func TestSort_Descending(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			s := st.make(t, 2, 8, 4, 6)
			require.NoError(t, algorithms.Sort[int](s, algorithms.Descending[int]))
			assert.Equal(t, []int{8, 6, 4, 2}, collect(s))
		})
	}
}

func TestSort_EmptyAndSingle(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			require.NoError(t, algorithms.Sort[int](st.make(t), algorithms.Ascending[int]))
			one := st.make(t, 42)
			require.NoError(t, algorithms.Sort[int](one, algorithms.Ascending[int]))
			assert.Equal(t, []int{42}, collect(one))
		})
	}
}

type rec struct {
	key int
	tag string
}

func TestMergeSort_Stable(t *testing.T) {
	s := sequence.ArrayOf(
		rec{2, "a"}, rec{1, "b"}, rec{2, "c"}, rec{1, "d"}, rec{0, "e"}, rec{2, "f"},
	)
	byKey := func(a, b rec) bool { return a.key < b.key }
	require.NoError(t, algorithms.Sort[rec](s, byKey))

	var tags string
	for v := range s.All() {
		tags += v.tag
	}
	assert.Equal(t, "ebdacf", tags)
}

func TestMergeSort_SubRange(t *testing.T) {
	s := sequence.ListOf(9, 5, 4, 3, 0)
	require.NoError(t, algorithms.MergeSort[int](s, 1, 3, algorithms.Ascending[int]))
	assert.Equal(t, []int{9, 3, 4, 5, 0}, s.Slice())

	// Empty range is allowed.
	require.NoError(t, algorithms.MergeSort[int](s, 2, 1, algorithms.Ascending[int]))
}

func TestMergeSort_Errors(t *testing.T) {
	s := sequence.ArrayOf(3, 1, 2)
	for _, r := range [][2]int{{-1, 1}, {0, 3}, {2, 0}} {
		err := algorithms.MergeSort[int](s, r[0], r[1], algorithms.Ascending[int])
		require.ErrorIs(t, err, seqerr.ErrIndexOutOfRange, "range %v", r)
	}
	require.ErrorIs(t, algorithms.MergeSort[int](s, 0, 2, nil), seqerr.ErrInvalidArgument)
	assert.Equal(t, []int{3, 1, 2}, s.Slice())
}

func TestSortImmutable_LeavesReceiver(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			s := st.make(t, 3, 1, 2)
			out, err := algorithms.SortImmutable[int](s, algorithms.Ascending[int])
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, collect(out))
			assert.Equal(t, []int{3, 1, 2}, collect(s))
		})
	}
}

func TestSort_MatchesSlicesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			for n := 0; n < 40; n++ {
				items := make([]int, n)
				for i := range items {
					items[i] = rng.Intn(10)
				}
				s := st.make(t, items...)
				require.NoError(t, algorithms.Sort[int](s, algorithms.Ascending[int]))

				want := slices.Clone(items)
				slices.Sort(want)
				assert.Equal(t, want, collect(s), "n=%d", n)
			}
		})
	}
}
