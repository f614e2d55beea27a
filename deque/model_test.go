package deque_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/AlekhinALex/SegmentedDeque/algorithms"
	"github.com/AlekhinALex/SegmentedDeque/deque"
	"github.com/stretchr/testify/require"
)

// TestDeque_MatchesSliceModel drives random mutations against a deque and a
// plain slice and checks contents and layout after every step.
func TestDeque_MatchesSliceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, seg := range []int{1, 2, 3, 5, 8} {
		d, err := deque.New[int](seg)
		require.NoError(t, err)
		var model []int

		for step := 0; step < 600; step++ {
			v := rng.Intn(1000)
			switch op := rng.Intn(10); {
			case op < 3:
				d.Append(v)
				model = append(model, v)
			case op < 6:
				d.Prepend(v)
				model = slices.Insert(model, 0, v)
			case op < 9:
				i := rng.Intn(len(model) + 1)
				require.NoError(t, d.InsertAt(v, i))
				model = slices.Insert(model, i, v)
			default:
				if len(model) > 0 {
					i := rng.Intn(len(model))
					require.NoError(t, d.Set(i, v))
					model[i] = v
				}
			}

			require.NoError(t, d.CheckLayout(), "seg=%d step=%d", seg, step)
			require.Equal(t, len(model), d.Len())
		}

		require.Equal(t, model, d.Slice(), "seg=%d", seg)
		for i, want := range model {
			got, err := d.Get(i)
			require.NoError(t, err)
			require.Equal(t, want, got, "seg=%d index=%d", seg, i)
		}

		require.NoError(t, d.Sort(d.Begin(), d.End(), algorithms.Ascending[int]))
		slices.Sort(model)
		require.Equal(t, model, d.Slice())
		require.NoError(t, d.CheckLayout())
	}
}
