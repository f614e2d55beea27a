// Package sequence_test contains fixtures shared by the contract tests.
package sequence_test

import (
	"testing"

	"github.com/AlekhinALex/SegmentedDeque/sequence"
	"github.com/stretchr/testify/require"
)

// strategy names a Sequence constructor under test.
type strategy struct {
	name string
	make func(items ...int) sequence.Sequence[int]
}

// strategies lists every strategy defined in this package.
var strategies = []strategy{
	{name: "array", make: func(items ...int) sequence.Sequence[int] { return sequence.ArrayOf(items...) }},
	{name: "list", make: func(items ...int) sequence.Sequence[int] { return sequence.ListOf(items...) }},
}

// values collects s into a slice, failing the test on a Get error.
func values(t *testing.T, s sequence.Sequence[int]) []int {
	t.Helper()
	out := make([]int, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		v, err := s.Get(i)
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}
