package sequence_test

import (
	"testing"

	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWindow_Bounds verifies window construction rules.
func TestWindow_Bounds(t *testing.T) {
	s := sequence.ArrayOf(1, 2, 3, 4)

	v, err := sequence.Window[int](s, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 1, v.Offset())

	empty, err := sequence.Window[int](s, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = sequence.Window[int](s, 3, 2)
	require.ErrorIs(t, err, seqerr.ErrIndexOutOfRange)
	_, err = sequence.Window[int](s, 0, 5)
	require.ErrorIs(t, err, seqerr.ErrIndexOutOfRange)
	_, err = sequence.Window[int](nil, 0, 0)
	require.ErrorIs(t, err, seqerr.ErrInvalidArgument)
}

// TestWindow_ReadWriteThrough verifies relative indexing and write-through.
func TestWindow_ReadWriteThrough(t *testing.T) {
	s := sequence.ListOf(1, 2, 3, 4)
	v, err := sequence.Window[int](s, 1, 3)
	require.NoError(t, err)

	got, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	require.NoError(t, v.Set(1, 30))
	assert.Equal(t, []int{1, 2, 30, 4}, s.Slice())

	_, err = v.Get(2)
	require.ErrorIs(t, err, seqerr.ErrIndexOutOfRange)
	assert.Equal(t, 4, sequence.Whole[int](s).Len())
}

// TestAppender_Appends verifies the back-inserting Output.
func TestAppender_Appends(t *testing.T) {
	dst := sequence.NewArraySequence[string]()
	out := sequence.Appender[string](dst)
	for _, v := range []string{"a", "b"} {
		require.NoError(t, out.SetValue(v))
		out.Next()
	}
	assert.Equal(t, []string{"a", "b"}, dst.Slice())
}

// TestArraySequence_Extras covers the non-contract helpers used by deque chunks.
func TestArraySequence_Extras(t *testing.T) {
	s := sequence.ArrayOf(1, 2, 3)

	first, err := s.PopFirst()
	require.NoError(t, err)
	last, err := s.PopLast()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, last)
	assert.Equal(t, []int{2}, s.Slice())

	_, err = sequence.NewArraySequence[int]().PopLast()
	require.ErrorIs(t, err, seqerr.ErrEmptyCollection)

	other := sequence.NewArraySequence[int]()
	require.NoError(t, other.Assign(s))
	s.Clear()
	assert.Equal(t, []int{2}, other.Slice())
	require.ErrorIs(t, other.Assign(nil), seqerr.ErrInvalidArgument)

	sized, err := sequence.NewArraySequenceWithSize[int](2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, sized.Slice())
	_, err = sequence.NewListSequenceWithSize[int](-1)
	require.ErrorIs(t, err, seqerr.ErrInvalidArgument)
}

// TestListSequence_Cursors verifies the list cursors are reachable through the adapter.
func TestListSequence_Cursors(t *testing.T) {
	s := sequence.ListOf(1, 2, 3)
	sum := 0
	for it := s.Begin(); it.NotEnd(); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		sum += v
	}
	assert.Equal(t, 6, sum)
	assert.False(t, s.End().NotEnd())

	var back []int
	for v := range s.Backward() {
		back = append(back, v)
	}
	assert.Equal(t, []int{3, 2, 1}, back)
}
