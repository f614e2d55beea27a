// Package linkedlist_test verifies List and Iterator contracts.
package linkedlist_test

import (
	"testing"

	"github.com/AlekhinALex/SegmentedDeque/linkedlist"
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestList_Empty verifies access errors on an empty list.
func TestList_Empty(t *testing.T) {
	l := linkedlist.New[int]()
	require.Equal(t, 0, l.Len())

	_, err := l.First()
	require.ErrorIs(t, err, seqerr.ErrEmptyCollection)
	_, err = l.Last()
	require.ErrorIs(t, err, seqerr.ErrEmptyCollection)
	_, err = l.Get(0)
	require.ErrorIs(t, err, seqerr.ErrEmptyCollection)
	require.ErrorIs(t, l.Set(0, 1), seqerr.ErrEmptyCollection)
	assert.Equal(t, "nil", l.String())
}

// TestList_AppendPrepend verifies both ends and the back links.
func TestList_AppendPrepend(t *testing.T) {
	l := linkedlist.New[int]()
	l.Append(2)
	l.Append(3)
	l.Prepend(1)

	assert.Equal(t, []int{1, 2, 3}, l.Slice())
	var back []int
	for v := range l.Backward() {
		back = append(back, v)
	}
	assert.Equal(t, []int{3, 2, 1}, back)

	first, err := l.First()
	require.NoError(t, err)
	last, err := l.Last()
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, last)
	assert.Equal(t, "1 <-> 2 <-> 3", l.String())
}

// TestList_Constructors covers NewWithSize and FromSlice.
func TestList_Constructors(t *testing.T) {
	l, err := linkedlist.NewWithSize[string](2)
	require.NoError(t, err)
	assert.Equal(t, []string{"", ""}, l.Slice())

	_, err = linkedlist.NewWithSize[string](-3)
	require.ErrorIs(t, err, seqerr.ErrInvalidArgument)

	assert.Equal(t, []int{4, 5}, linkedlist.FromSlice([]int{4, 5}).Slice())
}

// TestList_GetSetInsert covers positional operations and their bounds.
func TestList_GetSetInsert(t *testing.T) {
	l := linkedlist.FromSlice([]int{1, 3})

	require.NoError(t, l.InsertAt(2, 1))
	require.NoError(t, l.InsertAt(0, 0))
	require.NoError(t, l.InsertAt(4, 4))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, l.Slice())

	require.NoError(t, l.Set(2, 20))
	v, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.ErrorIs(t, l.InsertAt(9, 6), seqerr.ErrIndexOutOfRange)
	require.ErrorIs(t, l.InsertAt(9, -1), seqerr.ErrIndexOutOfRange)
	_, err = l.Get(5)
	require.ErrorIs(t, err, seqerr.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Set(-1, 0), seqerr.ErrIndexOutOfRange)

	var back []int
	for v := range l.Backward() {
		back = append(back, v)
	}
	assert.Equal(t, []int{4, 3, 20, 1, 0}, back, "prev links must follow the splice")
}

// TestList_Concat covers nil, other and self concatenation.
func TestList_Concat(t *testing.T) {
	l := linkedlist.FromSlice([]int{1})

	require.NoError(t, l.Concat(nil))
	require.NoError(t, l.Concat(linkedlist.FromSlice([]int{2, 3})))
	assert.Equal(t, []int{1, 2, 3}, l.Slice())

	require.ErrorIs(t, l.Concat(l), seqerr.ErrInvalidArgument)
	assert.Equal(t, 3, l.Len())

	c := l.ConcatImmutable(l)
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, c.Slice())
	assert.Equal(t, []int{1, 2, 3}, l.Slice())
}

// TestList_CloneAssign verifies deep-copy semantics.
func TestList_CloneAssign(t *testing.T) {
	l := linkedlist.FromSlice([]int{1, 2})
	c := l.Clone()
	require.NoError(t, c.Set(0, 10))
	assert.Equal(t, []int{1, 2}, l.Slice())

	other := linkedlist.New[int]()
	require.NoError(t, other.Assign(l))
	other.Append(3)
	assert.Equal(t, []int{1, 2}, l.Slice())
	assert.Equal(t, []int{1, 2, 3}, other.Slice())

	require.NoError(t, l.Assign(l))
	assert.Equal(t, []int{1, 2}, l.Slice())
	require.ErrorIs(t, l.Assign(nil), seqerr.ErrInvalidArgument)
}

// TestList_SubList verifies the inclusive range contract.
func TestList_SubList(t *testing.T) {
	l := linkedlist.FromSlice([]int{1, 2, 3, 4, 5})
	sub, err := l.SubList(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, sub.Slice())

	_, err = l.SubList(3, 2)
	require.ErrorIs(t, err, seqerr.ErrIndexOutOfRange)
	_, err = l.SubList(0, 5)
	require.ErrorIs(t, err, seqerr.ErrIndexOutOfRange)
}

// TestList_Clear verifies the list is reusable after Clear.
func TestList_Clear(t *testing.T) {
	l := linkedlist.FromSlice([]int{1, 2, 3})
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Begin().NotEnd())
	l.Append(9)
	assert.Equal(t, []int{9}, l.Slice())
}
