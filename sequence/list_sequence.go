// SPDX-License-Identifier: MIT
// Package: sequence
//
// list_sequence.go: Sequence over linkedlist.List.

package sequence

import (
	"iter"

	"github.com/AlekhinALex/SegmentedDeque/linkedlist"
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
)

// ListSequence adapts a doubly linked list to the Sequence contract.
// Indexing costs O(n); both ends are O(1).
type ListSequence[T any] struct {
	list *linkedlist.List[T]
}

var _ Sequence[int] = (*ListSequence[int])(nil)

// NewListSequence returns an empty ListSequence.
func NewListSequence[T any]() *ListSequence[T] {
	return &ListSequence[T]{list: linkedlist.New[T]()}
}

// NewListSequenceWithSize returns n zero values.
func NewListSequenceWithSize[T any](n int) (*ListSequence[T], error) {
	l, err := linkedlist.NewWithSize[T](n)
	if err != nil {
		return nil, err
	}

	return &ListSequence[T]{list: l}, nil
}

// ListOf returns a ListSequence holding items in order.
func ListOf[T any](items ...T) *ListSequence[T] {
	return &ListSequence[T]{list: linkedlist.FromSlice(items)}
}

// NewListSequenceFrom deep-copies an existing list.
func NewListSequenceFrom[T any](l *linkedlist.List[T]) *ListSequence[T] {
	if l == nil {
		return NewListSequence[T]()
	}

	return &ListSequence[T]{list: l.Clone()}
}

// Len returns the element count; nil-safe.
func (s *ListSequence[T]) Len() int {
	if s == nil {
		return 0
	}

	return s.list.Len()
}

func (s *ListSequence[T]) First() (T, error)        { return s.list.First() }
func (s *ListSequence[T]) Last() (T, error)         { return s.list.Last() }
func (s *ListSequence[T]) Get(index int) (T, error) { return s.list.Get(index) }
func (s *ListSequence[T]) Append(item T)            { s.list.Append(item) }
func (s *ListSequence[T]) Prepend(item T)           { s.list.Prepend(item) }

// Set overwrites index.
func (s *ListSequence[T]) Set(index int, item T) error {
	if err := seqerr.CheckIndex(index, s.Len()); err != nil {
		return seqerr.Wrapf(err, "ListSequence.Set(%d)", index)
	}

	return s.list.Set(index, item)
}

// InsertAt places item at index ∈ [0, Len()].
func (s *ListSequence[T]) InsertAt(item T, index int) error {
	if err := seqerr.CheckInsert(index, s.Len()); err != nil {
		return seqerr.Wrapf(err, "ListSequence.InsertAt(%d)", index)
	}

	return s.list.InsertAt(item, index)
}

// Concat appends every element of other; nil other is a no-op.
// Errors: ErrInvalidArgument when other is the receiver.
func (s *ListSequence[T]) Concat(other Sequence[T]) error {
	if other == nil || other.Len() == 0 {
		return nil
	}
	if o, ok := other.(*ListSequence[T]); ok {
		return s.list.Concat(o.list)
	}
	for v := range other.All() {
		s.list.Append(v)
	}

	return nil
}

// Clear drops every node.
func (s *ListSequence[T]) Clear() { s.list.Clear() }

// Assign replaces the contents with a deep copy of other; self-assign is a no-op.
func (s *ListSequence[T]) Assign(other *ListSequence[T]) error {
	if other == nil {
		return seqerr.Wrap("ListSequence.Assign(nil)", seqerr.ErrInvalidArgument)
	}

	return s.list.Assign(other.list)
}

// Begin and End expose the list cursors.
func (s *ListSequence[T]) Begin() linkedlist.Iterator[T] { return s.list.Begin() }
func (s *ListSequence[T]) End() linkedlist.Iterator[T]   { return s.list.End() }

// Subsequence copies the inclusive range [start, end].
func (s *ListSequence[T]) Subsequence(start, end int) (Sequence[T], error) {
	if err := seqerr.CheckRange(start, end, s.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "ListSequence.Subsequence(%d,%d)", start, end)
	}
	sub, err := s.list.SubList(start, end)
	if err != nil {
		return nil, err
	}

	return &ListSequence[T]{list: sub}, nil
}

// Clone returns a deep copy.
func (s *ListSequence[T]) Clone() Sequence[T] { return s.clone() }

func (s *ListSequence[T]) clone() *ListSequence[T] {
	if s == nil {
		return NewListSequence[T]()
	}
	return &ListSequence[T]{list: s.list.Clone()}
}

// CloneEmpty returns a new empty ListSequence.
func (s *ListSequence[T]) CloneEmpty() Sequence[T] { return NewListSequence[T]() }

// All yields head to tail.
func (s *ListSequence[T]) All() iter.Seq[T] {
	if s == nil {
		return func(func(T) bool) {}
	}

	return s.list.All()
}

// Backward yields tail to head.
func (s *ListSequence[T]) Backward() iter.Seq[T] { return s.list.Backward() }

// Slice returns a copy of the elements.
func (s *ListSequence[T]) Slice() []T { return s.list.Slice() }

// String renders the elements DefaultDelimiter-separated, or EmptyRepr.
func (s *ListSequence[T]) String() string { return Format(s.All(), DefaultDelimiter) }
