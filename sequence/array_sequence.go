// SPDX-License-Identifier: MIT
// Package: sequence
//
// array_sequence.go: Sequence over dynarray.Array.

package sequence

import (
	"iter"

	"github.com/AlekhinALex/SegmentedDeque/dynarray"
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
)

// ArraySequence adapts a contiguous growable buffer to the Sequence contract.
type ArraySequence[T any] struct {
	array *dynarray.Array[T]
}

var _ Sequence[int] = (*ArraySequence[int])(nil)

// NewArraySequence returns an empty ArraySequence.
func NewArraySequence[T any]() *ArraySequence[T] {
	return &ArraySequence[T]{array: dynarray.New[T]()}
}

// NewArraySequenceWithSize returns n zero values.
func NewArraySequenceWithSize[T any](n int) (*ArraySequence[T], error) {
	a, err := dynarray.NewWithSize[T](n)
	if err != nil {
		return nil, err
	}

	return &ArraySequence[T]{array: a}, nil
}

// ArrayOf returns an ArraySequence holding a copy of items.
func ArrayOf[T any](items ...T) *ArraySequence[T] {
	return &ArraySequence[T]{array: dynarray.FromSlice(items)}
}

// NewArraySequenceFrom deep-copies an existing buffer.
func NewArraySequenceFrom[T any](a *dynarray.Array[T]) *ArraySequence[T] {
	if a == nil {
		return NewArraySequence[T]()
	}

	return &ArraySequence[T]{array: a.Clone()}
}

// Len returns the element count; nil-safe.
func (s *ArraySequence[T]) Len() int {
	if s == nil {
		return 0
	}

	return s.array.Len()
}

// Cap exposes the underlying buffer capacity.
func (s *ArraySequence[T]) Cap() int { return s.array.Cap() }

func (s *ArraySequence[T]) First() (T, error)        { return s.array.First() }
func (s *ArraySequence[T]) Last() (T, error)         { return s.array.Last() }
func (s *ArraySequence[T]) Get(index int) (T, error) { return s.array.Get(index) }
func (s *ArraySequence[T]) Append(item T)            { s.array.Append(item) }
func (s *ArraySequence[T]) Prepend(item T)           { s.array.Prepend(item) }

// Set overwrites index; ErrEmptyCollection / ErrIndexOutOfRange on bad input.
func (s *ArraySequence[T]) Set(index int, item T) error {
	if err := seqerr.CheckIndex(index, s.Len()); err != nil {
		return seqerr.Wrapf(err, "ArraySequence.Set(%d)", index)
	}

	return s.array.Set(index, item)
}

// InsertAt places item at index ∈ [0, Len()].
func (s *ArraySequence[T]) InsertAt(item T, index int) error {
	if err := seqerr.CheckInsert(index, s.Len()); err != nil {
		return seqerr.Wrapf(err, "ArraySequence.InsertAt(%d)", index)
	}

	return s.array.InsertAt(item, index)
}

// Concat appends every element of other; nil or empty other is a no-op.
// Concatenating the receiver with itself duplicates its contents.
func (s *ArraySequence[T]) Concat(other Sequence[T]) error {
	if other == nil || other.Len() == 0 {
		return nil
	}
	if o, ok := other.(*ArraySequence[T]); ok {
		s.array.Concat(o.array)
		return nil
	}
	for v := range other.All() {
		s.array.Append(v)
	}

	return nil
}

// PopFirst removes and returns the first element. O(n).
func (s *ArraySequence[T]) PopFirst() (T, error) {
	return s.array.RemoveAt(0)
}

// PopLast removes and returns the last element. O(1).
func (s *ArraySequence[T]) PopLast() (T, error) {
	return s.array.RemoveAt(s.array.Len() - 1)
}

// Clear drops every element.
func (s *ArraySequence[T]) Clear() { s.array.Clear() }

// Assign replaces the contents with a deep copy of other; self-assign is a no-op.
func (s *ArraySequence[T]) Assign(other *ArraySequence[T]) error {
	if other == nil {
		return seqerr.Wrap("ArraySequence.Assign(nil)", seqerr.ErrInvalidArgument)
	}

	return s.array.Assign(other.array)
}

// Subsequence copies the inclusive range [start, end].
func (s *ArraySequence[T]) Subsequence(start, end int) (Sequence[T], error) {
	if err := seqerr.CheckRange(start, end, s.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "ArraySequence.Subsequence(%d,%d)", start, end)
	}
	sub, err := s.array.SubArray(start, end)
	if err != nil {
		return nil, err
	}

	return &ArraySequence[T]{array: sub}, nil
}

// Clone returns a deep copy.
func (s *ArraySequence[T]) Clone() Sequence[T] { return s.clone() }

// Copy is Clone with the concrete return type.
func (s *ArraySequence[T]) Copy() *ArraySequence[T] { return s.clone() }

func (s *ArraySequence[T]) clone() *ArraySequence[T] {
	if s == nil {
		return NewArraySequence[T]()
	}
	return &ArraySequence[T]{array: s.array.Clone()}
}

// CloneEmpty returns a new empty ArraySequence.
func (s *ArraySequence[T]) CloneEmpty() Sequence[T] { return NewArraySequence[T]() }

// All yields elements in index order.
func (s *ArraySequence[T]) All() iter.Seq[T] {
	if s == nil {
		return func(func(T) bool) {}
	}

	return s.array.All()
}

// Slice returns a copy of the elements.
func (s *ArraySequence[T]) Slice() []T { return s.array.Slice() }

// String renders the elements DefaultDelimiter-separated, or EmptyRepr.
func (s *ArraySequence[T]) String() string { return Format(s.All(), DefaultDelimiter) }
