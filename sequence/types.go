// SPDX-License-Identifier: MIT
// Package: sequence
//
// types.go: the capability contract and the narrow interfaces used by
// generic algorithms.

package sequence

import "iter"

// DefaultDelimiter separates elements in String and Print output.
const DefaultDelimiter = ", "

// EmptyRepr is the rendering of a zero-length sequence.
const EmptyRepr = "Empty"

// Indexed is read-only random access.
type Indexed[T any] interface {
	Get(index int) (T, error)
	Len() int
}

// RandomAccess is Indexed plus in-place overwrite. Merge sort needs exactly this.
type RandomAccess[T any] interface {
	Indexed[T]
	Set(index int, item T) error
}

// Sequence is the capability set shared by every strategy.
type Sequence[T any] interface {
	RandomAccess[T]

	First() (T, error)
	Last() (T, error)

	Append(item T)
	Prepend(item T)
	InsertAt(item T, index int) error
	Concat(other Sequence[T]) error

	// Subsequence copies the inclusive range [start, end] into a new
	// sequence of the same strategy.
	Subsequence(start, end int) (Sequence[T], error)

	AppendImmutable(item T) Sequence[T]
	PrependImmutable(item T) Sequence[T]
	InsertAtImmutable(item T, index int) (Sequence[T], error)
	SetImmutable(index int, item T) (Sequence[T], error)
	ConcatImmutable(other Sequence[T]) (Sequence[T], error)

	// Clone is a deep copy; CloneEmpty is an empty sequence of the same
	// strategy and sizing policy.
	Clone() Sequence[T]
	CloneEmpty() Sequence[T]

	All() iter.Seq[T]
	String() string
}

// Output is a destination cursor: SetValue writes the current slot, Next
// moves to the following one. deque.Iterator and Appender implement it.
type Output[T any] interface {
	SetValue(v T) error
	Next()
}
