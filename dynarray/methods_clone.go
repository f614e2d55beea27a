// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: deep copies, assignment and bulk operations built on them.
// Ownership:
//   - Every result owns a fresh backing slice; nothing aliases the receiver.

package dynarray

import "github.com/AlekhinALex/SegmentedDeque/seqerr"

// Clone returns a deep copy with the same length and capacity.
// Complexity: O(capacity).
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data[:a.size])

	return &Array[T]{data: data, size: a.size}
}

// Assign replaces the receiver's contents with a deep copy of other.
// Self-assignment is a no-op.
// Errors: ErrInvalidArgument when other is nil.
func (a *Array[T]) Assign(other *Array[T]) error {
	if other == nil {
		return seqerr.Wrap("Array.Assign(nil)", seqerr.ErrInvalidArgument)
	}
	if other == a {
		return nil
	}
	c := other.Clone()
	a.data, a.size = c.data, c.size

	return nil
}

// Concat appends every element of other. A nil or empty other is a no-op;
// concatenating an Array with itself duplicates its current contents.
// Complexity: amortized O(len(other)).
func (a *Array[T]) Concat(other *Array[T]) {
	n := other.Len()
	if n == 0 {
		return
	}
	a.grow(a.size + n)
	copy(a.data[a.size:a.size+n], other.data[:n])
	a.size += n
}

// ConcatImmutable returns a new Array holding the receiver followed by other.
func (a *Array[T]) ConcatImmutable(other *Array[T]) *Array[T] {
	out := a.Clone()
	out.Concat(other)

	return out
}

// SubArray returns a new Array with the inclusive range [start, end].
// Errors: ErrIndexOutOfRange when start < 0, end ≥ Len() or start > end.
// Complexity: O(end-start).
func (a *Array[T]) SubArray(start, end int) (*Array[T], error) {
	if err := seqerr.CheckRange(start, end, a.size); err != nil {
		return nil, seqerr.Wrapf(err, "Array.SubArray(%d,%d)", start, end)
	}

	return FromSlice(a.data[start : end+1]), nil
}
