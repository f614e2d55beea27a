// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: node-by-node copies and the bulk operations built on them.

package linkedlist

import "github.com/AlekhinALex/SegmentedDeque/seqerr"

// Clone returns a deep copy of the chain.
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for n := l.head; n != nil; n = n.next {
		out.Append(n.Value)
	}

	return out
}

// Assign replaces the receiver's nodes with copies of other's.
// Self-assignment is a no-op.
// Errors: ErrInvalidArgument when other is nil.
func (l *List[T]) Assign(other *List[T]) error {
	if other == nil {
		return seqerr.Wrap("List.Assign(nil)", seqerr.ErrInvalidArgument)
	}
	if other == l {
		return nil
	}
	c := other.Clone()
	l.Clear()
	l.head, l.tail, l.length = c.head, c.tail, c.length

	return nil
}

// Concat appends copies of other's values. A nil other is a no-op.
// Errors: ErrInvalidArgument when other is the receiver.
// Complexity: O(len(other)).
func (l *List[T]) Concat(other *List[T]) error {
	if other == nil {
		return nil
	}
	if other == l {
		return seqerr.Wrap("List.Concat(self)", seqerr.ErrInvalidArgument)
	}
	for n := other.head; n != nil; n = n.next {
		l.Append(n.Value)
	}

	return nil
}

// ConcatImmutable returns a new List holding the receiver followed by other.
// Unlike Concat, other may be the receiver: the copy is taken first.
func (l *List[T]) ConcatImmutable(other *List[T]) *List[T] {
	out := l.Clone()
	if other == nil {
		return out
	}
	for n := other.head; n != nil; n = n.next {
		out.Append(n.Value)
	}

	return out
}

// SubList returns a new List with the inclusive range [start, end].
// Errors: ErrIndexOutOfRange when start < 0, end ≥ Len() or start > end.
// Complexity: O(end).
func (l *List[T]) SubList(start, end int) (*List[T], error) {
	if err := seqerr.CheckRange(start, end, l.length); err != nil {
		return nil, seqerr.Wrapf(err, "List.SubList(%d,%d)", start, end)
	}
	out := New[T]()
	n := l.nodeAt(start)
	for i := start; i <= end; i++ {
		out.Append(n.Value)
		n = n.next
	}

	return out, nil
}
