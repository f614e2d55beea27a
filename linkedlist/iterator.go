// SPDX-License-Identifier: MIT
// Package: linkedlist
//
// iterator.go: bidirectional cursors over a List.
//
// An Iterator is a (list, node) pair; node == nil is the End() sentinel.
// Iterators compare with Equal (or ==). Structural changes go through the
// List; a cursor held across Clear keeps its detached node and must be
// re-derived from Begin().

package linkedlist

import "github.com/AlekhinALex/SegmentedDeque/seqerr"

// Iterator is a bidirectional cursor.
type Iterator[T any] struct {
	list    *List[T]
	current *Node[T]
}

// Begin returns a cursor at the head (equal to End() on an empty list).
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, current: l.head}
}

// End returns the past-the-tail sentinel.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l}
}

// Current returns the node under the cursor, nil at End().
func (it Iterator[T]) Current() *Node[T] {
	return it.current
}

// NotEnd reports whether the cursor points at a node.
func (it Iterator[T]) NotEnd() bool {
	return it.current != nil
}

// Value dereferences the cursor.
// Errors: ErrInvalidIterator at End().
func (it Iterator[T]) Value() (T, error) {
	if it.current == nil {
		var zero T
		return zero, seqerr.Wrap("Iterator.Value", seqerr.ErrInvalidIterator)
	}

	return it.current.Value, nil
}

// SetValue overwrites the value under the cursor.
// Errors: ErrInvalidIterator at End().
func (it Iterator[T]) SetValue(v T) error {
	if it.current == nil {
		return seqerr.Wrap("Iterator.SetValue", seqerr.ErrInvalidIterator)
	}
	it.current.Value = v

	return nil
}

// Next advances toward the tail; advancing End() is a no-op.
func (it *Iterator[T]) Next() {
	if it.current != nil {
		it.current = it.current.next
	}
}

// Prev moves toward the head. From End() it lands on the tail; at the head it
// becomes End().
func (it *Iterator[T]) Prev() {
	if it.current == nil {
		if it.list != nil {
			it.current = it.list.tail
		}
		return
	}
	it.current = it.current.prev
}

// Equal reports whether both cursors belong to the same list and node.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.list == other.list && it.current == other.current
}

// Insert is not supported on cursors.
// Errors: always ErrUnsupportedOperation; use List.InsertAt.
func (it Iterator[T]) Insert(T) error {
	return seqerr.Wrap("Iterator.Insert", seqerr.ErrUnsupportedOperation)
}

// Erase is not supported on cursors.
// Errors: always ErrUnsupportedOperation.
func (it Iterator[T]) Erase() error {
	return seqerr.Wrap("Iterator.Erase", seqerr.ErrUnsupportedOperation)
}
