// SPDX-License-Identifier: MIT
// Package: deque
//
// iterator.go: index cursors.

package deque

import "github.com/AlekhinALex/SegmentedDeque/seqerr"

// Iterator is a read-write cursor over a Deque. It stores the owning deque
// and a global index; every access resolves through Get/Set, so a cursor
// survives mutation but may then point at a different element.
type Iterator[T any] struct {
	deque *Deque[T]
	index int
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	deque *Deque[T]
	index int
}

// Begin returns a cursor at index 0.
func (d *Deque[T]) Begin() Iterator[T] { return Iterator[T]{deque: d} }

// End returns the past-the-end cursor.
func (d *Deque[T]) End() Iterator[T] { return Iterator[T]{deque: d, index: d.Len()} }

// At returns a cursor at index; it is not validated until dereferenced.
func (d *Deque[T]) At(index int) Iterator[T] { return Iterator[T]{deque: d, index: index} }

func (d *Deque[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{deque: d} }
func (d *Deque[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{deque: d, index: d.Len()}
}

// Value dereferences the cursor.
// Errors: ErrInvalidIterator when the cursor is outside [0, Len()).
func (it Iterator[T]) Value() (T, error) { return it.Const().Value() }

// SetValue overwrites the element under the cursor.
func (it Iterator[T]) SetValue(v T) error {
	if !it.valid() {
		return seqerr.Wrapf(seqerr.ErrInvalidIterator, "Iterator.SetValue(index=%d)", it.index)
	}

	return it.deque.Set(it.index, v)
}

func (it Iterator[T]) valid() bool {
	return it.deque != nil && it.index >= 0 && it.index < it.deque.Len()
}

// Next advances the cursor by one.
func (it *Iterator[T]) Next() { it.index++ }

// Prev steps the cursor back by one.
func (it *Iterator[T]) Prev() { it.index-- }

// Advance moves the cursor by n (negative n moves backward).
func (it *Iterator[T]) Advance(n int) { it.index += n }

// NotEnd reports whether the cursor is before End.
func (it Iterator[T]) NotEnd() bool { return it.index < it.deque.Len() }

// Index returns the global index under the cursor.
func (it Iterator[T]) Index() int { return it.index }

// Equal reports whether both cursors belong to the same deque and index.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.deque == other.deque && it.index == other.index
}

// Const returns a read-only cursor at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{deque: it.deque, index: it.index}
}

// Insert is not supported on cursors; use Deque.InsertAt.
func (it Iterator[T]) Insert(T) error {
	return seqerr.Wrap("Iterator.Insert", seqerr.ErrUnsupportedOperation)
}

// Erase is not supported on cursors.
func (it Iterator[T]) Erase() error {
	return seqerr.Wrap("Iterator.Erase", seqerr.ErrUnsupportedOperation)
}

func (it ConstIterator[T]) Value() (T, error) {
	if it.deque == nil || it.index < 0 || it.index >= it.deque.Len() {
		var zero T
		return zero, seqerr.Wrapf(seqerr.ErrInvalidIterator, "ConstIterator.Value(index=%d)", it.index)
	}

	return it.deque.Get(it.index)
}

func (it *ConstIterator[T]) Next()         { it.index++ }
func (it *ConstIterator[T]) Prev()         { it.index-- }
func (it *ConstIterator[T]) Advance(n int) { it.index += n }
func (it ConstIterator[T]) NotEnd() bool   { return it.index < it.deque.Len() }
func (it ConstIterator[T]) Index() int     { return it.index }

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.deque == other.deque && it.index == other.index
}
