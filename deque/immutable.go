// SPDX-License-Identifier: MIT
// Package: deque
//
// immutable.go: copies and copy-on-write twins. Each twin validates against
// the receiver, deep-copies it and mutates the copy; the receiver is never
// touched. No structure is shared between the two.

package deque

import (
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

// Clone returns a deep copy with every chunk cloned. A nil receiver yields an
// empty deque.
func (d *Deque[T]) Clone() sequence.Sequence[T] { return d.clone() }

func (d *Deque[T]) clone() *Deque[T] {
	if d == nil {
		return NewDefault[T]()
	}
	out := &Deque[T]{
		segmentSize: d.segmentSize,
		totalSize:   d.totalSize,
		chunks:      make([]*sequence.ArraySequence[T], len(d.chunks)),
	}
	for i, c := range d.chunks {
		out.chunks[i] = c.Copy()
	}

	return out
}

// CloneEmpty returns an empty deque with the same segment size; nil-safe.
func (d *Deque[T]) CloneEmpty() sequence.Sequence[T] {
	return &Deque[T]{segmentSize: d.SegmentSize()}
}

// Subsequence copies the inclusive range [start, end] into a new deque with
// the same segment size.
func (d *Deque[T]) Subsequence(start, end int) (sequence.Sequence[T], error) {
	if err := seqerr.CheckRange(start, end, d.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "Deque.Subsequence(%d,%d)", start, end)
	}
	out := &Deque[T]{segmentSize: d.segmentSize}
	for i := start; i <= end; i++ {
		v, err := d.Get(i)
		if err != nil {
			return nil, err
		}
		out.Append(v)
	}

	return out, nil
}

func (d *Deque[T]) AppendImmutable(item T) sequence.Sequence[T] {
	out := d.clone()
	out.Append(item)

	return out
}

func (d *Deque[T]) PrependImmutable(item T) sequence.Sequence[T] {
	out := d.clone()
	out.Prepend(item)

	return out
}

func (d *Deque[T]) InsertAtImmutable(item T, index int) (sequence.Sequence[T], error) {
	if err := seqerr.CheckInsert(index, d.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "Deque.InsertAtImmutable(%d)", index)
	}
	out := d.clone()
	if err := out.InsertAt(item, index); err != nil {
		return nil, err
	}

	return out, nil
}

func (d *Deque[T]) SetImmutable(index int, item T) (sequence.Sequence[T], error) {
	if err := seqerr.CheckIndex(index, d.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "Deque.SetImmutable(%d)", index)
	}
	out := d.clone()
	if err := out.Set(index, item); err != nil {
		return nil, err
	}

	return out, nil
}

// ConcatImmutable returns receiver ++ other. other may be the receiver.
func (d *Deque[T]) ConcatImmutable(other sequence.Sequence[T]) (sequence.Sequence[T], error) {
	out := d.clone()
	if err := out.Concat(other); err != nil {
		return nil, err
	}

	return out, nil
}
