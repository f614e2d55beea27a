// SPDX-License-Identifier: MIT
// Package: deque
//
// mutate.go: in-place mutators and chunk rebalancing.

package deque

import (
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

// Append adds item after the last element. A new tail chunk is opened when
// the deque is empty or the last chunk is full. Amortized O(1).
func (d *Deque[T]) Append(item T) {
	d.ensureSegmentSize()
	if n := len(d.chunks); n == 0 || d.chunks[n-1].Len() == d.segmentSize {
		d.chunks = append(d.chunks, sequence.NewArraySequence[T]())
	}
	d.chunks[len(d.chunks)-1].Append(item)
	d.totalSize++
}

// Prepend adds item before the first element. A new head chunk is opened
// when the deque is empty or the first chunk is full. O(segmentSize).
func (d *Deque[T]) Prepend(item T) {
	d.ensureSegmentSize()
	if len(d.chunks) == 0 || d.chunks[0].Len() == d.segmentSize {
		d.pushFrontChunk()
	}
	d.chunks[0].Prepend(item)
	d.totalSize++
}

func (d *Deque[T]) pushFrontChunk() {
	d.chunks = append(d.chunks, nil)
	copy(d.chunks[1:], d.chunks)
	d.chunks[0] = sequence.NewArraySequence[T]()
}

// InsertAt places item at index ∈ [0, Len()]; 0 is Prepend and Len() is Append.
// Errors: ErrIndexOutOfRange outside that interval (receiver unchanged).
//
// Interior inserts cost O(segmentSize · chunks/2) in the worst case.
func (d *Deque[T]) InsertAt(item T, index int) error {
	if err := seqerr.CheckInsert(index, d.Len()); err != nil {
		return seqerr.Wrapf(err, "Deque.InsertAt(%d)", index)
	}
	switch index {
	case 0:
		d.Prepend(item)
		return nil
	case d.totalSize:
		d.Append(item)
		return nil
	}

	c, off := d.locate(index)
	if err := d.chunks[c].InsertAt(item, off); err != nil {
		return err
	}
	d.totalSize++

	if d.chunks[c].Len() <= d.segmentSize {
		return nil
	}
	if len(d.chunks)-1-c <= c {
		return d.carryTowardTail(c)
	}

	return d.carryTowardHead(c)
}

// carryTowardTail moves the last element of each overflowing chunk, starting
// at c, to the front of its successor.
func (d *Deque[T]) carryTowardTail(c int) error {
	for i := c; d.chunks[i].Len() > d.segmentSize; i++ {
		v, err := d.chunks[i].PopLast()
		if err != nil {
			return err
		}
		if i+1 == len(d.chunks) {
			d.chunks = append(d.chunks, sequence.NewArraySequence[T]())
		}
		d.chunks[i+1].Prepend(v)
	}

	return nil
}

// carryTowardHead moves the first element of each overflowing chunk, starting
// at c, to the back of its predecessor.
func (d *Deque[T]) carryTowardHead(c int) error {
	for i := c; d.chunks[i].Len() > d.segmentSize; i-- {
		v, err := d.chunks[i].PopFirst()
		if err != nil {
			return err
		}
		if i == 0 {
			d.pushFrontChunk()
			i = 1
		}
		d.chunks[i-1].Append(v)
	}

	return nil
}

// Concat appends every element of other in order; nil or empty other is a
// no-op. Concatenating the receiver with itself duplicates its contents.
func (d *Deque[T]) Concat(other sequence.Sequence[T]) error {
	if other == nil || other.Len() == 0 {
		return nil
	}
	if o, ok := other.(*Deque[T]); ok && o == d {
		for _, v := range d.Slice() {
			d.Append(v)
		}
		return nil
	}
	for v := range other.All() {
		d.Append(v)
	}

	return nil
}

// Clear drops every chunk. SegmentSize is kept.
func (d *Deque[T]) Clear() {
	d.chunks = nil
	d.totalSize = 0
}
