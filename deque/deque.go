// SPDX-License-Identifier: MIT
// Package: deque
//
// deque.go: type, constructors, element access and chunk inspection.

package deque

import (
	"iter"

	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

// DefaultSegmentSize is the chunk capacity used by NewDefault.
const DefaultSegmentSize = 32

// Deque is a segmented sequence. The zero value is an empty deque that
// adopts DefaultSegmentSize on its first insert; New picks any other size.
type Deque[T any] struct {
	segmentSize int
	totalSize   int
	chunks      []*sequence.ArraySequence[T]
}

var _ sequence.Sequence[int] = (*Deque[int])(nil)

// New returns an empty deque whose chunks hold up to segmentSize elements.
// Errors: ErrInvalidArgument when segmentSize ≤ 0.
func New[T any](segmentSize int) (*Deque[T], error) {
	if segmentSize <= 0 {
		return nil, seqerr.Wrapf(seqerr.ErrInvalidArgument, "deque.New(segmentSize=%d)", segmentSize)
	}

	return &Deque[T]{segmentSize: segmentSize}, nil
}

// NewDefault returns an empty deque with DefaultSegmentSize.
func NewDefault[T any]() *Deque[T] {
	return &Deque[T]{segmentSize: DefaultSegmentSize}
}

// FromSlice returns a deque holding a copy of items, packed from the first chunk.
func FromSlice[T any](segmentSize int, items []T) (*Deque[T], error) {
	d, err := New[T](segmentSize)
	if err != nil {
		return nil, err
	}
	for _, v := range items {
		d.Append(v)
	}

	return d, nil
}

// Len returns the element count; nil-safe.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}

	return d.totalSize
}

// SegmentSize returns the per-chunk capacity.
func (d *Deque[T]) SegmentSize() int {
	if d == nil || d.segmentSize <= 0 {
		return DefaultSegmentSize
	}

	return d.segmentSize
}

// ensureSegmentSize gives a zero-value Deque its default chunk capacity.
func (d *Deque[T]) ensureSegmentSize() {
	if d.segmentSize <= 0 {
		d.segmentSize = DefaultSegmentSize
	}
}

// SegmentCount returns the number of allocated chunks.
func (d *Deque[T]) SegmentCount() int { return len(d.chunks) }

// SegmentLengths returns the length of every chunk, head to tail.
func (d *Deque[T]) SegmentLengths() []int {
	out := make([]int, len(d.chunks))
	for i, c := range d.chunks {
		out[i] = c.Len()
	}

	return out
}

// headGap is the number of unused leading slots of the first chunk.
func (d *Deque[T]) headGap() int {
	if len(d.chunks) == 0 {
		return 0
	}

	return d.segmentSize - d.chunks[0].Len()
}

// locate maps a valid global index to (chunk, offset).
func (d *Deque[T]) locate(index int) (int, int) {
	adj := index + d.headGap()
	c := adj / d.segmentSize
	if c == 0 {
		return 0, index
	}

	return c, adj % d.segmentSize
}

// Get returns the element at index.
// Errors: ErrEmptyCollection when empty, ErrIndexOutOfRange otherwise.
func (d *Deque[T]) Get(index int) (T, error) {
	if err := seqerr.CheckIndex(index, d.Len()); err != nil {
		var zero T
		return zero, seqerr.Wrapf(err, "Deque.Get(%d)", index)
	}
	c, off := d.locate(index)

	return d.chunks[c].Get(off)
}

// Set overwrites the element at index.
func (d *Deque[T]) Set(index int, item T) error {
	if err := seqerr.CheckIndex(index, d.Len()); err != nil {
		return seqerr.Wrapf(err, "Deque.Set(%d)", index)
	}
	c, off := d.locate(index)

	return d.chunks[c].Set(off, item)
}

// First returns the element at index 0.
func (d *Deque[T]) First() (T, error) {
	if d.Len() == 0 {
		var zero T
		return zero, seqerr.Wrap("Deque.First", seqerr.ErrEmptyCollection)
	}

	return d.chunks[0].First()
}

// Last returns the element at index Len()-1.
func (d *Deque[T]) Last() (T, error) {
	if d.Len() == 0 {
		var zero T
		return zero, seqerr.Wrap("Deque.Last", seqerr.ErrEmptyCollection)
	}

	return d.chunks[len(d.chunks)-1].Last()
}

// All yields elements head to tail.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		for _, c := range d.chunks {
			for v := range c.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Backward yields elements tail to head.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		for i := len(d.chunks) - 1; i >= 0; i-- {
			c := d.chunks[i]
			for j := c.Len() - 1; j >= 0; j-- {
				v, err := c.Get(j)
				if err != nil || !yield(v) {
					return
				}
			}
		}
	}
}

// Slice returns a copy of the elements in index order.
func (d *Deque[T]) Slice() []T {
	out := make([]T, 0, d.Len())
	for v := range d.All() {
		out = append(out, v)
	}

	return out
}

// String renders the elements DefaultDelimiter-separated, or EmptyRepr.
func (d *Deque[T]) String() string {
	return sequence.Format(d.All(), sequence.DefaultDelimiter)
}
