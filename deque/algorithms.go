// SPDX-License-Identifier: MIT
// Package: deque
//
// algorithms.go: Where, Reduce, Sort and SearchSubsequence bound to the
// segmented strategy. The generic work is done by package algorithms; this
// file validates cursor ranges and keeps results typed as *Deque.

package deque

import (
	"iter"

	"github.com/AlekhinALex/SegmentedDeque/algorithms"
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

// Where returns a new deque with the same segment size holding only the
// elements for which pred reports true, in order.
// Errors: ErrInvalidArgument when pred is nil.
func (d *Deque[T]) Where(pred func(T) bool) (*Deque[T], error) {
	out, err := algorithms.Where[T](d, pred)
	if err != nil {
		return nil, seqerr.Wrap("Deque.Where", err)
	}

	return out.(*Deque[T]), nil
}

// Reduce folds the deque from the left starting at init.
func (d *Deque[T]) Reduce(op func(acc, v T) T, init T) T {
	return algorithms.Reduce[T, T](d, op, init)
}

// checkRange validates that [from, to) is a non-inverted range of d.
func (d *Deque[T]) checkRange(tag string, fd, ld *Deque[T], from, to int) error {
	if fd != d || ld != d {
		return seqerr.Wrap(tag+": cursor of another deque", seqerr.ErrInvalidIterator)
	}
	if from < 0 || to > d.Len() {
		return seqerr.Wrapf(seqerr.ErrInvalidIterator, "%s: [%d,%d) outside [0,%d)", tag, from, to, d.Len())
	}
	if from > to {
		return seqerr.Wrapf(seqerr.ErrInvalidArgument, "%s: first %d after last %d", tag, from, to)
	}

	return nil
}

// Sort stably sorts [first, last) in place with less, writing through Set so
// the chunk layout is preserved.
//
// Errors:
//   - ErrInvalidArgument when less is nil or first is after last.
//   - ErrInvalidIterator when a cursor belongs to another deque or lies
//     outside [0, Len()].
func (d *Deque[T]) Sort(first, last Iterator[T], less func(a, b T) bool) error {
	if less == nil {
		return seqerr.Wrap("Deque.Sort(less=nil)", seqerr.ErrInvalidArgument)
	}
	if err := d.checkRange("Deque.Sort", first.deque, last.deque, first.index, last.index); err != nil {
		return err
	}

	return algorithms.MergeSort[T](d, first.index, last.index-1, less)
}

// SortImmutable returns a copy of the deque with [first, last) sorted; the
// cursors must belong to the receiver.
func (d *Deque[T]) SortImmutable(first, last Iterator[T], less func(a, b T) bool) (*Deque[T], error) {
	if less == nil {
		return nil, seqerr.Wrap("Deque.SortImmutable(less=nil)", seqerr.ErrInvalidArgument)
	}
	if err := d.checkRange("Deque.SortImmutable", first.deque, last.deque, first.index, last.index); err != nil {
		return nil, err
	}
	out := d.clone()
	if err := algorithms.MergeSort[T](out, first.index, last.index-1, less); err != nil {
		return nil, err
	}

	return out, nil
}

// SearchSubsequence reports whether the needle range [needleFirst,
// needleLast) occurs contiguously inside [first, last) of the receiver,
// comparing with eq. The needle may live in any deque, including this one.
// An empty needle always matches.
func (d *Deque[T]) SearchSubsequence(first, last, needleFirst, needleLast ConstIterator[T], eq func(a, b T) bool) (bool, error) {
	if eq == nil {
		return false, seqerr.Wrap("Deque.SearchSubsequence(eq=nil)", seqerr.ErrInvalidArgument)
	}
	if err := d.checkRange("Deque.SearchSubsequence", first.deque, last.deque, first.index, last.index); err != nil {
		return false, err
	}
	nd := needleFirst.deque
	if nd == nil || needleLast.deque != nd {
		return false, seqerr.Wrap("Deque.SearchSubsequence: needle cursors of different deques", seqerr.ErrInvalidIterator)
	}
	if err := nd.checkRange("Deque.SearchSubsequence(needle)", nd, nd, needleFirst.index, needleLast.index); err != nil {
		return false, err
	}

	hay, err := sequence.Window[T](d, first.index, last.index)
	if err != nil {
		return false, err
	}
	needle, err := sequence.Window[T](nd, needleFirst.index, needleLast.index)
	if err != nil {
		return false, err
	}

	return algorithms.SearchSubsequenceFunc[T](hay, needle, eq)
}

// Values yields the elements of [first, last) for use as an algorithms.Apply
// source.
func (d *Deque[T]) Values(first, last ConstIterator[T]) (iter.Seq[T], error) {
	if err := d.checkRange("Deque.Values", first.deque, last.deque, first.index, last.index); err != nil {
		return nil, err
	}
	from, to := first.index, last.index

	return func(yield func(T) bool) {
		for i := from; i < to; i++ {
			v, err := d.Get(i)
			if err != nil || !yield(v) {
				return
			}
		}
	}, nil
}
