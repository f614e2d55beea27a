// SPDX-License-Identifier: MIT
// Package: algorithms
//
// mergesort.go: stable top-down merge sort through Get/Set.
//
// Algorithm:
//  1. Validate the inclusive range [left, right] and the comparator.
//  2. Allocate one scratch buffer of right-left+1 slots, reused by every merge.
//  3. Recursively sort [left, mid] and [mid+1, right].
//  4. Copy [left, right] into scratch via Get, then merge both halves back
//     through Set, taking from the left half on ties (stability).
//
// Time complexity:  O(n log n) comparisons, O(n log n) Get/Set calls.
// Memory usage:     O(n) scratch plus O(log n) recursion depth.
//
// The container is only ever touched through Get/Set, so strategies with
// structural invariants (the segmented deque's chunk lengths) keep them.

package algorithms

import (
	"cmp"

	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

// Ascending is the default "less-than" comparator.
func Ascending[T cmp.Ordered](a, b T) bool { return cmp.Less(a, b) }

// Descending orders larger values first.
func Descending[T cmp.Ordered](a, b T) bool { return cmp.Less(b, a) }

// MergeSort stably sorts the inclusive index range [left, right] of s by less.
// An empty range (left == right+1) is a no-op.
//
// Errors:
//   - ErrInvalidArgument when s or less is nil.
//   - ErrIndexOutOfRange unless 0 ≤ left ≤ right+1 ≤ s.Len().
//   - Any error returned by s.Get / s.Set (the range may then be partially merged).
func MergeSort[T any](s sequence.RandomAccess[T], left, right int, less func(a, b T) bool) error {
	if s == nil || less == nil {
		return seqerr.Wrap("algorithms.MergeSort(nil)", seqerr.ErrInvalidArgument)
	}
	if left < 0 || right >= s.Len() || left > right+1 {
		return seqerr.Wrapf(seqerr.ErrIndexOutOfRange, "algorithms.MergeSort(%d,%d)", left, right)
	}
	if right-left < 1 {
		return nil
	}

	m := &merger[T]{s: s, less: less, scratch: make([]T, right-left+1)}

	return m.sort(left, right)
}

// Sort stably sorts the whole of s in place.
func Sort[T any](s sequence.RandomAccess[T], less func(a, b T) bool) error {
	if s == nil {
		return seqerr.Wrap("algorithms.Sort(nil)", seqerr.ErrInvalidArgument)
	}

	return MergeSort(s, 0, s.Len()-1, less)
}

// SortImmutable returns a sorted clone of s; s itself is left untouched.
// A typed-nil s yields an empty sequence of its strategy.
func SortImmutable[T any](s sequence.Sequence[T], less func(a, b T) bool) (sequence.Sequence[T], error) {
	if s == nil || less == nil {
		return nil, seqerr.Wrap("algorithms.SortImmutable(nil)", seqerr.ErrInvalidArgument)
	}
	out := s.Clone()
	if err := Sort[T](out, less); err != nil {
		return nil, err
	}

	return out, nil
}

// merger carries the state shared by one MergeSort call.
type merger[T any] struct {
	s       sequence.RandomAccess[T]
	less    func(a, b T) bool
	scratch []T
}

func (m *merger[T]) sort(left, right int) error {
	if left >= right {
		return nil
	}
	mid := left + (right-left)/2
	if err := m.sort(left, mid); err != nil {
		return err
	}
	if err := m.sort(mid+1, right); err != nil {
		return err
	}

	return m.merge(left, mid, right)
}

// merge combines the sorted runs [left, mid] and [mid+1, right].
func (m *merger[T]) merge(left, mid, right int) error {
	buf := m.scratch[:right-left+1]
	for k := range buf {
		v, err := m.s.Get(left + k)
		if err != nil {
			return err
		}
		buf[k] = v
	}

	// Already ordered across the seam: nothing to write back.
	split := mid - left + 1
	if !m.less(buf[split], buf[split-1]) {
		return nil
	}

	i, j, k := 0, split, left
	for i < split && j < len(buf) {
		v := buf[i]
		if m.less(buf[j], buf[i]) {
			v = buf[j]
			j++
		} else {
			i++
		}
		if err := m.s.Set(k, v); err != nil {
			return err
		}
		k++
	}
	for ; i < split; i++ {
		if err := m.s.Set(k, buf[i]); err != nil {
			return err
		}
		k++
	}
	for ; j < len(buf); j++ {
		if err := m.s.Set(k, buf[j]); err != nil {
			return err
		}
		k++
	}

	return nil
}
