// SPDX-License-Identifier: MIT
// Package: algorithms
//
// fold.go: Where and Reduce.

package algorithms

import (
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

// Where returns a new sequence of the same strategy as s holding only the
// elements for which pred reports true, in their original relative order.
// The receiver is not modified.
//
// A typed-nil strategy pointer reads as an empty sequence.
//
// Errors: ErrInvalidArgument when s is a nil interface or pred is nil.
//
// Complexity: O(n) predicate calls plus the appends of the result strategy.
func Where[T any](s sequence.Sequence[T], pred func(T) bool) (sequence.Sequence[T], error) {
	if s == nil || pred == nil {
		return nil, seqerr.Wrap("algorithms.Where(nil)", seqerr.ErrInvalidArgument)
	}

	out := s.CloneEmpty()
	for v := range s.All() {
		if pred(v) {
			out.Append(v)
		}
	}

	return out, nil
}

// Reduce folds s from the left: op(...op(op(init, s[0]), s[1])..., s[n-1]).
// An empty or nil s yields init.
func Reduce[T, R any](s sequence.Sequence[T], op func(R, T) R, init R) R {
	acc := init
	if s == nil {
		return acc
	}
	for v := range s.All() {
		acc = op(acc, v)
	}

	return acc
}
