// SPDX-License-Identifier: MIT
// Package: algorithms
//
// transform.go: Map, Apply and Apply2.

package algorithms

import (
	"iter"

	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

// Map appends op(x) to dst for every x of src, in index order.
//
// A typed-nil src reads as empty; dst must be a constructed sequence.
//
// Errors: ErrInvalidArgument when src or dst is a nil interface, or op is nil.
func Map[T, U any](src sequence.Sequence[T], dst sequence.Sequence[U], op func(T) U) error {
	if src == nil || dst == nil {
		return seqerr.Wrap("algorithms.Map(nil)", seqerr.ErrInvalidArgument)
	}
	_, err := Apply(src.All(), sequence.Appender(dst), op)

	return err
}

// Apply writes op(x) for every x yielded by src through dst, advancing dst
// after each write. It returns the number of values written.
//
// The caller must make sure dst has room for every value: a cursor that runs
// off its container reports ErrInvalidIterator, which Apply returns together
// with the count written so far.
//
// Steps:
//  1. Reject a nil op.
//  2. For each x of src:
//     2.1 SetValue(op(x)) on dst; stop on error.
//     2.2 Advance dst.
func Apply[T, U any](src iter.Seq[T], dst sequence.Output[U], op func(T) U) (int, error) {
	if src == nil || dst == nil || op == nil {
		return 0, seqerr.Wrap("algorithms.Apply(nil)", seqerr.ErrInvalidArgument)
	}

	n := 0
	for v := range src {
		if err := dst.SetValue(op(v)); err != nil {
			return n, seqerr.Wrapf(err, "algorithms.Apply(at %d)", n)
		}
		dst.Next()
		n++
	}

	return n, nil
}

// Apply2 zips a and b element-wise, writing op(x, y) through dst for every x
// of a. b must yield at least as many values as a; leftovers of b are
// ignored.
//
// Errors: ErrInvalidArgument for nil arguments; ErrIndexOutOfRange when b is
// shorter than a (values already written stay written).
func Apply2[T1, T2, U any](a iter.Seq[T1], b iter.Seq[T2], dst sequence.Output[U], op func(T1, T2) U) (int, error) {
	if a == nil || b == nil || dst == nil || op == nil {
		return 0, seqerr.Wrap("algorithms.Apply2(nil)", seqerr.ErrInvalidArgument)
	}

	next, stop := iter.Pull(b)
	defer stop()

	n := 0
	for x := range a {
		y, ok := next()
		if !ok {
			return n, seqerr.Wrapf(seqerr.ErrIndexOutOfRange, "algorithms.Apply2: second range ended at %d", n)
		}
		if err := dst.SetValue(op(x, y)); err != nil {
			return n, seqerr.Wrapf(err, "algorithms.Apply2(at %d)", n)
		}
		dst.Next()
		n++
	}

	return n, nil
}
