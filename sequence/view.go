// SPDX-License-Identifier: MIT
// Package: sequence
//
// view.go: bounded windows and destination cursors for the algorithms layer.

package sequence

import "github.com/AlekhinALex/SegmentedDeque/seqerr"

// View is a half-open window [from, to) over a RandomAccess. Indices passed to
// Get/Set are relative to from. A View does not copy; it observes the source
// and is invalidated by structural changes to it.
type View[T any] struct {
	src      RandomAccess[T]
	from, to int
}

var _ RandomAccess[int] = View[int]{}

// Window returns the View [from, to) of src.
// Errors: ErrInvalidArgument for a nil src; ErrIndexOutOfRange unless
// 0 ≤ from ≤ to ≤ src.Len(). An empty window (from == to) is valid.
func Window[T any](src RandomAccess[T], from, to int) (View[T], error) {
	if src == nil {
		return View[T]{}, seqerr.Wrap("sequence.Window(nil)", seqerr.ErrInvalidArgument)
	}
	if from < 0 || from > to || to > src.Len() {
		return View[T]{}, seqerr.Wrapf(seqerr.ErrIndexOutOfRange, "sequence.Window(%d,%d)", from, to)
	}

	return View[T]{src: src, from: from, to: to}, nil
}

// Whole returns the View over all of src.
func Whole[T any](src RandomAccess[T]) View[T] {
	return View[T]{src: src, from: 0, to: src.Len()}
}

// Len returns to - from.
func (v View[T]) Len() int { return v.to - v.from }

// Offset returns the absolute index of the window's first slot in the source.
func (v View[T]) Offset() int { return v.from }

// Get reads slot i of the window.
func (v View[T]) Get(i int) (T, error) {
	if err := seqerr.CheckIndex(i, v.Len()); err != nil {
		var zero T
		return zero, seqerr.Wrapf(err, "View.Get(%d)", i)
	}

	return v.src.Get(v.from + i)
}

// Set writes slot i of the window through to the source.
func (v View[T]) Set(i int, item T) error {
	if err := seqerr.CheckIndex(i, v.Len()); err != nil {
		return seqerr.Wrapf(err, "View.Set(%d)", i)
	}

	return v.src.Set(v.from+i, item)
}

// appender is the Output returned by Appender.
type appender[T any] struct {
	dst Sequence[T]
}

// Appender returns an Output that appends every written value to dst.
// Next is a no-op: each SetValue opens a new slot at the end.
func Appender[T any](dst Sequence[T]) Output[T] {
	return &appender[T]{dst: dst}
}

func (a *appender[T]) SetValue(v T) error {
	a.dst.Append(v)

	return nil
}

func (a *appender[T]) Next() {}
