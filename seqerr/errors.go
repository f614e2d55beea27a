// SPDX-License-Identifier: MIT
// Package seqerr defines the sentinel error set shared by every sequence
// strategy (dynarray, linkedlist, sequence, deque) and the algorithms layer.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach call-site context with fmt.Errorf("Type.Method(...): %w", ErrX).
//   - Validation always happens before mutation, so a returned error means the
//     receiver is unchanged.
//   - Nothing in the core panics on caller-triggered conditions.
package seqerr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCollection is returned when an element is requested from a
	// zero-length sequence (First, Last, Get, Set on empty).
	ErrEmptyCollection = errors.New("seq: collection is empty")

	// ErrIndexOutOfRange indicates an index or an index range outside the
	// valid bounds of the receiver.
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrInvalidArgument covers non-positive segment sizes, nil required
	// arguments (comparators, predicates, assign sources) and self-referential
	// concatenation of a linked list.
	ErrInvalidArgument = errors.New("seq: invalid argument")

	// ErrUnsupportedOperation is returned by iterator-level Insert/Erase:
	// structural mutation must go through the container.
	ErrUnsupportedOperation = errors.New("seq: unsupported operation")

	// ErrInvalidIterator indicates dereferencing an end sentinel or a cursor
	// positioned outside its container.
	ErrInvalidIterator = errors.New("seq: invalid iterator")
)

// Wrap attaches a method tag to a sentinel, e.g. Wrap("Array.Get(7)", ErrIndexOutOfRange).
// errors.Is keeps matching the sentinel.
func Wrap(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Wrapf is Wrap with a formatted tag.
func Wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// CheckIndex validates 0 ≤ index < length, reporting ErrEmptyCollection
// first when length is zero. It is the single bounds rule for element access.
func CheckIndex(index, length int) error {
	if length == 0 {
		return ErrEmptyCollection
	}
	if index < 0 || index >= length {
		return ErrIndexOutOfRange
	}

	return nil
}

// CheckInsert validates an insertion position 0 ≤ index ≤ length.
func CheckInsert(index, length int) error {
	if index < 0 || index > length {
		return ErrIndexOutOfRange
	}

	return nil
}

// CheckRange validates an inclusive [start, end] window over length elements:
// start ≥ 0, end < length and start ≤ end.
func CheckRange(start, end, length int) error {
	if start < 0 || end >= length || start > end {
		return ErrIndexOutOfRange
	}

	return nil
}
