// SPDX-License-Identifier: MIT
// Package: dynarray
//
// array.go: storage, growth policy and element access.
//
// Invariants:
//   - 0 ≤ size ≤ len(data); len(data) is the capacity.
//   - Slots in data[size:] hold zero values (no stale references are retained).
//   - Capacity grows geometrically (doubling, minimum 1) and never shrinks
//     except through Clear.

package dynarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/AlekhinALex/SegmentedDeque/seqerr"
)

// minCapacity is the capacity of a fresh or cleared Array.
const minCapacity = 1

// growthFactor is the geometric growth multiplier.
const growthFactor = 2

// Array is a contiguous growable buffer of T.
type Array[T any] struct {
	data []T // backing storage; len(data) == capacity
	size int // logical element count
}

// New returns an empty Array with capacity 1.
// Complexity: O(1).
func New[T any]() *Array[T] {
	return &Array[T]{data: make([]T, minCapacity)}
}

// NewWithSize returns an Array holding n zero values.
// A negative n yields ErrInvalidArgument.
// Complexity: O(n).
func NewWithSize[T any](n int) (*Array[T], error) {
	if n < 0 {
		return nil, seqerr.Wrapf(seqerr.ErrInvalidArgument, "dynarray.NewWithSize(%d)", n)
	}

	return &Array[T]{data: make([]T, max(n, minCapacity)), size: n}, nil
}

// FromSlice returns an Array holding a copy of items.
// A nil or empty slice produces an empty Array.
// Complexity: O(len(items)).
func FromSlice[T any](items []T) *Array[T] {
	a := &Array[T]{data: make([]T, max(len(items), minCapacity)), size: len(items)}
	copy(a.data, items)

	return a
}

// Len returns the logical number of elements. A nil *Array has length 0.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}

	return a.size
}

// Cap returns the allocated capacity.
func (a *Array[T]) Cap() int {
	return len(a.data)
}

// grow ensures capacity ≥ need by repeated doubling.
// Complexity: amortized O(1) per element over a run of appends.
func (a *Array[T]) grow(need int) {
	if need <= len(a.data) {
		return
	}
	newCap := max(len(a.data), minCapacity)
	for newCap < need {
		newCap *= growthFactor
	}
	next := make([]T, newCap)
	copy(next, a.data[:a.size])
	a.data = next
}

// Get returns the element at index.
// Errors: ErrEmptyCollection when empty, ErrIndexOutOfRange otherwise.
// Complexity: O(1).
func (a *Array[T]) Get(index int) (T, error) {
	if err := seqerr.CheckIndex(index, a.size); err != nil {
		var zero T
		return zero, seqerr.Wrapf(err, "Array.Get(%d)", index)
	}

	return a.data[index], nil
}

// First returns the element at index 0.
func (a *Array[T]) First() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, seqerr.Wrap("Array.First", seqerr.ErrEmptyCollection)
	}

	return a.data[0], nil
}

// Last returns the element at index Len()-1.
func (a *Array[T]) Last() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, seqerr.Wrap("Array.Last", seqerr.ErrEmptyCollection)
	}

	return a.data[a.size-1], nil
}

// Set overwrites the element at index.
// Complexity: O(1).
func (a *Array[T]) Set(index int, value T) error {
	if err := seqerr.CheckIndex(index, a.size); err != nil {
		return seqerr.Wrapf(err, "Array.Set(%d)", index)
	}
	a.data[index] = value

	return nil
}

// Append adds item at the end, doubling capacity when full.
// Complexity: amortized O(1).
func (a *Array[T]) Append(item T) {
	a.grow(a.size + 1)
	a.data[a.size] = item
	a.size++
}

// Prepend adds item at the front, shifting every element right by one.
// Complexity: O(n).
func (a *Array[T]) Prepend(item T) {
	a.grow(a.size + 1)
	copy(a.data[1:a.size+1], a.data[:a.size])
	a.data[0] = item
	a.size++
}

// InsertAt places item at index ∈ [0, Len()]. Index 0 and Len() delegate to
// Prepend and Append; any other position shifts the tail right.
// Complexity: O(n-index).
func (a *Array[T]) InsertAt(item T, index int) error {
	if err := seqerr.CheckInsert(index, a.size); err != nil {
		return seqerr.Wrapf(err, "Array.InsertAt(%d)", index)
	}
	switch index {
	case 0:
		a.Prepend(item)
	case a.size:
		a.Append(item)
	default:
		a.grow(a.size + 1)
		copy(a.data[index+1:a.size+1], a.data[index:a.size])
		a.data[index] = item
		a.size++
	}

	return nil
}

// RemoveAt deletes and returns the element at index, shifting the tail left.
// Capacity is kept.
// Complexity: O(n-index).
func (a *Array[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := seqerr.CheckIndex(index, a.size); err != nil {
		return zero, seqerr.Wrapf(err, "Array.RemoveAt(%d)", index)
	}
	item := a.data[index]
	copy(a.data[index:a.size-1], a.data[index+1:a.size])
	a.size--
	a.data[a.size] = zero

	return item, nil
}

// Resize sets the logical length to newSize. Growing fills with zero values
// and grows capacity geometrically; shrinking zeroes the dropped slots and
// keeps the capacity.
// Errors: ErrInvalidArgument when newSize < 0.
func (a *Array[T]) Resize(newSize int) error {
	if newSize < 0 {
		return seqerr.Wrapf(seqerr.ErrInvalidArgument, "Array.Resize(%d)", newSize)
	}
	if newSize > a.size {
		a.grow(newSize)
	} else {
		clear(a.data[newSize:a.size])
	}
	a.size = newSize

	return nil
}

// Clear drops every element and resets capacity to 1.
func (a *Array[T]) Clear() {
	a.data = make([]T, minCapacity)
	a.size = 0
}

// All yields elements in index order.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// Slice returns a fresh copy of the logical contents.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.Len())
	if a != nil {
		copy(out, a.data[:a.size])
	}

	return out
}

// String renders the elements as "[a, b, c]"; an empty Array renders "[]".
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, a.data[i])
	}
	sb.WriteByte(']')

	return sb.String()
}
