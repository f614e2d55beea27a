// SPDX-License-Identifier: MIT
// Package: linkedlist
//
// types.go: Node, List and constructors.

package linkedlist

import "github.com/AlekhinALex/SegmentedDeque/seqerr"

// Node is one link of a List. Value is freely readable and writable; the
// links are owned by the List.
type Node[T any] struct {
	Value T

	next *Node[T]
	prev *Node[T]
}

// Next returns the successor node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the predecessor node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly linked chain of nodes.
// head/tail are nil iff length == 0.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithSize returns a List of n zero values.
// Errors: ErrInvalidArgument when n < 0.
func NewWithSize[T any](n int) (*List[T], error) {
	if n < 0 {
		return nil, seqerr.Wrapf(seqerr.ErrInvalidArgument, "linkedlist.NewWithSize(%d)", n)
	}
	l := New[T]()
	var zero T
	for i := 0; i < n; i++ {
		l.Append(zero)
	}

	return l, nil
}

// FromSlice returns a List holding items in order.
func FromSlice[T any](items []T) *List[T] {
	l := New[T]()
	for _, v := range items {
		l.Append(v)
	}

	return l
}
