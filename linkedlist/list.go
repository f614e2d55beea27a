// SPDX-License-Identifier: MIT
// Package: linkedlist
//
// list.go: element access and structural mutation.

package linkedlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/AlekhinALex/SegmentedDeque/seqerr"
)

// Len returns the number of nodes. A nil *List has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.length
}

// nodeAt walks forward from head. Caller validates index.
func (l *List[T]) nodeAt(index int) *Node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}

	return n
}

// First returns the head value.
// Complexity: O(1).
func (l *List[T]) First() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, seqerr.Wrap("List.First", seqerr.ErrEmptyCollection)
	}

	return l.head.Value, nil
}

// Last returns the tail value.
// Complexity: O(1).
func (l *List[T]) Last() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, seqerr.Wrap("List.Last", seqerr.ErrEmptyCollection)
	}

	return l.tail.Value, nil
}

// Get returns the value at index.
// Complexity: O(index).
func (l *List[T]) Get(index int) (T, error) {
	if err := seqerr.CheckIndex(index, l.length); err != nil {
		var zero T
		return zero, seqerr.Wrapf(err, "List.Get(%d)", index)
	}

	return l.nodeAt(index).Value, nil
}

// Set overwrites the value at index.
// Complexity: O(index).
func (l *List[T]) Set(index int, value T) error {
	if err := seqerr.CheckIndex(index, l.length); err != nil {
		return seqerr.Wrapf(err, "List.Set(%d)", index)
	}
	l.nodeAt(index).Value = value

	return nil
}

// Append links a new node after the tail.
// Complexity: O(1).
func (l *List[T]) Append(item T) {
	n := &Node[T]{Value: item, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// Prepend links a new node before the head.
// Complexity: O(1).
func (l *List[T]) Prepend(item T) {
	n := &Node[T]{Value: item, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.length++
}

// InsertAt places item at index ∈ [0, Len()].
// Complexity: O(index) to locate the predecessor, O(1) to splice.
func (l *List[T]) InsertAt(item T, index int) error {
	if err := seqerr.CheckInsert(index, l.length); err != nil {
		return seqerr.Wrapf(err, "List.InsertAt(%d)", index)
	}
	switch index {
	case 0:
		l.Prepend(item)
	case l.length:
		l.Append(item)
	default:
		prev := l.nodeAt(index - 1)
		n := &Node[T]{Value: item, prev: prev, next: prev.next}
		prev.next.prev = n
		prev.next = n
		l.length++
	}

	return nil
}

// Clear unlinks every node.
func (l *List[T]) Clear() {
	// Break links so detached nodes held by stale cursors do not pin the chain.
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.head, l.tail, l.length = nil, nil, 0
}

// All yields values head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward yields values tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Slice returns the values as a new slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list as "a <-> b <-> c"; an empty list renders "nil".
func (l *List[T]) String() string {
	if l.Len() == 0 {
		return "nil"
	}
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(" <-> ")
		}
		fmt.Fprint(&sb, n.Value)
	}

	return sb.String()
}
