// Package linkedlist provides List, a doubly linked node chain with
// bidirectional cursors.
//
// Cost profile (deliberately different from dynarray):
//
//	Append / Prepend / First / Last   O(1)
//	Get / Set                         O(n), forward walk from head
//	InsertAt                          O(n) to locate, O(1) to splice
//
// Cursors:
//
//	Iterator exposes the current *Node. Dereferencing End() fails with
//	seqerr.ErrInvalidIterator. Iterator.Insert and Iterator.Erase always fail
//	with seqerr.ErrUnsupportedOperation: structural changes go through the
//	List so that no cursor is silently invalidated behind the caller's back.
//
// A List owns every node reachable from its head; Clone and Assign copy
// node by node and never share nodes between lists. Concatenating a List
// with itself is rejected with seqerr.ErrInvalidArgument.
package linkedlist
