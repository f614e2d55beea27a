// Package sequence defines the Sequence capability contract and its two
// simple strategies:
//
//	ArraySequence - adapter over dynarray.Array (O(1) indexing, O(n) prepend)
//	ListSequence  - adapter over linkedlist.List (O(1) both ends, O(n) indexing)
//
// The segmented strategy lives in package deque.
//
// Contract (every strategy, identical observable behavior):
//
//	First / Last / Get                       element access
//	Append / Prepend / InsertAt / Set        in-place mutation
//	Concat                                   bulk append of another Sequence
//	Len / Subsequence                        size and inclusive [start, end] copy
//	*Immutable twins                         clone, mutate the clone, return it
//	Clone / CloneEmpty / All / String        copies, iteration, diagnostics
//
// Immutable twins never touch the receiver and return a sequence of the same
// strategy. Each call is a full O(n) deep copy; there is no structural sharing.
//
// The package also carries the small interfaces the algorithms layer works
// through: Indexed (Get+Len), RandomAccess (Indexed+Set), View (a bounded
// window) and Output (a destination cursor, see Appender).
package sequence
