// Package segmenteddeque is a generic sequence library: one capability
// contract, three storage strategies, a set of generic algorithms and a
// copy-on-write twin for every mutator.
//
// What is in the box?
//
//   - Growable buffer: contiguous storage with amortized doubling
//   - Linked nodes: doubly linked chain with forward/backward cursors
//   - Sequence contract: First, Last, Get, Set, Append, Prepend, InsertAt,
//     Concat, Subsequence, Len and the *Immutable twins
//   - Strategies: ArraySequence, ListSequence and the segmented Deque
//   - Algorithms: Where, Reduce, Map/Apply/Apply2, stable merge sort,
//     naive subsequence search
//
// Everything is organized under these subpackages:
//
//	seqerr/     - sentinel errors shared by every package
//	dynarray/   - Array[T], the growable buffer
//	linkedlist/ - List[T], Node[T] and Iterator[T]
//	sequence/   - the Sequence[T] contract, ArraySequence, ListSequence, View, Appender
//	algorithms/ - generic filter/fold/map/sort/search over the contract
//	deque/      - Deque[T], the segmented strategy with O(1) indexing
//
// Quick ASCII example (segment size 3, values 0..6 after one Prepend):
//
//	[ _ _ 0 ] [ 1 2 3 ] [ 4 5 6 ]
//	 head gap
//
// A sequence is owned by one goroutine at a time; nothing here locks.
//
// cmd/dequectl is a small command-line front end for trying operations.
package segmenteddeque
