// Package deque provides Deque, the segmented sequence strategy: a list of
// fixed-capacity chunks (each a sequence.ArraySequence) giving amortized O(1)
// Append and Prepend and O(1) indexed access.
//
// # Chunk layout
//
// Every chunk holds at most SegmentSize elements and no chunk is ever empty.
// Chunks strictly between the first and the last are always full. The first
// chunk may be partial; its missing leading slots are the "head gap":
//
//	segmentSize = 4, contents 0..8
//
//	chunk 0      chunk 1          chunk 2
//	[ _ _ 0 1 ]  [ 2 3 4 5 ]      [ 6 7 8 _ ]
//	  head gap = 2
//
// Global index i resolves with one division:
//
//	adj    = i + headGap
//	chunk  = adj / segmentSize
//	offset = adj % segmentSize   (offset = i when chunk == 0)
//
// # Middle inserts
//
// InsertAt on an interior index inserts into the owning chunk and, if that
// chunk now exceeds SegmentSize, carries one element per chunk toward the
// nearer end of the deque:
//
//	toward the tail: last element of chunk k → front of chunk k+1
//	toward the head: first element of chunk k → back of chunk k-1
//
// opening a new end chunk when the end chunk itself overflows. The layout
// above is therefore preserved by every mutator.
//
// # Cursors
//
// Iterator and ConstIterator are (deque, index) pairs. They resolve through
// Get on every access and are not invalidated by mutation: after a structural
// change the caller re-derives them.
//
// Deque is not safe for concurrent use.
package deque
