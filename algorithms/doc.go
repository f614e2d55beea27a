// Package algorithms implements generic sequence algorithms on the
// sequence contracts.
//
// It provides free-function implementations of:
//
//   - Filtering and folding
//     – Where  (keep matching elements, relative order preserved)
//     – Reduce (strict left fold over index order)
//
//   - Transforms
//     – Map    (append op(x) for every x into a destination sequence)
//     – Apply  (unary transform from an iter.Seq into an Output cursor)
//     – Apply2 (binary zip of two ranges into an Output cursor)
//
//   - Ordering
//     – MergeSort / Sort / SortImmutable (stable, comparator driven)
//     – Ascending / Descending           (comparators for cmp.Ordered)
//
//   - Searching
//     – SearchSubsequence / SearchSubsequenceFunc (naive O(n·m) scan)
//
// Every function works through the narrow interfaces in package sequence
// (Indexed, RandomAccess, Sequence, Output), so the same code serves the
// array, list and segmented strategies. Nil required callbacks are rejected
// with seqerr.ErrInvalidArgument before anything is touched.
package algorithms
