// SPDX-License-Identifier: MIT
// Package: algorithms
//
// search.go: naive contiguous subsequence search.

package algorithms

import (
	"github.com/AlekhinALex/SegmentedDeque/seqerr"
	"github.com/AlekhinALex/SegmentedDeque/sequence"
)

// SearchSubsequence reports whether needle occurs as a contiguous run inside
// haystack, comparing with ==. An empty needle always matches.
func SearchSubsequence[T comparable](haystack, needle sequence.Indexed[T]) (bool, error) {
	return SearchSubsequenceFunc(haystack, needle, func(a, b T) bool { return a == b })
}

// SearchSubsequenceFunc is SearchSubsequence with a caller-supplied equality.
// For each start position in haystack it walks forward comparing against
// needle, with no skip table: O(n·m) comparisons worst case.
//
// Errors: ErrInvalidArgument when any argument is nil; errors from Get are
// returned as-is.
func SearchSubsequenceFunc[T any](haystack, needle sequence.Indexed[T], eq func(a, b T) bool) (bool, error) {
	if haystack == nil || needle == nil || eq == nil {
		return false, seqerr.Wrap("algorithms.SearchSubsequenceFunc(nil)", seqerr.ErrInvalidArgument)
	}
	n, m := haystack.Len(), needle.Len()
	if m == 0 {
		return true, nil
	}

	for start := 0; start+m <= n; start++ {
		matched := true
		for k := 0; k < m; k++ {
			h, err := haystack.Get(start + k)
			if err != nil {
				return false, err
			}
			w, err := needle.Get(k)
			if err != nil {
				return false, err
			}
			if !eq(h, w) {
				matched = false
				break
			}
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}
