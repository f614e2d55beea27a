// SPDX-License-Identifier: MIT
// Package: sequence
//
// format.go: diagnostic rendering. Not a serialization format.

package sequence

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Format joins the values of seq with sep; an empty seq renders EmptyRepr.
func Format[T any](seq iter.Seq[T], sep string) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	if first {
		return EmptyRepr
	}

	return sb.String()
}

// Print writes s in index order, DefaultDelimiter-separated, followed by a newline.
func Print[T any](w io.Writer, s Sequence[T]) error {
	_, err := fmt.Fprintln(w, Format(s.All(), DefaultDelimiter))

	return err
}
