// SPDX-License-Identifier: MIT
// File: immutable.go
// Role: copy-on-write twins of every mutator for ArraySequence and ListSequence.
// Contract:
//   - Validation happens on the receiver first; on error nothing is copied.
//   - The receiver is never modified; the result owns fresh storage.
//   - Cost is one full deep copy per call (O(n)).

package sequence

import "github.com/AlekhinALex/SegmentedDeque/seqerr"

// AppendImmutable returns a copy with item appended.
func (s *ArraySequence[T]) AppendImmutable(item T) Sequence[T] {
	out := s.clone()
	out.Append(item)

	return out
}

// PrependImmutable returns a copy with item prepended.
func (s *ArraySequence[T]) PrependImmutable(item T) Sequence[T] {
	out := s.clone()
	out.Prepend(item)

	return out
}

// InsertAtImmutable returns a copy with item inserted at index.
func (s *ArraySequence[T]) InsertAtImmutable(item T, index int) (Sequence[T], error) {
	if err := seqerr.CheckInsert(index, s.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "ArraySequence.InsertAtImmutable(%d)", index)
	}
	out := s.clone()
	if err := out.InsertAt(item, index); err != nil {
		return nil, err
	}

	return out, nil
}

// SetImmutable returns a copy with index overwritten.
func (s *ArraySequence[T]) SetImmutable(index int, item T) (Sequence[T], error) {
	if err := seqerr.CheckIndex(index, s.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "ArraySequence.SetImmutable(%d)", index)
	}
	out := s.clone()
	if err := out.Set(index, item); err != nil {
		return nil, err
	}

	return out, nil
}

// ConcatImmutable returns a copy with other appended. other may be the receiver.
func (s *ArraySequence[T]) ConcatImmutable(other Sequence[T]) (Sequence[T], error) {
	out := s.clone()
	if err := out.Concat(other); err != nil {
		return nil, err
	}

	return out, nil
}

// AppendImmutable returns a copy with item appended.
func (s *ListSequence[T]) AppendImmutable(item T) Sequence[T] {
	out := s.clone()
	out.Append(item)

	return out
}

// PrependImmutable returns a copy with item prepended.
func (s *ListSequence[T]) PrependImmutable(item T) Sequence[T] {
	out := s.clone()
	out.Prepend(item)

	return out
}

// InsertAtImmutable returns a copy with item inserted at index.
func (s *ListSequence[T]) InsertAtImmutable(item T, index int) (Sequence[T], error) {
	if err := seqerr.CheckInsert(index, s.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "ListSequence.InsertAtImmutable(%d)", index)
	}
	out := s.clone()
	if err := out.InsertAt(item, index); err != nil {
		return nil, err
	}

	return out, nil
}

// SetImmutable returns a copy with index overwritten.
func (s *ListSequence[T]) SetImmutable(index int, item T) (Sequence[T], error) {
	if err := seqerr.CheckIndex(index, s.Len()); err != nil {
		return nil, seqerr.Wrapf(err, "ListSequence.SetImmutable(%d)", index)
	}
	out := s.clone()
	if err := out.Set(index, item); err != nil {
		return nil, err
	}

	return out, nil
}

// ConcatImmutable returns a copy with other appended. Because the copy is
// taken first, other may be the receiver here even though Concat rejects it.
func (s *ListSequence[T]) ConcatImmutable(other Sequence[T]) (Sequence[T], error) {
	out := s.clone()
	if err := out.Concat(other); err != nil {
		return nil, err
	}

	return out, nil
}
