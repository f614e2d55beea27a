// Package dynarray provides Array, a contiguous, growable buffer with
// amortized doubling.
//
// 🚀 What is Array?
//
//	A generic slice-backed buffer that tracks its logical length separately
//	from its allocated capacity:
//	  • Append is amortized O(1): capacity doubles (minimum 1) when full.
//	  • Prepend and InsertAt shift the tail right, O(n).
//	  • Capacity never shrinks implicitly; Clear resets it to 1.
//	  • Clone and Assign always deep-copy; two Arrays never share storage.
//
// ⚙️ Usage:
//
//	a := dynarray.New[int]()
//	a.Append(2)
//	a.Prepend(1)
//	_ = a.InsertAt(3, a.Len())
//	v, err := a.Get(1) // 2, nil
//
// Errors (package seqerr):
//   - ErrEmptyCollection  - element access on an empty Array.
//   - ErrIndexOutOfRange  - index or range outside [0, Len()).
//   - ErrInvalidArgument  - negative Resize, nil Assign source.
//
// Array is not safe for concurrent mutation.
package dynarray
