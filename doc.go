// Package dynarr provides a generic, contiguous, growable sequence container.
//
// Array is a minimal dynamic array: indexed storage of homogeneous elements
// with amortized constant-time append, explicit capacity control, and
// insertion/removal at arbitrary positions. Storage lives in a single
// exclusively owned rawbuf.Buffer that is replaced wholesale on growth.
//
// # Quick Start
//
//	a := dynarr.New[int]()
//	_ = a.PushBack(1)
//	_ = a.PushBack(2)
//	_ = a.PushBack(3)
//
//	for i, v := range a.All() {
//	    fmt.Println(i, v)
//	}
//
//	b, _ := a.Clone()      // deep copy, independent storage
//	b.Set(0, 99)           // a is unaffected
//
// # Growth
//
// When an operation needs more room than the current capacity, the array
// allocates a fresh buffer of max(needed, 2*cap) slots, relocates the live
// elements in order, and commits with a single buffer swap. Doubling with
// the needed size as the floor keeps a sequence of N appends at O(N) total
// relocation work. Reserve pre-allocates an exact capacity; Clear keeps the
// buffer so fill/clear cycles do not reallocate. Cumulative relocation work
// is observable via Stats.
//
// # Errors and Preconditions
//
// Operations that may allocate (PushBack, Insert, Reserve, Resize, Clone,
// Assign and the sized constructors) return an error on allocation failure
// and leave the array in its pre-call state: the new buffer is fully built
// before a single non-failing swap commits it. At is the checked accessor
// and fails with *ErrOutOfRange. Everything else treats an invalid index,
// position, or count as a bug in the caller and panics, the same contract
// the runtime applies to slice indexing.
//
// # Concurrency
//
// Array is not safe for concurrent use; callers requiring concurrent access
// must serialize externally. Any operation that grows capacity invalidates
// previously obtained element pointers and in-flight iterators.
package dynarr
