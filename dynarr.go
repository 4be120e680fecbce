package dynarr

import (
	"fmt"

	"github.com/hupe1980/dynarr/rawbuf"
)

// Array is a contiguous, growable sequence of elements of type T.
//
// It tracks a logical size and owns a rawbuf.Buffer whose length is the
// capacity. Elements at indices [0, Len) are live; slots in [Len, Cap)
// always hold the zero value of T. The buffer is never shared between two
// arrays: Clone allocates fresh storage, MoveFrom and Swap transfer it
// wholesale.
//
// The zero value is an empty array ready for use, but most callers should
// construct through New and friends, which return pointers.
type Array[T any] struct {
	size  int
	buf   rawbuf.Buffer[T]
	stats Stats
}

// New returns an empty array with no allocated storage.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewWithCapacity returns an empty array with storage reserved for
// capacity elements. Appends stay allocation-free until Len exceeds it.
func NewWithCapacity[T any](capacity int) (*Array[T], error) {
	mustCount(capacity)

	buf, err := rawbuf.Allocate[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Array[T]{buf: buf}, nil
}

// NewSized returns an array of n zero-valued elements.
func NewSized[T any](n int) (*Array[T], error) {
	mustCount(n)

	buf, err := rawbuf.Allocate[T](n)
	if err != nil {
		return nil, err
	}
	return &Array[T]{size: n, buf: buf}, nil
}

// NewFilled returns an array of n copies of value.
func NewFilled[T any](n int, value T) (*Array[T], error) {
	a, err := NewSized[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		a.buf.Set(i, value)
	}
	return a, nil
}

// Of returns an array holding the given items in order.
func Of[T any](items ...T) *Array[T] {
	a := &Array[T]{}
	if len(items) == 0 {
		return a
	}
	buf, err := rawbuf.Allocate[T](len(items))
	if err != nil {
		panic(err) // items already fit in memory
	}
	for i, v := range items {
		buf.Set(i, v)
	}
	a.buf = buf
	a.size = len(items)
	return a
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return a.buf.Len()
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// Get returns the element at index i. i must be in [0, Len).
func (a *Array[T]) Get(i int) T {
	a.mustIndex(i)
	return a.buf.Get(i)
}

// Set replaces the element at index i with v. i must be in [0, Len).
func (a *Array[T]) Set(i int, v T) {
	a.mustIndex(i)
	a.buf.Set(i, v)
}

// Ref returns a pointer to the element at index i. i must be in [0, Len).
// The pointer is invalidated by any operation that grows capacity.
func (a *Array[T]) Ref(i int) *T {
	a.mustIndex(i)
	return a.buf.Ref(i)
}

// At returns the element at index i, or *ErrOutOfRange if i is outside
// [0, Len). The array is unchanged after a failed At.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, &ErrOutOfRange{Index: i, Size: a.size}
	}
	return a.buf.Get(i), nil
}

// Clear removes all elements but keeps the allocated storage, so repeated
// fill/clear cycles do not reallocate.
func (a *Array[T]) Clear() {
	a.zeroRange(0, a.size)
	a.size = 0
}

func (a *Array[T]) mustIndex(i int) {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("dynarr: index %d out of range [0, %d)", i, a.size))
	}
}

func mustCount(n int) {
	if n < 0 {
		panic(fmt.Sprintf("dynarr: negative count %d", n))
	}
}

// zeroRange resets slots [from, to) to the zero value so excluded elements
// do not pin references for the garbage collector.
func (a *Array[T]) zeroRange(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		a.buf.Set(i, zero)
	}
}
