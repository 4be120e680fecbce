package rawbuf

import (
	"errors"
	"fmt"
)

// MaxLen limits the number of slots a single buffer may hold.
// It bounds the worst-case allocation a runaway growth loop can request.
const MaxLen = 1 << 40

var (
	// ErrNegativeLength is returned when a negative slot count is requested.
	ErrNegativeLength = errors.New("rawbuf: negative length")
)

// ErrTooLarge indicates an allocation request above MaxLen.
type ErrTooLarge struct {
	Requested int
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("rawbuf: allocation of %d slots exceeds limit of %d", e.Requested, MaxLen)
}

// Buffer is an exclusively owned, fixed-size block of slots of type T.
// Every slot holds a valid T value at all times; a freshly allocated buffer
// holds zero values. The zero Buffer is an empty buffer.
type Buffer[T any] struct {
	slots []T
}

// Allocate returns a buffer of n zero-valued slots.
// It fails with ErrNegativeLength or ErrTooLarge instead of allocating.
func Allocate[T any](n int) (Buffer[T], error) {
	if n < 0 {
		return Buffer[T]{}, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if n > MaxLen {
		return Buffer[T]{}, &ErrTooLarge{Requested: n}
	}
	if n == 0 {
		return Buffer[T]{}, nil
	}
	return Buffer[T]{slots: make([]T, n)}, nil
}

// Adopt wraps slots previously obtained from Release into a new buffer.
// The caller must not retain its own reference to slots afterwards.
func Adopt[T any](slots []T) Buffer[T] {
	return Buffer[T]{slots: slots}
}

// Len returns the number of slots.
func (b *Buffer[T]) Len() int {
	return len(b.slots)
}

// Get returns the value in slot i. i must be in [0, Len).
func (b *Buffer[T]) Get(i int) T {
	return b.slots[i]
}

// Set stores v in slot i. i must be in [0, Len).
func (b *Buffer[T]) Set(i int, v T) {
	b.slots[i] = v
}

// Ref returns a pointer to slot i. i must be in [0, Len).
func (b *Buffer[T]) Ref(i int) *T {
	return &b.slots[i]
}

// Swap exchanges ownership of the underlying slots with other.
// It is a single pointer-sized exchange with no partial-failure state.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release relinquishes ownership of the slots, leaving the buffer empty.
// The returned slice is the raw storage and may be re-wrapped via Adopt.
func (b *Buffer[T]) Release() []T {
	slots := b.slots
	b.slots = nil
	return slots
}
