package dynarr

import "github.com/hupe1980/dynarr/rawbuf"

// Reserve grows capacity to at least newCap, relocating the live elements
// into a fresh buffer of exactly newCap slots. It is a no-op when newCap
// does not exceed the current capacity and never shrinks.
func (a *Array[T]) Reserve(newCap int) error {
	mustCount(newCap)

	if newCap <= a.Cap() {
		return nil
	}
	return a.regrow(newCap)
}

// Resize sets the logical size to newSize. Shrinking truncates in place.
// Growing fills the new slots with zero values, relocating into a buffer of
// max(newSize, 2*cap) slots when the current capacity is insufficient.
func (a *Array[T]) Resize(newSize int) error {
	mustCount(newSize)

	switch {
	case newSize <= a.size:
		a.zeroRange(newSize, a.size)
	case newSize <= a.Cap():
		// Slots beyond size are kept zero-valued, nothing to initialize.
	default:
		if err := a.regrow(max(newSize, 2*a.Cap())); err != nil {
			return err
		}
	}
	a.size = newSize
	return nil
}

// regrow allocates a buffer of exactly newCap slots, relocates the live
// elements preserving order, and commits by a single swap. On allocation
// failure the array is untouched.
func (a *Array[T]) regrow(newCap int) error {
	next, err := rawbuf.Allocate[T](newCap)
	if err != nil {
		return err
	}
	for i := 0; i < a.size; i++ {
		next.Set(i, a.buf.Get(i))
	}
	a.buf.Swap(&next)
	a.stats.Relocations++
	a.stats.ElementsMoved += uint64(a.size)
	return nil
}
