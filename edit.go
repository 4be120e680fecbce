package dynarr

import (
	"fmt"

	"github.com/hupe1980/dynarr/rawbuf"
)

// PushBack appends v, growing capacity to max(Len+1, 2*Cap) when full.
// A full array of capacity 0 grows to capacity 1.
func (a *Array[T]) PushBack(v T) error {
	if a.size == a.Cap() {
		if err := a.regrow(max(a.size+1, 2*a.Cap())); err != nil {
			return err
		}
	}
	a.buf.Set(a.size, v)
	a.size++
	return nil
}

// PopBack removes and returns the last element. The array must not be empty.
func (a *Array[T]) PopBack() T {
	if a.size == 0 {
		panic("dynarr: PopBack on empty array")
	}
	a.size--
	v := a.buf.Get(a.size)
	var zero T
	a.buf.Set(a.size, zero)
	return v
}

// Insert places v at position i, shifting the elements at [i, Len) one slot
// to the right. i must be in [0, Len]; inserting at Len is equivalent to
// PushBack. When the array is full the elements are relocated around the
// insertion point into a fresh buffer of max(Len+1, 2*Cap) slots.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.size {
		panic(fmt.Sprintf("dynarr: insert position %d out of range [0, %d]", i, a.size))
	}

	if a.size < a.Cap() {
		// Shift back-to-front so no element is overwritten before it moves.
		for j := a.size; j > i; j-- {
			a.buf.Set(j, a.buf.Get(j-1))
		}
		a.buf.Set(i, v)
		a.size++
		return nil
	}

	next, err := rawbuf.Allocate[T](max(a.size+1, 2*a.Cap()))
	if err != nil {
		return err
	}
	for j := 0; j < i; j++ {
		next.Set(j, a.buf.Get(j))
	}
	next.Set(i, v)
	for j := i; j < a.size; j++ {
		next.Set(j+1, a.buf.Get(j))
	}
	a.buf.Swap(&next)
	a.stats.Relocations++
	a.stats.ElementsMoved += uint64(a.size)
	a.size++
	return nil
}

// Erase removes the element at position i, shifting the elements at
// [i+1, Len) one slot to the left. i must be in [0, Len). The element
// that followed the erased one (if any) is afterwards found at i.
func (a *Array[T]) Erase(i int) {
	a.mustIndex(i)

	for j := i + 1; j < a.size; j++ {
		a.buf.Set(j-1, a.buf.Get(j))
	}
	a.size--
	var zero T
	a.buf.Set(a.size, zero)
}
