package dynarr

import "iter"

// All returns an iterator over index/element pairs of the live elements in
// order. The iterator is restartable and non-owning; any operation that
// grows capacity invalidates it.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.buf.Get(i)) {
				return
			}
		}
	}
}

// ToSlice copies the live elements into a new slice.
func (a *Array[T]) ToSlice() []T {
	if a.size == 0 {
		return nil
	}
	out := make([]T, a.size)
	for i := 0; i < a.size; i++ {
		out[i] = a.buf.Get(i)
	}
	return out
}
