package dynarr

import "cmp"

// Equal reports whether a and b hold the same elements in the same order.
// Capacity is ignored: two arrays with equal elements compare equal even
// when their allocated storage differs.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf.Get(i) != b.buf.Get(i) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically, element by element. It
// returns -1 when a sorts before b, +1 when after, and 0 when the arrays
// are element-wise equal. A shared prefix is broken by length, the shorter
// array sorting first. The relational operators (<, <=, >, >=) all follow
// from the sign of the result.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.buf.Get(i), b.buf.Get(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}
