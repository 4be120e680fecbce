package dynarr

import "github.com/hupe1980/dynarr/rawbuf"

// Clone returns a deep copy: the live elements are copied into freshly
// allocated storage of equal capacity. Mutating the clone never affects
// the original.
func (a *Array[T]) Clone() (*Array[T], error) {
	buf, err := rawbuf.Allocate[T](a.Cap())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.size; i++ {
		buf.Set(i, a.buf.Get(i))
	}
	return &Array[T]{size: a.size, buf: buf}, nil
}

// Assign replaces the receiver's contents with a deep copy of other.
// The copy is built in full before a single swap commits it, so a failed
// Assign leaves the receiver unchanged. Self-assignment is a no-op.
func (a *Array[T]) Assign(other *Array[T]) error {
	if a == other {
		return nil
	}
	c, err := other.Clone()
	if err != nil {
		return err
	}
	a.Swap(c)
	return nil
}

// MoveFrom takes ownership of other's storage in constant time, dropping
// the receiver's previous contents. other reverts to the empty state.
// Moving an array into itself is a no-op.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == other {
		return
	}
	a.buf = rawbuf.Adopt(other.buf.Release())
	a.size = other.size
	a.stats = other.stats
	other.size = 0
	other.stats = Stats{}
}

// Swap exchanges the contents of a and other in constant time. No element
// is copied and no allocation occurs.
func (a *Array[T]) Swap(other *Array[T]) {
	a.buf.Swap(&other.buf)
	a.size, other.size = other.size, a.size
	a.stats, other.stats = other.stats, a.stats
}
