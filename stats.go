package dynarr

// Stats tracks cumulative relocation work performed by an array.
//
// Counters only ever grow (Clear and truncation do not reset them), so the
// amortized cost of an append sequence can be read off directly: across N
// appends from empty, ElementsMoved stays within 2N.
type Stats struct {
	Relocations   uint64 // growth events that allocated a new buffer
	ElementsMoved uint64 // elements relocated across all growth events
}

// Stats returns a snapshot of the relocation counters.
func (a *Array[T]) Stats() Stats {
	return a.stats
}
