package dynarr

import "fmt"

// ErrOutOfRange indicates a checked access outside the live element range.
// It is returned only by At; precondition-checked accessors panic instead.
type ErrOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("dynarr: index %d out of range [0, %d)", e.Index, e.Size)
}
