package sequence

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an index falls outside the bounds that the
// operation accepts. The bound is checked before any mutation, so a failed
// call leaves the sequence untouched.
var ErrOutOfRange = errors.New("index out of range")

// outOfRange wraps ErrOutOfRange with the offending index and the current size.
func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, index, size)
}
