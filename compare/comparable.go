// Package compare defines the equality contract that sequence elements must satisfy.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// An implementing type decides what equality means for its own values; containers in
// this module never fall back to == and always go through this interface.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
