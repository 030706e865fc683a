// Package sequence provides contiguous-storage sequence containers: Sequence,
// a growable unordered sequence with index-based access, and Ordered, a
// growable sequence that keeps its elements sorted under a fixed direction.
//
// Both containers share the same storage mechanics: a single exclusively
// owned buffer whose capacity doubles when an insert would overflow it and
// never shrinks. Searches report their result as an
// [github.com/amp-labs/amp-sequences/optional.Value] index rather than a
// sentinel integer.
//
// The containers are not thread-safe. Concurrent access must be synchronized
// by the caller.
package sequence

import (
	"iter"

	"github.com/amp-labs/amp-sequences/compare"
	"github.com/amp-labs/amp-sequences/optional"
)

// Sequence is a growable contiguous sequence without an ordering invariant.
// Elements keep the positions callers give them; lookup by value is a linear
// scan through the Comparable interface.
type Sequence[T compare.Comparable[T]] struct {
	buf buffer[T]
}

// New creates an empty Sequence with the minimum capacity.
func New[T compare.Comparable[T]]() *Sequence[T] {
	return &Sequence[T]{buf: newBuffer[T](minimumCapacity)}
}

// Of creates a Sequence holding the given values in the given order.
// Capacity is sized to twice the initial length so early appends do not
// reallocate.
func Of[T compare.Comparable[T]](values ...T) *Sequence[T] {
	s := &Sequence[T]{buf: newBuffer[T](2 * len(values))}
	s.buf.fill(values)

	return s
}

// Size returns the number of live elements.
func (s *Sequence[T]) Size() int {
	return s.buf.size
}

// Capacity returns the allocated capacity. It is always >= Size and never
// decreases over the sequence's lifetime.
func (s *Sequence[T]) Capacity() int {
	return len(s.buf.data)
}

// Get returns the element at index, or ErrOutOfRange when index >= Size.
func (s *Sequence[T]) Get(index int) (T, error) {
	return s.buf.at(index)
}

// Set overwrites the element at index, or returns ErrOutOfRange when
// index >= Size.
func (s *Sequence[T]) Set(index int, value T) error {
	return s.buf.setAt(index, value)
}

// Find returns the first index holding an element equal to value, scanning
// left to right, or None when no element matches.
func (s *Sequence[T]) Find(value T) optional.Value[int] {
	for i := range s.buf.size {
		if compare.Equals(s.buf.data[i], value) {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}

// Insert places value at index, shifting existing elements at [index, Size)
// one position right. index may equal Size, which appends. The buffer doubles
// first when full. Returns ErrOutOfRange when index > Size, in which case
// nothing changes.
func (s *Sequence[T]) Insert(index int, value T) error {
	return s.buf.insertAt(index, value)
}

// Append places value after the current last element.
func (s *Sequence[T]) Append(value T) {
	// Inserting at Size cannot fail the bound check.
	_ = s.buf.insertAt(s.buf.size, value)
}

// Remove drops the element at index, shifting the elements after it one
// position left. Returns ErrOutOfRange when index >= Size. Capacity is
// unchanged.
func (s *Sequence[T]) Remove(index int) error {
	return s.buf.removeAt(index)
}

// Values returns a copy of the live elements in order.
func (s *Sequence[T]) Values() []T {
	return s.buf.values()
}

// Seq returns an iterator for ranging over the live elements with their
// indices:
//
//	for i, elem := range seq.Seq() { ... }
//
// The iterator reflects the buffer at the moment of traversal; any Insert or
// Remove during iteration invalidates it. Invalidation is not detected and is
// the caller's responsibility.
func (s *Sequence[T]) Seq() iter.Seq2[int, T] {
	return s.buf.seq()
}
