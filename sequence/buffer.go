package sequence

import (
	"iter"

	"github.com/amp-labs/amp-sequences/assert"
	"github.com/amp-labs/amp-sequences/zero"
)

// minimumCapacity is the smallest allocation a buffer ever holds. Growth
// doubles from here, so repeated tail insertion stays amortized O(1).
const minimumCapacity = 1

// buffer is the contiguous storage shared by Sequence and Ordered. Both
// containers compose it rather than duplicating the growth and shift
// mechanics.
//
// The backing slice is owned exclusively: it is never handed out to callers,
// and growth replaces it wholesale, so exactly one live allocation backs the
// buffer at any time. len(data) is the allocated capacity and size counts the
// live elements at indices [0, size). Capacity never shrinks.
type buffer[T any] struct {
	data []T
	size int
}

// newBuffer allocates storage for at least capacity elements, holding none.
func newBuffer[T any](capacity int) buffer[T] {
	if capacity < minimumCapacity {
		capacity = minimumCapacity
	}

	return buffer[T]{data: make([]T, capacity)}
}

// fill copies values into the buffer as its initial contents.
// Only valid on a freshly allocated buffer with enough capacity.
func (b *buffer[T]) fill(values []T) {
	assert.True(b.size == 0, "fill on non-empty buffer of size %d", b.size)
	assert.True(len(values) <= len(b.data), "fill of %d values exceeds capacity %d", len(values), len(b.data))

	copy(b.data, values)
	b.size = len(values)
}

// grow doubles the allocated capacity and moves the live elements into the
// new allocation. The old slice is dropped and reclaimed by the runtime.
func (b *buffer[T]) grow() {
	next := make([]T, 2*len(b.data))
	copy(next, b.data[:b.size])
	b.data = next
}

// at returns the element at index, or ErrOutOfRange when index is not a live
// position.
func (b *buffer[T]) at(index int) (T, error) {
	if index < 0 || index >= b.size {
		return zero.Value[T](), outOfRange(index, b.size)
	}

	return b.data[index], nil
}

// setAt overwrites the element at index, or returns ErrOutOfRange when index
// is not a live position.
func (b *buffer[T]) setAt(index int, value T) error {
	if index < 0 || index >= b.size {
		return outOfRange(index, b.size)
	}

	b.data[index] = value

	return nil
}

// insertAt places value at index, shifting [index, size) one position right.
// index may equal size (append). When the buffer is full it doubles first.
// The shift runs highest index first so no live element is overwritten.
func (b *buffer[T]) insertAt(index int, value T) error {
	if index < 0 || index > b.size {
		return outOfRange(index, b.size)
	}

	assert.True(b.size <= len(b.data), "buffer size %d exceeds capacity %d", b.size, len(b.data))

	if b.size == len(b.data) {
		b.grow()
	}

	for i := b.size; i > index; i-- {
		b.data[i] = b.data[i-1]
	}

	b.data[index] = value
	b.size++

	return nil
}

// removeAt drops the element at index, shifting (index, size) one position
// left. The vacated tail slot is zeroed so the buffer keeps no stale
// reference beyond the logical size. Capacity is unchanged.
func (b *buffer[T]) removeAt(index int) error {
	if index < 0 || index >= b.size {
		return outOfRange(index, b.size)
	}

	for i := index; i < b.size-1; i++ {
		b.data[i] = b.data[i+1]
	}

	b.size--
	b.data[b.size] = zero.Value[T]()

	return nil
}

// values returns a copy of the live elements in order.
func (b *buffer[T]) values() []T {
	out := make([]T, b.size)
	copy(out, b.data[:b.size])

	return out
}

// seq returns an iterator over the live elements and their indices. The
// iterator reads the buffer directly; any insert or remove during iteration
// invalidates it (not detected, caller responsibility).
func (b *buffer[T]) seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range b.size {
			if !yield(i, b.data[i]) {
				return
			}
		}
	}
}
