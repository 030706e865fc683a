package sequence

import (
	"iter"

	"github.com/amp-labs/amp-sequences/assert"
	"github.com/amp-labs/amp-sequences/optional"
	"github.com/amp-labs/amp-sequences/sortable"
	"github.com/amp-labs/amp-sequences/sorting"
)

// Ordered is a growable contiguous sequence that keeps its elements sorted
// under a direction fixed at construction. It shares the growth and shift
// mechanics of Sequence but positions elements itself: insertion runs a
// binary search for the insertion point and membership lookup is a binary
// search instead of a linear scan.
//
// The invariant it maintains: for any two live indices i < j, the element at
// j never sorts before the element at i under the fixed direction. Equal
// elements may be adjacent.
//
// There is no Set method; overwriting an arbitrary position could break the
// ordering.
type Ordered[T sortable.Sortable[T]] struct {
	buf       buffer[T]
	direction sortable.Direction
}

// NewOrdered creates an empty Ordered sequence sorting under direction.
func NewOrdered[T sortable.Sortable[T]](direction sortable.Direction) *Ordered[T] {
	return &Ordered[T]{
		buf:       newBuffer[T](minimumCapacity),
		direction: direction,
	}
}

// OrderedOf creates an Ordered sequence from the given values, sorting them
// under direction at construction time. Capacity is sized to twice the
// initial length so early insertions do not reallocate.
func OrderedOf[T sortable.Sortable[T]](direction sortable.Direction, values ...T) *Ordered[T] {
	o := &Ordered[T]{
		buf:       newBuffer[T](2 * len(values)),
		direction: direction,
	}
	o.buf.fill(values)
	sorting.Bubble(direction, o.buf.data[:o.buf.size])

	return o
}

// Direction returns the direction fixed at construction.
func (o *Ordered[T]) Direction() sortable.Direction {
	return o.direction
}

// Size returns the number of live elements.
func (o *Ordered[T]) Size() int {
	return o.buf.size
}

// Capacity returns the allocated capacity. It is always >= Size and never
// decreases over the sequence's lifetime.
func (o *Ordered[T]) Capacity() int {
	return len(o.buf.data)
}

// Get returns the element at index, or ErrOutOfRange when index >= Size.
func (o *Ordered[T]) Get(index int) (T, error) {
	return o.buf.at(index)
}

// Find returns the index of an element equal to value, or None when no
// element matches. When several equal elements are present, any of their
// indices may be returned. O(log n).
func (o *Ordered[T]) Find(value T) optional.Value[int] {
	lo, hi := 0, o.buf.size

	for lo < hi {
		mid := lo + (hi-lo)/2
		candidate := o.buf.data[mid]

		switch {
		case candidate.Equals(value):
			return optional.Some(mid)
		case sortable.Before(o.direction, candidate, value):
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return optional.None[int]()
}

// insertionPoint returns the leftmost index at which value can be placed
// without breaking the ordering. Placing new values at the leftmost position
// of a run of equal elements keeps insertion behavior among duplicates
// deterministic.
//
// The search keeps half-open [lo, hi) bounds, so an empty sequence falls
// straight through to index 0 without ever computing a bound below zero.
func (o *Ordered[T]) insertionPoint(value T) int {
	lo, hi := 0, o.buf.size

	for lo < hi {
		mid := lo + (hi-lo)/2

		if sortable.Before(o.direction, o.buf.data[mid], value) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// Insert places value at its insertion point, shifting the elements from
// that point one position right. The buffer doubles first when full. Every
// value has a valid position, so Insert cannot fail. O(log n) search plus
// O(n) shift.
func (o *Ordered[T]) Insert(value T) {
	at := o.insertionPoint(value)

	err := o.buf.insertAt(at, value)
	assert.Nil(err, "insertion point %d outside [0, %d]", at, o.buf.size)
}

// Remove drops the element at index, shifting the elements after it one
// position left. Returns ErrOutOfRange when index >= Size. Removal only
// deletes, never reorders, so the ordering invariant is preserved.
func (o *Ordered[T]) Remove(index int) error {
	return o.buf.removeAt(index)
}

// Values returns a copy of the live elements in sorted order.
func (o *Ordered[T]) Values() []T {
	return o.buf.values()
}

// Seq returns an iterator for ranging over the live elements in sorted order
// with their indices:
//
//	for i, elem := range seq.Seq() { ... }
//
// The iterator reflects the buffer at the moment of traversal; any Insert or
// Remove during iteration invalidates it. Invalidation is not detected and is
// the caller's responsibility.
func (o *Ordered[T]) Seq() iter.Seq2[int, T] {
	return o.buf.seq()
}
