package sequence

import (
	"sort"

	"facette.io/natsort"

	"github.com/amp-labs/amp-sequences/optional"
	"github.com/amp-labs/amp-sequences/sortable"
)

// StringSequence is a convenience wrapper around Sequence[sortable.String]
// for the common case of plain string elements. It converts at the boundary
// so callers work with ordinary strings.
type StringSequence struct {
	seq *Sequence[sortable.String]
}

// NewStringSequence creates a StringSequence holding the given values in the
// given order.
func NewStringSequence(values ...string) *StringSequence {
	wrapped := make([]sortable.String, len(values))
	for i, v := range values {
		wrapped[i] = sortable.String(v)
	}

	return &StringSequence{seq: Of(wrapped...)}
}

// Size returns the number of live elements.
func (s *StringSequence) Size() int {
	return s.seq.Size()
}

// Capacity returns the allocated capacity.
func (s *StringSequence) Capacity() int {
	return s.seq.Capacity()
}

// Get returns the element at index, or ErrOutOfRange when index >= Size.
func (s *StringSequence) Get(index int) (string, error) {
	value, err := s.seq.Get(index)

	return string(value), err
}

// Set overwrites the element at index, or returns ErrOutOfRange when
// index >= Size.
func (s *StringSequence) Set(index int, value string) error {
	return s.seq.Set(index, sortable.String(value))
}

// Find returns the first index holding value, or None when absent.
func (s *StringSequence) Find(value string) optional.Value[int] {
	return s.seq.Find(sortable.String(value))
}

// Insert places value at index, shifting later elements right.
// Returns ErrOutOfRange when index > Size.
func (s *StringSequence) Insert(index int, value string) error {
	return s.seq.Insert(index, sortable.String(value))
}

// Append places value after the current last element.
func (s *StringSequence) Append(value string) {
	s.seq.Append(sortable.String(value))
}

// Remove drops the element at index, or returns ErrOutOfRange when
// index >= Size.
func (s *StringSequence) Remove(index int) error {
	return s.seq.Remove(index)
}

// Entries returns a copy of the live elements in sequence order.
func (s *StringSequence) Entries() []string {
	items := make([]string, 0, s.seq.Size())

	for _, item := range s.seq.Seq() {
		items = append(items, string(item))
	}

	return items
}

// SortedEntries returns the live elements sorted alphabetically.
// The sequence itself is not reordered.
func (s *StringSequence) SortedEntries() []string {
	items := s.Entries()

	sort.Strings(items)

	return items
}

// NaturalSortedEntries returns the live elements sorted using natural sort
// order. Natural sort treats numbers within strings numerically (e.g.,
// "file2" comes before "file10"). The sequence itself is not reordered.
func (s *StringSequence) NaturalSortedEntries() []string {
	items := s.Entries()

	natsort.Sort(items)

	return items
}
