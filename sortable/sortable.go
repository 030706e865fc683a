package sortable

import (
	"github.com/amp-labs/amp-sequences/compare"
)

// Sortable extends Comparable with a strict-weak ordering. Types stored in an
// ordered sequence must implement it; Equals resolves membership queries and
// LessThan drives binary searches and sorting.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
