package sortable

// Direction selects the order an ordered sequence maintains over its lifetime.
// It is fixed at construction and never changes afterwards. The zero value is
// Ascending.
type Direction byte

const (
	// Ascending orders elements smallest first.
	Ascending Direction = iota

	// Descending orders elements largest first.
	Descending
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Descending:
		return "descending"
	default:
		return "ascending"
	}
}

// Before reports whether a sorts strictly before b under direction d.
// Equal elements never sort before one another, so orderings built on Before
// keep duplicates adjacent without reordering them.
func Before[T Sortable[T]](d Direction, a, b T) bool {
	if d == Descending {
		return b.LessThan(a)
	}

	return a.LessThan(b)
}
