// Package sorting provides simple in-place sorts over sortable slices.
package sorting

import (
	"github.com/amp-labs/amp-sequences/sortable"
)

// Bubble sorts items in place under the given direction using an exchange sort.
// Adjacent out-of-order elements are swapped until a full pass swaps nothing.
// The unsorted boundary shrinks by one after each pass, since every pass
// bubbles the extreme remaining element to the end.
//
// Equal elements are never swapped, so the sort is stable. Complexity is
// O(n²) in the worst case and O(n) on already-sorted input.
func Bubble[T sortable.Sortable[T]](direction sortable.Direction, items []T) {
	if len(items) == 0 {
		return
	}

	boundary := len(items) - 1
	sorted := false

	for !sorted {
		sorted = true

		for i := range boundary {
			if sortable.Before(direction, items[i+1], items[i]) {
				items[i], items[i+1] = items[i+1], items[i]
				sorted = false
			}
		}

		boundary--
	}
}
