// Package sortable defines the ordering contract required by ordered sequences,
// wrapper types that satisfy it for common primitives, and the Direction an
// ordered sequence sorts under.
//
// # Overview
//
// The [Sortable] interface extends [github.com/amp-labs/amp-sequences/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// The package ships ready-to-use implementations for [Int], [Byte], and [String],
// designed to work with ordered sequences (see
// [github.com/amp-labs/amp-sequences/sequence.NewOrdered]).
//
// # Usage
//
//	// Create an ordered sequence of integers
//	seq := sequence.NewOrdered[sortable.Int](sortable.Ascending)
//	seq.Insert(sortable.Int(42))
//	seq.Insert(sortable.Int(10))
//	seq.Insert(sortable.Int(25))
//
//	// Elements traverse in sorted order: 10, 25, 42
//	for _, val := range seq.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To store your own type in an ordered sequence, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// # Direction
//
// [Direction] fixes whether a sequence sorts ascending or descending. It is
// supplied at construction and immutable afterwards; [Before] applies a
// direction to a pair of Sortable values.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently safe to
// read concurrently. Sequences built on them are not thread-safe and require
// external synchronization for concurrent access.
package sortable
