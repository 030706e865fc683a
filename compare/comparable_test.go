package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// exactString implements Comparable with plain string equality.
type exactString string

func (s exactString) Equals(other exactString) bool {
	return string(s) == string(other)
}

// foldedString implements Comparable with case-insensitive equality,
// demonstrating that equality semantics belong to the element type.
type foldedString string

func (s foldedString) Equals(other foldedString) bool {
	return strings.EqualFold(string(s), string(other))
}

// pair implements Comparable over two fields.
type pair struct {
	Key   int
	Label string
}

func (p pair) Equals(other pair) bool {
	return p.Key == other.Key && p.Label == other.Label
}

func TestComparable_ExactString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        exactString
		b        exactString
		expected bool
	}{
		{name: "equal strings", a: "hello", b: "hello", expected: true},
		{name: "different strings", a: "hello", b: "world", expected: false},
		{name: "empty strings", a: "", b: "", expected: true},
		{name: "one empty string", a: "hello", b: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
		})
	}
}

func TestComparable_CustomSemantics(t *testing.T) {
	t.Parallel()

	assert.True(t, foldedString("Hello").Equals("hELLO"))
	assert.False(t, foldedString("Hello").Equals("world"))
}

func TestComparable_Struct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        pair
		b        pair
		expected bool
	}{
		{name: "equal pairs", a: pair{1, "a"}, b: pair{1, "a"}, expected: true},
		{name: "different keys", a: pair{1, "a"}, b: pair{2, "a"}, expected: false},
		{name: "different labels", a: pair{1, "a"}, b: pair{1, "b"}, expected: false},
		{name: "zero values", a: pair{}, b: pair{}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
		})
	}
}

func TestEquals_Function(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals(exactString("hello"), exactString("hello")))
	assert.False(t, Equals(exactString("hello"), exactString("world")))
	assert.True(t, Equals(pair{1, "a"}, pair{1, "a"}))
	assert.False(t, Equals(pair{1, "a"}, pair{2, "b"}))
}
