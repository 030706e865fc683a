package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/amp-sequences/sortable"
)

func ints(values ...int) []sortable.Int {
	out := make([]sortable.Int, len(values))
	for i, v := range values {
		out[i] = sortable.Int(v)
	}

	return out
}

func TestBubble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		direction sortable.Direction
		input     []sortable.Int
		expected  []sortable.Int
	}{
		{
			name:      "empty slice",
			direction: sortable.Ascending,
			input:     ints(),
			expected:  ints(),
		},
		{
			name:      "single element",
			direction: sortable.Ascending,
			input:     ints(7),
			expected:  ints(7),
		},
		{
			name:      "already sorted",
			direction: sortable.Ascending,
			input:     ints(1, 2, 3, 4),
			expected:  ints(1, 2, 3, 4),
		},
		{
			name:      "reverse input",
			direction: sortable.Ascending,
			input:     ints(4, 3, 2, 1),
			expected:  ints(1, 2, 3, 4),
		},
		{
			name:      "unsorted with duplicates",
			direction: sortable.Ascending,
			input:     ints(5, 1, 3, 1, 5),
			expected:  ints(1, 1, 3, 5, 5),
		},
		{
			name:      "descending",
			direction: sortable.Descending,
			input:     ints(1, 5, 3),
			expected:  ints(5, 3, 1),
		},
		{
			name:      "descending with duplicates",
			direction: sortable.Descending,
			input:     ints(2, 9, 2, 7),
			expected:  ints(9, 7, 2, 2),
		},
		{
			name:      "negative values",
			direction: sortable.Ascending,
			input:     ints(0, -3, 8, -1),
			expected:  ints(-3, -1, 0, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			Bubble(tt.direction, tt.input)
			assert.Equal(t, tt.expected, tt.input)
		})
	}
}

// taggedInt orders by Key only, so the Tag field exposes whether equal
// elements kept their relative positions.
type taggedInt struct {
	Key int
	Tag string
}

func (v taggedInt) Equals(other taggedInt) bool {
	return v.Key == other.Key
}

func (v taggedInt) LessThan(other taggedInt) bool {
	return v.Key < other.Key
}

func TestBubble_Stable(t *testing.T) {
	t.Parallel()

	items := []taggedInt{
		{Key: 2, Tag: "first"},
		{Key: 1, Tag: "only"},
		{Key: 2, Tag: "second"},
	}

	Bubble(sortable.Ascending, items)

	assert.Equal(t, []taggedInt{
		{Key: 1, Tag: "only"},
		{Key: 2, Tag: "first"},
		{Key: 2, Tag: "second"},
	}, items)
}
