package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "descending", Descending.String())
}

func TestDirection_ZeroValueIsAscending(t *testing.T) {
	t.Parallel()

	var d Direction
	assert.Equal(t, Ascending, d)
}

func TestBefore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		direction Direction
		a         Int
		b         Int
		expected  bool
	}{
		{name: "ascending smaller first", direction: Ascending, a: 1, b: 2, expected: true},
		{name: "ascending larger first", direction: Ascending, a: 2, b: 1, expected: false},
		{name: "ascending equal", direction: Ascending, a: 3, b: 3, expected: false},
		{name: "descending larger first", direction: Descending, a: 2, b: 1, expected: true},
		{name: "descending smaller first", direction: Descending, a: 1, b: 2, expected: false},
		{name: "descending equal", direction: Descending, a: 3, b: 3, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Before(tt.direction, tt.a, tt.b))
		})
	}
}

func TestWrappers(t *testing.T) {
	t.Parallel()

	t.Run("Int", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Int(1).Equals(1))
		assert.False(t, Int(1).Equals(2))
		assert.True(t, Int(-5).LessThan(0))
		assert.False(t, Int(7).LessThan(7))
	})

	t.Run("Byte", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Byte('a').Equals('a'))
		assert.False(t, Byte('a').Equals('b'))
		assert.True(t, Byte('a').LessThan('b'))
		assert.False(t, Byte('b').LessThan('a'))
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()

		assert.True(t, String("abc").Equals("abc"))
		assert.False(t, String("abc").Equals("abd"))
		assert.True(t, String("abc").LessThan("abd"))
		assert.False(t, String("b").LessThan("a"))
	})
}
