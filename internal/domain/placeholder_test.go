package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderIndices(t *testing.T) {
	tests := []struct {
		text string
		want []int
	}{
		{"no markers", nil},
		{"%s and %d", []int{1, 2}},
		{"%2$s before %1$s", []int{1, 2}},
		{"%1$s twice %1$s", []int{1}},
		{"100%% done", nil},
		{"100% sure", nil},
		{"%03d items at %.2f", []int{1, 2}},
		{"%4$s", []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceholderIndices(tt.text))
		})
	}
}

func TestValidatePlaceholders(t *testing.T) {
	require.NoError(t, ValidatePlaceholders("%1$s of %2$s", "%2$s von %1$s"))
	require.NoError(t, ValidatePlaceholders("%1$s of %2$s", "nur %1$s"))

	err := ValidatePlaceholders("%1$s %2$s %3$s", "%1$s %4$s")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlaceholderIndex))
	assert.Contains(t, err.Error(), "%4$")
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		text string
		args []any
		want string
	}{
		{"sequential", "%s has %d items", []any{"cart", 3}, "cart has 3 items"},
		{"positional", "%2$s, %1$s", []any{"world", "hello"}, "hello, world"},
		{"zero padded", "%03d", []any{5}, "005"},
		{"precision", "%.2f", []any{3.14159}, "3.14"},
		{"integer from float", "%d", []any{7.9}, "7"},
		{"float from string", "%.1f", []any{" 2.5"}, "2.5"},
		{"string verb with number", "%s pages", []any{6}, "6 pages"},
		{"unsigned", "%u", []any{42}, "42"},
		{"literal percent", "%d%%", []any{50}, "50%"},
		{"left aligned", "[%-4s]", []any{"ab"}, "[ab  ]"},
		{"hex", "%x", []any{255}, "ff"},
		{"plain text", "100% sure", nil, "100% sure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := substitute(tt.text, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("index out of range", func(t *testing.T) {
		_, err := substitute("%2$s", []any{"only one"})
		assert.ErrorIs(t, err, ErrPlaceholderIndex)
	})
}
