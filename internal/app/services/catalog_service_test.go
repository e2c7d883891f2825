package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"10", 10},
		{"2", 2},
		{"9A", 9},
		{"12th Science", 12},
		{"KG", 0},
		{"", 0},
		{"A1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, numericPrefix(tt.in))
		})
	}
}

func TestSortCatalogItems(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "numeric prefix ascending",
			in:   []string{"10", "2", "9A"},
			want: []string{"2", "9A", "10"},
		},
		{
			name: "no prefix sorts as zero",
			in:   []string{"2", "KG", "Nursery", "1"},
			want: []string{"KG", "Nursery", "1", "2"},
		},
		{
			name: "ties break lexicographically",
			in:   []string{"9B", "9A", "9"},
			want: []string{"9", "9A", "9B"},
		},
		{
			name: "empty",
			in:   nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortCatalogItems(tt.in))
		})
	}
}

func TestSortCatalogItemsDoesNotMutateInput(t *testing.T) {
	in := []string{"10", "2", "9A"}
	SortCatalogItems(in)
	assert.Equal(t, []string{"10", "2", "9A"}, in)
}

func TestNormalizeItems(t *testing.T) {
	t.Run("trims and deduplicates", func(t *testing.T) {
		out, err := normalizeItems([]string{" 10 ", "10", "2"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"10", "2"}, out)
	})

	t.Run("rejects blank items", func(t *testing.T) {
		_, err := normalizeItems([]string{"10", "   "})
		assert.Error(t, err)
	})
}
