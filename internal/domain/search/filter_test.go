package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	id    int
	title string
}

func TestFilter(t *testing.T) {
	items := []item{{1, "SwiftUI basics"}, {2, "Go concurrency"}, {3, "Advanced swift"}, {4, ""}}
	title := func(i item) string { return i.title }

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query keeps all", "", []int{1, 2, 3, 4}},
		{"blank query keeps all", "   ", []int{1, 2, 3, 4}},
		{"case insensitive", "SWIFT", []int{1, 3}},
		{"single match", "concurrency", []int{2}},
		{"trimmed query", "  go ", []int{2}},
		{"no match", "rust", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.query, title)
			ids := make([]int, 0, len(got))
			for _, g := range got {
				ids = append(ids, g.id)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("Design", " design "))
	assert.False(t, EqualFold("Design", "Designs"))
}
