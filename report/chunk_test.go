package report

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		size  int
		sizes []int
	}{
		{"empty", 0, 5, []int{}},
		{"partial last page", 7, 3, []int{3, 3, 1}},
		{"exact multiple", 6, 3, []int{3, 3}},
		{"smaller than page", 2, 50, []int{2}},
		{"manifest", 51, 50, []int{50, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.n)
			for i := range items {
				items[i] = i
			}

			pages := Chunk(items, tt.size)

			got := make([]int, len(pages))
			for i, p := range pages {
				got[i] = len(p)
			}
			assert.Equal(t, tt.sizes, got)
			assert.Equal(t, items, slices.Concat(pages...))
		})
	}
}

func TestChunkPagesDoNotShareCapacity(t *testing.T) {
	pages := Chunk([]int{1, 2, 3, 4}, 2)
	pages[0] = append(pages[0], 99)
	assert.Equal(t, []int{3, 4}, pages[1])
}

func TestChunkPanicsOnNonPositiveSize(t *testing.T) {
	assert.Panics(t, func() { Chunk([]int{1}, 0) })
}
