package report

// Chunk splits items into consecutive pages of size. The last page holds the
// remainder. Empty input gives no pages.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic("report: chunk size must be positive")
	}
	pages := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		pages = append(pages, items[start:end:end])
	}
	return pages
}
