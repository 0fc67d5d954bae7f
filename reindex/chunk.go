package reindex

import "slices"

// Chunk splits items into batches of at most size elements. Non-positive
// sizes yield a single batch.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(items)
	}
	return slices.Collect(slices.Chunk(items, size))
}
