package extendible

import (
	"github.com/mittfall/exthashmap/internal/model"
)

// bucket - Fixed capacity physical storage unit for key-value entries. The local depth is the number of
// low hash bits that currently distinguish this bucket from any sibling it could split into, and is
// always less than or equal to the global depth of the directory.
type bucket[K comparable, V any] struct {
	localDepth int64
	entries    []model.Entry[K, V]
}

// find - Returns the position of key among the bucket entries, or -1 if the key is not present.
// Keys are compared by equality, and a bucket never holds the same key twice.
func (B *bucket[K, V]) find(key K) int {
	for i := range B.entries {
		if B.entries[i].Key == key {
			return i
		}
	}

	return -1
}

// isFull - Returns true if the bucket has no free slot left under the given capacity
func (B *bucket[K, V]) isFull(capacity int64) bool {
	return int64(len(B.entries)) >= capacity
}
