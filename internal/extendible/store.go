package extendible

import (
	"github.com/mittfall/exthashmap/internal/model"
)

// Store - The bucket store, an arena holding every distinct bucket in physical (creation) order.
// Buckets are owned exclusively by the store and addressed by stable model.Handle values, the directory
// refers to buckets only through such handles. The store only ever grows, key deletion and bucket
// merging are not supported.
type Store[K comparable, V any] struct {
	buckets []*bucket[K, V]
}

// NewStore - Returns a pointer to a new Store instance holding nBuckets initially distinct empty
// buckets, each with the given local depth.
func NewStore[K comparable, V any](nBuckets, localDepth int64) *Store[K, V] {
	s := &Store[K, V]{buckets: make([]*bucket[K, V], 0, nBuckets)}
	for i := int64(0); i < nBuckets; i++ {
		s.Alloc(localDepth)
	}

	return s
}

// Alloc - Allocates a new empty bucket with the given local depth and returns its handle
func (S *Store[K, V]) Alloc(localDepth int64) model.Handle {
	S.buckets = append(S.buckets, &bucket[K, V]{localDepth: localDepth})
	return model.Handle(len(S.buckets) - 1)
}

// bucketAt - Returns the bucket identified by the given handle
func (S *Store[K, V]) bucketAt(handle model.Handle) *bucket[K, V] {
	return S.buckets[handle]
}

// NumBuckets - Returns the number of distinct buckets in the store
func (S *Store[K, V]) NumBuckets() int64 {
	return int64(len(S.buckets))
}

// Records - Returns the total number of entries over all distinct buckets. Since the directory may
// reference one bucket from many slots, occupancy is always counted here and never via the directory.
func (S *Store[K, V]) Records() (records int64) {
	for _, b := range S.buckets {
		records += int64(len(b.entries))
	}

	return
}

// Entries - Returns all entries over all distinct buckets in physical bucket order. The result is a
// snapshot, it is not affected by later mutations of the store.
func (S *Store[K, V]) Entries() (entries []model.Entry[K, V]) {
	entries = make([]model.Entry[K, V], 0, S.Records())
	for _, b := range S.buckets {
		entries = append(entries, b.entries...)
	}

	return
}

// Distribution - Returns the number of entries per distinct bucket in physical bucket order
func (S *Store[K, V]) Distribution() (distribution []int64) {
	distribution = make([]int64, len(S.buckets))
	for i, b := range S.buckets {
		distribution[i] = int64(len(b.entries))
	}

	return
}
