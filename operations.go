package exthashmap

import (
	"fmt"
)

// Get - Looks the key up in its directory addressed bucket.
//   - key is the key to look up
//
// It returns:
//   - value is the value stored under the key, the V zero value when not found
//   - found tells whether the key was present at all, an absent key is not an error
func (F *ExtHashMap[K, V]) Get(key K) (value V, found bool) {
	value, found = F.engine.Get(key)
	return
}

// ContainsKey - Returns true if the key is present in the hash map
//   - key is the key to look up
func (F *ExtHashMap[K, V]) ContainsKey(key K) bool {
	_, found := F.engine.Get(key)
	return found
}

// Put - Updates an existing key with a new value or adds the pair if the key is not present.
// When the addressed bucket is full the pair is added through the split procedure, which may double
// the directory and will redistribute the bucket's entries over one additional hash bit.
//   - key is the key to insert or update
//   - value is the value to store under the key
//
// It returns:
//   - previous is the value the key held before the call, only valid when existed is true
//   - existed tells whether the key was already present, a true means the value was replaced and the size is unchanged
//   - err wraps hasherr.CapacityViolation if the split procedure could not restore the capacity invariant, which indicates an internal defect and should never occur
func (F *ExtHashMap[K, V]) Put(key K, value V) (previous V, existed bool, err error) {
	previous, existed, err = F.engine.Put(key, value)
	if err != nil {
		err = fmt.Errorf("error while adding record to bucket: %w", err)
	}

	return
}

// Entries - Returns an iterator over all stored entries. The iterator walks a snapshot of the physical
// bucket store, so each key is emitted exactly once even when several directory slots reference the
// same bucket, and a new call to Entries restarts from the beginning. Order is unspecified.
// Mutating the hash map while consuming an iterator is not supported.
func (F *ExtHashMap[K, V]) Entries() *EntryIterator[K, V] {
	return newEntryIterator(F.engine.Entries())
}

// Size - Returns the number of distinct keys stored, i.e. true occupancy rather than a capacity figure
func (F *ExtHashMap[K, V]) Size() int64 {
	return F.engine.Records()
}

// Stat - Walks the entire bucket store and produces an IndexStat struct with information.
//   - includeDistribution set to true will include a slice of length Buckets with the number of records per bucket, false will set IndexStat.BucketDistribution to nil
func (F *ExtHashMap[K, V]) Stat(includeDistribution bool) (indexStat *IndexStat) {
	stats := F.engine.Stats(includeDistribution)

	indexStat = &IndexStat{
		Records:            stats.Records,
		Buckets:            stats.Buckets,
		GlobalDepth:        stats.GlobalDepth,
		DirectoryLength:    stats.DirectoryLength,
		BucketAccesses:     stats.BucketAccesses,
		Splits:             stats.Splits,
		DirectoryDoublings: stats.DirectoryDoublings,
		BucketDistribution: stats.BucketDistribution,
	}

	return
}
