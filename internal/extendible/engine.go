package extendible

import (
	"github.com/go-kit/log"
	"github.com/mittfall/exthashmap/hashfunc"
	"github.com/mittfall/exthashmap/internal/hash"
	"github.com/mittfall/exthashmap/internal/model"
	"github.com/mittfall/exthashmap/internal/utils"
	"go.uber.org/atomic"
)

// Engine - Composes the directory, the bucket store and the hash algorithm into the extendible hashing
// index. The engine is designed for exclusive access by one logical owner at a time, it holds no
// internal locking. The diagnostic counters are atomics only so that an observability read never races
// the owner, they imply no further concurrency guarantees.
type Engine[K comparable, V any] struct {
	directory *Directory
	store     *Store[K, V]
	hashAlg   hashfunc.HashAlgorithm[K]
	capacity  int64
	logger    log.Logger

	accesses  atomic.Int64
	splits    atomic.Int64
	doublings atomic.Int64
}

// NewEngine - Returns a pointer to a new Engine instance with a directory of initialDirLength slots
// (must be a positive power of two, validated by the caller) each referencing its own distinct empty
// bucket with local depth log2(initialDirLength).
func NewEngine[K comparable, V any](
	initialDirLength int64,
	bucketCapacity int64,
	hashAlgorithm hashfunc.HashAlgorithm[K],
	logger log.Logger,
) *Engine[K, V] {

	if logger == nil {
		logger = log.NewNopLogger()
	}

	globalDepth := utils.Log2(initialDirLength)

	store := NewStore[K, V](initialDirLength, globalDepth)
	handles := make([]model.Handle, initialDirLength)
	for i := range handles {
		handles[i] = model.Handle(i)
	}

	return &Engine[K, V]{
		directory: NewDirectory(globalDepth, handles),
		store:     store,
		hashAlg:   hashAlgorithm,
		capacity:  bucketCapacity,
		logger:    logger,
	}
}

// Get - Looks the key up in its directory addressed bucket using a linear scan.
// It returns:
//   - value is the value stored under the key
//   - found tells whether the key was present at all, a false leaves value as the V zero value
func (E *Engine[K, V]) Get(key K) (value V, found bool) {
	b := E.lookup(key)

	if i := b.find(key); i >= 0 {
		value = b.entries[i].Value
		found = true
	}

	return
}

// Put - Upserts the key-value pair. An existing key has its value replaced and the previous value
// returned, a new key is appended to its bucket, splitting the bucket first when it is full.
// It returns:
//   - previous is the value the key held before the call, only valid when existed is true
//   - existed tells whether the key was already present
//   - err is of type hasherr.CapacityViolation if splitting exhausted the representable hash bit width, which indicates an internal defect
func (E *Engine[K, V]) Put(key K, value V) (previous V, existed bool, err error) {
	b := E.lookup(key)

	if i := b.find(key); i >= 0 {
		previous = b.entries[i].Value
		existed = true
		b.entries[i].Value = value
		return
	}

	if !b.isFull(E.capacity) {
		b.entries = append(b.entries, model.Entry[K, V]{Key: key, Value: value})
		return
	}

	err = E.split(key, value)

	return
}

// Entries - Returns a snapshot of all entries, walking the physical bucket store once so that a bucket
// referenced by several directory slots is still emitted only once.
func (E *Engine[K, V]) Entries() []model.Entry[K, V] {
	return E.store.Entries()
}

// Records - Returns the number of distinct keys stored
func (E *Engine[K, V]) Records() int64 {
	return E.store.Records()
}

// GlobalDepth - Returns the current global depth of the directory
func (E *Engine[K, V]) GlobalDepth() int64 {
	return E.directory.GlobalDepth()
}

// DirectoryLength - Returns the current number of directory slots
func (E *Engine[K, V]) DirectoryLength() int64 {
	return E.directory.Length()
}

// NumBuckets - Returns the number of distinct buckets in the bucket store
func (E *Engine[K, V]) NumBuckets() int64 {
	return E.store.NumBuckets()
}

// BucketAccesses - Returns the number of bucket lookups performed so far
func (E *Engine[K, V]) BucketAccesses() int64 {
	return E.accesses.Load()
}

// Splits - Returns the number of bucket splits performed so far
func (E *Engine[K, V]) Splits() int64 {
	return E.splits.Load()
}

// DirectoryDoublings - Returns the number of directory doublings performed so far
func (E *Engine[K, V]) DirectoryDoublings() int64 {
	return E.doublings.Load()
}

// Stats - Returns statistics on the overall usage and shape of the index
//   - includeDistribution set to true will include a slice with the number of records per distinct bucket, false will set Stats.BucketDistribution to nil
func (E *Engine[K, V]) Stats(includeDistribution bool) (stats model.Stats) {
	stats = model.Stats{
		Records:            E.store.Records(),
		Buckets:            E.store.NumBuckets(),
		GlobalDepth:        E.directory.GlobalDepth(),
		DirectoryLength:    E.directory.Length(),
		BucketAccesses:     E.accesses.Load(),
		Splits:             E.splits.Load(),
		DirectoryDoublings: E.doublings.Load(),
	}

	if includeDistribution {
		stats.BucketDistribution = E.store.Distribution()
	}

	return
}

// lookup - Resolves the bucket currently addressed by the key's hash under the global depth,
// counting the access for diagnostics
func (E *Engine[K, V]) lookup(key K) *bucket[K, V] {
	addr := hash.Addr(E.hashAlg.HashFunc(key), E.directory.GlobalDepth())
	E.accesses.Inc()

	return E.store.bucketAt(E.directory.Slot(addr))
}
