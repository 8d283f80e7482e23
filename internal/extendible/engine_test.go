//go:build unit

package extendible

import (
	"github.com/mittfall/exthashmap/internal/hash"
	"github.com/mittfall/exthashmap/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

// identityHash - Deterministic hash algorithm where the key is its own hash value, which gives the
// tests full control over bucket targeting
type identityHash struct{}

func (H identityHash) HashFunc(key int64) int64 {
	return key
}

// assertDirectoryConsistent - Checks the directory consistency invariant: every live bucket is
// referenced by exactly 2^(globalDepth - localDepth) slots, those slots agree on their low localDepth
// bits, and every entry in the bucket addresses back to that same bit pattern.
func assertDirectoryConsistent(t *testing.T, e *Engine[int64, int64]) {
	globalDepth := e.directory.GlobalDepth()

	refs := make(map[model.Handle][]int64)
	for j := int64(0); j < e.directory.Length(); j++ {
		h := e.directory.Slot(j)
		refs[h] = append(refs[h], j)
	}

	for h, slots := range refs {
		b := e.store.bucketAt(h)
		assert.LessOrEqual(t, b.localDepth, globalDepth, "local depth within global depth")
		assert.Equal(t, int64(1)<<(globalDepth-b.localDepth), int64(len(slots)), "correct number of referencing slots")

		mask := int64(1)<<b.localDepth - 1
		pattern := slots[0] & mask
		for _, j := range slots {
			assert.Equal(t, pattern, j&mask, "referencing slots agree on low bits")
		}
		for _, entry := range b.entries {
			assert.Equal(t, pattern, hash.Addr(entry.Key, b.localDepth), "entry addresses its own bucket")
		}
	}
}

func TestEngine_Put(t *testing.T) {
	t.Run("stores and retrieves a key-value pair", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 4, identityHash{}, nil)

		// Execute
		previous, existed, err := e.Put(17, 1700)

		// Check
		assert.NoError(t, err, "put a new key")
		assert.False(t, existed, "key was not present before")
		assert.Equal(t, int64(0), previous, "no previous value")

		value, found := e.Get(17)
		assert.True(t, found, "key present after put")
		assert.Equal(t, int64(1700), value, "correct value")
	})

	t.Run("upserts an existing key without growing", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 4, identityHash{}, nil)
		_, _, err := e.Put(17, 1700)
		assert.NoError(t, err, "put a new key")

		// Execute
		previous, existed, err := e.Put(17, 1800)

		// Check
		assert.NoError(t, err, "update an existing key")
		assert.True(t, existed, "key was present before")
		assert.Equal(t, int64(1700), previous, "previous value returned")
		assert.Equal(t, int64(1), e.Records(), "size unchanged by update")

		value, _ := e.Get(17)
		assert.Equal(t, int64(1800), value, "value replaced")
	})

	t.Run("doubles the directory when local depth equals global depth", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 1, identityHash{}, nil)
		_, _, err := e.Put(0, 100)
		assert.NoError(t, err, "put first key")

		// Execute
		// Key 2 also addresses slot 0 under depth 1, overflowing the full bucket
		_, _, err = e.Put(2, 200)

		// Check
		assert.NoError(t, err, "put overflows and splits")
		assert.Equal(t, int64(2), e.GlobalDepth(), "exactly one directory doubling")
		assert.Equal(t, int64(1), e.DirectoryDoublings(), "doubling counted")
		assert.Equal(t, int64(1), e.Splits(), "exactly one split")
		assert.Equal(t, int64(3), e.NumBuckets(), "one sibling allocated")

		for _, key := range []int64{0, 2} {
			value, found := e.Get(key)
			assert.Truef(t, found, "key %d still present", key)
			assert.Equalf(t, key*100, value, "key %d kept its value", key)
		}
		assertDirectoryConsistent(t, e)
	})

	t.Run("splits in place when local depth is below global depth", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 1, identityHash{}, nil)
		for _, key := range []int64{0, 2} {
			_, _, err := e.Put(key, key*100)
			assert.NoError(t, err, "prepare directory at depth 2")
		}
		// The odd bucket still has local depth 1 while the global depth is 2
		_, _, err := e.Put(1, 100)
		assert.NoError(t, err, "put first odd key")
		doublings := e.DirectoryDoublings()

		// Execute
		_, _, err = e.Put(3, 300)

		// Check
		assert.NoError(t, err, "put overflows and splits in place")
		assert.Equal(t, doublings, e.DirectoryDoublings(), "no further directory doubling")
		assert.Equal(t, int64(2), e.GlobalDepth(), "global depth unchanged")
		assert.Equal(t, int64(4), e.NumBuckets(), "one sibling allocated")

		for _, key := range []int64{0, 1, 2, 3} {
			value, found := e.Get(key)
			assert.Truef(t, found, "key %d still present", key)
			assert.Equalf(t, key*100, value, "key %d kept its value", key)
		}
		assertDirectoryConsistent(t, e)
	})

	t.Run("keeps splitting under pathological hash clustering", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 1, identityHash{}, nil)
		_, _, err := e.Put(0, 100)
		assert.NoError(t, err, "put first key")

		// Execute
		// Keys 0 and 8 share their low three bits, so the first two redistribution rounds leave
		// all entries in the same half
		_, _, err = e.Put(8, 800)

		// Check
		assert.NoError(t, err, "split terminates despite clustering")
		assert.Equal(t, int64(4), e.GlobalDepth(), "directory doubled until the keys diverge")
		assert.Equal(t, int64(3), e.Splits(), "one split per redistribution round")
		assert.Equal(t, int64(2), e.Records(), "no key lost or duplicated")

		for _, key := range []int64{0, 8} {
			value, found := e.Get(key)
			assert.Truef(t, found, "key %d still present", key)
			assert.Equalf(t, key*100, value, "key %d kept its value", key)
		}
		assertDirectoryConsistent(t, e)
	})

	t.Run("resolves negative hash values to valid directory slots", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](4, 4, identityHash{}, nil)

		// Execute
		for _, key := range []int64{-1, -5, -1024, -3} {
			_, _, err := e.Put(key, -key)
			assert.NoErrorf(t, err, "put negative key %d", key)
		}

		// Check
		for _, key := range []int64{-1, -5, -1024, -3} {
			value, found := e.Get(key)
			assert.Truef(t, found, "negative key %d present", key)
			assert.Equalf(t, -key, value, "negative key %d kept its value", key)
		}
		assertDirectoryConsistent(t, e)
	})
}

func TestEngine_Get(t *testing.T) {
	t.Run("absent key is reported, not fabricated", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 4, identityHash{}, nil)
		_, _, err := e.Put(1, 100)
		assert.NoError(t, err, "put a key")

		// Execute
		value, found := e.Get(2)

		// Check
		assert.False(t, found, "absent key not found")
		assert.Equal(t, int64(0), value, "zero value for absent key")
	})
}

func TestEngine_Entries(t *testing.T) {
	t.Run("emits every key exactly once after splits", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 2, identityHash{}, nil)
		for key := int64(0); key < 40; key++ {
			_, _, err := e.Put(key, key*10)
			assert.NoErrorf(t, err, "put key %d", key)
		}

		// Execute
		entries := e.Entries()

		// Check
		assert.Len(t, entries, 40, "all keys emitted")
		assert.Equal(t, int64(40), e.Records(), "size matches entries")

		seen := make(map[int64]bool)
		for _, entry := range entries {
			assert.Falsef(t, seen[entry.Key], "key %d emitted only once", entry.Key)
			seen[entry.Key] = true
			assert.Equal(t, entry.Key*10, entry.Value, "entry kept its value")
		}
		assertDirectoryConsistent(t, e)
	})
}

func TestEngine_Stats(t *testing.T) {
	t.Run("reports shape, occupancy and diagnostic counters", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 2, identityHash{}, nil)
		for key := int64(0); key < 8; key++ {
			_, _, err := e.Put(key, key)
			assert.NoErrorf(t, err, "put key %d", key)
		}

		// Execute
		stats := e.Stats(true)

		// Check
		assert.Equal(t, int64(8), stats.Records, "correct record count")
		assert.Equal(t, e.NumBuckets(), stats.Buckets, "correct bucket count")
		assert.Equal(t, int64(1)<<stats.GlobalDepth, stats.DirectoryLength, "directory length is a power of two")
		assert.Greater(t, stats.BucketAccesses, int64(0), "accesses counted")
		assert.Len(t, stats.BucketDistribution, int(stats.Buckets), "distribution per distinct bucket")

		var distributed int64
		for _, n := range stats.BucketDistribution {
			distributed += n
		}
		assert.Equal(t, stats.Records, distributed, "distribution sums to record count")
	})

	t.Run("excludes distribution on request", func(t *testing.T) {
		// Prepare
		e := NewEngine[int64, int64](2, 2, identityHash{}, nil)

		// Execute
		stats := e.Stats(false)

		// Check
		assert.Nil(t, stats.BucketDistribution, "no distribution slice")
	})
}
