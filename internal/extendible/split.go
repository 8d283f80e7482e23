package extendible

import (
	"fmt"
	"github.com/go-kit/log/level"
	"github.com/mittfall/exthashmap/hasherr"
	"github.com/mittfall/exthashmap/internal/conf"
	"github.com/mittfall/exthashmap/internal/hash"
	"github.com/mittfall/exthashmap/internal/model"
)

// split - Handles overflow of the bucket currently addressed by the key by splitting it. Whenever the
// overflowing bucket's local depth has caught up with the global depth the directory is doubled first,
// otherwise the bucket is split in place. The union of the bucket's entries and the pending entry is
// redistributed over the bucket and a newly allocated sibling by one additional hash bit, and every
// directory slot that referenced the pre-split bucket is re-aimed at the half it now addresses.
//
// Redistribution runs as a depth-bounded loop rather than general recursive insertion: if all entries
// land in the same half that half keeps splitting with one more bit each round, so the loop terminates
// once the local depth reaches conf.MaxDepth. The depth bound is checked before any mutation in a
// round, so a failing split leaves the directory and the bucket store consistent, each key stored
// exactly once and every slot aimed at a live bucket.
func (E *Engine[K, V]) split(key K, value V) (err error) {
	addr := hash.Addr(E.hashAlg.HashFunc(key), E.directory.GlobalDepth())
	handle := E.directory.Slot(addr)

	b := E.store.bucketAt(handle)
	entries := make([]model.Entry[K, V], 0, len(b.entries)+1)
	entries = append(entries, b.entries...)
	entries = append(entries, model.Entry[K, V]{Key: key, Value: value})

	for {
		b = E.store.bucketAt(handle)
		oldLocal := b.localDepth

		if oldLocal >= conf.MaxDepth {
			err = hasherr.CapacityViolation{
				Msg: fmt.Sprintf("bucket still over capacity with local depth at maximum %d", conf.MaxDepth),
			}
			return
		}

		if oldLocal == E.directory.GlobalDepth() {
			E.directory.Double()
			E.doublings.Inc()
			level.Debug(E.logger).Log(
				"msg", "directory doubled",
				"globalDepth", E.directory.GlobalDepth(),
				"slots", E.directory.Length(),
			)
		}

		// All entries agree on their low oldLocal bits, so bit oldLocal of the address under the
		// incremented depth decides which half an entry belongs to.
		newLocal := oldLocal + 1
		pattern := hash.Addr(E.hashAlg.HashFunc(entries[0].Key), oldLocal)

		low := make([]model.Entry[K, V], 0, len(entries))
		high := make([]model.Entry[K, V], 0, len(entries))
		for _, entry := range entries {
			if (hash.Addr(E.hashAlg.HashFunc(entry.Key), newLocal)>>oldLocal)&1 == 1 {
				high = append(high, entry)
			} else {
				low = append(low, entry)
			}
		}

		b.localDepth = newLocal
		b.entries = low
		sibling := E.store.Alloc(newLocal)
		E.store.bucketAt(sibling).entries = high

		E.directory.Repoint(pattern, oldLocal, handle, sibling)
		E.splits.Inc()
		level.Debug(E.logger).Log(
			"msg", "bucket split",
			"localDepth", newLocal,
			"lowRecords", len(low),
			"highRecords", len(high),
		)

		// At most one half can exceed capacity since the batch holds capacity+1 entries at most
		if int64(len(low)) > E.capacity {
			entries = low
		} else if int64(len(high)) > E.capacity {
			entries = high
			handle = sibling
		} else {
			return
		}
	}
}
