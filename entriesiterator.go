package exthashmap

import (
	"github.com/mittfall/exthashmap/internal/model"
)

// EntryIterator - Is used to iterate over stored entries one by one. It operates on a snapshot taken
// when the iterator was created, restarting is done by requesting a new iterator from Entries.
type EntryIterator[K comparable, V any] struct {
	entries []model.Entry[K, V]
	index   int
}

// newEntryIterator - Returns a pointer to a new EntryIterator struct positioned before the first entry
func newEntryIterator[K comparable, V any](entries []model.Entry[K, V]) *EntryIterator[K, V] {
	return &EntryIterator[K, V]{
		entries: entries,
		index:   -1,
	}
}

// Next - Advances the iterator to the next entry and returns true if one is available
func (O *EntryIterator[K, V]) Next() bool {
	O.index++
	return O.index < len(O.entries)
}

// Key - Returns the key of the current entry
func (O *EntryIterator[K, V]) Key() K {
	return O.entries[O.index].Key
}

// Value - Returns the value of the current entry
func (O *EntryIterator[K, V]) Value() V {
	return O.entries[O.index].Value
}

// Len - Returns the total number of entries in the snapshot, regardless of iterator position
func (O *EntryIterator[K, V]) Len() int {
	return len(O.entries)
}
