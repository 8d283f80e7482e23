package hash

import (
	"hash/maphash"
)

// ComparableHashAlgorithm - The internally used hash algorithm is implemented using maphash.Comparable to
// create a hash value over any comparable key type. The value is returned as a signed int64, so roughly
// half of all keys produce a negative hash value and exercise the address normalization in Addr.
type ComparableHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHashAlgorithm - Returns a pointer to a new ComparableHashAlgorithm instance
func NewComparableHashAlgorithm[K comparable]() *ComparableHashAlgorithm[K] {
	return &ComparableHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// HashFunc - Given key it generates a hash value over the full int64 range
func (B *ComparableHashAlgorithm[K]) HashFunc(key K) int64 {
	return int64(maphash.Comparable(B.seed, key))
}

// Addr - Returns the address of a hash value under the given depth, i.e. hashValue mod 2^depth
// normalized to a non-negative value. It is used both to locate the current directory slot (depth equal
// to the global depth) and, during a split, to decide which half of a redistributed bucket a key belongs
// to (depth equal to the new local depth).
func Addr(hashValue, depth int64) int64 {
	size := int64(1) << depth
	a := hashValue % size
	if a < 0 {
		a += size
	}
	return a
}
