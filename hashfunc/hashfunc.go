package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ExtHashMap to supply a custom hash
// algorithm suited for its particular distribution of keys.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates a hash value over the full int64 range.
	// Negative values are permitted, directory addressing normalizes the value before use, but for
	// a good spread over buckets the low bits of the returned value should be uniformly distributed.
	HashFunc(key K) int64
}
