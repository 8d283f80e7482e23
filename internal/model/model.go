package model

// Handle - Identifies one distinct bucket in the bucket store. Directory slots hold handles rather
// than bucket references, making the many-slots-one-bucket relationship explicit.
type Handle int64

// Entry - Represents one key-value pair stored in a bucket
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Stats - Statistics on the overall usage and shape of the hash map
//   - Records is the total number of keys stored
//   - Buckets is the number of distinct buckets in the bucket store
//   - GlobalDepth is the number of low hash bits used to index the directory
//   - DirectoryLength is the number of directory slots (2 to the power of GlobalDepth)
//   - BucketAccesses is the number of bucket lookups performed (for performance diagnostics)
//   - Splits is the number of bucket splits performed
//   - DirectoryDoublings is the number of times the directory doubled in length
//   - BucketDistribution is the number of records stored in each distinct bucket
type Stats struct {
	Records            int64
	Buckets            int64
	GlobalDepth        int64
	DirectoryLength    int64
	BucketAccesses     int64
	Splits             int64
	DirectoryDoublings int64
	BucketDistribution []int64
}
