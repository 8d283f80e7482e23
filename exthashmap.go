package exthashmap

import (
	"github.com/go-kit/log"
	"github.com/mittfall/exthashmap/hasherr"
	"github.com/mittfall/exthashmap/hashfunc"
	"github.com/mittfall/exthashmap/internal/conf"
	"github.com/mittfall/exthashmap/internal/extendible"
	"github.com/mittfall/exthashmap/internal/hash"
	"github.com/mittfall/exthashmap/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// IndexInfo - Information structure containing some information about the hash map created
//   - BucketCapacity is the number of record slots available in each bucket
//   - GlobalDepth is the number of low hash bits used to index the directory
//   - DirectoryLength is the number of directory slots, always 2 to the power of GlobalDepth
//   - NumberOfBuckets is the number of distinct buckets in the bucket store
type IndexInfo struct {
	BucketCapacity  int64
	GlobalDepth     int64
	DirectoryLength int64
	NumberOfBuckets int64
}

// IndexStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of distinct keys stored
//   - Buckets is the number of distinct buckets in the bucket store
//   - GlobalDepth and DirectoryLength describe the current directory shape
//   - BucketAccesses, Splits and DirectoryDoublings are diagnostic counters
//   - BucketDistribution is the number of records stored in each distinct bucket
type IndexStat struct {
	Records            int64
	Buckets            int64
	GlobalDepth        int64
	DirectoryLength    int64
	BucketAccesses     int64
	Splits             int64
	DirectoryDoublings int64
	BucketDistribution []int64
}

// ExtHashMap - The main implementation struct. It maps keys to values using extendible hashing, growing
// its addressing directory incrementally instead of rehashing the whole table on overflow. The instance
// is meant for exclusive access by one logical owner at a time, callers needing concurrency must
// serialize all Put calls externally and may allow concurrent Get calls only while writers are excluded.
type ExtHashMap[K comparable, V any] struct {
	engine *extendible.Engine[K, V]
	logger log.Logger
}

// New - Returns a new extendible hashing map with initialDirLength initially distinct buckets.
//   - initialDirLength is the initial directory length, it must be a positive power of two and determines the initial global depth as log2(initialDirLength)
//   - bucketCapacity is the number of record slots per bucket, a zero selects the default of 4
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal default
//   - logger is an optional go-kit logger for split and growth diagnostics, nil disables logging
//   - registerer is an optional Prometheus registerer for index metrics, nil disables metrics
//
// It returns:
//   - hashMap is a pointer to an ExtHashMap struct
//   - indexInfo is an IndexInfo struct containing some data regarding the hash map created
//   - err is of type hasherr.ConfigurationError if any parameter is invalid
func New[K comparable, V any](
	initialDirLength int64,
	bucketCapacity int64,
	hashAlgorithm hashfunc.HashAlgorithm[K],
	logger log.Logger,
	registerer prometheus.Registerer,
) (
	hashMap *ExtHashMap[K, V],
	indexInfo IndexInfo,
	err error,
) {

	// Check if initialDirLength is valid
	if !utils.IsPowerOfTwo(initialDirLength) {
		err = hasherr.ConfigurationError{Msg: "initial directory length must be a positive power of two"}
		return
	}
	if utils.Log2(initialDirLength) > conf.MaxDepth {
		err = hasherr.ConfigurationError{Msg: "initial directory length exceeds the maximum representable depth"}
		return
	}

	// Check if bucketCapacity is valid
	if bucketCapacity < 0 {
		err = hasherr.ConfigurationError{Msg: "bucket capacity must not be negative"}
		return
	}
	if bucketCapacity == 0 {
		bucketCapacity = conf.DefaultBucketCapacity
	}

	// If no HashAlgorithm was given then use the default internal
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewComparableHashAlgorithm[K]()
	}

	if logger == nil {
		logger = log.NewNopLogger()
	}

	engine := extendible.NewEngine[K, V](initialDirLength, bucketCapacity, hashAlgorithm, logger)

	if registerer != nil {
		registerMetrics(engine, registerer)
	}

	hashMap = &ExtHashMap[K, V]{
		engine: engine,
		logger: logger,
	}

	indexInfo = IndexInfo{
		BucketCapacity:  bucketCapacity,
		GlobalDepth:     engine.GlobalDepth(),
		DirectoryLength: engine.DirectoryLength(),
		NumberOfBuckets: engine.NumBuckets(),
	}

	return
}
