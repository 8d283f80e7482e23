package conf

// DefaultBucketCapacity - Number of record slots per bucket when no capacity is given
const DefaultBucketCapacity int64 = 4

// MaxDepth - Highest permitted global or local depth, keeps 1<<depth and directory lengths within int64
const MaxDepth int64 = 62

// RecordFileHeaderLength - Length of record file header
const RecordFileHeaderLength int64 = 1024

// RecordLengthOffset - Header offset to the fixed record length - 8 bytes
const RecordLengthOffset int64 = 0

// FileSizeOffset - Header offset to the file size (should of course reflect true file size) - 8 bytes
const FileSizeOffset int64 = 8
