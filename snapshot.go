package exthashmap

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/mittfall/exthashmap/recordfile"
)

// Codec - Interface for packing an entry into a fixed length byte record and back. The record length
// produced by Pack must match the record length of the record store the codec is used with.
type Codec[K comparable, V any] interface {
	// Pack - Packs a key-value pair into a fixed length byte record
	Pack(key K, value V) (record []byte, err error)
	// Unpack - Unpacks a fixed length byte record into a key-value pair
	Unpack(record []byte) (key K, value V, err error)
}

// Snapshot - Writes every stored entry through the codec into the given record store. The hash map is
// walked bucket by bucket over the physical store, so each key is written exactly once. Entries are
// appended after whatever the record store already holds.
//   - store is an open record store to receive the packed entries
//   - codec packs entries into records of the store's fixed record length
//
// It returns:
//   - records is the number of records written
//   - err is a standard error, if something went wrong
func (F *ExtHashMap[K, V]) Snapshot(store *recordfile.Store, codec Codec[K, V]) (records int64, err error) {
	iter := F.Entries()

	for iter.Next() {
		var record []byte
		record, err = codec.Pack(iter.Key(), iter.Value())
		if err != nil {
			err = fmt.Errorf("error while packing entry for record store: %s", err)
			return
		}

		_, err = store.Add(record)
		if err != nil {
			err = fmt.Errorf("error while writing entry to record store: %s", err)
			return
		}

		records++
	}

	level.Debug(F.logger).Log("msg", "index contents written to record store", "records", records)

	return
}

// Restore - Reads every record from the given record store through the codec and upserts the resulting
// key-value pairs into the hash map. A key occurring several times in the store ends up with the value
// of its last record.
//   - store is an open record store holding packed entries
//   - codec unpacks records of the store's fixed record length
//
// It returns:
//   - records is the number of records read
//   - err is a standard error, if something went wrong
func (F *ExtHashMap[K, V]) Restore(store *recordfile.Store, codec Codec[K, V]) (records int64, err error) {
	for i := int64(0); i < store.Size(); i++ {
		var record []byte
		record, err = store.Get(i)
		if err != nil {
			err = fmt.Errorf("error while reading entry from record store: %s", err)
			return
		}

		var key K
		var value V
		key, value, err = codec.Unpack(record)
		if err != nil {
			err = fmt.Errorf("error while unpacking entry from record store: %s", err)
			return
		}

		_, _, err = F.Put(key, value)
		if err != nil {
			return
		}

		records++
	}

	level.Debug(F.logger).Log("msg", "index contents read from record store", "records", records)

	return
}
