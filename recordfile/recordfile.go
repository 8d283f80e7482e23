package recordfile

import (
	"fmt"
	"io"
	"os"

	"github.com/mittfall/exthashmap/hasherr"
	"github.com/mittfall/exthashmap/internal/conf"
	"golang.org/x/sys/unix"
)

// Store - A sequential store of fixed length records over a random access file. Records are addressed
// by ordinal position in insertion order. It is the tuple storage collaborator of the hash index, a
// higher layer may pack tuples into fixed length records and persist index contents through it, the
// index itself never depends on it for correctness.
//
// The file is locked with an exclusive advisory lock for the lifetime of the Store, enforcing the
// single-writer discipline at the operating system level.
type Store struct {
	fileName     string
	file         *os.File
	recordLength int64
	nRecords     int64
}

// GetRecordFileName - Returns the record file name given the record store name
func GetRecordFileName(name string) (fileName string) {
	return fmt.Sprintf("%s-records.bin", name)
}

// New - Returns a new record store prepared to hold records of a fixed length. If a file with the same
// name already exists it will be truncated, hence deleting all existing data.
//   - name is the name of the record store and will be used to form the file name
//   - recordLength is the fixed length in bytes of every record
//
// It returns:
//   - store is a pointer to a Store struct
//   - err is of type hasherr.ConfigurationError for invalid parameters, otherwise a standard error
func New(name string, recordLength int64) (store *Store, err error) {
	// Check if name is empty
	if name == "" {
		err = hasherr.ConfigurationError{Msg: "name can not be empty, it will be used to name the physical file"}
		return
	}

	// Check if the recordLength is valid
	if recordLength <= 0 {
		err = hasherr.ConfigurationError{Msg: "record length must be a positive value higher than 0 (zero)"}
		return
	}

	fileName := GetRecordFileName(name)

	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create new record file: %s", err)
		return
	}

	err = lockFile(file)
	if err != nil {
		_ = file.Close()
		return
	}

	header := Header{RecordLength: recordLength, FileSize: conf.RecordFileHeaderLength}
	err = setHeader(file, header)
	if err != nil {
		_ = file.Close()
		err = fmt.Errorf("error while writing header to new record file: %s", err)
		return
	}

	store = &Store{
		fileName:     fileName,
		file:         file,
		recordLength: recordLength,
	}

	return
}

// NewFromExistingFile - Opens an existing record store file. The file must have a valid header and its
// size must hold a whole number of records.
//   - name is the name of an existing record store
//
// It returns:
//   - store is a pointer to a Store struct
//   - err is a standard Go error which should be nil if everything went ok
func NewFromExistingFile(name string) (store *Store, err error) {
	fileName := GetRecordFileName(name)

	stat, err := os.Stat(fileName)
	if err != nil {
		err = fmt.Errorf("record file not found")
		return
	}

	file, err := os.OpenFile(fileName, os.O_RDWR, 0644)
	if err != nil {
		err = fmt.Errorf("unable to open existing record file: %s", err)
		return
	}

	err = lockFile(file)
	if err != nil {
		_ = file.Close()
		return
	}

	header, err := getHeader(file)
	if err != nil {
		_ = file.Close()
		err = fmt.Errorf("unable to read header from record file: %s", err)
		return
	}

	if header.RecordLength <= 0 {
		_ = file.Close()
		err = fmt.Errorf("record file header holds an invalid record length")
		return
	}

	dataSize := stat.Size() - conf.RecordFileHeaderLength
	if dataSize < 0 || dataSize%header.RecordLength != 0 {
		_ = file.Close()
		err = fmt.Errorf("actual file size doesn't hold a whole number of records")
		return
	}

	store = &Store{
		fileName:     fileName,
		file:         file,
		recordLength: header.RecordLength,
		nRecords:     dataSize / header.RecordLength,
	}

	return
}

// Add - Appends a record at the end of the file.
//   - record is the bytes to write, it has to be of same length as given in the call to New
//
// It returns:
//   - ordinal is the position of the added record, usable in a call to Get
//   - err is a standard error, if something went wrong
func (S *Store) Add(record []byte) (ordinal int64, err error) {
	if int64(len(record)) != S.recordLength {
		err = fmt.Errorf("wrong record length, should be %d", S.recordLength)
		return
	}

	_, err = S.file.Seek(0, io.SeekEnd)
	if err != nil {
		return
	}

	_, err = S.file.Write(record)
	if err != nil {
		err = fmt.Errorf("error while writing record to file: %s", err)
		return
	}

	ordinal = S.nRecords
	S.nRecords++

	return
}

// Get - Gets the record at the given ordinal position by seeking to the correct file position and
// reading the record.
//   - ordinal is the position of the record to get
//
// It returns:
//   - record is the bytes of the matching record, if the ordinal is out of range an error of type hasherr.NoRecordFound is returned instead
//   - err is either of type hasherr.NoRecordFound or a standard error, if something went wrong
func (S *Store) Get(ordinal int64) (record []byte, err error) {
	if ordinal < 0 || ordinal >= S.nRecords {
		err = hasherr.NoRecordFound{}
		return
	}

	_, err = S.file.Seek(conf.RecordFileHeaderLength+ordinal*S.recordLength, io.SeekStart)
	if err != nil {
		return
	}

	record = make([]byte, S.recordLength)
	_, err = S.file.Read(record)
	if err != nil {
		record = nil
		err = fmt.Errorf("error while reading record from file: %s", err)
	}

	return
}

// Size - Returns the size of the record store in terms of number of records
func (S *Store) Size() int64 {
	return S.nRecords
}

// RecordLength - Returns the fixed record length in bytes
func (S *Store) RecordLength() int64 {
	return S.recordLength
}

// Close - Writes back the header, syncs and closes the record file and releases the file lock.
// Use this preferably in a "defer" directly after a New or NewFromExistingFile.
func (S *Store) Close() {
	if S.file == nil {
		return
	}

	header := Header{
		RecordLength: S.recordLength,
		FileSize:     conf.RecordFileHeaderLength + S.nRecords*S.recordLength,
	}
	_ = setHeader(S.file, header)

	_ = S.file.Sync()
	_ = unix.Flock(int(S.file.Fd()), unix.LOCK_UN)
	_ = S.file.Close()
	S.file = nil
}

// Remove - Removes the record file if it exists. The function first internally closes it using Close.
func (S *Store) Remove() (err error) {
	S.Close()

	// Only try to remove if exists, and is not by accident a directory (could happen when testing things out)
	if stat, ok := os.Stat(S.fileName); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(S.fileName)
			if err != nil {
				err = fmt.Errorf("error while removing record file: %s", err)
				return
			}
		}
	}

	return
}

// lockFile - Takes an exclusive non-blocking advisory lock on the file, failing if some other owner
// already holds one
func lockFile(file *os.File) (err error) {
	err = unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err != nil {
		err = fmt.Errorf("record file is locked by another owner: %s", err)
	}

	return
}
