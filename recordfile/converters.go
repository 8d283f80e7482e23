package recordfile

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/mittfall/exthashmap/internal/conf"
)

// Header - Represents the record file header data
type Header struct {
	RecordLength int64
	FileSize     int64
}

// getHeader - Reads header data from file and returns it as a Header struct
func getHeader(f *os.File) (header Header, err error) {
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, conf.RecordFileHeaderLength)
	_, err = f.Read(buf)
	if err != nil {
		return
	}

	header = bytesToHeader(buf)

	return
}

// setHeader - Takes a Header struct and writes header data to file
func setHeader(f *os.File, header Header) (err error) {
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return
	}

	buf := headerToBytes(header)

	_, err = f.Write(buf)

	return
}

// bytesToHeader - Converts a slice of bytes to a Header struct
func bytesToHeader(buf []byte) (header Header) {
	header = Header{
		RecordLength: int64(binary.LittleEndian.Uint64(buf[conf.RecordLengthOffset:])),
		FileSize:     int64(binary.LittleEndian.Uint64(buf[conf.FileSizeOffset:])),
	}

	return
}

// headerToBytes - Converts a Header struct to a slice of bytes
func headerToBytes(header Header) (buf []byte) {
	buf = make([]byte, conf.RecordFileHeaderLength)

	binary.LittleEndian.PutUint64(buf[conf.RecordLengthOffset:], uint64(header.RecordLength))
	binary.LittleEndian.PutUint64(buf[conf.FileSizeOffset:], uint64(header.FileSize))

	return
}
