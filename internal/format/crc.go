package format

import (
	"fmt"
	"hash/crc32"

	"github.com/iffkit/iffkit/internal/buf"
)

// Path-hash table layout. The consuming runtime binary-searches the hash
// list, so the serialized table must stay sorted by hash.
//
//	Offset        Size  Description
//	------------  ----  ----------------------------------------------
//	 0x00          4    Entry count, big-endian
//	 0x04         4*n   Hashes, big-endian u32, ascending
//	 0x04+4n      2*n   Path lengths, big-endian u16, NUL included
//	 0x04+6n       -    NUL-terminated path strings, hash order

// PathHash computes the table's hash for a path. The runtime uses CRC-32
// with the IEEE polynomial, 0xFFFFFFFF initial value and final complement.
func PathHash(path string) uint32 {
	return crc32.ChecksumIEEE([]byte(path))
}

// DecodeCRCCount reads the entry count and validates that the fixed-width
// hash and length lists fit in the buffer.
func DecodeCRCCount(b []byte) (int, error) {
	if len(b) < CRCHeaderSize {
		return 0, fmt.Errorf("crc table header: %w", ErrTruncated)
	}
	count := int(buf.U32BE(b))
	if _, err := buf.CheckListBounds(len(b), CRCHeaderSize, count, CRCHashSize+CRCLengthSize); err != nil {
		return 0, fmt.Errorf("crc table: %d entries: %w", count, ErrTruncated)
	}
	return count, nil
}

// CRCHashAt returns the i'th hash of a table with a validated count.
func CRCHashAt(b []byte, i int) uint32 {
	return buf.U32BE(b[CRCHeaderSize+i*CRCHashSize:])
}

// CRCLengthAt returns the i'th path length of a table holding count entries.
func CRCLengthAt(b []byte, count, i int) int {
	base := CRCHeaderSize + count*CRCHashSize
	return int(buf.U16BE(b[base+i*CRCLengthSize:]))
}

// CRCStringBase returns the offset of the first path string.
func CRCStringBase(count int) int {
	return CRCHeaderSize + count*(CRCHashSize+CRCLengthSize)
}
