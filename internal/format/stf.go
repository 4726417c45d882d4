package format

import (
	"fmt"

	"github.com/iffkit/iffkit/internal/buf"
)

// STFHeader is the fixed prefix of a string table file.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	 0x00    4    Magic 0x0000ABCD, little-endian
//	 0x04    1    Flag byte (observed 0x00, preserved verbatim)
//	 0x05    4    Next unique row id, little-endian
//	 0x09    4    Entry count, little-endian
//
// The header is followed by Count value rows and then Count key rows; rows
// pair up by their shared id field, not by position.
type STFHeader struct {
	Flag         byte
	NextUniqueID uint32
	Count        uint32
}

// DecodeSTFHeader validates the magic and extracts the header fields.
func DecodeSTFHeader(b []byte) (STFHeader, error) {
	if len(b) < STFHeaderSize {
		return STFHeader{}, fmt.Errorf("stf header: %w", ErrTruncated)
	}
	if buf.U32LE(b) != STFSignature {
		return STFHeader{}, fmt.Errorf("stf header: magic %#x: %w", buf.U32LE(b), ErrSignatureMismatch)
	}
	return STFHeader{
		Flag:         b[4],
		NextUniqueID: buf.U32LE(b[5:]),
		Count:        buf.U32LE(b[9:]),
	}, nil
}

// EncodeSTFHeader appends the header to dst.
func EncodeSTFHeader(dst []byte, h STFHeader) []byte {
	dst = buf.PutU32LE(dst, STFSignature)
	dst = append(dst, h.Flag)
	dst = buf.PutU32LE(dst, h.NextUniqueID)
	return buf.PutU32LE(dst, h.Count)
}

// STFValueRow is one localized-text row.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	 0x00    4    Row id, little-endian
//	 0x04    4    Use flag (uninterpreted, preserved verbatim)
//	 0x08    4    Character count, little-endian
//	 0x0C   2*n   UTF-16LE characters, no terminator
type STFValueRow struct {
	ID      uint32
	UseFlag uint32
	Chars   []byte // raw UTF-16LE bytes
}

// DecodeSTFValueRow reads one value row at off and returns the offset of the
// next row. Chars aliases b; callers that outlive the buffer must copy it.
func DecodeSTFValueRow(b []byte, off int) (STFValueRow, int, error) {
	if _, err := buf.CheckListBounds(len(b), off, 3, 4); err != nil {
		return STFValueRow{}, 0, fmt.Errorf("stf value row at %d: %w", off, ErrTruncated)
	}
	id := buf.U32LE(b[off:])
	use := buf.U32LE(b[off+4:])
	chars := int(buf.U32LE(b[off+8:]))
	end, err := buf.CheckListBounds(len(b), off+12, chars, 2)
	if err != nil {
		return STFValueRow{}, 0, fmt.Errorf("stf value row at %d: %d chars: %w", off, chars, ErrTruncated)
	}
	return STFValueRow{ID: id, UseFlag: use, Chars: b[off+12 : end]}, end, nil
}

// EncodeSTFValueRow appends one value row to dst.
func EncodeSTFValueRow(dst []byte, r STFValueRow) []byte {
	dst = buf.PutU32LE(dst, r.ID)
	dst = buf.PutU32LE(dst, r.UseFlag)
	dst = buf.PutU32LE(dst, uint32(len(r.Chars)/2))
	return append(dst, r.Chars...)
}

// STFKeyRow is one identifier row.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	 0x00    4    Row id, little-endian
//	 0x04    4    Key byte count, little-endian
//	 0x08    n    ASCII key, no terminator
type STFKeyRow struct {
	ID  uint32
	Key string
}

// DecodeSTFKeyRow reads one key row at off and returns the offset of the
// next row.
func DecodeSTFKeyRow(b []byte, off int) (STFKeyRow, int, error) {
	if _, err := buf.CheckListBounds(len(b), off, 2, 4); err != nil {
		return STFKeyRow{}, 0, fmt.Errorf("stf key row at %d: %w", off, ErrTruncated)
	}
	id := buf.U32LE(b[off:])
	n := int(buf.U32LE(b[off+4:]))
	end, err := buf.CheckListBounds(len(b), off+8, n, 1)
	if err != nil {
		return STFKeyRow{}, 0, fmt.Errorf("stf key row at %d: %d bytes: %w", off, n, ErrTruncated)
	}
	return STFKeyRow{ID: id, Key: string(b[off+8 : end])}, end, nil
}

// EncodeSTFKeyRow appends one key row to dst.
func EncodeSTFKeyRow(dst []byte, r STFKeyRow) []byte {
	dst = buf.PutU32LE(dst, r.ID)
	dst = buf.PutU32LE(dst, uint32(len(r.Key)))
	return append(dst, r.Key...)
}
