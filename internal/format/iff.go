package format

import (
	"fmt"

	"github.com/iffkit/iffkit/internal/buf"
)

// NodeHeader is the fixed prefix of every node in the container stream.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------
//	 0x00    4    ASCII tag ("FORM" for containers, chunk id for leaves)
//	 0x04    4    Payload size, big-endian unsigned
//
// For a container the payload opens with a four-byte form name that is
// counted inside Size; the remaining Size-4 bytes hold nested nodes. For a
// leaf the payload is exactly Size opaque bytes. Leaf payloads are never
// padded to an even boundary, unlike generic interchange formats.
type NodeHeader struct {
	Tag  [TagSize]byte
	Size uint32
}

// IsForm reports whether the header opens a container node.
func (h NodeHeader) IsForm() bool {
	return string(h.Tag[:]) == string(FormTag)
}

// TagString returns the tag as a string.
func (h NodeHeader) TagString() string {
	return string(h.Tag[:])
}

// DecodeNodeHeader reads the node header at offset off. The returned header
// is validated for tag legality but not for payload bounds; callers check
// Size against the space they own.
func DecodeNodeHeader(b []byte, off int) (NodeHeader, error) {
	end, ok := buf.AddOverflowSafe(off, NodeHeaderSize)
	if !ok || off < 0 || end > len(b) {
		return NodeHeader{}, fmt.Errorf("node header at %d: %w", off, ErrTruncated)
	}
	var h NodeHeader
	copy(h.Tag[:], b[off:off+TagSize])
	if !ValidTag(h.Tag[:]) {
		return NodeHeader{}, fmt.Errorf("node header at %d: tag %q: %w", off, h.Tag[:], ErrBadTag)
	}
	h.Size = buf.U32BE(b[off+TagSize:])
	return h, nil
}

// EncodeNodeHeader appends the header to dst.
func EncodeNodeHeader(dst []byte, tag string, size uint32) []byte {
	dst = append(dst, tag...)
	return buf.PutU32BE(dst, size)
}
