// Package testutil builds synthetic container buffers for tests.
package testutil

import (
	"encoding/binary"
)

// Chunk renders a leaf node: tag, big-endian size, payload, no padding.
func Chunk(tag string, payload []byte) []byte {
	b := append([]byte(tag), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(b[4:], uint32(len(payload)))
	return append(b, payload...)
}

// Form renders a container node wrapping the already-rendered children.
func Form(formName string, children ...[]byte) []byte {
	size := 4
	for _, c := range children {
		size += len(c)
	}
	b := append([]byte("FORM"), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(b[4:], uint32(size))
	b = append(b, formName...)
	for _, c := range children {
		b = append(b, c...)
	}
	return b
}

// PropPayload renders a property chunk payload: NUL-terminated name
// followed by the raw value bytes.
func PropPayload(name string, value []byte) []byte {
	b := append([]byte(name), 0)
	return append(b, value...)
}
