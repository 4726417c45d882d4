//go:build !unix

// Package mmfile provides platform-specific helpers for memory-mapping
// container files for read-only parsing.
package mmfile

import "os"

// Mapped is a read-only view of a file's contents. Close releases the
// mapping; Data must not be used afterwards.
type Mapped struct {
	Data []byte
}

// Open reads the entire file when mmap is not available.
func Open(path string) (*Mapped, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapped{Data: data}, nil
}

// Close releases the buffer.
func (m *Mapped) Close() error {
	m.Data = nil
	return nil
}
