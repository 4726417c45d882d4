//go:build unix

// Package mmfile provides platform-specific helpers for memory-mapping
// container files for read-only parsing.
package mmfile

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Mapped is a read-only view of a file's contents. Close releases the
// mapping; Data must not be used afterwards.
type Mapped struct {
	Data   []byte
	mapped bool
}

// Open maps the file at path into memory.
func Open(path string) (*Mapped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // mapping keeps pages alive after close

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mapped{Data: []byte{}}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmfile: mmap %s: %w", path, err)
	}
	return &Mapped{Data: data, mapped: true}, nil
}

// Close unmaps the file. Closing twice is a no-op.
func (m *Mapped) Close() error {
	if !m.mapped || m.Data == nil {
		m.Data = nil
		return nil
	}
	data := m.Data
	m.Data = nil
	m.mapped = false
	if err := syscall.Munmap(data); err != nil && !errors.Is(err, syscall.EINVAL) {
		return err
	}
	return nil
}
