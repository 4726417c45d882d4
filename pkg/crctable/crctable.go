// Package crctable reads and writes path-hash tables: flat collections
// mapping resource paths to a deterministic hash. The consuming runtime
// binary-searches the serialized hash list, so the table is always emitted
// in ascending hash order.
package crctable

import (
	"fmt"
	"sort"

	"github.com/iffkit/iffkit/internal/buf"
	"github.com/iffkit/iffkit/internal/format"
)

// Entry pairs a resource path with its table hash.
type Entry struct {
	Path string
	Hash uint32
}

// Table is a path-hash table. Paths are unique; hashes parsed from disk are
// preserved verbatim rather than recomputed.
type Table struct {
	entries []Entry
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Hash computes the table hash for a path.
func Hash(path string) uint32 {
	return format.PathHash(path)
}

// Parse reads a path-hash table buffer.
func Parse(b []byte) (*Table, error) {
	count, err := format.DecodeCRCCount(b)
	if err != nil {
		return nil, fmt.Errorf("parse crc table: %w", err)
	}
	t := &Table{entries: make([]Entry, 0, count)}
	off := format.CRCStringBase(count)
	for i := 0; i < count; i++ {
		n := format.CRCLengthAt(b, count, i)
		end, cerr := buf.CheckListBounds(len(b), off, n, 1)
		if cerr != nil {
			return nil, fmt.Errorf("parse crc table: path %d: %w", i, format.ErrTruncated)
		}
		if n < 1 || b[end-1] != 0 {
			return nil, fmt.Errorf("parse crc table: path %d not NUL-terminated", i)
		}
		t.entries = append(t.entries, Entry{
			Path: string(b[off : end-1]),
			Hash: format.CRCHashAt(b, i),
		})
		off = end
	}
	return t, nil
}

// Serialize emits the table in ascending hash order.
func (t *Table) Serialize() []byte {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	sortByHash(entries)

	b := buf.PutU32BE(nil, uint32(len(entries)))
	for _, e := range entries {
		b = buf.PutU32BE(b, e.Hash)
	}
	for _, e := range entries {
		b = buf.PutU16BE(b, uint16(len(e.Path)+1))
	}
	for _, e := range entries {
		b = append(b, e.Path...)
		b = append(b, 0)
	}
	return b
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in ascending hash order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	sortByHash(out)
	return out
}

// Contains reports whether path is already in the table. Lookup is by
// path, not hash, so a hash collision cannot mask a distinct path.
func (t *Table) Contains(path string) bool {
	for i := range t.entries {
		if t.entries[i].Path == path {
			return true
		}
	}
	return false
}

// LookupHash returns the path stored under hash h.
func (t *Table) LookupHash(h uint32) (string, bool) {
	for i := range t.entries {
		if t.entries[i].Hash == h {
			return t.entries[i].Path, true
		}
	}
	return "", false
}

// AddEntries hashes each path and inserts the ones not already present,
// then restores hash order. Returns the number of paths added. A path too
// long for the table's u16 length records fails the whole call before any
// path is inserted.
func (t *Table) AddEntries(paths []string) (int, error) {
	for _, p := range paths {
		if len(p) > format.CRCMaxPathLen {
			return 0, fmt.Errorf("add crc entry: path is %d bytes, limit %d", len(p), format.CRCMaxPathLen)
		}
	}
	added := 0
	for _, p := range paths {
		if t.Contains(p) {
			continue
		}
		t.entries = append(t.entries, Entry{Path: p, Hash: Hash(p)})
		added++
	}
	if added > 0 {
		sortByHash(t.entries)
	}
	return added, nil
}

func sortByHash(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Hash != entries[j].Hash {
			return entries[i].Hash < entries[j].Hash
		}
		return entries[i].Path < entries[j].Path
	})
}
