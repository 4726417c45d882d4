// Package stf reads and writes string table files: flat collections of
// localized text keyed by identifier. Entry order is preserved across a
// parse/serialize cycle, and fields the codec does not interpret (the
// header flag, per-row use flags, row ids) ride along verbatim.
package stf

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/iffkit/iffkit/internal/format"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// defaultUseFlag matches the value observed on every row the game client
// writes.
const defaultUseFlag = 0xFFFFFFFF

// Entry is one identifier/value pair.
type Entry struct {
	ID    string
	Value string
}

type row struct {
	id      string
	value   string
	rowID   uint32
	useFlag uint32
	chars   []byte // raw UTF-16LE from parse; nil once the value is replaced
}

// Table is an ordered string table. Identifiers are unique; adding an
// existing one overwrites its value in place.
type Table struct {
	flag         byte
	nextUniqueID uint32
	rows         []row
}

// New returns an empty table.
func New() *Table {
	return &Table{nextUniqueID: 1}
}

// Parse reads a string table buffer.
func Parse(b []byte) (*Table, error) {
	h, err := format.DecodeSTFHeader(b)
	if err != nil {
		return nil, fmt.Errorf("parse string table: %w", err)
	}
	t := &Table{flag: h.Flag, nextUniqueID: h.NextUniqueID}

	// Count value rows, then count key rows; the two sequences pair by
	// their shared row id, not by position.
	values := make(map[uint32]format.STFValueRow, h.Count)
	order := make([]uint32, 0, h.Count)
	off := format.STFHeaderSize
	for i := uint32(0); i < h.Count; i++ {
		vr, next, err := format.DecodeSTFValueRow(b, off)
		if err != nil {
			return nil, fmt.Errorf("parse string table: %w", err)
		}
		values[vr.ID] = vr
		order = append(order, vr.ID)
		off = next
	}
	keys := make(map[uint32]string, h.Count)
	for i := uint32(0); i < h.Count; i++ {
		kr, next, err := format.DecodeSTFKeyRow(b, off)
		if err != nil {
			return nil, fmt.Errorf("parse string table: %w", err)
		}
		keys[kr.ID] = kr.Key
		off = next
	}

	for _, id := range order {
		vr := values[id]
		key, ok := keys[id]
		if !ok {
			return nil, fmt.Errorf("parse string table: value row %d has no key row", id)
		}
		text, err := decodeUTF16(vr.Chars)
		if err != nil {
			return nil, fmt.Errorf("parse string table: row %d: %w", id, err)
		}
		t.rows = append(t.rows, row{
			id:      key,
			value:   text,
			rowID:   vr.ID,
			useFlag: vr.UseFlag,
			// Decoded rows own their bytes; the caller is free to reuse b.
			chars: bytes.Clone(vr.Chars),
		})
	}
	return t, nil
}

// Serialize reproduces the on-disk layout with the current entry list.
func (t *Table) Serialize() ([]byte, error) {
	h := format.STFHeader{
		Flag:         t.flag,
		NextUniqueID: t.nextUniqueID,
		Count:        uint32(len(t.rows)),
	}
	b := format.EncodeSTFHeader(nil, h)
	for i := range t.rows {
		r := &t.rows[i]
		chars := r.chars
		if chars == nil {
			enc, err := encodeUTF16(r.value)
			if err != nil {
				return nil, fmt.Errorf("serialize string table: %q: %w", r.id, err)
			}
			chars = enc
		}
		b = format.EncodeSTFValueRow(b, format.STFValueRow{ID: r.rowID, UseFlag: r.useFlag, Chars: chars})
	}
	for i := range t.rows {
		r := &t.rows[i]
		b = format.EncodeSTFKeyRow(b, format.STFKeyRow{ID: r.rowID, Key: r.id})
	}
	return b, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.rows)
}

// Entries returns the table contents in serialization order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.rows))
	for i, r := range t.rows {
		out[i] = Entry{ID: r.id, Value: r.value}
	}
	return out
}

// Lookup returns the value stored under id.
func (t *Table) Lookup(id string) (string, bool) {
	for i := range t.rows {
		if t.rows[i].id == id {
			return t.rows[i].value, true
		}
	}
	return "", false
}

// Set stores value under id: an existing entry is overwritten in place,
// keeping its position and row id; a new one is appended.
func (t *Table) Set(id, value string) {
	for i := range t.rows {
		if t.rows[i].id == id {
			t.rows[i].value = value
			t.rows[i].chars = nil
			return
		}
	}
	t.rows = append(t.rows, row{
		id:      id,
		value:   value,
		rowID:   t.nextUniqueID,
		useFlag: defaultUseFlag,
	})
	t.nextUniqueID++
}

// AddEntries merges entries into the table with Set semantics, in order.
func (t *Table) AddEntries(entries []Entry) {
	for _, e := range entries {
		t.Set(e.ID, e.Value)
	}
}

func decodeUTF16(chars []byte) (string, error) {
	out, err := utf16le.NewDecoder().Bytes(chars)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func encodeUTF16(s string) ([]byte, error) {
	return utf16le.NewEncoder().Bytes([]byte(s))
}
