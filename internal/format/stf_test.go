package format

import (
	"bytes"
	"errors"
	"testing"
)

func TestSTFHeaderRoundTrip(t *testing.T) {
	h := STFHeader{Flag: 0, NextUniqueID: 7, Count: 3}
	b := EncodeSTFHeader(nil, h)
	if len(b) != STFHeaderSize {
		t.Fatalf("header length = %d, want %d", len(b), STFHeaderSize)
	}
	got, err := DecodeSTFHeader(b)
	if err != nil {
		t.Fatalf("DecodeSTFHeader: %v", err)
	}
	if got != h {
		t.Fatalf("header = %+v, want %+v", got, h)
	}
}

func TestSTFHeaderBadMagic(t *testing.T) {
	b := EncodeSTFHeader(nil, STFHeader{})
	b[0] ^= 0xFF
	_, err := DecodeSTFHeader(b)
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("err = %v, want ErrSignatureMismatch", err)
	}
}

func TestSTFValueRowRoundTrip(t *testing.T) {
	row := STFValueRow{ID: 1, UseFlag: 0xFFFFFFFF, Chars: []byte{'B', 0, 'a', 0, 'r', 0}}
	b := EncodeSTFValueRow(nil, row)
	got, next, err := DecodeSTFValueRow(b, 0)
	if err != nil {
		t.Fatalf("DecodeSTFValueRow: %v", err)
	}
	if next != len(b) {
		t.Fatalf("next = %d, want %d", next, len(b))
	}
	if got.ID != row.ID || got.UseFlag != row.UseFlag || !bytes.Equal(got.Chars, row.Chars) {
		t.Fatalf("row = %+v", got)
	}
}

func TestSTFValueRowTruncatedChars(t *testing.T) {
	row := STFValueRow{ID: 1, Chars: []byte{'B', 0}}
	b := EncodeSTFValueRow(nil, row)
	if _, _, err := DecodeSTFValueRow(b[:len(b)-1], 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestSTFKeyRowRoundTrip(t *testing.T) {
	row := STFKeyRow{ID: 9, Key: "foo"}
	b := EncodeSTFKeyRow(nil, row)
	got, next, err := DecodeSTFKeyRow(b, 0)
	if err != nil {
		t.Fatalf("DecodeSTFKeyRow: %v", err)
	}
	if next != len(b) || got != row {
		t.Fatalf("row = %+v next = %d", got, next)
	}
}
