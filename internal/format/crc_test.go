package format

import (
	"errors"
	"hash/crc32"
	"testing"
)

func TestPathHash(t *testing.T) {
	p := "object/tangible/foo.iff"
	if got := PathHash(p); got != crc32.ChecksumIEEE([]byte(p)) {
		t.Fatalf("PathHash = %#x", got)
	}
	if PathHash("a") == PathHash("b") {
		t.Fatal("distinct paths hashed equal")
	}
}

func TestDecodeCRCCount(t *testing.T) {
	// Two entries: fixed region is 4 + 2*(4+2) bytes.
	b := make([]byte, 4+2*6)
	b[3] = 2
	count, err := DecodeCRCCount(b)
	if err != nil {
		t.Fatalf("DecodeCRCCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
	if CRCStringBase(2) != len(b) {
		t.Fatalf("string base = %d, want %d", CRCStringBase(2), len(b))
	}
}

func TestDecodeCRCCountOverrun(t *testing.T) {
	b := make([]byte, 8)
	b[3] = 200
	if _, err := DecodeCRCCount(b); !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}
