package buf

import "testing"

func TestU32BE(t *testing.T) {
	b := []byte{0x00, 0x00, 0x01, 0x04}
	if got := U32BE(b); got != 0x104 {
		t.Fatalf("U32BE = %#x, want 0x104", got)
	}
	if got := U32BE(b[:3]); got != 0 {
		t.Fatalf("short U32BE = %#x, want 0", got)
	}
}

func TestU32LE(t *testing.T) {
	b := []byte{0x64, 0x00, 0x00, 0x00}
	if got := U32LE(b); got != 100 {
		t.Fatalf("U32LE = %d, want 100", got)
	}
	if got := U32LE(b[:2]); got != 0 {
		t.Fatalf("short U32LE = %d, want 0", got)
	}
}

func TestPutRoundTrip(t *testing.T) {
	b := PutU32BE(nil, 0xDEADBEEF)
	if got := U32BE(b); got != 0xDEADBEEF {
		t.Fatalf("BE round trip = %#x", got)
	}
	b = PutF32LE(nil, 1.5)
	if got := F32LE(b); got != 1.5 {
		t.Fatalf("F32 round trip = %v", got)
	}
	b = PutI32LE(nil, -7)
	if got := I32LE(b); got != -7 {
		t.Fatalf("I32 round trip = %d", got)
	}
}
