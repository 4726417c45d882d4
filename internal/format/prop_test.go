package format

import (
	"bytes"
	"testing"
)

func TestSplitName(t *testing.T) {
	name, rest, err := SplitName([]byte("power\x00\x01\x20abcd"))
	if err != nil {
		t.Fatalf("SplitName: %v", err)
	}
	if name != "power" || !bytes.Equal(rest, []byte("\x01\x20abcd")) {
		t.Fatalf("name=%q rest=%q", name, rest)
	}
	if _, _, err := SplitName([]byte("unterminated")); err == nil {
		t.Fatal("expected error for missing NUL")
	}
}

func TestDecodeBool(t *testing.T) {
	pv := DecodePropValue([]byte{0x00})
	if pv.Kind != PropKindBool || pv.Bool {
		t.Fatalf("false decode = %+v", pv)
	}
	pv = DecodePropValue([]byte{0x01, 0x01})
	if pv.Kind != PropKindBool || !pv.Bool {
		t.Fatalf("true decode = %+v", pv)
	}
}

func TestDecodeAmbiguousZeroStaysRaw(t *testing.T) {
	in := []byte{0x00, 0x42, 0x43}
	pv := DecodePropValue(in)
	if pv.Kind != PropKindRaw {
		t.Fatalf("kind = %v, want raw", pv.Kind)
	}
	if out := EncodePropValue(nil, pv); !bytes.Equal(out, in) {
		t.Fatalf("raw re-encode = %x, want %x", out, in)
	}
}

func TestDecodeNumeric(t *testing.T) {
	in := []byte{0x01, 0x20, 0x64, 0x00, 0x00, 0x00}
	pv := DecodePropValue(in)
	if pv.Kind != PropKindNumeric {
		t.Fatalf("kind = %v, want numeric", pv.Kind)
	}
	if out := EncodePropValue(nil, pv); !bytes.Equal(out, in) {
		t.Fatalf("re-encode = %x, want %x", out, in)
	}
}

func TestDecodeNumericWrongLengthIsNotNumeric(t *testing.T) {
	// 0x01 0x20 with three trailing bytes is not the numeric form.
	pv := DecodePropValue([]byte{0x01, 0x20, 0x64, 0x00, 0x00})
	if pv.Kind == PropKindNumeric {
		t.Fatal("short numeric payload decoded as numeric")
	}
}

func TestDecodeString(t *testing.T) {
	in := append([]byte{0x01}, "hello world\x00"...)
	pv := DecodePropValue(in)
	if pv.Kind != PropKindString || pv.Str != "hello world" {
		t.Fatalf("decode = %+v", pv)
	}
	if out := EncodePropValue(nil, pv); !bytes.Equal(out, in) {
		t.Fatalf("re-encode = %x, want %x", out, in)
	}
}

func TestDecodeCrossRef(t *testing.T) {
	in := []byte{0x01, 0x01}
	in = append(in, "obj_n\x00"...)
	in = append(in, 0x01)
	in = append(in, "armor_vest\x00"...)
	pv := DecodePropValue(in)
	if pv.Kind != PropKindCrossRef || pv.Table != "obj_n" || pv.Key != "armor_vest" {
		t.Fatalf("decode = %+v", pv)
	}
	if out := EncodePropValue(nil, pv); !bytes.Equal(out, in) {
		t.Fatalf("re-encode = %x, want %x", out, in)
	}
}

func TestDecodeMalformedCrossRefStaysRaw(t *testing.T) {
	// Missing the 0x01 separator between table and key.
	in := append([]byte{0x01, 0x01}, "table\x00key\x00"...)
	pv := DecodePropValue(in)
	if pv.Kind != PropKindRaw {
		t.Fatalf("kind = %v, want raw", pv.Kind)
	}
	if out := EncodePropValue(nil, pv); !bytes.Equal(out, in) {
		t.Fatalf("raw re-encode = %x, want %x", out, in)
	}
}

func TestEncodePropPayload(t *testing.T) {
	pv := PropValue{Kind: PropKindNumeric, Num: [4]byte{0x64, 0, 0, 0}}
	out := EncodePropPayload(nil, "power", pv)
	want := append([]byte("power\x00"), 0x01, 0x20, 0x64, 0x00, 0x00, 0x00)
	if !bytes.Equal(out, want) {
		t.Fatalf("payload = %x, want %x", out, want)
	}
}
