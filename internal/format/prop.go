package format

import (
	"bytes"
	"fmt"
)

// PropKind identifies which wire encoding a property value uses. The numeric
// encoding backs both int32 and float32; the four bytes alone cannot tell the
// two apart, so higher layers carry the declared type separately.
type PropKind int

const (
	PropKindRaw PropKind = iota
	PropKindBool
	PropKindNumeric
	PropKindString
	PropKindCrossRef
)

// PropValue is the decoded wire form of a property value. Raw always holds
// the original value bytes so opaque encodings survive a round trip
// untouched.
type PropValue struct {
	Kind  PropKind
	Bool  bool
	Num   [PropNumericWidth]byte // little-endian numeric payload
	Str   string
	Table string // cross-reference table name
	Key   string // cross-reference key
	Raw   []byte
}

// SplitName splits a property payload into its NUL-terminated name and the
// value bytes that follow.
func SplitName(payload []byte) (string, []byte, error) {
	i := bytes.IndexByte(payload, PropNameTerm)
	if i < 0 {
		return "", nil, fmt.Errorf("property payload: %w", ErrNoName)
	}
	return string(payload[:i]), payload[i+1:], nil
}

// DecodePropValue interprets the value bytes that follow a property name.
// It never fails: any byte sequence the grammar does not cover comes back as
// PropKindRaw with the bytes preserved verbatim.
func DecodePropValue(v []byte) PropValue {
	pv := PropValue{Kind: PropKindRaw, Raw: v}
	if len(v) == 0 {
		return pv
	}
	switch v[0] {
	case PropBoolFalse:
		// A lone 0x00 is boolean false. 0x00 with trailing bytes is a
		// legacy form with no agreed reading; keep it opaque.
		if len(v) == 1 {
			pv.Kind = PropKindBool
			pv.Bool = false
		}
		return pv
	case PropMarkerStart:
		if len(v) >= 2 && v[1] == PropMarkerFlag {
			if len(v) == 2 {
				pv.Kind = PropKindBool
				pv.Bool = true
				return pv
			}
			if table, key, ok := splitCrossRef(v[2:]); ok {
				pv.Kind = PropKindCrossRef
				pv.Table = table
				pv.Key = key
			}
			return pv
		}
		if len(v) == 2+PropNumericWidth && v[1] == PropMarkerInt {
			pv.Kind = PropKindNumeric
			copy(pv.Num[:], v[2:])
			return pv
		}
		if s, ok := propString(v[1:]); ok {
			pv.Kind = PropKindString
			pv.Str = s
		}
		return pv
	default:
		return pv
	}
}

// splitCrossRef parses "table\x00" 0x01 "key\x00" and requires the bytes to
// be consumed exactly.
func splitCrossRef(v []byte) (string, string, bool) {
	i := bytes.IndexByte(v, PropNameTerm)
	if i < 0 || i+1 >= len(v) || v[i+1] != PropMarkerStart {
		return "", "", false
	}
	rest := v[i+2:]
	j := bytes.IndexByte(rest, PropNameTerm)
	if j < 0 || j != len(rest)-1 {
		return "", "", false
	}
	return string(v[:i]), string(rest[:j]), true
}

// propString accepts printable bytes followed by a single terminating NUL.
func propString(v []byte) (string, bool) {
	if len(v) == 0 || v[len(v)-1] != PropNameTerm {
		return "", false
	}
	body := v[:len(v)-1]
	for _, c := range body {
		if c < 0x20 || c == 0x7F {
			return "", false
		}
	}
	return string(body), true
}

// EncodePropValue appends the wire form of pv to dst. Raw values re-emit
// their stored bytes rather than re-deriving an encoding.
func EncodePropValue(dst []byte, pv PropValue) []byte {
	switch pv.Kind {
	case PropKindBool:
		if pv.Bool {
			return append(dst, PropMarkerStart, PropMarkerFlag)
		}
		return append(dst, PropBoolFalse)
	case PropKindNumeric:
		dst = append(dst, PropMarkerStart, PropMarkerInt)
		return append(dst, pv.Num[:]...)
	case PropKindString:
		dst = append(dst, PropMarkerStart)
		dst = append(dst, pv.Str...)
		return append(dst, PropNameTerm)
	case PropKindCrossRef:
		dst = append(dst, PropMarkerStart, PropMarkerFlag)
		dst = append(dst, pv.Table...)
		dst = append(dst, PropNameTerm, PropMarkerStart)
		dst = append(dst, pv.Key...)
		return append(dst, PropNameTerm)
	default:
		return append(dst, pv.Raw...)
	}
}

// EncodePropPayload appends a full property payload: NUL-terminated name,
// then the encoded value.
func EncodePropPayload(dst []byte, name string, pv PropValue) []byte {
	dst = append(dst, name...)
	dst = append(dst, PropNameTerm)
	return EncodePropValue(dst, pv)
}
