// Package prop decodes and encodes named-property records stored in leaf
// chunk payloads. A property is a NUL-terminated name followed by a
// marker-byte value encoding; encodings the grammar does not cover are kept
// as raw bytes and re-emitted verbatim.
package prop

import (
	"fmt"

	"github.com/iffkit/iffkit/internal/buf"
	"github.com/iffkit/iffkit/internal/format"
	"github.com/iffkit/iffkit/pkg/iff"
)

// Type is the declared type of a property value. Int32 and Float32 share a
// wire encoding; the four payload bytes cannot tell them apart, so the type
// travels with the property instead of being inferred from content.
type Type int

const (
	Raw Type = iota
	Bool
	Int32
	Float32
	String
	CrossRef
)

func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case String:
		return "string"
	case CrossRef:
		return "crossref"
	default:
		return "raw"
	}
}

// Property is the decoded interpretation of one property payload. The
// original value bytes are always retained so Raw properties round-trip
// unchanged.
type Property struct {
	Name string
	Type Type

	boolVal bool
	num     [4]byte
	str     string
	table   string
	key     string
	raw     []byte
}

// Bool returns the boolean value. Valid only for Type Bool.
func (p Property) Bool() bool { return p.boolVal }

// Int32 returns the numeric value read as a little-endian int32.
func (p Property) Int32() int32 { return buf.I32LE(p.num[:]) }

// Float32 returns the numeric value read as a little-endian float32.
func (p Property) Float32() float32 { return buf.F32LE(p.num[:]) }

// Str returns the text value. Valid only for Type String.
func (p Property) Str() string { return p.str }

// CrossRef returns the external table name and key. Valid only for Type
// CrossRef.
func (p Property) CrossRef() (table, key string) { return p.table, p.key }

// Raw returns the originally stored value bytes.
func (p Property) Raw() []byte { return p.raw }

// Decode interprets payload as a property record. Numeric values decode
// with Type Int32; use DecodeTyped when the intended type is known.
func Decode(payload []byte) (Property, error) {
	return DecodeTyped(payload, Int32)
}

// DecodeTyped is Decode with the declared type for the ambiguous numeric
// encoding: numeric declares Float32 only when the caller says so. The
// declared type is consulted for nothing else; the wire bytes select every
// other interpretation.
func DecodeTyped(payload []byte, numeric Type) (Property, error) {
	name, value, err := format.SplitName(payload)
	if err != nil {
		return Property{}, fmt.Errorf("decode property: %w", err)
	}
	pv := format.DecodePropValue(value)
	p := Property{Name: name, raw: pv.Raw}
	switch pv.Kind {
	case format.PropKindBool:
		p.Type = Bool
		p.boolVal = pv.Bool
	case format.PropKindNumeric:
		p.Type = Int32
		if numeric == Float32 {
			p.Type = Float32
		}
		p.num = pv.Num
	case format.PropKindString:
		p.Type = String
		p.str = pv.Str
	case format.PropKindCrossRef:
		p.Type = CrossRef
		p.table = pv.Table
		p.key = pv.Key
	default:
		p.Type = Raw
	}
	return p, nil
}

// Encode renders the property payload: NUL-terminated name, then the wire
// form of the value. Raw properties re-emit their stored bytes rather than
// re-deriving an encoding, guaranteeing fidelity for forms the codec does
// not model.
func Encode(p Property) []byte {
	return format.EncodePropPayload(nil, p.Name, p.wireValue())
}

func (p Property) wireValue() format.PropValue {
	switch p.Type {
	case Bool:
		return format.PropValue{Kind: format.PropKindBool, Bool: p.boolVal}
	case Int32, Float32:
		return format.PropValue{Kind: format.PropKindNumeric, Num: p.num}
	case String:
		return format.PropValue{Kind: format.PropKindString, Str: p.str}
	case CrossRef:
		return format.PropValue{Kind: format.PropKindCrossRef, Table: p.table, Key: p.key}
	default:
		return format.PropValue{Kind: format.PropKindRaw, Raw: p.raw}
	}
}

// DecodeChunk decodes the payload of a leaf node. The codec accepts any
// leaf; which tags hold property records is the caller's policy.
func DecodeChunk(n *iff.Node) (Property, error) {
	if n.IsForm() {
		return Property{}, fmt.Errorf("decode property: %q is a container", n.FormName)
	}
	return Decode(n.Data)
}

// EncodeToChunk renders the property into a new leaf with the given tag.
func EncodeToChunk(tag string, p Property) *iff.Node {
	return iff.NewChunk(tag, Encode(p))
}

// NewBool builds a boolean property.
func NewBool(name string, v bool) Property {
	return Property{Name: name, Type: Bool, boolVal: v}
}

// NewInt32 builds an int32 property.
func NewInt32(name string, v int32) Property {
	p := Property{Name: name, Type: Int32}
	copy(p.num[:], buf.PutI32LE(nil, v))
	return p
}

// NewFloat32 builds a float32 property.
func NewFloat32(name string, v float32) Property {
	p := Property{Name: name, Type: Float32}
	copy(p.num[:], buf.PutF32LE(nil, v))
	return p
}

// NewString builds a text property.
func NewString(name, v string) Property {
	return Property{Name: name, Type: String, str: v}
}

// NewCrossRef builds a cross-reference property pointing at key in the
// external string table named table.
func NewCrossRef(name, table, key string) Property {
	return Property{Name: name, Type: CrossRef, table: table, key: key}
}
