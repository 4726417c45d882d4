// Package format houses low-level decoders for the IFF container family and
// the flat record formats layered beside it. The goal is to keep the parsing
// focused, allocation-free where possible, and independent from the public
// API so higher-level packages can orchestrate the data in a more ergonomic
// form.
package format

var (
	// FormTag is the four-byte tag that marks a container node. Containers
	// carry a form name and nested child nodes; every other valid tag marks
	// a leaf chunk with an opaque payload.
	FormTag = []byte{'F', 'O', 'R', 'M'}

	// STFSignature is the little-endian magic at the start of a string
	// table file.
	STFSignature = uint32(0xABCD)
)

const (
	// TagSize is the length of every node tag and form name.
	TagSize = 4

	// NodeHeaderSize is the byte length of a node header: a four-byte ASCII
	// tag followed by a big-endian uint32 payload size.
	NodeHeaderSize = 8

	// FormNameSize is the length of the form name that opens a container's
	// payload. It is counted inside the container's declared size.
	FormNameSize = 4

	// STFHeaderSize is the byte length of the string table file header:
	// u32 magic, one flag byte, u32 next unique id, u32 entry count, all
	// little-endian.
	STFHeaderSize = 13

	// CRCHeaderSize is the byte length of the path-hash table header: a
	// single big-endian u32 entry count.
	CRCHeaderSize = 4

	// CRCHashSize is the byte length of one hash in the path-hash table.
	CRCHashSize = 4

	// CRCLengthSize is the byte length of one path-length record in the
	// path-hash table.
	CRCLengthSize = 2

	// CRCMaxPathLen is the longest path a length record can describe: the
	// u16 field counts the path bytes plus the terminating NUL.
	CRCMaxPathLen = 0xFFFF - 1
)

// Property value marker bytes. The first byte after the NUL-terminated
// property name selects the value encoding; 0x01 opens a second dispatch on
// the byte that follows.
const (
	PropMarkerStart  = 0x01
	PropMarkerFlag   = 0x01 // 0x01 0x01: boolean true, or cross-reference when bytes follow
	PropMarkerInt    = 0x20 // 0x01 0x20: four little-endian bytes, int32 or float32
	PropBoolFalse    = 0x00 // lone 0x00: boolean false
	PropNameTerm     = 0x00
	PropNumericWidth = 4
)

// ValidTag reports whether b holds exactly four tag characters. Tags are
// limited to ASCII letters, digits, and space.
func ValidTag(b []byte) bool {
	if len(b) != TagSize {
		return false
	}
	for _, c := range b {
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == ' ':
		default:
			return false
		}
	}
	return true
}
