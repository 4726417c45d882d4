package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadTag indicates four bytes that are not a legal node tag.
	ErrBadTag = errors.New("format: invalid tag")
	// ErrSizeOverrun indicates a declared size that exceeds the remaining buffer.
	ErrSizeOverrun = errors.New("format: declared size exceeds buffer")
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrNoName indicates a property payload with no NUL-terminated name.
	ErrNoName = errors.New("format: property name not terminated")
	// ErrBadForm indicates a container whose form name is not a legal tag.
	ErrBadForm = errors.New("format: invalid form name")
)
