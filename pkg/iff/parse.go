package iff

import (
	"bytes"
	"fmt"

	"github.com/iffkit/iffkit/internal/buf"
	"github.com/iffkit/iffkit/internal/format"
)

// Parse reads the node tree that starts at the beginning of b. It fails
// only when the root node itself cannot be parsed; corruption below the
// root truncates the affected container's child list and parsing continues
// with whatever was collected.
func Parse(b []byte) (*Node, error) {
	n, _, err := parseNode(b, 0, len(b), nil, "root")
	if err != nil {
		return nil, fmt.Errorf("parse root: %w", err)
	}
	return n, nil
}

// ParseDiagnostics is Parse with the recovery diagnostics collected along
// the way. The diagnostics are empty for a clean buffer.
func ParseDiagnostics(b []byte) (*Node, []Diagnostic, error) {
	dc := &diagCollector{}
	n, _, err := parseNode(b, 0, len(b), dc, "root")
	if err != nil {
		return nil, dc.diags, fmt.Errorf("parse root: %w", err)
	}
	return n, dc.diags, nil
}

// parseNode parses one node at pos, bounded by end (exclusive). It returns
// the node and the position just past the node's declared payload. A
// non-nil error means the node did not parse at all; the failure is also
// recorded against the parent named by context.
func parseNode(b []byte, pos, end int, dc *diagCollector, context string) (*Node, int, error) {
	h, err := format.DecodeNodeHeader(b[:end], pos)
	if err != nil {
		dc.record(pos, context, err)
		return nil, 0, err
	}
	payloadEnd, ok := buf.AddOverflowSafe(pos+format.NodeHeaderSize, int(h.Size))
	if !ok || payloadEnd > end {
		err := fmt.Errorf("%s size %d: %w", h.TagString(), h.Size, format.ErrSizeOverrun)
		dc.record(pos, context, err)
		return nil, 0, err
	}

	n := &Node{
		Tag:       h.TagString(),
		SrcOffset: pos,
		SrcSize:   h.Size,
	}

	if !h.IsForm() {
		// Leaf payload is taken verbatim: exactly Size bytes, no padding
		// skipped for odd sizes.
		n.Data = bytes.Clone(b[pos+format.NodeHeaderSize : payloadEnd])
		return n, payloadEnd, nil
	}

	if h.Size < format.FormNameSize {
		err := fmt.Errorf("form size %d: %w", h.Size, format.ErrBadForm)
		dc.record(pos, context, err)
		return nil, 0, err
	}
	nameStart := pos + format.NodeHeaderSize
	name := b[nameStart : nameStart+format.FormNameSize]
	if !format.ValidTag(name) {
		err := fmt.Errorf("form name %q: %w", name, format.ErrBadForm)
		dc.record(pos, context, err)
		return nil, 0, err
	}
	n.FormName = string(name)

	// Children occupy Size-4 bytes after the form name. A child that fails
	// to parse stops consumption; the children collected so far are kept
	// and the position snaps to the container's computed end regardless.
	cur := nameStart + format.FormNameSize
	for cur < payloadEnd {
		child, next, err := parseNode(b, cur, payloadEnd, dc, n.FormName)
		if err != nil {
			break
		}
		n.Children = append(n.Children, child)
		cur = next
	}
	return n, payloadEnd, nil
}
