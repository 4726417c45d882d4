package iff

import (
	"fmt"

	"github.com/iffkit/iffkit/internal/format"
)

// PayloadSize returns the node's serialized payload size, recomputed from
// current content. For a container this is the form name plus every child's
// full serialized size including its header; for a leaf it is the payload
// length exactly.
func (n *Node) PayloadSize() int {
	if !n.IsForm() {
		return len(n.Data)
	}
	size := format.FormNameSize
	for _, c := range n.Children {
		size += format.NodeHeaderSize + c.PayloadSize()
	}
	return size
}

// SerializedSize returns the full on-disk size of the node, header included.
func (n *Node) SerializedSize() int {
	return format.NodeHeaderSize + n.PayloadSize()
}

// Serialize renders the subtree rooted at n to bytes. Sizes stored during
// parse are ignored; every header is freshly computed, so Serialize is the
// exact inverse of Parse for any tree Parse produced.
func (n *Node) Serialize() ([]byte, error) {
	if err := n.checkSerializable(); err != nil {
		return nil, err
	}
	return n.appendTo(make([]byte, 0, n.SerializedSize())), nil
}

// AppendTo appends the serialized subtree to dst and returns the extended
// slice.
func (n *Node) AppendTo(dst []byte) ([]byte, error) {
	if err := n.checkSerializable(); err != nil {
		return nil, err
	}
	return n.appendTo(dst), nil
}

func (n *Node) appendTo(dst []byte) []byte {
	dst = format.EncodeNodeHeader(dst, n.Tag, uint32(n.PayloadSize()))
	if !n.IsForm() {
		return append(dst, n.Data...)
	}
	dst = append(dst, n.FormName...)
	for _, c := range n.Children {
		dst = c.appendTo(dst)
	}
	return dst
}

// checkSerializable rejects hand-built nodes the wire format cannot
// represent. Trees produced by Parse always pass.
func (n *Node) checkSerializable() error {
	return n.Walk(func(c *Node) error {
		if !c.valid() {
			return fmt.Errorf("node %q form %q: %w", c.Tag, c.FormName, format.ErrBadTag)
		}
		return nil
	})
}
