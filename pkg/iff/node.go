package iff

import (
	"bytes"

	"github.com/iffkit/iffkit/internal/format"
)

// FormTag is the tag carried by every container node.
const FormTag = "FORM"

// Node is one node of the container tree: either a container (Tag "FORM",
// a form name, and ordered children) or a leaf (any other tag and an opaque
// payload). A node owns its children and its payload exclusively; the tree
// is strict, with no shared or back references.
//
// SrcOffset and SrcSize record where the node came from in the source
// buffer. They are provenance only: serialization never trusts them and
// always recomputes sizes from current content.
type Node struct {
	Tag      string
	FormName string  // containers only
	Children []*Node // containers only
	Data     []byte  // leaves only

	SrcOffset int
	SrcSize   uint32
}

// NewForm returns an empty container node.
func NewForm(formName string) *Node {
	return &Node{Tag: FormTag, FormName: formName}
}

// NewChunk returns a leaf node owning a copy of data.
func NewChunk(tag string, data []byte) *Node {
	return &Node{Tag: tag, Data: bytes.Clone(data)}
}

// IsForm reports whether the node is a container.
func (n *Node) IsForm() bool {
	return n.Tag == FormTag
}

// AddChild appends child to a container's child list.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// RemoveChild removes the i'th child, preserving sibling order. It is a
// no-op for an out-of-range index.
func (n *Node) RemoveChild(i int) {
	if i < 0 || i >= len(n.Children) {
		return
	}
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
}

// Walk visits the subtree rooted at n depth-first, parents before children.
// A non-nil error from fn stops the walk and is returned.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// FindForm returns the first container in depth-first order whose form name
// matches, or nil.
func (n *Node) FindForm(formName string) *Node {
	var found *Node
	_ = n.Walk(func(c *Node) error {
		if found == nil && c.IsForm() && c.FormName == formName {
			found = c
		}
		return nil
	})
	return found
}

// FindChunk returns the first leaf in depth-first order whose tag matches,
// or nil.
func (n *Node) FindChunk(tag string) *Node {
	var found *Node
	_ = n.Walk(func(c *Node) error {
		if found == nil && !c.IsForm() && c.Tag == tag {
			found = c
		}
		return nil
	})
	return found
}

// Name returns the identifier a reader would use for the node: the form
// name for containers, the tag for leaves.
func (n *Node) Name() string {
	if n.IsForm() {
		return n.FormName
	}
	return n.Tag
}

// valid reports whether the node could be serialized and reparsed. It backs
// the codec's guarantee that any node it emits is parseable.
func (n *Node) valid() bool {
	if !format.ValidTag([]byte(n.Tag)) {
		return false
	}
	if n.IsForm() && !format.ValidTag([]byte(n.FormName)) {
		return false
	}
	return true
}
