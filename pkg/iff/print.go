package iff

import (
	"fmt"
	"io"
	"strings"
)

// Print writes an indented listing of the subtree to w, one node per line.
//
//	FORM SHOT
//	  FORM DERV
//	    XXXX  (24 bytes)
func (n *Node) Print(w io.Writer) error {
	return n.printIndent(w, 0)
}

func (n *Node) printIndent(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)
	if n.IsForm() {
		if _, err := fmt.Fprintf(w, "%sFORM %s\n", indent, n.FormName); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := c.printIndent(w, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%s%s  (%d bytes)\n", indent, n.Tag, len(n.Data))
	return err
}

// String returns the Print listing as a string.
func (n *Node) String() string {
	var sb strings.Builder
	_ = n.printIndent(&sb, 0)
	return sb.String()
}
