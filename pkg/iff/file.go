package iff

import (
	"fmt"

	"github.com/iffkit/iffkit/internal/mmfile"
	"github.com/iffkit/iffkit/internal/writer"
)

// ParseFile maps path into memory and parses it. The mapping is released
// before returning; the tree owns copies of every payload.
func ParseFile(path string) (*Node, error) {
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer m.Close()

	tree, err := Parse(m.Data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return tree, nil
}

// WriteFile serializes the tree and writes it to path atomically.
func WriteFile(path string, n *Node) error {
	b, err := n.Serialize()
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fw := writer.FileWriter{Path: path}
	if err := fw.Write(b); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
