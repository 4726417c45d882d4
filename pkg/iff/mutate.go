package iff

import (
	"bytes"
	"fmt"
)

// Rule is one textual substitution applied to leaf payloads.
type Rule struct {
	Old []byte
	New []byte
}

// ReplaceInLeaves applies rules to every leaf payload in the subtree,
// depth-first. Within a leaf each rule is applied left to right and the
// payload is re-scanned until no occurrence remains, then the next rule
// runs; rules never match across leaf boundaries. A rule whose replacement
// contains its own pattern gets a single left-to-right pass, since
// re-scanning such a rule can never reach exhaustion. Headers are
// untouched: sizes are recomputed on the next serialize. Returns the
// number of replacements performed.
func (n *Node) ReplaceInLeaves(rules []Rule) int {
	total := 0
	_ = n.Walk(func(c *Node) error {
		if c.IsForm() {
			return nil
		}
		for _, r := range rules {
			if len(r.Old) == 0 {
				continue
			}
			for {
				count := bytes.Count(c.Data, r.Old)
				if count == 0 {
					break
				}
				c.Data = bytes.ReplaceAll(c.Data, r.Old, r.New)
				total += count
				if bytes.Contains(r.New, r.Old) {
					break
				}
			}
		}
		return nil
	})
	return total
}

// ReplaceAll is the safe substitution protocol over a raw buffer: parse,
// substitute inside leaf payloads only, re-serialize. Replacing text of a
// different length directly in the raw buffer would silently desynchronize
// every ancestor size field; going through the tree makes that impossible.
func ReplaceAll(b []byte, rules []Rule) ([]byte, int, error) {
	tree, err := Parse(b)
	if err != nil {
		return nil, 0, fmt.Errorf("replace: %w", err)
	}
	count := tree.ReplaceInLeaves(rules)
	out, err := tree.Serialize()
	if err != nil {
		return nil, 0, fmt.Errorf("replace: %w", err)
	}
	return out, count, nil
}
