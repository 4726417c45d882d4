/*
Package iff parses and serializes the hierarchical FORM/CHUNK container
format used by the game runtime.

# Quick Start

Parse a file, rename a template reference everywhere, write the result:

	tree, err := iff.ParseFile("armor_vest.iff")
	if err != nil {
	    log.Fatal(err)
	}
	tree.ReplaceInLeaves([]iff.Rule{
	    {Old: []byte("shared_armor_vest"), New: []byte("shared_armor_mk2")},
	})
	err = iff.WriteFile("armor_mk2.iff", tree)

# Round-trip contract

Parsing a well-formed buffer and serializing the resulting tree reproduces
the input bit for bit. Node sizes recorded in the source are kept only as
provenance; every serialize recomputes sizes from current content, so
mutations that change payload lengths can never desynchronize ancestor
headers.

# Corruption recovery

A node with an invalid tag or a size that overruns its parent stops child
consumption at that point: the parent keeps the children parsed so far and
the remainder of its payload is skipped. Only a root that cannot be parsed
at all is reported as an error. Recovered corruption is available as
diagnostics via ParseDiagnostics.
*/
package iff
