package iff

import "fmt"

// Diagnostic describes one piece of nested corruption the parser recovered
// from by truncating a container's child list.
type Diagnostic struct {
	Offset  int    // byte offset where parsing of the child stopped
	Context string // name of the container whose children were truncated
	Reason  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("offset %#x in %s: %v", d.Offset, d.Context, d.Reason)
}

// diagCollector accumulates recovery diagnostics during a parse. A nil
// collector is a no-op so the plain Parse path carries no overhead.
type diagCollector struct {
	diags []Diagnostic
}

func (dc *diagCollector) record(off int, context string, reason error) {
	if dc == nil {
		return
	}
	dc.diags = append(dc.diags, Diagnostic{Offset: off, Context: context, Reason: reason})
}
