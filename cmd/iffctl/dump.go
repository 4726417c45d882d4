package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/iffkit/iffkit/pkg/iff"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file> <tag>",
		Short: "Hex-dump the first chunk with the given tag",
		Long: `The dump command prints the payload of the first leaf chunk whose tag
matches, as a hex dump.

Example:
  iffctl dump armor_vest.iff DERV`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], args[1])
		},
	}
}

func runDump(path, tag string) error {
	tree, err := iff.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	chunk := tree.FindChunk(tag)
	if chunk == nil {
		return fmt.Errorf("no chunk %q in %s", tag, path)
	}
	printVerbose("%s: chunk %s at offset %#x, %d bytes\n", path, tag, chunk.SrcOffset, len(chunk.Data))
	fmt.Fprint(os.Stdout, hex.Dump(chunk.Data))
	return nil
}
