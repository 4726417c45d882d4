package main

import (
	"fmt"
	"os"

	"github.com/iffkit/iffkit/pkg/iff"
	"github.com/spf13/cobra"
)

var treeDiag bool

func init() {
	cmd := newTreeCmd()
	cmd.Flags().BoolVar(&treeDiag, "diagnostics", false, "Report recovered corruption")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Display container structure",
		Long: `The tree command prints the FORM/CHUNK structure of a container file.

Example:
  iffctl tree armor_vest.iff
  iffctl tree armor_vest.iff --diagnostics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args[0])
		},
	}
}

type treeNodeJSON struct {
	Tag      string         `json:"tag"`
	FormName string         `json:"formName,omitempty"`
	Bytes    int            `json:"bytes,omitempty"`
	Children []treeNodeJSON `json:"children,omitempty"`
}

func runTree(path string) error {
	printVerbose("Opening container: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	tree, diags, err := iff.ParseDiagnostics(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(toTreeJSON(tree))
	}
	if err := tree.Print(os.Stdout); err != nil {
		return err
	}
	if treeDiag {
		for _, d := range diags {
			printInfo("warning: %s\n", d)
		}
	}
	return nil
}

func toTreeJSON(n *iff.Node) treeNodeJSON {
	out := treeNodeJSON{Tag: n.Tag, FormName: n.FormName}
	if !n.IsForm() {
		out.Bytes = len(n.Data)
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, toTreeJSON(c))
	}
	return out
}
