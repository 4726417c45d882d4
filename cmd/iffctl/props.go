package main

import (
	"fmt"
	"os"

	"github.com/iffkit/iffkit/pkg/iff"
	"github.com/iffkit/iffkit/pkg/prop"
	"github.com/spf13/cobra"
)

var (
	propsTag    string
	propsFloats []string
)

func init() {
	cmd := newPropsCmd()
	cmd.Flags().StringVar(&propsTag, "tag", "XXXX", "Chunk tag holding property records")
	cmd.Flags().
		StringSliceVar(&propsFloats, "float", nil, "Property names whose numeric value is a float")
	rootCmd.AddCommand(cmd)
}

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props <file>",
		Short: "Decode property chunks",
		Long: `The props command decodes every property chunk in a container and prints
name, type, and value. The numeric wire encoding backs both int32 and
float32; use --float to name the properties that should read as floats.

Example:
  iffctl props armor_vest.iff
  iffctl props creature.iff --float scale --float speed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps(args[0])
		},
	}
}

type propJSON struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

func runProps(path string) error {
	tree, err := iff.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	floats := make(map[string]bool, len(propsFloats))
	for _, name := range propsFloats {
		floats[name] = true
	}

	var out []propJSON
	err = tree.Walk(func(n *iff.Node) error {
		if n.IsForm() || n.Tag != propsTag {
			return nil
		}
		p, derr := prop.DecodeChunk(n)
		if derr != nil {
			printVerbose("skipping chunk at %#x: %v\n", n.SrcOffset, derr)
			return nil
		}
		if floats[p.Name] && p.Type == prop.Int32 {
			p, derr = prop.DecodeTyped(n.Data, prop.Float32)
			if derr != nil {
				return derr
			}
		}
		out = append(out, propJSON{Name: p.Name, Type: p.Type.String(), Value: formatPropValue(p)})
		return nil
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(out)
	}
	for _, p := range out {
		fmt.Fprintf(os.Stdout, "%-24s %-9s %s\n", p.Name, p.Type, p.Value)
	}
	return nil
}

func formatPropValue(p prop.Property) string {
	switch p.Type {
	case prop.Bool:
		return fmt.Sprintf("%v", p.Bool())
	case prop.Int32:
		return fmt.Sprintf("%d", p.Int32())
	case prop.Float32:
		return fmt.Sprintf("%g", p.Float32())
	case prop.String:
		return p.Str()
	case prop.CrossRef:
		table, key := p.CrossRef()
		return fmt.Sprintf("%s:%s", table, key)
	default:
		return fmt.Sprintf("%d raw bytes", len(p.Raw()))
	}
}
