package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/iffkit/iffkit/pkg/iff"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReplaceCmd())
}

func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <in> <out> <old=new>...",
		Short: "Substitute text inside chunk payloads",
		Long: `The replace command applies text substitutions inside leaf chunk payloads
and writes the re-serialized container to a new path. Container sizes are
recomputed, so replacements may change text length freely.

Example:
  iffctl replace armor_vest.iff armor_mk2.iff shared_armor_vest=shared_armor_mk2`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(args[0], args[1], args[2:])
		},
	}
}

func runReplace(inPath, outPath string, ruleArgs []string) error {
	rules := make([]iff.Rule, 0, len(ruleArgs))
	for _, arg := range ruleArgs {
		old, updated, ok := strings.Cut(arg, "=")
		if !ok || old == "" {
			return fmt.Errorf("invalid rule %q: want old=new", arg)
		}
		rules = append(rules, iff.Rule{Old: []byte(old), New: []byte(updated)})
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}
	out, count, err := iff.ReplaceAll(data, rules)
	if err != nil {
		return fmt.Errorf("failed to replace in %s: %w", inPath, err)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	printInfo("%s: %d replacements -> %s\n", inPath, count, outPath)
	return nil
}
