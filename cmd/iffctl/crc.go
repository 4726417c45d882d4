package main

import (
	"fmt"
	"os"

	"github.com/iffkit/iffkit/pkg/crctable"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "crc",
		Short: "Path-hash table operations",
	}
	cmd.AddCommand(newCRCAddCmd(), newCRCCheckCmd())
	rootCmd.AddCommand(cmd)
}

func newCRCAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <table> <path>...",
		Short: "Add resource paths to a path-hash table",
		Long: `Hashes each path and inserts the ones not already present, keeping the
table sorted by hash for the runtime's binary search. Paths already in the
table are skipped.

Example:
  iffctl crc add object_crc_table.iff object/tangible/armor_mk2.iff`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCRCAdd(args[0], args[1:])
		},
	}
}

func newCRCCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <table> <path>",
		Short: "Report whether a path is in the table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := readCRC(args[0])
			if err != nil {
				return err
			}
			if !table.Contains(args[1]) {
				return fmt.Errorf("%s: %q not present", args[0], args[1])
			}
			printInfo("%q -> %#08x\n", args[1], crctable.Hash(args[1]))
			return nil
		},
	}
}

func runCRCAdd(tablePath string, paths []string) error {
	table, err := readCRC(tablePath)
	if err != nil {
		return err
	}
	added, err := table.AddEntries(paths)
	if err != nil {
		return err
	}
	if err := os.WriteFile(tablePath, table.Serialize(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tablePath, err)
	}
	printInfo("%s: %d added, %d skipped, %d total\n", tablePath, added, len(paths)-added, table.Len())
	return nil
}

func readCRC(path string) (*crctable.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	table, err := crctable.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}
