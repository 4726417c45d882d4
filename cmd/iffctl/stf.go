package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/iffkit/iffkit/pkg/stf"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stf",
		Short: "String table operations",
	}
	cmd.AddCommand(newSTFGetCmd(), newSTFSetCmd(), newSTFMergeCmd())
	rootCmd.AddCommand(cmd)
}

func newSTFGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <table> <id>",
		Short: "Look up a string table entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := readSTF(args[0])
			if err != nil {
				return err
			}
			value, ok := table.Lookup(args[1])
			if !ok {
				return fmt.Errorf("no entry %q in %s", args[1], args[0])
			}
			fmt.Fprintln(os.Stdout, value)
			return nil
		},
	}
}

func newSTFSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <table> <id> <value>",
		Short: "Set a string table entry",
		Long: `Sets one entry, overwriting in place when the id already exists, and
writes the table back.

Example:
  iffctl stf set obj_n.stf armor_vest "Composite Armor Vest"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := readSTF(args[0])
			if err != nil {
				return err
			}
			table.Set(args[1], args[2])
			return writeSTF(args[0], table)
		},
	}
}

func newSTFMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <table> <entries-file>",
		Short: "Merge id=value lines into a string table",
		Long: `Reads "id=value" lines from entries-file and merges them: existing ids
are overwritten in place, new ids are appended. Blank lines and lines
starting with # are skipped.

Example:
  iffctl stf merge obj_n.stf new_names.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSTFMerge(args[0], args[1])
		},
	}
}

func runSTFMerge(tablePath, entriesPath string) error {
	table, err := readSTF(tablePath)
	if err != nil {
		return err
	}

	f, err := os.Open(entriesPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", entriesPath, err)
	}
	defer f.Close()

	var entries []stf.Entry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("%s:%d: want id=value, got %q", entriesPath, lineNo, line)
		}
		entries = append(entries, stf.Entry{ID: strings.TrimSpace(id), Value: value})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", entriesPath, err)
	}

	table.AddEntries(entries)
	if err := writeSTF(tablePath, table); err != nil {
		return err
	}
	printInfo("%s: merged %d entries, table now holds %d\n", tablePath, len(entries), table.Len())
	return nil
}

func readSTF(path string) (*stf.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	table, err := stf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}

func writeSTF(path string, table *stf.Table) error {
	b, err := table.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
