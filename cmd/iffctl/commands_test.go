package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// chunk renders a leaf node for fixtures.
func chunk(tag string, payload []byte) []byte {
	b := append([]byte(tag), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(b[4:], uint32(len(payload)))
	return append(b, payload...)
}

// form renders a container node for fixtures.
func form(name string, children ...[]byte) []byte {
	size := 4
	for _, c := range children {
		size += len(c)
	}
	b := append([]byte("FORM"), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(b[4:], uint32(size))
	b = append(b, name...)
	for _, c := range children {
		b = append(b, c...)
	}
	return b
}

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRunReplace(t *testing.T) {
	src := form("SHOT", chunk("NAME", []byte("shared_armor_vest\x00")))
	in := writeFixture(t, "in.iff", src)
	out := filepath.Join(filepath.Dir(in), "out.iff")

	quiet = true
	defer func() { quiet = false }()

	if err := runReplace(in, out, []string{"armor_vest=armor_vest_mk2"}); err != nil {
		t.Fatalf("runReplace: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(got, []byte("shared_armor_vest_mk2\x00")) {
		t.Fatalf("replacement missing from output: %q", got)
	}
	// The rewritten header must account for the longer payload.
	if rootSize := binary.BigEndian.Uint32(got[4:8]); int(rootSize) != len(got)-8 {
		t.Fatalf("root size %d != payload length %d", rootSize, len(got)-8)
	}
}

func TestRunReplaceBadRule(t *testing.T) {
	in := writeFixture(t, "in.iff", form("SHOT"))
	if err := runReplace(in, in+".out", []string{"missing-separator"}); err == nil {
		t.Fatal("expected error for malformed rule")
	}
}

func TestRunCRCAddAndCheck(t *testing.T) {
	// Empty table: count 0.
	tablePath := writeFixture(t, "crc.bin", []byte{0, 0, 0, 0})

	quiet = true
	defer func() { quiet = false }()

	if err := runCRCAdd(tablePath, []string{"object/a.iff", "object/b.iff", "object/a.iff"}); err != nil {
		t.Fatalf("runCRCAdd: %v", err)
	}
	table, err := readCRC(tablePath)
	if err != nil {
		t.Fatalf("readCRC: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("table has %d entries, want 2", table.Len())
	}
}

func TestRunSTFMerge(t *testing.T) {
	// Empty string table: magic, flag, next id 1, count 0.
	empty := []byte{0xCD, 0xAB, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	tablePath := writeFixture(t, "obj_n.stf", empty)
	entriesPath := writeFixture(t, "entries.txt", []byte("# names\nfoo=Bar\nfoo=Baz\n"))

	quiet = true
	defer func() { quiet = false }()

	if err := runSTFMerge(tablePath, entriesPath); err != nil {
		t.Fatalf("runSTFMerge: %v", err)
	}
	table, err := readSTF(tablePath)
	if err != nil {
		t.Fatalf("readSTF: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("table has %d entries, want 1", table.Len())
	}
	if v, ok := table.Lookup("foo"); !ok || v != "Baz" {
		t.Fatalf("Lookup(foo) = %q, %v", v, ok)
	}
}
