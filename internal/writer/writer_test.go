package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.iff")
	w := FileWriter{Path: path}
	if err := w.Write([]byte("payload")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("contents = %q", got)
	}

	// Overwrite goes through the same rename path.
	if err := w.Write([]byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = os.ReadFile(path)
	if !bytes.Equal(got, []byte("v2")) {
		t.Fatalf("contents after overwrite = %q", got)
	}

	// No temp litter.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the output file, found %d entries", len(entries))
	}
}
