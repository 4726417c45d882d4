// Package writer exposes sinks for serialized container emission.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes serialized bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// Write writes buf to the configured path via temp file + rename so a
// failed write never leaves a half-written file behind.
func (w *FileWriter) Write(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmp, err := os.CreateTemp(dir, ".iffkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
