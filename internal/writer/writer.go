// Package writer implements atomic output file writing.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes output files atomically. The data is written to a
// temporary file in the destination directory and renamed over the target
// on success, so a failed conversion never leaves a partial output file.
type Writer struct{}

// New creates a new output writer.
func New() *Writer {
	return &Writer{}
}

// WriteFile writes data to filename atomically.
func (w *Writer) WriteFile(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file in %s: %w", dir, err)
	}
	tmpName := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temporary file %s: %w", tmpName, err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temporary file %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming %s to %s: %w", tmpName, filename, err)
	}
	return nil
}
