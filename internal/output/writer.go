package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer stores a compiled object script.
type Writer interface {
	Write(path string, data []byte) error
}

// FileWriter replaces the destination atomically: the script is written to a
// temporary file in the same directory, synced and renamed over the target.
// A failed write leaves any previous file untouched.
type FileWriter struct {
	// Perm is the mode of new files. Zero means 0644.
	Perm os.FileMode
	// MkdirAll creates missing parent directories.
	MkdirAll bool
}

func (w *FileWriter) Write(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if w.MkdirAll {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	perm := w.Perm
	if perm == 0 {
		perm = 0644
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
