// Package filex holds small filesystem helpers shared by the store and the
// CLI.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will contain path, if it does
// not exist yet. Paths without a directory component (including SQLite
// pseudo-paths like ":memory:") are left alone.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadLimited reads the file at path, refusing files larger than max bytes.
func ReadLimited(path string, max int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() > max {
		return nil, fmt.Errorf("%s: file too large (%d bytes, limit %d)", path, fi.Size(), max)
	}
	return io.ReadAll(f)
}
