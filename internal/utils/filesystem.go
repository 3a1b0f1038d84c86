package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathExists reports whether path names an existing file or directory.
// An empty path never exists.
func PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// EnsureParentDir creates any missing parent directory of path.
// A bare file name has no parent to create.
func EnsureParentDir(path string) error {
	parent := filepath.Dir(path)
	if parent == "." || parent == "" || PathExists(parent) {
		return nil
	}
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", parent, err)
	}
	return nil
}
