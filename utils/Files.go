package utils

import (
	"fmt"
	"os"
)

// IsRegularFile reports whether path currently exists and is a regular file.
// Symlinks are followed.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func DeleteFileIfExists(path string) error {
	// Check if the file exists
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to check if file exists at path %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("path %s is a directory, not a file", path)
	}

	err = os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to delete file at path %s: %w", path, err)
	}

	return nil
}
