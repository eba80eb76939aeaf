package helpers

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveFile writes content to path, creating parent directories as needed.
func SaveFile(path string, content []byte) error {
	fullPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving path %s: %w", path, err)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("error creating output folder for %s: %w", fullPath, err)
	}

	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("error saving file %s: %w", fullPath, err)
	}

	return nil
}
