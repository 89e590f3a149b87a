package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource returns the program text at path. An empty path or "-" reads
// stdin instead; name is what error messages should call the source.
func ReadSource(path string, stdin io.Reader) (src string, name string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "<stdin>", fmt.Errorf("read <stdin>: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	fullPath, _, err := GetPathInfo(path)
	if err != nil {
		return "", path, fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fullPath, fmt.Errorf("read %s: %w", fullPath, err)
	}
	return string(data), fullPath, nil
}
