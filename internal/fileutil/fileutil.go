// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// AllocTemp creates an empty temporary file with the given extension in
// dir ("" = system temp) and returns its path. The file is closed before
// returning so an external process can write into it. The caller owns the
// file; nothing here deletes it.
func AllocTemp(dir, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp(dir, "web2pdf-*."+extension)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := tmpFile.Name()

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return path, nil
}

// ValidateExtension checks that the extension is safe for use in temp file
// names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// FileSize returns the file's size in bytes, or 0 if it cannot be stat'd.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0
	}
	return info.Size()
}
