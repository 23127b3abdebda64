// Package fileutil provides small file and path helpers for the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownExtension indicates a file whose format cannot be inferred.
var ErrUnknownExtension = errors.New("cannot infer format from extension")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadString reads a whole file as a string.
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// FormatForFile infers a content format name from a file extension:
// "markdown" for .md/.markdown, "html" for .html/.htm, "json" for .json.
func FormatForFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return "markdown", nil
	case ".html", ".htm":
		return "html", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExtension, filepath.Ext(path))
	}
}
