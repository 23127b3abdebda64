// Package assets holds the stylesheets embedded into the CLI binary.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed styles/*.css
var styles embed.FS

// ErrStyleNotFound indicates an unknown style name.
var ErrStyleNotFound = errors.New("style not found")

// DefaultStyleName is the stylesheet used by the preview command when no
// style is requested.
const DefaultStyleName = "preview"

// LoadStyle returns the CSS content of a named embedded style.
func LoadStyle(name string) (string, error) {
	data, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(data), nil
}

// StyleNames lists the embedded styles.
func StyleNames() []string {
	entries, err := styles.ReadDir("styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".css"))
	}
	return names
}
