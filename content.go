package telegraph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format declares how a content string should be interpreted.
type Format string

const (
	// FormatHTML treats the string as the markup dialect. Default.
	FormatHTML Format = "html"
	// FormatMarkdown rewrites the string to markup before parsing.
	FormatMarkdown Format = "markdown"
)

// Content converts a caller-supplied value into a content tree. A tree
// passes through unchanged; a string or byte slice is converted per
// ContentFromString. Anything else is structural misuse and fails fast.
func Content(value any, format Format) ([]Node, error) {
	switch v := value.(type) {
	case []Node:
		return v, nil
	case string:
		return ContentFromString(v, format)
	case []byte:
		return ContentFromString(string(v), format)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidContent, value)
	}
}

// ContentFromString converts a string into a content tree.
//
// A string that parses as a JSON array is returned as a tree directly,
// bypassing format conversion. This shortcut exists for callers passing a
// previously serialized tree back as text; the flip side is that any
// input which happens to be valid JSON array syntax is taken as a tree
// rather than converted, whatever its declared format.
func ContentFromString(s string, format Format) ([]Node, error) {
	if nodes, ok := sniffJSONTree(s); ok {
		return nodes, nil
	}

	switch format {
	case FormatMarkdown:
		return ParseHTML(MarkdownToHTML(s)), nil
	case FormatHTML, "":
		return ParseHTML(s), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// sniffJSONTree reports whether s is a JSON array and, if so, decodes it
// as a content tree.
func sniffJSONTree(s string) ([]Node, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}
	var nodes []Node
	if err := json.Unmarshal([]byte(trimmed), &nodes); err != nil {
		return nil, false
	}
	return nodes, true
}
