package telegraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Node is one entry in a content tree: either a text leaf or an element.
// A node is a text leaf when Tag is empty; Text then holds the run. An
// element node carries Tag plus optional Attrs and Children.
//
// The JSON form matches the service's wire format: a text leaf marshals as
// a bare JSON string, an element as {"tag": ..., "attrs": ..., "children": ...}
// with attrs and children omitted when empty.
type Node struct {
	Text     string
	Tag      string
	Attrs    Attrs
	Children []Node
}

// TextNode returns a text leaf.
func TextNode(s string) Node {
	return Node{Text: s}
}

// Elem returns an element node with the given children.
func Elem(tag string, children ...Node) Node {
	return Node{Tag: tag, Children: children}
}

// ElemAttrs returns an element node with attributes.
func ElemAttrs(tag string, attrs Attrs, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// IsText reports whether the node is a text leaf.
func (n Node) IsText() bool {
	return n.Tag == ""
}

// MarshalJSON renders the node in the service's wire format.
func (n Node) MarshalJSON() ([]byte, error) {
	if n.IsText() {
		return json.Marshal(n.Text)
	}

	var buf bytes.Buffer
	buf.WriteString(`{"tag":`)
	tag, err := json.Marshal(n.Tag)
	if err != nil {
		return nil, err
	}
	buf.Write(tag)

	if len(n.Attrs) > 0 {
		buf.WriteString(`,"attrs":`)
		attrs, err := json.Marshal(n.Attrs)
		if err != nil {
			return nil, err
		}
		buf.Write(attrs)
	}

	if len(n.Children) > 0 {
		buf.WriteString(`,"children":`)
		children, err := json.Marshal(n.Children)
		if err != nil {
			return nil, err
		}
		buf.Write(children)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the wire format: a JSON string becomes a text leaf,
// an object becomes an element. Any other JSON value (number, bool, null,
// nested array) is carried as a text leaf holding its literal, so a
// previously serialized tree survives a decode/encode cycle item for item.
func (n *Node) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: empty value", ErrInvalidNode)
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidNode, err)
		}
		*n = Node{Text: s}
		return nil
	case '{':
		var elem struct {
			Tag      string `json:"tag"`
			Attrs    Attrs  `json:"attrs"`
			Children []Node `json:"children"`
		}
		if err := json.Unmarshal(trimmed, &elem); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidNode, err)
		}
		if elem.Tag == "" {
			return fmt.Errorf("%w: object without tag", ErrInvalidNode)
		}
		*n = Node{Tag: elem.Tag, Attrs: elem.Attrs, Children: elem.Children}
		return nil
	default:
		*n = Node{Text: string(trimmed)}
		return nil
	}
}

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list. Order follows first insertion and is
// preserved through JSON and markup serialization.
type Attrs []Attr

// Get returns the value for name and whether it is present.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value for name, or appends a new pair.
func (a *Attrs) Set(name, value string) {
	for i, attr := range *a {
		if attr.Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// MarshalJSON renders the attributes as a JSON object in insertion order.
func (a Attrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into an ordered attribute list,
// preserving the object's key order via token-level decoding.
func (a *Attrs) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*a = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("attrs: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attrs: expected object, got %v", tok)
	}

	var attrs Attrs
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("attrs: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("attrs: non-string key %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("attrs %q: %w", key, err)
		}
		attrs = append(attrs, Attr{Name: key, Value: value})
	}
	*a = attrs
	return nil
}

// voidTags never carry children and always render self-closed.
var voidTags = map[string]bool{
	"br":  true,
	"hr":  true,
	"img": true,
}

// allowedTags is the fixed set of element tags the publishing service
// accepts in page content. Conversion itself never filters against this
// list; use DisallowedTags to check a tree before sending it.
var allowedTags = map[string]bool{
	"a": true, "aside": true, "b": true, "blockquote": true, "br": true,
	"code": true, "em": true, "figcaption": true, "figure": true,
	"h3": true, "h4": true, "hr": true, "i": true, "iframe": true,
	"img": true, "li": true, "ol": true, "p": true, "pre": true,
	"s": true, "strong": true, "u": true, "ul": true, "video": true,
}

// AllowedTags returns the tags the service accepts, sorted.
func AllowedTags() []string {
	tags := make([]string, 0, len(allowedTags))
	for tag := range allowedTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// DisallowedTags walks the tree and returns, in document order, every tag
// the service would reject. Duplicates are reported once.
func DisallowedTags(nodes []Node) []string {
	seen := map[string]bool{}
	var out []string
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if !n.IsText() {
				if tag := strings.ToLower(n.Tag); !allowedTags[tag] && !seen[tag] {
					seen[tag] = true
					out = append(out, tag)
				}
				walk(n.Children)
			}
		}
	}
	walk(nodes)
	return out
}
