package telegraph

import (
	"reflect"
	"testing"
)

func TestParseHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Node
	}{
		{
			name:  "simple paragraph with inline bold",
			input: "<p>Hello <b>world</b>!</p>",
			expected: []Node{
				{Tag: "p", Children: []Node{
					{Text: "Hello "},
					{Tag: "b", Children: []Node{{Text: "world"}}},
					{Text: "!"},
				}},
			},
		},
		{
			name:  "void tag with attrs and no children",
			input: `<img src="x.jpg"/>`,
			expected: []Node{
				{Tag: "img", Attrs: Attrs{{Name: "src", Value: "x.jpg"}}},
			},
		},
		{
			name:     "void tag without self-close marker",
			input:    "<br>",
			expected: []Node{{Tag: "br"}},
		},
		{
			name:  "explicit self-close on non-void tag",
			input: `<div/>after`,
			expected: []Node{
				{Tag: "div"},
				{Text: "after"},
			},
		},
		{
			name:     "stray close tag ignored",
			input:    "</b>text",
			expected: []Node{{Text: "text"}},
		},
		{
			name:  "unterminated tag auto-closed at end of input",
			input: "<p>open",
			expected: []Node{
				{Tag: "p", Children: []Node{{Text: "open"}}},
			},
		},
		{
			name:  "nested unterminated tags close innermost first",
			input: "<blockquote><b>deep",
			expected: []Node{
				{Tag: "blockquote", Children: []Node{
					{Tag: "b", Children: []Node{{Text: "deep"}}},
				}},
			},
		},
		{
			name:  "whitespace-only runs dropped",
			input: "<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>",
			expected: []Node{
				{Tag: "ul", Children: []Node{
					{Tag: "li", Children: []Node{{Text: "a"}}},
					{Tag: "li", Children: []Node{{Text: "b"}}},
				}},
			},
		},
		{
			name:  "attrs omitted when empty, children omitted when empty",
			input: "<p></p>",
			expected: []Node{
				{Tag: "p"},
			},
		},
		{
			name:  "multiple top-level nodes in document order",
			input: "<h3>t</h3><p>a</p><p>b</p>",
			expected: []Node{
				{Tag: "h3", Children: []Node{{Text: "t"}}},
				{Tag: "p", Children: []Node{{Text: "a"}}},
				{Tag: "p", Children: []Node{{Text: "b"}}},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHTML(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseHTML(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

// Unterminated opens must yield exactly the same tree as well-formed
// input, minus nothing: no nodes lost or duplicated.
func TestParseHTMLStackDiscipline(t *testing.T) {
	wellFormed := ParseHTML("<p>a<b>c<i>d</i></b></p>")
	unterminated := ParseHTML("<p>a<b>c<i>d")
	if !reflect.DeepEqual(wellFormed, unterminated) {
		t.Errorf("unterminated input diverged:\nwell-formed:  %+v\nunterminated: %+v",
			wellFormed, unterminated)
	}
}

func TestParseHTMLRoundTrip(t *testing.T) {
	inputs := []string{
		"<p>Hello <b>world</b>!</p>",
		`<figure><img src="x.jpg"/><figcaption>cap</figcaption></figure>`,
		"<ul><li>a</li><li>b</li></ul>",
		`<p>see <a href="https://example.com">docs</a></p>`,
		"<blockquote>quoted</blockquote><hr/><p>after</p>",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree := ParseHTML(input)
			again := ParseHTML(NodesToHTML(tree))
			if !reflect.DeepEqual(tree, again) {
				t.Errorf("round trip diverged:\nfirst:  %+v\nsecond: %+v", tree, again)
			}
		})
	}
}

// Void tags never pick up children, no matter what the input claims.
func TestParseHTMLVoidTagsNeverHaveChildren(t *testing.T) {
	inputs := []string{
		`<img src="a.jpg">text</img>`,
		"<br>text",
		"<hr>text</hr>",
	}
	for _, input := range inputs {
		var walk func(t *testing.T, nodes []Node)
		walk = func(t *testing.T, nodes []Node) {
			for _, n := range nodes {
				if voidTags[n.Tag] && n.Children != nil {
					t.Errorf("ParseHTML(%q): void tag %q has children %+v", input, n.Tag, n.Children)
				}
				walk(t, n.Children)
			}
		}
		walk(t, ParseHTML(input))
	}
}
