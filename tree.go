package telegraph

import "strings"

// frame is an in-progress element on the open-element stack.
type frame struct {
	tag      string
	attrs    Attrs
	children []Node
}

// ParseHTML converts a markup string into a content tree.
//
// Nesting is resolved with an explicit open-element stack and recovery is
// lenient throughout: a close event with no matching open is ignored, and
// any element still open at end of input is closed implicitly, innermost
// first, so every opened element appears in the final tree.
//
// Text runs that consist entirely of whitespace are dropped; every other
// run is kept verbatim. This is the single trimming rule applied to all
// conversion paths, including template-generated markup.
func ParseHTML(markup string) []Node {
	var root []Node
	var stack []frame

	appendNode := func(n Node) {
		if len(stack) == 0 {
			root = append(root, n)
			return
		}
		top := &stack[len(stack)-1]
		top.children = append(top.children, n)
	}

	for _, tok := range tokenize(markup) {
		switch tok.kind {
		case tokenText:
			if strings.TrimSpace(tok.text) == "" {
				continue
			}
			appendNode(Node{Text: tok.text})

		case tokenOpen:
			attrs := parseAttrs(tok.rawAttrs)
			if voidTags[tok.tag] || tok.selfClose {
				appendNode(Node{Tag: tok.tag, Attrs: attrs})
				continue
			}
			stack = append(stack, frame{tag: tok.tag, attrs: attrs})

		case tokenClose:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			appendNode(finalize(top))
		}
	}

	// Unterminated opens receive an implicit close, innermost first.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		appendNode(finalize(top))
	}

	return root
}

// finalize turns a stack frame into a Node, keeping attrs and children
// only when non-empty.
func finalize(f frame) Node {
	n := Node{Tag: f.tag}
	if len(f.attrs) > 0 {
		n.Attrs = f.attrs
	}
	if len(f.children) > 0 {
		n.Children = f.children
	}
	return n
}
