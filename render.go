package telegraph

import (
	"encoding/json"
	"strings"
)

// NodesToJSON renders a content tree as its wire-format JSON value. This
// is the lossless structural export; text passes through verbatim and
// element shape follows Node.MarshalJSON.
func NodesToJSON(nodes []Node) ([]byte, error) {
	return json.Marshal(nodes)
}

// NodesToHTML renders a content tree as a markup string. Text passes
// through without escaping, void tags render self-closed, and attributes
// keep their insertion order.
func NodesToHTML(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		writeNodeHTML(&sb, n)
	}
	return sb.String()
}

func writeNodeHTML(sb *strings.Builder, n Node) {
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, attr := range n.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}

	if voidTags[n.Tag] {
		sb.WriteString("/>")
		return
	}

	sb.WriteByte('>')
	for _, child := range n.Children {
		writeNodeHTML(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}

// NodesToMarkdown renders a content tree as Markdown via a per-tag
// mapping. Several mappings are deliberately lossy and stay that way:
// ordered and unordered list items both come back as "- " lines, image
// alt text is not recoverable (captions are content nodes, not
// attributes), figure captions are suppressed, and embedded players
// render as a bracketed placeholder naming the tag. Unknown tags emit
// only their children.
func NodesToMarkdown(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		writeNodeMarkdown(&sb, n)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeNodeMarkdown(sb *strings.Builder, n Node) {
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}

	switch n.Tag {
	case "h3":
		sb.WriteString("# ")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("\n\n")
	case "h4":
		sb.WriteString("## ")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("\n\n")
	case "p":
		writeChildrenMarkdown(sb, n)
		sb.WriteString("\n\n")
	case "b", "strong":
		sb.WriteString("**")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("**")
	case "i", "em":
		sb.WriteString("*")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("*")
	case "s", "del", "strike":
		sb.WriteString("~~")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("~~")
	case "u", "ins":
		sb.WriteString("__")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("__")
	case "a":
		href, _ := n.Attrs.Get("href")
		sb.WriteString("[")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("](" + href + ")")
	case "img":
		src, _ := n.Attrs.Get("src")
		sb.WriteString("![image](" + src + ")")
	case "br":
		sb.WriteString("\n")
	case "hr":
		sb.WriteString("---\n\n")
	case "ul", "ol":
		writeChildrenMarkdown(sb, n)
		sb.WriteString("\n")
	case "li":
		sb.WriteString("- ")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("\n")
	case "code":
		sb.WriteString("`")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("`")
	case "pre":
		sb.WriteString("```\n")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("\n```\n\n")
	case "blockquote", "aside":
		sb.WriteString("> ")
		writeChildrenMarkdown(sb, n)
		sb.WriteString("\n\n")
	case "figure":
		for _, child := range n.Children {
			if child.Tag == "figcaption" {
				continue
			}
			writeNodeMarkdown(sb, child)
		}
		sb.WriteString("\n")
	case "video", "iframe":
		src, _ := n.Attrs.Get("src")
		sb.WriteString("[" + n.Tag + "](" + src + ")")
	default:
		writeChildrenMarkdown(sb, n)
	}
}

func writeChildrenMarkdown(sb *strings.Builder, n Node) {
	for _, child := range n.Children {
		writeNodeMarkdown(sb, child)
	}
}
