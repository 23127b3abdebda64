package telegraph

import (
	"fmt"
	"strings"
)

// Post is a simple page layout: an optional byline and intro followed by
// heading/body sections. The generators are plain string formatting; the
// emitted markup goes through the regular HTML parser, so a Post gets the
// exact same tree shapes as hand-written markup.
type Post struct {
	Byline   string
	Intro    string
	Sections []Section
}

// Section is one heading plus its body markup.
type Section struct {
	Heading string
	Body    string
}

// Markup renders the post as a markup string.
func (p Post) Markup() string {
	var sb strings.Builder
	if p.Byline != "" {
		sb.WriteString(fmt.Sprintf("<p><i>%s</i></p>\n", p.Byline))
	}
	if p.Intro != "" {
		sb.WriteString(fmt.Sprintf("<p>%s</p>\n", p.Intro))
	}
	for _, s := range p.Sections {
		if s.Heading != "" {
			sb.WriteString(fmt.Sprintf("<h3>%s</h3>\n", s.Heading))
		}
		if s.Body != "" {
			sb.WriteString(fmt.Sprintf("<p>%s</p>\n", s.Body))
		}
	}
	return sb.String()
}

// Nodes renders the post and parses it into a content tree.
func (p Post) Nodes() []Node {
	return ParseHTML(p.Markup())
}

// FigureMarkup renders a hosted image with a caption.
func FigureMarkup(src, caption string) string {
	return fmt.Sprintf(`<figure><img src="%s"/><figcaption>%s</figcaption></figure>`, src, caption)
}

// LinkMarkup renders an anchor element.
func LinkMarkup(href, text string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, href, text)
}
