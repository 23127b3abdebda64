package telegraph

import (
	"regexp"
	"strconv"
	"strings"
)

// Precompiled regex patterns for the Markdown rewriter.
var (
	// Fenced code blocks (triple backticks, optional language info)
	fencedCodePattern = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*\n?(.*?)```")

	// Inline code spans (single backticks)
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")

	// ATX headings; the target format has two heading levels only
	heading1Pattern   = regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)
	headingLowPattern = regexp.MustCompile(`(?m)^#{2,4}[ \t]+(.+)$`)

	// Horizontal rules (three or more hyphens on their own line)
	rulePattern = regexp.MustCompile(`(?m)^-{3,}[ \t]*$`)

	// Images and links; image syntax is a superset of link syntax
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

	// Bold and italic emphasis. Underscore italic is guarded so
	// snake_case_words are left alone; RE2 has no lookarounds, so the
	// guard consumes one boundary character on each side and re-emits it.
	boldStarPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscorePattern = regexp.MustCompile(`__(.+?)__`)
	italicStarPattern     = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnderPattern    = regexp.MustCompile(`(^|[^0-9A-Za-z_])_([^_\n]+)_($|[^0-9A-Za-z_])`)

	// Blockquote lines
	blockquotePattern = regexp.MustCompile(`(?m)^>[ \t]?(.*)$`)

	// List item lines
	bulletItemPattern   = regexp.MustCompile(`^[-*][ \t]+(.*)$`)
	numberedItemPattern = regexp.MustCompile(`^[0-9]+\.[ \t]+(.*)$`)

	// Blank-line runs separating paragraphs
	blankRunPattern = regexp.MustCompile(`\n\s*\n`)
)

// MarkdownToHTML rewrites a Markdown-flavored string into the markup
// dialect understood by ParseHTML.
//
// The passes are ordered and non-commutative: code is extracted first so
// no later pass can rewrite it, images run before links because their
// syntax overlaps, bold runs before italic so double delimiters are not
// consumed twice, and code is restored before paragraph wrapping so a
// restored block counts as a complete element.
func MarkdownToHTML(md string) string {
	text, blocks := ExtractCodeBlocks(md)
	text, spans := ExtractInlineCode(text)
	text = ConvertHeadings(text)
	text = ConvertRules(text)
	text = ConvertImages(text)
	text = ConvertLinks(text)
	text = ConvertEmphasis(text)
	text = ConvertBlockquotes(text)
	text = ConvertBulletLists(text)
	text = ConvertNumberedLists(text)
	text = RestoreCodeBlocks(text, blocks)
	text = RestoreInlineCode(text, spans)
	return WrapParagraphs(text)
}

// codeBlockToken and inlineCodeToken build placeholder markers. The NUL
// delimiters cannot appear in the output of any rewriting pass, so a
// placeholder survives the whole pipeline untouched.
func codeBlockToken(i int) string {
	return "\x00cb" + strconv.Itoa(i) + "\x00"
}

func inlineCodeToken(i int) string {
	return "\x00ic" + strconv.Itoa(i) + "\x00"
}

// ExtractCodeBlocks replaces each fenced code block with a placeholder
// token and returns the block contents in order of appearance.
func ExtractCodeBlocks(content string) (string, []string) {
	var blocks []string
	out := fencedCodePattern.ReplaceAllStringFunc(content, func(match string) string {
		body := fencedCodePattern.FindStringSubmatch(match)[1]
		blocks = append(blocks, strings.TrimSuffix(body, "\n"))
		return codeBlockToken(len(blocks) - 1)
	})
	return out, blocks
}

// ExtractInlineCode replaces each inline code span with a placeholder
// token and returns the span contents in order of appearance.
func ExtractInlineCode(content string) (string, []string) {
	var spans []string
	out := inlineCodePattern.ReplaceAllStringFunc(content, func(match string) string {
		spans = append(spans, inlineCodePattern.FindStringSubmatch(match)[1])
		return inlineCodeToken(len(spans) - 1)
	})
	return out, spans
}

// ConvertHeadings maps heading lines onto the two supported heading tags:
// level 1 becomes <h3>, levels 2 through 4 all collapse onto <h4>. The
// collapse is documented lossy behavior of the target format.
func ConvertHeadings(content string) string {
	content = heading1Pattern.ReplaceAllString(content, "<h3>$1</h3>")
	return headingLowPattern.ReplaceAllString(content, "<h4>$1</h4>")
}

// ConvertRules maps lines of three or more hyphens to a rule element.
func ConvertRules(content string) string {
	return rulePattern.ReplaceAllString(content, "<hr/>")
}

// ConvertImages maps ![alt](src) to a captioned figure. Must run before
// ConvertLinks: the two syntaxes share bracket/paren structure and the
// image form is the superset.
func ConvertImages(content string) string {
	return imagePattern.ReplaceAllString(content,
		`<figure><img src="$2"/><figcaption>$1</figcaption></figure>`)
}

// ConvertLinks maps [text](url) to an anchor element.
func ConvertLinks(content string) string {
	return linkPattern.ReplaceAllString(content, `<a href="$2">$1</a>`)
}

// ConvertEmphasis maps bold and italic delimiters to their inline tags.
// Bold runs first for each delimiter character so ** and __ are not
// half-consumed by the italic patterns.
func ConvertEmphasis(content string) string {
	content = boldStarPattern.ReplaceAllString(content, "<b>$1</b>")
	content = boldUnderscorePattern.ReplaceAllString(content, "<b>$1</b>")
	content = italicStarPattern.ReplaceAllString(content, "<i>$1</i>")
	return italicUnderPattern.ReplaceAllString(content, "${1}<i>$2</i>${3}")
}

// ConvertBlockquotes maps each "> text" line to its own blockquote
// element; consecutive quote lines are not merged.
func ConvertBlockquotes(content string) string {
	return blockquotePattern.ReplaceAllString(content, "<blockquote>$1</blockquote>")
}

// ConvertBulletLists accumulates consecutive "-"/"*" lines and flushes
// each run as a single unordered list element.
func ConvertBulletLists(content string) string {
	return convertListBlocks(content, bulletItemPattern, "ul")
}

// ConvertNumberedLists accumulates consecutive "N." lines and flushes
// each run as a single ordered list element. It runs as a second scan
// over the bullet pass output, so a block mixing the two marker styles
// splits into separate lists at the boundary.
func ConvertNumberedLists(content string) string {
	return convertListBlocks(content, numberedItemPattern, "ol")
}

// convertListBlocks is the shared line scan behind both list passes: item
// lines accumulate into a buffer and the first non-item line (or end of
// input) flushes the buffer as one list element.
func convertListBlocks(content string, itemPattern *regexp.Regexp, listTag string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	var items []string

	flush := func() {
		if len(items) == 0 {
			return
		}
		var sb strings.Builder
		sb.WriteString("<" + listTag + ">")
		for _, item := range items {
			sb.WriteString("<li>" + item + "</li>")
		}
		sb.WriteString("</" + listTag + ">")
		out = append(out, sb.String())
		items = nil
	}

	for _, line := range lines {
		if m := itemPattern.FindStringSubmatch(line); m != nil {
			items = append(items, m[1])
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()

	return strings.Join(out, "\n")
}

// RestoreCodeBlocks replaces code-block placeholders with preformatted
// elements. Restoration happens after every text-transforming pass so the
// raw code text is never exposed to Markdown interpretation.
func RestoreCodeBlocks(content string, blocks []string) string {
	for i, block := range blocks {
		content = strings.Replace(content, codeBlockToken(i), "<pre>"+block+"</pre>", 1)
	}
	return content
}

// RestoreInlineCode replaces inline-code placeholders with code elements.
func RestoreInlineCode(content string, spans []string) string {
	for i, span := range spans {
		content = strings.Replace(content, inlineCodeToken(i), "<code>"+span+"</code>", 1)
	}
	return content
}

// WrapParagraphs splits the text on blank-line runs and wraps every chunk
// that is not already a complete markup element in a paragraph element.
// Empty chunks are dropped.
func WrapParagraphs(content string) string {
	chunks := blankRunPattern.Split(content, -1)
	out := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if strings.HasPrefix(chunk, "<") && strings.HasSuffix(chunk, ">") {
			out = append(out, chunk)
			continue
		}
		out = append(out, "<p>"+chunk+"</p>")
	}
	return strings.Join(out, "\n")
}
