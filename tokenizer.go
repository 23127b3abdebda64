package telegraph

import (
	"regexp"
	"strings"
)

// Token kinds produced by the markup tokenizer.
type tokenKind int

const (
	tokenText tokenKind = iota
	tokenOpen
	tokenClose
)

// token is a single tokenizer event: an open tag, a close tag, or a text
// run. For open tags, rawAttrs holds the unparsed attribute text and
// selfClose reports an explicit "/>" marker.
type token struct {
	kind      tokenKind
	tag       string
	rawAttrs  string
	text      string
	selfClose bool
}

// attrPattern recognizes name="value" and name='value' pairs. Unquoted or
// otherwise malformed attributes are dropped; this is a deliberate subset,
// not a full attribute grammar.
var attrPattern = regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_:.-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// tokenize scans a markup string into a flat event sequence, alternating
// between tag-like runs and the longest run of characters up to the next
// '<'. Anything between angle brackets that does not parse as a tag falls
// through to text. No entity decoding is performed.
func tokenize(markup string) []token {
	var tokens []token
	i := 0
	for i < len(markup) {
		if markup[i] == '<' {
			if tok, next, ok := scanTag(markup, i); ok {
				tokens = append(tokens, tok)
				i = next
				continue
			}
			// Malformed tag: the '<' and everything up to the next '<'
			// become text.
			end := nextLeftAngle(markup, i+1)
			tokens = appendText(tokens, markup[i:end])
			i = end
			continue
		}
		end := nextLeftAngle(markup, i)
		tokens = appendText(tokens, markup[i:end])
		i = end
	}
	return tokens
}

// scanTag attempts to read a tag starting at markup[start] == '<'.
// It returns the token, the index just past the closing '>', and whether
// the run parsed as a tag at all.
func scanTag(markup string, start int) (token, int, bool) {
	end := strings.IndexByte(markup[start:], '>')
	if end < 0 {
		return token{}, 0, false
	}
	end += start

	inner := markup[start+1 : end]
	closing := false
	if strings.HasPrefix(inner, "/") {
		closing = true
		inner = inner[1:]
	}

	name, rest := splitTagName(inner)
	if name == "" {
		return token{}, 0, false
	}

	if closing {
		// Trailing junk after a closing tag name is tolerated but the
		// name itself must be the whole run.
		if strings.TrimSpace(rest) != "" {
			return token{}, 0, false
		}
		return token{kind: tokenClose, tag: strings.ToLower(name)}, end + 1, true
	}

	return token{
		kind:      tokenOpen,
		tag:       strings.ToLower(name),
		rawAttrs:  rest,
		selfClose: strings.HasSuffix(strings.TrimSpace(rest), "/"),
	}, end + 1, true
}

// splitTagName splits "name attrs..." into the leading tag name and the
// remainder. The name must start with a letter and contain only letters
// and digits.
func splitTagName(s string) (string, string) {
	if s == "" || !isAlpha(s[0]) {
		return "", ""
	}
	i := 1
	for i < len(s) && (isAlpha(s[i]) || isDigit(s[i])) {
		i++
	}
	// The name must end at whitespace, a self-close slash, or the end of
	// the run; anything else is not tag syntax.
	if i < len(s) && s[i] != ' ' && s[i] != '\t' && s[i] != '\n' && s[i] != '/' {
		return "", ""
	}
	return s[:i], s[i:]
}

// parseAttrs extracts quoted name/value pairs from raw attribute text,
// preserving their order of appearance.
func parseAttrs(raw string) Attrs {
	matches := attrPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}
	attrs := make(Attrs, 0, len(matches))
	for _, m := range matches {
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		attrs = append(attrs, Attr{Name: strings.ToLower(m[1]), Value: value})
	}
	return attrs
}

// appendText appends a text event, merging with a preceding text event so
// a malformed tag and its surrounding prose stay one run.
func appendText(tokens []token, text string) []token {
	if text == "" {
		return tokens
	}
	if n := len(tokens); n > 0 && tokens[n-1].kind == tokenText {
		tokens[n-1].text += text
		return tokens
	}
	return append(tokens, token{kind: tokenText, text: text})
}

// nextLeftAngle returns the index of the next '<' at or after from, or
// len(markup).
func nextLeftAngle(markup string, from int) int {
	if idx := strings.IndexByte(markup[from:], '<'); idx >= 0 {
		return from + idx
	}
	return len(markup)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
