package content

import (
	"regexp"
	"strings"
)

// italicPattern matches *text* where text contains no asterisks. Leftover
// double markers never match: the character after the opening star would be
// another star.
var italicPattern = regexp.MustCompile(`\*([^*]+)\*`)

// ParseSpans splits text into emphasis spans. **bold** and *italic* markers
// are extracted; unmatched or overlapping markers are left literal, so
// malformed emphasis degrades to plain text instead of failing.
func ParseSpans(text string) []Span {
	var spans []Span
	rest := text

	for {
		open := strings.Index(rest, "**")
		if open == -1 {
			spans = appendItalicSpans(spans, rest, false)
			break
		}

		closing := strings.Index(rest[open+2:], "**")
		if closing == -1 {
			// Unmatched opener: everything from here on is literal except
			// single-star italics.
			spans = appendItalicSpans(spans, rest, false)
			break
		}

		inner := rest[open+2 : open+2+closing]
		if inner == "" {
			// "****" carries no content; treat the markers literally.
			spans = appendItalicSpans(spans, rest[:open+4], false)
			rest = rest[open+4:]
			continue
		}

		spans = appendItalicSpans(spans, rest[:open], false)
		spans = appendItalicSpans(spans, inner, true)
		rest = rest[open+4+closing:]
	}

	return spans
}

// appendItalicSpans splits text on *italic* runs and appends the resulting
// spans with the given bold flag.
func appendItalicSpans(spans []Span, text string, bold bool) []Span {
	if text == "" {
		return spans
	}

	matches := italicPattern.FindAllStringSubmatchIndex(text, -1)
	pos := 0
	for _, m := range matches {
		if m[0] > pos {
			spans = append(spans, Span{Text: text[pos:m[0]], Bold: bold})
		}
		spans = append(spans, Span{Text: text[m[2]:m[3]], Bold: bold, Italic: true})
		pos = m[1]
	}
	if pos < len(text) {
		spans = append(spans, Span{Text: text[pos:], Bold: bold})
	}
	return spans
}

// PlainText flattens spans back to their unstyled text.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
