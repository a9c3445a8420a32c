package content

import (
	"regexp"
	"strings"
)

// Precompiled line patterns. Rules are checked in priority order:
// heading, list item, reserved-label callout, definition callout, paragraph.
var (
	// Line ending normalization.
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// "# Heading" through "#### Heading"; deeper nesting clamps to level 4.
	headingPattern = regexp.MustCompile(`^(#+)\s+(.*)$`)

	// "- item" and "1. item".
	unorderedItemPattern = regexp.MustCompile(`^- (.*)$`)
	orderedItemPattern   = regexp.MustCompile(`^\d+\.\s+(.*)$`)

	// "**IMPORTANT:** body" / "**NOTICE:** body".
	labelCalloutPattern = regexp.MustCompile(`^\*\*(IMPORTANT|NOTICE):\*\*\s*(.*)$`)

	// "**Term**: definition" with a capitalized term. Reserved labels are
	// matched first, so they never reach this rule.
	definitionPattern = regexp.MustCompile(`^\*\*([A-Z][^*]*)\*\*:\s+(.+)$`)
)

// Transform parses raw markup into an ordered node sequence. It never fails:
// malformed constructs degrade to plain paragraph text and are reported as
// diagnostics. Source order is always preserved.
func Transform(raw string) ([]Node, []Diagnostic) {
	t := &transformer{slugs: newSlugger()}

	raw = crlfOrCR.ReplaceAllString(raw, "\n")
	for i, line := range strings.Split(raw, "\n") {
		t.consume(i+1, strings.TrimSpace(line))
	}
	t.finish()

	return t.nodes, t.diags
}

// transformer accumulates nodes line by line.
type transformer struct {
	nodes []Node
	diags []Diagnostic
	slugs *slugger

	// Open paragraph: lines joined by spaces on flush. A single blank line
	// continues the paragraph; two or more end it.
	para     []string
	blanks   int
	paraLine int

	// Open list block.
	list     []string
	ordered  bool
	listLine int
	listOpen bool
}

// consume processes one trimmed line.
func (t *transformer) consume(lineNo int, line string) {
	if line == "" {
		t.closeList()
		t.blanks++
		if t.blanks >= 2 {
			t.flushParagraph()
		}
		return
	}

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		t.flushParagraph()
		t.closeList()
		t.appendHeading(len(m[1]), m[2])
		return
	}

	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		t.appendItem(lineNo, m[1], false)
		return
	}
	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		t.appendItem(lineNo, m[1], true)
		return
	}

	// Non-list content closes an open list block.
	t.closeList()

	if m := labelCalloutPattern.FindStringSubmatch(line); m != nil {
		t.flushParagraph()
		kind := CalloutImportant
		if m[1] == "NOTICE" {
			kind = CalloutWarning
		}
		t.nodes = append(t.nodes, Callout{Kind: kind, Body: m[2]})
		return
	}

	if m := definitionPattern.FindStringSubmatch(line); m != nil {
		t.flushParagraph()
		t.nodes = append(t.nodes, Callout{
			Kind: CalloutDefinition,
			Term: strings.TrimSpace(m[1]),
			Body: m[2],
		})
		return
	}

	// Plain paragraph text.
	if len(t.para) == 0 {
		t.paraLine = lineNo
	}
	t.para = append(t.para, line)
	t.blanks = 0
}

// finish closes any open blocks at end of input. An unterminated list simply
// closes; that is worth a diagnostic but never an error.
func (t *transformer) finish() {
	if t.listOpen {
		t.diags = append(t.diags, Diagnostic{
			Line:    t.listLine,
			Message: "list closed at end of input",
		})
	}
	t.closeList()
	t.flushParagraph()
}

// appendHeading emits a heading node with a clamped level and unique anchor.
func (t *transformer) appendHeading(level int, text string) {
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	if level < MinHeadingLevel {
		level = MinHeadingLevel
	}
	text = strings.TrimSpace(text)
	t.nodes = append(t.nodes, Heading{
		Level:    level,
		Text:     text,
		AnchorID: t.slugs.anchor(text),
	})
}

// appendItem opens a list block if needed and appends one item. The first
// item's marker style decides the ordered flag; later style switches are
// tolerated with a diagnostic.
func (t *transformer) appendItem(lineNo int, text string, ordered bool) {
	if !t.listOpen {
		t.flushParagraph()
		t.listOpen = true
		t.ordered = ordered
		t.listLine = lineNo
	} else if t.ordered != ordered {
		t.diags = append(t.diags, Diagnostic{
			Line:    lineNo,
			Message: "mixed list markers in one block",
		})
	}
	t.list = append(t.list, text)
}

// closeList flushes the open list block, if any.
func (t *transformer) closeList() {
	if !t.listOpen {
		return
	}
	items := make([][]Span, len(t.list))
	for i, item := range t.list {
		items[i] = ParseSpans(item)
	}
	t.nodes = append(t.nodes, List{Ordered: t.ordered, Items: items})
	t.list = nil
	t.listOpen = false
}

// flushParagraph joins accumulated lines and emits one paragraph node.
// Empty accumulations emit nothing: a paragraph is never empty.
func (t *transformer) flushParagraph() {
	t.blanks = 0
	if len(t.para) == 0 {
		return
	}
	text := strings.Join(t.para, " ")
	t.para = nil

	if strings.Count(text, "**")%2 == 1 {
		t.diags = append(t.diags, Diagnostic{
			Line:    t.paraLine,
			Message: "unmatched emphasis marker treated literally",
		})
	}
	t.nodes = append(t.nodes, Paragraph{Spans: ParseSpans(text)})
}
