// Package content transforms constrained document markup into an ordered
// sequence of structural nodes. The vocabulary is intentionally small:
// headings, paragraphs, flat lists, bold/italic spans, and a handful of
// semantic callout annotations. It is not a CommonMark implementation.
package content

// Heading levels are clamped to this range.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 4
)

// CalloutKind discriminates callout blocks.
type CalloutKind string

// Callout kinds.
const (
	CalloutImportant  CalloutKind = "important"
	CalloutWarning    CalloutKind = "warning"
	CalloutDefinition CalloutKind = "definition"
)

// Node is a structural unit of document content. The concrete types are
// Heading, Paragraph, List, and Callout.
type Node interface {
	node()
}

// Span is a run of text with uniform emphasis.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// Heading is a section heading with a stable anchor id.
type Heading struct {
	Level    int    // 1-4
	Text     string // plain text, markers left literal
	AnchorID string // slugified, collision-disambiguated
}

// Paragraph is a block of running text split into emphasis spans.
type Paragraph struct {
	Spans []Span
}

// List is a flat ordered or unordered list.
type List struct {
	Ordered bool
	Items   [][]Span
}

// Callout is a semantically distinct block: important notice, warning, or a
// term definition. Term is set only for definitions.
type Callout struct {
	Kind CalloutKind
	Term string
	Body string
}

func (Heading) node()   {}
func (Paragraph) node() {}
func (List) node()      {}
func (Callout) node()   {}

// Diagnostic reports a recovered markup anomaly. Diagnostics are advisory:
// the transformer always returns a usable node sequence.
type Diagnostic struct {
	Line    int
	Message string
}
