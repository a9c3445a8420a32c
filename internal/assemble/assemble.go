// Package assemble composes structured content, theme tokens, and branding
// data into a complete HTML document. Section order is fixed: header, table
// of contents, facade cards, body, footer, signature page. Assembly is a
// pure function of its input; given identical inputs the output is
// byte-identical.
package assemble

import (
	"fmt"
	"html"
	"strings"

	"github.com/freightdocs/go-docbrand/internal/content"
)

// htmlShell wraps the assembled sections in a complete HTML5 document.
// Placeholders: title, CSS, body class, sections.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>%s</style>
</head>
<body class="format-%s">
%s</body>
</html>`

// Tokens is the visual token set resolved for one render: theme values with
// tenant style overrides already layered on top.
type Tokens struct {
	PrimaryColor    string
	SecondaryColor  string
	AccentColor     string
	BackgroundColor string
	TextColor       string
	HeadingColor    string
	BorderColor     string
	HighlightColor  string
	WarningColor    string

	BodyFontFamily    string
	HeadingFontFamily string
}

// Brand is the flattened branding view consumed by header and footer
// sections. Phone and Email render in sorted channel order.
type Brand struct {
	CompanyName string
	LegalName   string
	Tagline     string
	LogoURL     string

	Address string
	Phone   map[string]string
	Email   map[string]string
	Website string

	EntityType           string
	StateOfIncorporation string
	RegistrationNumber   string
	Licenses             []string
}

// Party is one side of the signature page.
type Party struct {
	Name           string
	Representative string
	Title          string
}

// Metric is one label/value cell in a card grid.
type Metric struct {
	Label string
	Value string
}

// PairRow is one row of a two-column card list.
type PairRow struct {
	Left  string
	Right string
}

// Card is a facade-supplied section rendered between the table of contents
// and the body. A card renders its Metrics as a key/value grid when present,
// then its Pairs as a two-column list.
type Card struct {
	Title   string
	Metrics []Metric
	Pairs   []PairRow
}

// Input carries everything assembly needs. All values are explicit; assembly
// itself never consults the clock or any shared state.
type Input struct {
	Title          string
	DocumentID     string
	Version        string
	EffectiveDate  string
	ExpirationDate string
	GeneratedAt    string // preformatted timestamp for the footer

	Format           string // "screen", "print", "mobile"
	IncludeTOC       bool
	IncludeSignature bool

	Nodes        []content.Node
	Tokens       Tokens
	Brand        Brand
	Counterparty Party
	Cards        []Card
}

// Render assembles the document. Sections other than header and body are
// emitted only when requested and non-empty: a TOC with zero headings is
// omitted entirely rather than rendered as an empty shell.
func Render(in Input) string {
	var b strings.Builder
	b.Grow(4096)

	writeHeader(&b, in)

	if in.IncludeTOC {
		writeTOC(&b, in.Nodes)
	}

	for _, card := range in.Cards {
		writeCard(&b, card)
	}

	writeBody(&b, in.Nodes)
	writeFooter(&b, in)

	if in.IncludeSignature {
		writeSignature(&b, in)
	}

	css := buildDocumentCSS(in.Tokens, in.Format)
	return fmt.Sprintf(htmlShell, html.EscapeString(in.Title), sanitizeCSS(css), in.Format, b.String())
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
