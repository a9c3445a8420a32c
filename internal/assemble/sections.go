package assemble

import (
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/freightdocs/go-docbrand/internal/content"
)

// Callout label prefixes are fixed per kind.
const (
	importantLabel = "IMPORTANT:"
	warningLabel   = "NOTICE:"
)

// writeHeader emits the branding identity block, the document title, and the
// metadata strip. Metadata keys render in fixed order: version, effective
// date, document id, then the optional expiration.
func writeHeader(b *strings.Builder, in Input) {
	b.WriteString(`<header class="doc-header">` + "\n")

	b.WriteString(`<div class="brand-block">`)
	if in.Brand.LogoURL != "" {
		b.WriteString(`<img class="brand-logo" src="`)
		b.WriteString(html.EscapeString(in.Brand.LogoURL))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(in.Brand.CompanyName))
		b.WriteString(`"/>`)
	}
	b.WriteString(`<div class="brand-name">`)
	b.WriteString(html.EscapeString(in.Brand.CompanyName))
	b.WriteString(`</div>`)
	if in.Brand.Tagline != "" {
		b.WriteString(`<div class="brand-tagline">`)
		b.WriteString(html.EscapeString(in.Brand.Tagline))
		b.WriteString(`</div>`)
	}
	b.WriteString("</div>\n")

	b.WriteString(`<h1 class="doc-title">`)
	b.WriteString(html.EscapeString(in.Title))
	b.WriteString("</h1>\n")

	b.WriteString(`<dl class="doc-meta">`)
	writeMetaPair(b, "Version", in.Version)
	writeMetaPair(b, "Effective Date", in.EffectiveDate)
	writeMetaPair(b, "Document ID", in.DocumentID)
	if in.ExpirationDate != "" {
		writeMetaPair(b, "Expires", in.ExpirationDate)
	}
	b.WriteString("</dl>\n")

	b.WriteString("</header>\n")
}

// writeMetaPair emits one key/value pair of the header metadata strip.
// Pairs with empty values other than the fixed three are skipped by callers.
func writeMetaPair(b *strings.Builder, key, value string) {
	b.WriteString(`<div class="doc-meta-item"><dt>`)
	b.WriteString(key)
	b.WriteString(`</dt><dd>`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`</dd></div>`)
}

// writeTOC emits one flat, sequentially numbered entry per heading node, in
// source order. Entries link to the heading anchors, so the TOC can never
// drift from the body. With zero headings nothing is emitted at all.
func writeTOC(b *strings.Builder, nodes []content.Node) {
	var headings []content.Heading
	for _, n := range nodes {
		if h, ok := n.(content.Heading); ok {
			headings = append(headings, h)
		}
	}
	if len(headings) == 0 {
		return
	}

	b.WriteString(`<nav class="toc">` + "\n")
	b.WriteString(`<h2 class="toc-title">Table of Contents</h2>` + "\n")
	b.WriteString(`<div class="toc-list">` + "\n")
	for i, h := range headings {
		b.WriteString(`<div class="toc-item"><a href="#`)
		b.WriteString(html.EscapeString(h.AnchorID))
		b.WriteString(`">`)
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(html.EscapeString(h.Text))
		b.WriteString("</a></div>\n")
	}
	b.WriteString("</div>\n</nav>\n")
}

// writeCard emits one facade section: an optional key/value metrics grid
// followed by an optional two-column list.
func writeCard(b *strings.Builder, card Card) {
	b.WriteString(`<section class="card">` + "\n")
	if card.Title != "" {
		b.WriteString(`<h2 class="card-title">`)
		b.WriteString(html.EscapeString(card.Title))
		b.WriteString("</h2>\n")
	}

	if len(card.Metrics) > 0 {
		b.WriteString(`<dl class="metric-grid">`)
		for _, m := range card.Metrics {
			b.WriteString(`<div class="metric"><dt>`)
			b.WriteString(html.EscapeString(m.Label))
			b.WriteString(`</dt><dd>`)
			b.WriteString(html.EscapeString(m.Value))
			b.WriteString(`</dd></div>`)
		}
		b.WriteString("</dl>\n")
	}

	if len(card.Pairs) > 0 {
		b.WriteString(`<table class="pair-list">` + "\n")
		for _, p := range card.Pairs {
			b.WriteString(`<tr><td class="pair-left">`)
			b.WriteString(html.EscapeString(p.Left))
			b.WriteString(`</td><td class="pair-right">`)
			b.WriteString(html.EscapeString(p.Right))
			b.WriteString("</td></tr>\n")
		}
		b.WriteString("</table>\n")
	}

	b.WriteString("</section>\n")
}

// writeBody renders each content node in source order.
func writeBody(b *strings.Builder, nodes []content.Node) {
	b.WriteString(`<main class="doc-body">` + "\n")
	for _, n := range nodes {
		switch node := n.(type) {
		case content.Heading:
			writeHeading(b, node)
		case content.Paragraph:
			b.WriteString("<p>")
			writeSpans(b, node.Spans)
			b.WriteString("</p>\n")
		case content.List:
			writeList(b, node)
		case content.Callout:
			writeCallout(b, node)
		}
	}
	b.WriteString("</main>\n")
}

func writeHeading(b *strings.Builder, h content.Heading) {
	tag := "h" + strconv.Itoa(h.Level+1) // h1 is reserved for the doc title
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(` id="`)
	b.WriteString(html.EscapeString(h.AnchorID))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(h.Text))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
}

func writeList(b *strings.Builder, l content.List) {
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">\n")
	for _, item := range l.Items {
		b.WriteString("<li>")
		writeSpans(b, item)
		b.WriteString("</li>\n")
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">\n")
}

// writeCallout renders a visually distinct block with a fixed label per
// kind. Definition terms render distinctly from the body text.
func writeCallout(b *strings.Builder, c content.Callout) {
	switch c.Kind {
	case content.CalloutImportant:
		b.WriteString(`<aside class="callout callout-important"><span class="callout-label">`)
		b.WriteString(importantLabel)
		b.WriteString(`</span> `)
		b.WriteString(html.EscapeString(c.Body))
		b.WriteString("</aside>\n")
	case content.CalloutWarning:
		b.WriteString(`<aside class="callout callout-warning"><span class="callout-label">`)
		b.WriteString(warningLabel)
		b.WriteString(`</span> `)
		b.WriteString(html.EscapeString(c.Body))
		b.WriteString("</aside>\n")
	case content.CalloutDefinition:
		b.WriteString(`<aside class="callout callout-definition"><dfn class="callout-term">`)
		b.WriteString(html.EscapeString(c.Term))
		b.WriteString(`</dfn> `)
		b.WriteString(html.EscapeString(c.Body))
		b.WriteString("</aside>\n")
	}
}

// writeSpans renders emphasis runs. Bold wraps strong, italic wraps em, and
// a span can carry both.
func writeSpans(b *strings.Builder, spans []content.Span) {
	for _, s := range spans {
		if s.Bold {
			b.WriteString("<strong>")
		}
		if s.Italic {
			b.WriteString("<em>")
		}
		b.WriteString(html.EscapeString(s.Text))
		if s.Italic {
			b.WriteString("</em>")
		}
		if s.Bold {
			b.WriteString("</strong>")
		}
	}
}

// writeFooter emits the branding contact and legal block plus the explicit
// generation timestamp. Channel maps render in sorted key order so output
// stays deterministic.
func writeFooter(b *strings.Builder, in Input) {
	b.WriteString(`<footer class="doc-footer">` + "\n")

	var contact []string
	if in.Brand.Address != "" {
		contact = append(contact, html.EscapeString(in.Brand.Address))
	}
	for _, channel := range sortedKeys(in.Brand.Phone) {
		contact = append(contact, html.EscapeString(channel+": "+in.Brand.Phone[channel]))
	}
	for _, channel := range sortedKeys(in.Brand.Email) {
		contact = append(contact, html.EscapeString(channel+": "+in.Brand.Email[channel]))
	}
	if in.Brand.Website != "" {
		contact = append(contact, html.EscapeString(in.Brand.Website))
	}
	if len(contact) > 0 {
		b.WriteString(`<div class="footer-contact">`)
		b.WriteString(strings.Join(contact, " &middot; "))
		b.WriteString("</div>\n")
	}

	var legal []string
	if in.Brand.LegalName != "" {
		legal = append(legal, html.EscapeString(in.Brand.LegalName))
	}
	if in.Brand.EntityType != "" {
		entity := in.Brand.EntityType
		if in.Brand.StateOfIncorporation != "" {
			entity += ", " + in.Brand.StateOfIncorporation
		}
		legal = append(legal, html.EscapeString(entity))
	}
	if in.Brand.RegistrationNumber != "" {
		legal = append(legal, html.EscapeString("Reg. No. "+in.Brand.RegistrationNumber))
	}
	if len(in.Brand.Licenses) > 0 {
		legal = append(legal, html.EscapeString("Licenses: "+strings.Join(in.Brand.Licenses, ", ")))
	}
	if len(legal) > 0 {
		b.WriteString(`<div class="footer-legal">`)
		b.WriteString(strings.Join(legal, " &middot; "))
		b.WriteString("</div>\n")
	}

	b.WriteString(`<div class="footer-generated">Generated `)
	b.WriteString(html.EscapeString(in.GeneratedAt))
	b.WriteString("</div>\n")

	b.WriteString("</footer>\n")
}

// writeSignature emits exactly two signature blocks: the issuing party
// (branding identity) and the counterparty. In print formats the section
// starts on its own page via CSS.
func writeSignature(b *strings.Builder, in Input) {
	b.WriteString(`<section class="signature-page">` + "\n")
	b.WriteString(`<h2 class="signature-title">Signatures</h2>` + "\n")
	b.WriteString(`<div class="signature-grid">` + "\n")

	writeSignatureBlock(b, Party{Name: in.Brand.CompanyName})
	writeSignatureBlock(b, in.Counterparty)

	b.WriteString("</div>\n</section>\n")
}

func writeSignatureBlock(b *strings.Builder, p Party) {
	b.WriteString(`<div class="signature-block">` + "\n")
	b.WriteString(`<div class="signature-party">`)
	b.WriteString(html.EscapeString(p.Name))
	b.WriteString("</div>\n")
	if p.Representative != "" {
		rep := p.Representative
		if p.Title != "" {
			rep += ", " + p.Title
		}
		b.WriteString(`<div class="signature-rep">`)
		b.WriteString(html.EscapeString(rep))
		b.WriteString("</div>\n")
	}
	for _, label := range []string{"Signature", "Printed Name", "Date"} {
		b.WriteString(`<div class="signature-line"></div><div class="signature-label">`)
		b.WriteString(label)
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

// sortedKeys returns map keys in ascending order.
func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
