package assemble

import (
	"fmt"
	"strings"
)

// buildDocumentCSS combines token CSS, component CSS, and format sizing.
// Format variants only affect layout and sizing; they never change content.
func buildDocumentCSS(t Tokens, format string) string {
	var b strings.Builder
	b.WriteString(buildTokenCSS(t))
	b.WriteString(buildComponentCSS(t))
	b.WriteString(buildFormatCSS(format))
	return b.String()
}

// buildTokenCSS generates base typography and color rules from theme tokens.
func buildTokenCSS(t Tokens) string {
	return fmt.Sprintf(`
/* Theme tokens */
body {
  background: %s;
  color: %s;
  font-family: %s;
  line-height: 1.6;
  margin: 0 auto;
  padding: 2rem;
}
h1, h2, h3, h4, h5 {
  color: %s;
  font-family: %s;
  line-height: 1.25;
}
a {
  color: %s;
  text-decoration: none;
}
mark {
  background: %s;
}
`, t.BackgroundColor, t.TextColor, t.BodyFontFamily,
		t.HeadingColor, t.HeadingFontFamily,
		t.PrimaryColor, t.HighlightColor)
}

// buildComponentCSS generates rules for the fixed document sections.
func buildComponentCSS(t Tokens) string {
	return fmt.Sprintf(`
/* Header */
.doc-header {
  border-bottom: 3px solid %[1]s;
  margin-bottom: 2rem;
  padding-bottom: 1rem;
}
.brand-logo { max-height: 56px; }
.brand-name {
  color: %[1]s;
  font-size: 1.1rem;
  font-weight: 700;
  letter-spacing: 0.02em;
}
.brand-tagline {
  color: %[2]s;
  font-size: 0.85rem;
}
.doc-title { margin: 0.75rem 0 0.5rem; }
.doc-meta {
  display: flex;
  flex-wrap: wrap;
  gap: 1.5rem;
  font-size: 0.85rem;
  margin: 0;
}
.doc-meta dt {
  color: %[2]s;
  font-weight: 600;
  text-transform: uppercase;
  font-size: 0.7rem;
}
.doc-meta dd { margin: 0; }

/* Table of contents */
.toc {
  border: 1px solid %[3]s;
  border-radius: 4px;
  margin-bottom: 2rem;
  padding: 1rem 1.25rem;
}
.toc-title {
  font-size: 1rem;
  margin: 0 0 0.5rem;
}
.toc-item { padding: 0.15rem 0; }

/* Facade cards */
.card {
  border: 1px solid %[3]s;
  border-left: 4px solid %[4]s;
  border-radius: 4px;
  margin-bottom: 2rem;
  padding: 1rem 1.25rem;
}
.card-title {
  font-size: 1rem;
  margin: 0 0 0.75rem;
}
.metric-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(160px, 1fr));
  gap: 0.75rem;
  margin: 0;
}
.metric dt {
  color: %[2]s;
  font-size: 0.7rem;
  font-weight: 600;
  text-transform: uppercase;
}
.metric dd {
  font-weight: 600;
  margin: 0;
}
.pair-list {
  border-collapse: collapse;
  margin-top: 0.75rem;
  width: 100%%;
}
.pair-list td {
  border-bottom: 1px solid %[3]s;
  padding: 0.4rem 0.5rem 0.4rem 0;
  vertical-align: top;
}
.pair-right { text-align: right; }

/* Callouts */
.callout {
  border-left: 4px solid %[1]s;
  margin: 1rem 0;
  padding: 0.6rem 1rem;
}
.callout-label { font-weight: 700; }
.callout-important {
  background: %[5]s;
  border-left-color: %[4]s;
}
.callout-warning {
  border-left-color: %[6]s;
}
.callout-warning .callout-label { color: %[6]s; }
.callout-definition {
  border-left-color: %[2]s;
}
.callout-term {
  font-style: normal;
  font-weight: 700;
}

/* Footer */
.doc-footer {
  border-top: 1px solid %[3]s;
  color: %[2]s;
  font-size: 0.8rem;
  margin-top: 2.5rem;
  padding-top: 1rem;
}
.footer-generated { margin-top: 0.4rem; }

/* Signature page */
.signature-grid {
  display: grid;
  grid-template-columns: 1fr 1fr;
  gap: 3rem;
  margin-top: 1.5rem;
}
.signature-party { font-weight: 700; }
.signature-rep {
  color: %[2]s;
  font-size: 0.85rem;
}
.signature-line {
  border-bottom: 1px solid %[1]s;
  height: 2.25rem;
}
.signature-label {
  color: %[2]s;
  font-size: 0.7rem;
  margin-bottom: 0.75rem;
  text-transform: uppercase;
}
`, t.PrimaryColor, t.SecondaryColor, t.BorderColor,
		t.AccentColor, t.HighlightColor, t.WarningColor)
}

// buildFormatCSS generates sizing rules per output format. Print adds page
// break control so headings never sit alone at a page bottom and the
// signature page starts on its own page.
func buildFormatCSS(format string) string {
	switch format {
	case "print":
		return `
/* Print sizing */
body {
  font-size: 12pt;
  max-width: none;
  padding: 0;
}
h2, h3, h4, h5 {
  break-after: avoid;
  page-break-after: avoid;
  break-inside: avoid;
  page-break-inside: avoid;
}
p, li, dd, dt {
  orphans: 2;
  widows: 2;
}
.signature-page {
  break-before: page;
  page-break-before: always;
}
`
	case "mobile":
		return `
/* Mobile sizing */
body {
  font-size: 15px;
  max-width: 100%;
  padding: 1rem;
}
.signature-grid { grid-template-columns: 1fr; gap: 1.5rem; }
.doc-meta { gap: 0.75rem; }
`
	default:
		return `
/* Screen sizing */
body {
  font-size: 16px;
  max-width: 860px;
}
`
	}
}
