package assemble

import (
	"strings"
	"testing"

	"github.com/freightdocs/go-docbrand/internal/content"
)

func testTokens() Tokens {
	return Tokens{
		PrimaryColor:      "#1a3c5e",
		SecondaryColor:    "#4a6785",
		AccentColor:       "#c8a24b",
		BackgroundColor:   "#ffffff",
		TextColor:         "#22272e",
		HeadingColor:      "#102a43",
		BorderColor:       "#d4dbe3",
		HighlightColor:    "#fff8e1",
		WarningColor:      "#b3261e",
		BodyFontFamily:    "Georgia, serif",
		HeadingFontFamily: "Helvetica, sans-serif",
	}
}

func testInput() Input {
	return Input{
		Title:         "Carrier Agreement",
		DocumentID:    "AGR-001",
		Version:       "1.0",
		EffectiveDate: "2026-01-15",
		GeneratedAt:   "2026-01-15 09:00 UTC",
		Format:        "screen",
		Nodes: []content.Node{
			content.Heading{Level: 1, Text: "Scope", AnchorID: "scope"},
			content.Paragraph{Spans: []content.Span{{Text: "Body text."}}},
			content.Heading{Level: 2, Text: "Payment", AnchorID: "payment"},
		},
		Tokens: testTokens(),
		Brand: Brand{
			CompanyName: "FreightDocs Logistics",
			LegalName:   "FreightDocs Logistics LLC",
		},
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Brand.Phone = map[string]string{"main": "555-0100", "dispatch": "555-0101", "billing": "555-0102"}
	in.Brand.Email = map[string]string{"ops": "ops@example.com", "ar": "ar@example.com"}
	in.IncludeTOC = true
	in.IncludeSignature = true

	first := Render(in)
	for i := 0; i < 20; i++ {
		if got := Render(in); got != first {
			t.Fatalf("render %d differs from first render", i)
		}
	}
}

func TestRenderSectionOrder(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.IncludeTOC = true
	in.IncludeSignature = true
	in.Cards = []Card{{Title: "Overview"}}

	out := Render(in)
	markers := []string{
		`<header class="doc-header">`,
		`<nav class="toc">`,
		`<section class="card">`,
		`<main class="doc-body">`,
		`<footer class="doc-footer">`,
		`<section class="signature-page">`,
	}
	pos := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		if idx == -1 {
			t.Fatalf("output missing section %q", m)
		}
		if idx < pos {
			t.Errorf("section %q appears out of order", m)
		}
		pos = idx
	}
}

func TestRenderTOC(t *testing.T) {
	t.Parallel()

	t.Run("entries mirror headings", func(t *testing.T) {
		t.Parallel()

		in := testInput()
		in.IncludeTOC = true

		out := Render(in)
		if got := strings.Count(out, `<div class="toc-item">`); got != 2 {
			t.Errorf("toc item count = %d, want 2", got)
		}
		if !strings.Contains(out, `<a href="#scope">1. Scope</a>`) {
			t.Error("missing numbered toc entry for Scope")
		}
		if !strings.Contains(out, `<a href="#payment">2. Payment</a>`) {
			t.Error("missing numbered toc entry for Payment")
		}
	})

	t.Run("omitted when disabled", func(t *testing.T) {
		t.Parallel()

		out := Render(testInput())
		if strings.Contains(out, `<nav class="toc">`) {
			t.Error("toc rendered although not requested")
		}
	})

	t.Run("omitted with zero headings", func(t *testing.T) {
		t.Parallel()

		in := testInput()
		in.IncludeTOC = true
		in.Nodes = []content.Node{
			content.Paragraph{Spans: []content.Span{{Text: "only prose"}}},
		}

		out := Render(in)
		if strings.Contains(out, `<nav class="toc">`) {
			t.Error("toc rendered for a document without headings")
		}
	})

	t.Run("anchors resolve to body ids", func(t *testing.T) {
		t.Parallel()

		in := testInput()
		in.IncludeTOC = true

		out := Render(in)
		for _, anchor := range []string{"scope", "payment"} {
			if !strings.Contains(out, `<a href="#`+anchor+`">`) {
				t.Errorf("toc missing link to %q", anchor)
			}
			if !strings.Contains(out, ` id="`+anchor+`">`) {
				t.Errorf("body missing heading id %q", anchor)
			}
		}
	})
}

func TestRenderBodyNodes(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Nodes = []content.Node{
		content.Heading{Level: 1, Text: "Scope", AnchorID: "scope"},
		content.Heading{Level: 4, Text: "Fine Print", AnchorID: "fine-print"},
		content.Paragraph{Spans: []content.Span{
			{Text: "Some "},
			{Text: "bold", Bold: true},
			{Text: " and "},
			{Text: "slanted", Italic: true},
			{Text: " words."},
		}},
		content.List{Ordered: true, Items: [][]content.Span{
			{{Text: "first"}},
			{{Text: "second"}},
		}},
		content.List{Ordered: false, Items: [][]content.Span{
			{{Text: "bullet"}},
		}},
		content.Callout{Kind: content.CalloutImportant, Body: "read carefully"},
		content.Callout{Kind: content.CalloutWarning, Body: "fees apply"},
		content.Callout{Kind: content.CalloutDefinition, Term: "Carrier", Body: "the transporting party"},
	}

	out := Render(in)

	checks := []string{
		`<h2 id="scope">Scope</h2>`,
		`<h5 id="fine-print">Fine Print</h5>`,
		`<strong>bold</strong>`,
		`<em>slanted</em>`,
		"<ol>\n<li>first</li>\n<li>second</li>\n</ol>",
		"<ul>\n<li>bullet</li>\n</ul>",
		`<aside class="callout callout-important"><span class="callout-label">IMPORTANT:</span> read carefully</aside>`,
		`<aside class="callout callout-warning"><span class="callout-label">NOTICE:</span> fees apply</aside>`,
		`<aside class="callout callout-definition"><dfn class="callout-term">Carrier</dfn> the transporting party</aside>`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	t.Parallel()

	t.Run("metadata order is fixed", func(t *testing.T) {
		t.Parallel()

		in := testInput()
		in.ExpirationDate = "2027-01-15"

		out := Render(in)
		keys := []string{"Version", "Effective Date", "Document ID", "Expires"}
		pos := -1
		for _, key := range keys {
			idx := strings.Index(out, "<dt>"+key+"</dt>")
			if idx == -1 {
				t.Fatalf("missing metadata key %q", key)
			}
			if idx < pos {
				t.Errorf("metadata key %q out of order", key)
			}
			pos = idx
		}
	})

	t.Run("expiration omitted when empty", func(t *testing.T) {
		t.Parallel()

		out := Render(testInput())
		if strings.Contains(out, "<dt>Expires</dt>") {
			t.Error("expiration rendered although empty")
		}
	})

	t.Run("logo and tagline are optional", func(t *testing.T) {
		t.Parallel()

		in := testInput()
		out := Render(in)
		if strings.Contains(out, "brand-logo") || strings.Contains(out, "brand-tagline") {
			t.Error("optional brand elements rendered although empty")
		}

		in.Brand.LogoURL = "https://cdn.example.com/logo.png"
		in.Brand.Tagline = "Moving freight forward"
		out = Render(in)
		if !strings.Contains(out, `<img class="brand-logo" src="https://cdn.example.com/logo.png"`) {
			t.Error("missing brand logo")
		}
		if !strings.Contains(out, `<div class="brand-tagline">Moving freight forward</div>`) {
			t.Error("missing brand tagline")
		}
	})
}

func TestRenderFooter(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Brand.Address = "100 Dock St, Savannah, GA"
	in.Brand.Phone = map[string]string{"main": "555-0100", "dispatch": "555-0101"}
	in.Brand.Email = map[string]string{"ops": "ops@freightdocs.example"}
	in.Brand.Website = "https://freightdocs.example"
	in.Brand.EntityType = "LLC"
	in.Brand.StateOfIncorporation = "Georgia"
	in.Brand.RegistrationNumber = "MC-123456"
	in.Brand.Licenses = []string{"USDOT 998877", "SCAC FDLG"}

	out := Render(in)

	// Channels render in sorted key order regardless of map iteration.
	dispatch := strings.Index(out, "dispatch: 555-0101")
	main := strings.Index(out, "main: 555-0100")
	if dispatch == -1 || main == -1 || dispatch > main {
		t.Errorf("phone channels missing or unsorted (dispatch=%d, main=%d)", dispatch, main)
	}

	checks := []string{
		"100 Dock St, Savannah, GA",
		"ops: ops@freightdocs.example",
		"https://freightdocs.example",
		"FreightDocs Logistics LLC",
		"LLC, Georgia",
		"Reg. No. MC-123456",
		"Licenses: USDOT 998877, SCAC FDLG",
		"Generated 2026-01-15 09:00 UTC",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestRenderSignature(t *testing.T) {
	t.Parallel()

	t.Run("two blocks with fixed lines", func(t *testing.T) {
		t.Parallel()

		in := testInput()
		in.IncludeSignature = true
		in.Counterparty = Party{Name: "Acme Shipping", Representative: "Jo Field", Title: "Operations Manager"}

		out := Render(in)
		if got := strings.Count(out, `<div class="signature-block">`); got != 2 {
			t.Errorf("signature block count = %d, want 2", got)
		}
		if !strings.Contains(out, `<div class="signature-party">FreightDocs Logistics</div>`) {
			t.Error("missing issuing party block")
		}
		if !strings.Contains(out, `<div class="signature-party">Acme Shipping</div>`) {
			t.Error("missing counterparty block")
		}
		if !strings.Contains(out, `<div class="signature-rep">Jo Field, Operations Manager</div>`) {
			t.Error("missing representative line")
		}
		for _, label := range []string{"Signature", "Printed Name", "Date"} {
			if got := strings.Count(out, `<div class="signature-label">`+label+"</div>"); got != 2 {
				t.Errorf("label %q count = %d, want 2", label, got)
			}
		}
	})

	t.Run("omitted when not requested", func(t *testing.T) {
		t.Parallel()

		out := Render(testInput())
		if strings.Contains(out, "signature-page") {
			t.Error("signature page rendered although not requested")
		}
	})
}

func TestRenderCards(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Cards = []Card{
		{
			Title: "Load Summary",
			Metrics: []Metric{
				{Label: "Load ID", Value: "L-445"},
				{Label: "Equipment", Value: "53' Dry Van"},
			},
		},
		{
			Title: "Charges",
			Pairs: []PairRow{
				{Left: "Line Haul", Right: "$1,800.00"},
				{Left: "Fuel Surcharge", Right: "$240.00"},
			},
		},
	}

	out := Render(in)
	checks := []string{
		`<h2 class="card-title">Load Summary</h2>`,
		`<div class="metric"><dt>Load ID</dt><dd>L-445</dd></div>`,
		`<div class="metric"><dt>Equipment</dt><dd>53&#39; Dry Van</dd></div>`,
		`<h2 class="card-title">Charges</h2>`,
		`<tr><td class="pair-left">Line Haul</td><td class="pair-right">$1,800.00</td></tr>`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderEscapesUserText(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Title = `Terms <script>alert("x")</script>`
	in.Nodes = []content.Node{
		content.Paragraph{Spans: []content.Span{{Text: "a < b & c"}}},
	}

	out := Render(in)
	if strings.Contains(out, "<script>") {
		t.Error("unescaped script tag in output")
	}
	if !strings.Contains(out, "a &lt; b &amp; c") {
		t.Error("paragraph text not escaped")
	}
}

func TestRenderFormatVariants(t *testing.T) {
	t.Parallel()

	base := testInput()
	base.IncludeTOC = true

	outputs := make(map[string]string, 3)
	for _, format := range []string{"screen", "print", "mobile"} {
		in := base
		in.Format = format
		outputs[format] = Render(in)
	}

	// The content sequence is identical across formats; only the CSS and the
	// body class vary.
	var bodies []string
	for format, out := range outputs {
		if !strings.Contains(out, `<body class="format-`+format+`">`) {
			t.Errorf("%s output missing body class", format)
		}
		start := strings.Index(out, `<main class="doc-body">`)
		end := strings.Index(out, "</main>")
		if start == -1 || end == -1 {
			t.Fatalf("%s output missing body section", format)
		}
		bodies = append(bodies, out[start:end])
	}
	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Error("body content differs across formats")
		}
	}

	if !strings.Contains(outputs["print"], "break-before: page") {
		t.Error("print CSS missing page break rule")
	}
	if strings.Contains(outputs["screen"], "break-before: page") {
		t.Error("screen CSS carries print-only rule")
	}
	if !strings.Contains(outputs["mobile"], "font-size: 15px") {
		t.Error("mobile CSS missing base font size")
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	got := sanitizeCSS(`a { content: "</style>"; }`)
	if strings.Contains(got, "</style>") {
		t.Errorf("sanitizeCSS left closing tag intact: %q", got)
	}
}
