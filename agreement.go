package docbrand

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Agreement is the domain object for the agreement facade: legal text plus
// the metadata and counterparty needed for a signable document.
type Agreement struct {
	Title          string
	DocumentID     string // minted when empty
	Version        string
	EffectiveDate  string
	ExpirationDate string
	Body           string // raw markup, the legal text itself
	Counterparty   Party
	GoverningLaw   string
}

// RenderAgreement renders a signable agreement document. The facade is pure
// configuration over Render: it defaults the theme to "professional", always
// includes the table of contents and the signature page, and exposes the
// agreement fields as substitution variables. Caller-supplied custom
// variables still win over facade variables.
func (r *Renderer) RenderAgreement(ctx context.Context, a Agreement, opts RenderOptions) (*RenderedDocument, error) {
	if a.DocumentID == "" {
		a.DocumentID = mintDocumentID("AGR")
	}

	if opts.ThemeName == "" {
		opts.ThemeName = DefaultThemeName
	}
	opts.IncludeTableOfContents = true
	opts.IncludeSignaturePage = true
	opts.CustomVariables = layerVariables(opts.CustomVariables, map[string]string{
		"agreement_title":             a.Title,
		"document_id":                 a.DocumentID,
		"version":                     a.Version,
		"effective_date":              a.EffectiveDate,
		"expiration_date":             a.ExpirationDate,
		"governing_law":               a.GoverningLaw,
		"counterparty_name":           a.Counterparty.Name,
		"counterparty_representative": a.Counterparty.Representative,
		"counterparty_title":          a.Counterparty.Title,
	})

	return r.render(ctx, DocumentInput{
		RawContent:     a.Body,
		Title:          a.Title,
		DocumentID:     a.DocumentID,
		Version:        a.Version,
		EffectiveDate:  a.EffectiveDate,
		ExpirationDate: a.ExpirationDate,
		Counterparty:   a.Counterparty,
	}, opts, nil)
}

// layerVariables merges facade variables under caller variables: on key
// collision the caller's value wins.
func layerVariables(caller, facade map[string]string) map[string]string {
	merged := make(map[string]string, len(caller)+len(facade))
	for k, v := range facade {
		if v != "" {
			merged[k] = v
		}
	}
	for k, v := range caller {
		merged[k] = v
	}
	return merged
}

// mintDocumentID builds a prefixed unique document id.
func mintDocumentID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
