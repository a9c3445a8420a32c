// Package docbrand turns raw operational text (agreements, route sheets,
// rate confirmations) into styled, tenant-branded HTML documents.
//
// # Quick Start
//
// Create a renderer and render a document:
//
//	r := docbrand.NewRenderer()
//
//	doc, err := r.Render(ctx, docbrand.DocumentInput{
//	    RawContent:    "# Terms\n\nSome **binding** text.",
//	    Title:         "Carrier Agreement",
//	    DocumentID:    "AGR-1042",
//	    EffectiveDate: "2026-01-01",
//	}, docbrand.RenderOptions{
//	    TenantID:  "acme",
//	    ThemeName: "modern",
//	    Format:    docbrand.FormatScreen,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(doc.SuggestedFilename, []byte(doc.Markup), 0o644)
//
// # Rendering Pipeline
//
// Rendering follows fixed stages:
//
//  1. Variable substitution ({{name}} placeholders, custom over branding)
//  2. Content transformation (constrained markup to structured nodes)
//  3. Theme resolution (named token set, branding style overrides on top)
//  4. Assembly (header, optional TOC, body, footer, optional signature page)
//
// Rendering is a pure function of its inputs: unknown theme or tenant names
// fall back to defaults, malformed markup degrades to plain text, and a fixed
// GeneratedAt timestamp yields byte-identical output across calls. Renderers
// are safe for concurrent use.
//
// # Tenant Branding
//
// Each renderer owns a BrandingStore keyed by tenant ID. Profiles are
// customized through field-level merge patches and themed through ApplyTheme:
//
//	store := r.Branding()
//	store.SetProfile("acme", docbrand.ProfilePatch{
//	    Identity: &docbrand.IdentityPatch{CompanyName: docbrand.String("Acme Logistics")},
//	})
//	store.ApplyTheme("acme", "modern")
//
// ApplyTheme with an unknown theme name returns ErrThemeNotFound; lookups on
// the rendering path never fail and instead use the "professional" default.
//
// # Facades
//
// RenderAgreement, RenderRouteSheet, and RenderRateConfirmation wrap Render
// with domain-specific defaults: a pre-selected theme, custom variables drawn
// from the domain object, and extra section cards (a route overview metrics
// grid, a stop-by-stop delivery list) placed between header and body.
package docbrand
