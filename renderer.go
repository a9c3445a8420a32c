package docbrand

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/freightdocs/go-docbrand/internal/assemble"
	"github.com/freightdocs/go-docbrand/internal/content"
	"github.com/freightdocs/go-docbrand/internal/dateutil"
	"github.com/freightdocs/go-docbrand/internal/vars"
)

// Renderer orchestrates the rendering pipeline: variable substitution,
// content transformation, theme resolution, and document assembly.
// A Renderer is safe for concurrent use; rendering itself touches no shared
// mutable state.
type Renderer struct {
	cfg    rendererConfig
	themes *ThemeRegistry
	store  *BrandingStore
	log    *zap.Logger
}

// NewRenderer creates a Renderer with the built-in theme registry and a
// branding store seeded with the default tenant profile.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cfg:    rendererConfig{defaultTheme: DefaultThemeName},
		themes: NewThemeRegistry(),
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.themes.validateThemeName(r.cfg.defaultTheme)

	// Create the branding store if not injected via WithBrandingStore.
	if r.store == nil {
		r.store = NewBrandingStore(r.themes)
	}

	return r
}

// Themes returns the theme registry.
func (r *Renderer) Themes() *ThemeRegistry { return r.themes }

// Branding returns the branding store, the administrative surface for
// SetProfile, ApplyTheme, and DeleteProfile.
func (r *Renderer) Branding() *BrandingStore { return r.store }

// ListThemes returns all registered themes sorted by name.
func (r *Renderer) ListThemes() []Theme { return r.themes.ListThemes() }

// Render produces a branded document from raw markup. Unknown theme or
// tenant names fall back to defaults; rendering never fails for
// content-shape reasons. The context is checked between pipeline stages.
func (r *Renderer) Render(ctx context.Context, input DocumentInput, opts RenderOptions) (*RenderedDocument, error) {
	return r.render(ctx, input, opts, nil)
}

// render is the shared pipeline behind Render and the facades. Facade cards
// are placed between the table of contents and the body.
func (r *Renderer) render(ctx context.Context, input DocumentInput, opts RenderOptions, cards []assemble.Card) (*RenderedDocument, error) {
	if input.RawContent == "" {
		return nil, ErrEmptyContent
	}
	if input.Title == "" {
		return nil, ErrEmptyTitle
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	profile := r.resolveProfile(opts.TenantID)
	tokens := r.resolveTokens(opts.ThemeName, profile.Style)

	// Substitution layers: custom variables win over branding variables.
	layers := []map[string]string{opts.CustomVariables, profile.Variables()}
	title := vars.Substitute(input.Title, layers...)
	raw := vars.Substitute(input.RawContent, layers...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes, diags := content.Transform(raw)
	for _, d := range diags {
		r.log.Warn("malformed markup recovered",
			zap.Int("line", d.Line),
			zap.String("detail", d.Message))
	}

	doc := assemble.Render(assemble.Input{
		Title:            title,
		DocumentID:       input.DocumentID,
		Version:          input.Version,
		EffectiveDate:    r.resolveDate(input.EffectiveDate, generatedAt),
		ExpirationDate:   r.resolveDate(input.ExpirationDate, generatedAt),
		GeneratedAt:      generatedAt.UTC().Format("2006-01-02 15:04 MST"),
		Format:           opts.format(),
		IncludeTOC:       opts.IncludeTableOfContents,
		IncludeSignature: opts.IncludeSignaturePage,
		Nodes:            nodes,
		Tokens:           tokens,
		Brand:            toBrand(profile),
		Counterparty: assemble.Party{
			Name:           input.Counterparty.Name,
			Representative: input.Counterparty.Representative,
			Title:          input.Counterparty.Title,
		},
		Cards: cards,
	})

	if vars.ContainsPlaceholder(doc) {
		r.log.Debug("unresolved placeholders left verbatim",
			zap.String("document_id", input.DocumentID))
	}

	return &RenderedDocument{
		Markup:            doc,
		SuggestedFilename: suggestedFilename(title, input.Version, r.resolveDate(input.EffectiveDate, generatedAt), generatedAt, opts.format()),
	}, nil
}

// resolveProfile looks up the tenant profile, falling back to the reserved
// default tenant. The fallback is logged but never surfaced as an error.
func (r *Renderer) resolveProfile(tenantID string) BrandingProfile {
	if tenantID == "" {
		tenantID = DefaultTenantID
	}
	profile, ok := r.store.GetProfile(tenantID)
	if !ok {
		if tenantID != DefaultTenantID {
			r.log.Warn("unknown tenant, using default branding", zap.String("tenant", tenantID))
		}
		profile = r.store.GetProfileOrDefault(tenantID)
	}
	return profile
}

// resolveTokens resolves the theme by name and layers tenant style overrides
// on top. Unknown names fall back to the renderer's default theme.
func (r *Renderer) resolveTokens(themeName string, style StyleOverrides) assemble.Tokens {
	name := themeName
	if name == "" {
		name = r.cfg.defaultTheme
	}
	theme, ok := r.themes.Lookup(name)
	if !ok {
		r.log.Warn("unknown theme, using default", zap.String("theme", name))
		theme = r.themes.GetTheme(r.cfg.defaultTheme)
	}

	return assemble.Tokens{
		PrimaryColor:      override(theme.PrimaryColor, style.PrimaryColor),
		SecondaryColor:    override(theme.SecondaryColor, style.SecondaryColor),
		AccentColor:       override(theme.AccentColor, style.AccentColor),
		BackgroundColor:   override(theme.BackgroundColor, style.BackgroundColor),
		TextColor:         override(theme.TextColor, style.TextColor),
		HeadingColor:      override(theme.HeadingColor, style.HeadingColor),
		BorderColor:       override(theme.BorderColor, style.BorderColor),
		HighlightColor:    override(theme.HighlightColor, style.HighlightColor),
		WarningColor:      override(theme.WarningColor, style.WarningColor),
		BodyFontFamily:    override(theme.BodyFontFamily, style.BodyFontFamily),
		HeadingFontFamily: override(theme.HeadingFontFamily, style.HeadingFontFamily),
	}
}

// resolveDate applies "auto" date resolution against the explicit render
// timestamp. Invalid auto formats degrade to the literal value with a
// warning; dates never fail a render.
func (r *Renderer) resolveDate(value string, t time.Time) string {
	resolved, err := dateutil.Resolve(value, t)
	if err != nil {
		r.log.Warn("invalid date format, using literal value",
			zap.String("value", value),
			zap.Error(err))
		return value
	}
	return resolved
}

// override returns the style value when set, the theme value otherwise.
func override(themeValue, styleValue string) string {
	if styleValue != "" {
		return styleValue
	}
	return themeValue
}

// toBrand flattens a branding profile into the assembler's view.
func toBrand(p BrandingProfile) assemble.Brand {
	return assemble.Brand{
		CompanyName:          p.Identity.CompanyName,
		LegalName:            p.Identity.LegalName,
		Tagline:              p.Identity.Tagline,
		LogoURL:              p.Identity.LogoURL,
		Address:              p.Contact.Address,
		Phone:                p.Contact.Phone,
		Email:                p.Contact.Email,
		Website:              p.Contact.Website,
		EntityType:           p.Legal.EntityType,
		StateOfIncorporation: p.Legal.StateOfIncorporation,
		RegistrationNumber:   p.Legal.RegistrationNumber,
		Licenses:             p.Legal.Licenses,
	}
}

// formatExtensions maps output formats to artifact extensions.
var formatExtensions = map[string]string{
	FormatScreen: "html",
	FormatPrint:  "print.html",
	FormatMobile: "mobile.html",
}

// suggestedFilename derives the deterministic artifact name:
// slug(title)-v<version-or-date>.<ext>.
func suggestedFilename(title, version, effectiveDate string, generatedAt time.Time, format string) string {
	tag := version
	if tag == "" {
		tag = effectiveDate
	}
	if tag == "" {
		tag = generatedAt.UTC().Format("2006-01-02")
	}

	slug := content.Slugify(title)
	if slug == "" {
		slug = "document"
	}
	return slug + "-v" + content.Slugify(tag) + "." + formatExtensions[format]
}
