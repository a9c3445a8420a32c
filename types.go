package docbrand

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Output format constants.
const (
	FormatScreen = "screen"
	FormatPrint  = "print"
	FormatMobile = "mobile"
)

// DocumentInput carries the raw content and metadata supplied by the caller.
type DocumentInput struct {
	RawContent     string // constrained markup (required)
	Title          string // document title (required)
	DocumentID     string // reference number shown in the header strip
	Version        string // document version, used in the suggested filename
	EffectiveDate  string // literal date, or "auto" / "auto:FORMAT"
	ExpirationDate string // optional; omitted from the header when empty
	Counterparty   Party  // second signature block on the signature page
}

// Party identifies one side of a signed document.
type Party struct {
	Name           string
	Representative string
	Title          string
}

// RenderOptions selects tenant, theme, format, and optional sections.
type RenderOptions struct {
	TenantID               string // empty = reserved default tenant
	ThemeName              string // unknown names fall back to the default theme
	Format                 string // "screen", "print", "mobile" (default: screen)
	IncludeTableOfContents bool
	IncludeSignaturePage   bool
	CustomVariables        map[string]string // first substitution layer, wins over branding
	GeneratedAt            time.Time         // footer timestamp; zero = wall clock at render
}

// Validate checks that render options are usable.
// An empty Format means FormatScreen.
func (o RenderOptions) Validate() error {
	switch strings.ToLower(o.Format) {
	case "", FormatScreen, FormatPrint, FormatMobile:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be screen, print, or mobile)", ErrInvalidFormat, o.Format)
	}
}

// format returns the normalized output format.
func (o RenderOptions) format() string {
	f := strings.ToLower(o.Format)
	if f == "" {
		return FormatScreen
	}
	return f
}

// RenderedDocument is the terminal, immutable output of a render call.
type RenderedDocument struct {
	Markup            string // complete HTML document
	SuggestedFilename string // slug(title)-v<version-or-date>.<ext>
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	defaultTheme string
}

// WithLogger sets the structured logger used for transformer diagnostics and
// soft-fallback events. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("docbrand: WithLogger logger must not be nil")
	}
	return func(r *Renderer) {
		r.log = log
	}
}

// WithDefaultTheme sets the theme used when RenderOptions.ThemeName is empty
// or unknown. Panics if the name is not a registered theme (programmer error).
func WithDefaultTheme(name string) Option {
	return func(r *Renderer) {
		r.cfg.defaultTheme = name
	}
}

// WithBrandingStore shares a branding store between renderers.
// Useful when one admin surface feeds several render paths.
func WithBrandingStore(store *BrandingStore) Option {
	if store == nil {
		panic("docbrand: WithBrandingStore store must not be nil")
	}
	return func(r *Renderer) {
		r.store = store
	}
}

// String returns a pointer to s, for building ProfilePatch values.
func String(s string) *string { return &s }
