package docbrand

import (
	"fmt"
	"sort"
)

// DefaultThemeName is the guaranteed fallback for every theme lookup.
const DefaultThemeName = "professional"

// Theme is a named set of visual tokens, independent of tenant identity.
// Themes are immutable once registered.
type Theme struct {
	Name string

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

// builtinThemes is the static registration table. Seeded once at registry
// construction; there is no runtime mutation API.
var builtinThemes = []Theme{
	{
		Name:              "professional",
		PrimaryColor:      "#1f3a5f",
		SecondaryColor:    "#4a6a8a",
		AccentColor:       "#b08d3f",
		BackgroundColor:   "#ffffff",
		TextColor:         "#24292e",
		HeadingColor:      "#1f3a5f",
		BorderColor:       "#d0d7de",
		HighlightColor:    "#fff8c5",
		WarningColor:      "#9a3412",
		BodyFontFamily:    "Georgia, 'Times New Roman', serif",
		HeadingFontFamily: "'Helvetica Neue', Arial, sans-serif",
	},
	{
		Name:              "modern",
		PrimaryColor:      "#0f766e",
		SecondaryColor:    "#115e59",
		AccentColor:       "#f59e0b",
		BackgroundColor:   "#fafaf9",
		TextColor:         "#1c1917",
		HeadingColor:      "#134e4a",
		BorderColor:       "#e7e5e4",
		HighlightColor:    "#fef3c7",
		WarningColor:      "#b91c1c",
		BodyFontFamily:    "'Inter', 'Segoe UI', sans-serif",
		HeadingFontFamily: "'Inter', 'Segoe UI', sans-serif",
	},
	{
		Name:              "classic",
		PrimaryColor:      "#44403c",
		SecondaryColor:    "#78716c",
		AccentColor:       "#7c2d12",
		BackgroundColor:   "#fffdf7",
		TextColor:         "#292524",
		HeadingColor:      "#1c1917",
		BorderColor:       "#d6d3d1",
		HighlightColor:    "#fde68a",
		WarningColor:      "#991b1b",
		BodyFontFamily:    "'Palatino Linotype', Palatino, serif",
		HeadingFontFamily: "'Palatino Linotype', Palatino, serif",
	},
	{
		Name:              "midnight",
		PrimaryColor:      "#38bdf8",
		SecondaryColor:    "#818cf8",
		AccentColor:       "#fbbf24",
		BackgroundColor:   "#0f172a",
		TextColor:         "#e2e8f0",
		HeadingColor:      "#f1f5f9",
		BorderColor:       "#334155",
		HighlightColor:    "#422006",
		WarningColor:      "#fca5a5",
		BodyFontFamily:    "'Segoe UI', system-ui, sans-serif",
		HeadingFontFamily: "'Segoe UI', system-ui, sans-serif",
	},
}

// ThemeRegistry resolves theme names to token sets. Read-only after
// construction, so it is safe for concurrent use without locking.
type ThemeRegistry struct {
	themes map[string]Theme
}

// NewThemeRegistry builds a registry seeded with the built-in themes.
func NewThemeRegistry() *ThemeRegistry {
	m := make(map[string]Theme, len(builtinThemes))
	for _, t := range builtinThemes {
		m[t.Name] = t
	}
	return &ThemeRegistry{themes: m}
}

// GetTheme returns the theme with the given name, falling back to the
// default theme when the name is unknown. It never fails: rendering must not
// hard-fail on a bad theme name.
func (r *ThemeRegistry) GetTheme(name string) Theme {
	if t, ok := r.themes[name]; ok {
		return t
	}
	return r.themes[DefaultThemeName]
}

// Lookup returns the theme with the given name and whether it exists.
// Used by administrative paths that must distinguish unknown names.
func (r *ThemeRegistry) Lookup(name string) (Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// ListThemes returns all registered themes sorted by name.
func (r *ThemeRegistry) ListThemes() []Theme {
	out := make([]Theme, 0, len(r.themes))
	for _, t := range r.themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// validateThemeName panics if name is not registered. Used by option
// constructors where an unknown name is a programmer error.
func (r *ThemeRegistry) validateThemeName(name string) {
	if _, ok := r.themes[name]; !ok {
		panic(fmt.Sprintf("docbrand: unknown default theme %q", name))
	}
}
