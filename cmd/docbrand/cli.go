package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/freightdocs/go-docbrand"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInput = errors.New("usage: docbrand [flags] <input.txt>")
	ErrReadInput    = errors.New("failed to read input file")
	ErrInvalidVar   = errors.New("invalid --var value, expected key=value")
)

// cliFlags holds parsed command-line options.
type cliFlags struct {
	configPath string
	tenant     string
	theme      string
	format     string
	toc        bool
	signature  bool
	title      string
	outPath    string
	vars       []string
	listThemes bool
	verbose    bool
	inputPath  string
}

// parseFlags parses args (without the program name).
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := pflag.NewFlagSet("docbrand", pflag.ContinueOnError)

	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fs.StringVar(&f.tenant, "tenant", "", "tenant id for branding lookup")
	fs.StringVar(&f.theme, "theme", "", "theme name (unknown names fall back to the default)")
	fs.StringVar(&f.format, "format", "", "output format: screen, print, mobile")
	fs.BoolVar(&f.toc, "toc", false, "include a table of contents")
	fs.BoolVar(&f.signature, "signature", false, "include a signature page")
	fs.StringVar(&f.title, "title", "", "document title (default: input filename)")
	fs.StringVarP(&f.outPath, "out", "o", "", "output file (default: derived from the title)")
	fs.StringArrayVar(&f.vars, "var", nil, "custom variable key=value (repeatable)")
	fs.BoolVar(&f.listThemes, "list-themes", false, "list available themes and exit")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		f.inputPath = rest[0]
	}
	return f, nil
}

// run executes one CLI invocation and writes progress to out.
func run(flags *cliFlags, log *zap.Logger, out io.Writer) error {
	renderer := docbrand.NewRenderer(docbrand.WithLogger(log))

	if flags.listThemes {
		for _, t := range renderer.ListThemes() {
			fmt.Fprintf(out, "%-14s %s on %s\n", t.Name, t.PrimaryColor, t.BackgroundColor)
		}
		return nil
	}

	cfg := &Config{}
	if flags.configPath != "" {
		loaded, err := LoadConfig(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	tenant := firstNonEmpty(flags.tenant, cfg.Tenant)
	if cfg.Branding != nil && tenant != "" {
		if _, err := renderer.Branding().SetProfile(tenant, cfg.Branding.patch()); err != nil {
			return fmt.Errorf("seeding branding profile: %w", err)
		}
	}

	if flags.inputPath == "" {
		return ErrMissingInput
	}
	raw, err := os.ReadFile(flags.inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	customVars, err := parseVars(flags.vars, cfg.Variables)
	if err != nil {
		return err
	}

	title := flags.title
	if title == "" {
		base := filepath.Base(flags.inputPath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	doc, err := renderer.Render(context.Background(), docbrand.DocumentInput{
		RawContent:    string(raw),
		Title:         title,
		EffectiveDate: "auto",
	}, docbrand.RenderOptions{
		TenantID:               tenant,
		ThemeName:              firstNonEmpty(flags.theme, cfg.Theme),
		Format:                 firstNonEmpty(flags.format, cfg.Format),
		IncludeTableOfContents: flags.toc || cfg.TableOfContents,
		IncludeSignaturePage:   flags.signature || cfg.SignaturePage,
		CustomVariables:        customVars,
	})
	if err != nil {
		return err
	}

	outPath := flags.outPath
	if outPath == "" {
		outPath = doc.SuggestedFilename
	}
	if err := os.WriteFile(outPath, []byte(doc.Markup), 0o644); err != nil { // #nosec G306 -- rendered document is not sensitive
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(out, "Created %s\n", outPath)
	return nil
}

// parseVars merges config variables with --var overrides; flags win.
func parseVars(pairs []string, base map[string]string) (map[string]string, error) {
	merged := make(map[string]string, len(base)+len(pairs))
	for k, v := range base {
		merged[k] = v
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVar, pair)
		}
		merged[key] = value
	}
	return merged, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
