package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/freightdocs/go-docbrand"
	"github.com/freightdocs/go-docbrand/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds file-based defaults for document generation. Flags override
// config values.
type Config struct {
	Tenant          string            `yaml:"tenant"`
	Theme           string            `yaml:"theme"`
	Format          string            `yaml:"format"`
	TableOfContents bool              `yaml:"tableOfContents"`
	SignaturePage   bool              `yaml:"signaturePage"`
	Variables       map[string]string `yaml:"variables"`
	Branding        *BrandingConfig   `yaml:"branding"`
}

// BrandingConfig seeds the tenant's branding profile at startup.
type BrandingConfig struct {
	CompanyName string            `yaml:"companyName"`
	LegalName   string            `yaml:"legalName"`
	Tagline     string            `yaml:"tagline"`
	LogoURL     string            `yaml:"logoUrl"`
	Address     string            `yaml:"address"`
	Phone       map[string]string `yaml:"phone"`
	Email       map[string]string `yaml:"email"`
	Website     string            `yaml:"website"`

	EntityType           string   `yaml:"entityType"`
	StateOfIncorporation string   `yaml:"stateOfIncorporation"`
	RegistrationNumber   string   `yaml:"registrationNumber"`
	Licenses             []string `yaml:"licenses"`
}

// LoadConfig reads and strictly parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// patch converts the branding seed into a field-level profile patch.
// Empty fields stay nil so they never clobber existing profile values.
func (b *BrandingConfig) patch() docbrand.ProfilePatch {
	var p docbrand.ProfilePatch

	identity := &docbrand.IdentityPatch{}
	if b.CompanyName != "" {
		identity.CompanyName = docbrand.String(b.CompanyName)
	}
	if b.LegalName != "" {
		identity.LegalName = docbrand.String(b.LegalName)
	}
	if b.Tagline != "" {
		identity.Tagline = docbrand.String(b.Tagline)
	}
	if b.LogoURL != "" {
		identity.LogoURL = docbrand.String(b.LogoURL)
	}
	p.Identity = identity

	contact := &docbrand.ContactPatch{Phone: b.Phone, Email: b.Email}
	if b.Address != "" {
		contact.Address = docbrand.String(b.Address)
	}
	if b.Website != "" {
		contact.Website = docbrand.String(b.Website)
	}
	p.Contact = contact

	legal := &docbrand.LegalPatch{}
	if b.EntityType != "" {
		legal.EntityType = docbrand.String(b.EntityType)
	}
	if b.StateOfIncorporation != "" {
		legal.StateOfIncorporation = docbrand.String(b.StateOfIncorporation)
	}
	if b.RegistrationNumber != "" {
		legal.RegistrationNumber = docbrand.String(b.RegistrationNumber)
	}
	if b.Licenses != nil {
		licenses := append([]string(nil), b.Licenses...)
		legal.Licenses = &licenses
	}
	p.Legal = legal

	return p
}
