package docbrand

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// DefaultTenantID is the reserved tenant whose profile always resolves.
const DefaultTenantID = "default"

// Identity holds the public-facing identity of a tenant.
type Identity struct {
	CompanyName string
	LegalName   string
	Tagline     string
	LogoURL     string
}

// Contact holds tenant contact data. Phone and Email are keyed by channel
// name ("main", "dispatch", "billing", ...).
type Contact struct {
	Address string
	Phone   map[string]string
	Email   map[string]string
	Website string
}

// Legal holds registration and licensing data rendered in document footers.
type Legal struct {
	EntityType           string
	StateOfIncorporation string
	RegistrationNumber   string
	Licenses             []string
}

// StyleOverrides layers tenant-specific visual tokens on top of a Theme.
// Empty fields inherit the theme value.
type StyleOverrides struct {
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

// Version is a semantic profile version. Patch increments on every update.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// BrandingProfile is the complete branding record for one tenant.
type BrandingProfile struct {
	TenantID  string
	Identity  Identity
	Contact   Contact
	Legal     Legal
	Style     StyleOverrides
	Version   Version
	UpdatedAt time.Time
}

// clone deep-copies the profile so callers never share store-internal maps.
func (p BrandingProfile) clone() BrandingProfile {
	out := p
	if p.Contact.Phone != nil {
		out.Contact.Phone = make(map[string]string, len(p.Contact.Phone))
		for k, v := range p.Contact.Phone {
			out.Contact.Phone[k] = v
		}
	}
	if p.Contact.Email != nil {
		out.Contact.Email = make(map[string]string, len(p.Contact.Email))
		for k, v := range p.Contact.Email {
			out.Contact.Email[k] = v
		}
	}
	if p.Legal.Licenses != nil {
		out.Legal.Licenses = append([]string(nil), p.Legal.Licenses...)
	}
	return out
}

// Variables flattens the profile into a substitution layer. Phone and email
// channels become "phone_<channel>" and "email_<channel>" identifiers.
func (p BrandingProfile) Variables() map[string]string {
	vars := map[string]string{
		"company_name":           p.Identity.CompanyName,
		"legal_name":             p.Identity.LegalName,
		"tagline":                p.Identity.Tagline,
		"address":                p.Contact.Address,
		"website":                p.Contact.Website,
		"entity_type":            p.Legal.EntityType,
		"state_of_incorporation": p.Legal.StateOfIncorporation,
		"registration_number":    p.Legal.RegistrationNumber,
	}
	for channel, number := range p.Contact.Phone {
		vars["phone_"+channel] = number
	}
	for channel, addr := range p.Contact.Email {
		vars["email_"+channel] = addr
	}
	return vars
}

// IdentityPatch is a partial Identity update. Nil fields are left untouched.
type IdentityPatch struct {
	CompanyName *string
	LegalName   *string
	Tagline     *string
	LogoURL     *string
}

// ContactPatch is a partial Contact update. Phone and Email entries merge
// key-wise into the existing maps; an empty value removes the channel.
type ContactPatch struct {
	Address *string
	Phone   map[string]string
	Email   map[string]string
	Website *string
}

// LegalPatch is a partial Legal update. Licenses, when non-nil, replaces the
// whole list (license lists are authored as a unit).
type LegalPatch struct {
	EntityType           *string
	StateOfIncorporation *string
	RegistrationNumber   *string
	Licenses             *[]string
}

// StylePatch is a partial StyleOverrides update.
type StylePatch struct {
	PrimaryColor    *string
	SecondaryColor  *string
	AccentColor     *string
	BackgroundColor *string
	TextColor       *string
	HeadingColor    *string
	BorderColor     *string
	HighlightColor  *string
	WarningColor    *string

	BodyFontFamily    *string
	HeadingFontFamily *string
}

// ProfilePatch is a field-level partial update applied by SetProfile.
// Nil sections are left untouched; updates never replace a profile wholesale.
type ProfilePatch struct {
	Identity *IdentityPatch
	Contact  *ContactPatch
	Legal    *LegalPatch
	Style    *StylePatch
}

// apply merges the patch into the profile in place.
func (patch ProfilePatch) apply(p *BrandingProfile) {
	if ip := patch.Identity; ip != nil {
		setString(&p.Identity.CompanyName, ip.CompanyName)
		setString(&p.Identity.LegalName, ip.LegalName)
		setString(&p.Identity.Tagline, ip.Tagline)
		setString(&p.Identity.LogoURL, ip.LogoURL)
	}
	if cp := patch.Contact; cp != nil {
		setString(&p.Contact.Address, cp.Address)
		setString(&p.Contact.Website, cp.Website)
		p.Contact.Phone = mergeChannels(p.Contact.Phone, cp.Phone)
		p.Contact.Email = mergeChannels(p.Contact.Email, cp.Email)
	}
	if lp := patch.Legal; lp != nil {
		setString(&p.Legal.EntityType, lp.EntityType)
		setString(&p.Legal.StateOfIncorporation, lp.StateOfIncorporation)
		setString(&p.Legal.RegistrationNumber, lp.RegistrationNumber)
		if lp.Licenses != nil {
			p.Legal.Licenses = append([]string(nil), (*lp.Licenses)...)
		}
	}
	if sp := patch.Style; sp != nil {
		setString(&p.Style.PrimaryColor, sp.PrimaryColor)
		setString(&p.Style.SecondaryColor, sp.SecondaryColor)
		setString(&p.Style.AccentColor, sp.AccentColor)
		setString(&p.Style.BackgroundColor, sp.BackgroundColor)
		setString(&p.Style.TextColor, sp.TextColor)
		setString(&p.Style.HeadingColor, sp.HeadingColor)
		setString(&p.Style.BorderColor, sp.BorderColor)
		setString(&p.Style.HighlightColor, sp.HighlightColor)
		setString(&p.Style.WarningColor, sp.WarningColor)
		setString(&p.Style.BodyFontFamily, sp.BodyFontFamily)
		setString(&p.Style.HeadingFontFamily, sp.HeadingFontFamily)
	}
}

// setString assigns *src to dst when src is non-nil.
func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// mergeChannels merges patch entries into a channel map key-wise.
// An empty patch value deletes the channel.
func mergeChannels(existing, patch map[string]string) map[string]string {
	if len(patch) == 0 {
		return existing
	}
	if existing == nil {
		existing = make(map[string]string, len(patch))
	}
	for k, v := range patch {
		if v == "" {
			delete(existing, k)
			continue
		}
		existing[k] = v
	}
	return existing
}

// defaultProfile is the seed for the reserved default tenant and the base
// for first-time tenant customization.
func defaultProfile() BrandingProfile {
	return BrandingProfile{
		TenantID: DefaultTenantID,
		Identity: Identity{
			CompanyName: "FreightDocs",
			LegalName:   "FreightDocs, Inc.",
			Tagline:     "Documents that move freight",
		},
		Contact: Contact{
			Address: "100 Market Street, Suite 400, Chicago, IL 60601",
			Phone:   map[string]string{"main": "(312) 555-0114"},
			Email:   map[string]string{"support": "support@freightdocs.example"},
			Website: "https://freightdocs.example",
		},
		Legal: Legal{
			EntityType:           "Corporation",
			StateOfIncorporation: "Delaware",
			RegistrationNumber:   "DE-7741023",
		},
		Version: Version{Major: 1},
	}
}

// BrandingStore holds per-tenant branding profiles. Reads are concurrent;
// writes serialize per tenant id so updates to different tenants never
// contend with each other.
type BrandingStore struct {
	themes *ThemeRegistry

	mu       sync.RWMutex
	profiles map[string]BrandingProfile
	writeMu  map[string]*sync.Mutex

	// now is injectable for deterministic UpdatedAt stamps in tests.
	now func() time.Time
}

// NewBrandingStore creates a store seeded with the default tenant profile.
func NewBrandingStore(themes *ThemeRegistry) *BrandingStore {
	if themes == nil {
		themes = NewThemeRegistry()
	}
	return &BrandingStore{
		themes:   themes,
		profiles: map[string]BrandingProfile{DefaultTenantID: defaultProfile()},
		writeMu:  map[string]*sync.Mutex{},
		now:      time.Now,
	}
}

// GetProfile returns the profile for the exact tenant id, if present.
func (s *BrandingStore) GetProfile(tenantID string) (BrandingProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[tenantID]
	if !ok {
		return BrandingProfile{}, false
	}
	return p.clone(), true
}

// GetProfileOrDefault returns the tenant's profile, falling back to the
// reserved default tenant. It never fails.
func (s *BrandingStore) GetProfileOrDefault(tenantID string) BrandingProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[tenantID]; ok {
		return p.clone()
	}
	return s.profiles[DefaultTenantID].clone()
}

// SetProfile applies a field-level merge patch onto the tenant's current
// profile (or onto the default profile for a first-time tenant), stamps
// UpdatedAt, increments the patch version, and returns the updated profile.
func (s *BrandingStore) SetProfile(tenantID string, patch ProfilePatch) (BrandingProfile, error) {
	if tenantID == "" {
		return BrandingProfile{}, ErrEmptyTenantID
	}

	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	p := s.baseProfile(tenantID)
	patch.apply(&p)
	p.Version.Patch++
	p.UpdatedAt = s.now()

	s.mu.Lock()
	s.profiles[tenantID] = p.clone()
	s.mu.Unlock()

	return p, nil
}

// ApplyTheme merges the named theme's tokens into the tenant's style
// overrides, leaving identity, contact, and legal fields untouched.
// Unlike rendering-path lookups, an unknown theme name fails loudly with
// ErrThemeNotFound: this is a user-initiated admin action.
func (s *BrandingStore) ApplyTheme(tenantID, themeName string) (BrandingProfile, error) {
	if tenantID == "" {
		return BrandingProfile{}, ErrEmptyTenantID
	}
	theme, ok := s.themes.Lookup(themeName)
	if !ok {
		return BrandingProfile{}, fmt.Errorf("%w: %q", ErrThemeNotFound, themeName)
	}

	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	p := s.baseProfile(tenantID)
	p.Style = StyleOverrides{
		PrimaryColor:      theme.PrimaryColor,
		SecondaryColor:    theme.SecondaryColor,
		AccentColor:       theme.AccentColor,
		BackgroundColor:   theme.BackgroundColor,
		TextColor:         theme.TextColor,
		HeadingColor:      theme.HeadingColor,
		BorderColor:       theme.BorderColor,
		HighlightColor:    theme.HighlightColor,
		WarningColor:      theme.WarningColor,
		BodyFontFamily:    theme.BodyFontFamily,
		HeadingFontFamily: theme.HeadingFontFamily,
	}
	p.Version.Patch++
	p.UpdatedAt = s.now()

	s.mu.Lock()
	s.profiles[tenantID] = p.clone()
	s.mu.Unlock()

	return p, nil
}

// DeleteProfile removes a tenant profile. Explicit administrative action
// only; the reserved default tenant cannot be deleted.
func (s *BrandingStore) DeleteProfile(tenantID string) error {
	if tenantID == DefaultTenantID {
		return ErrDefaultTenant
	}

	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[tenantID]; !ok {
		return fmt.Errorf("%w: %q", ErrTenantNotFound, tenantID)
	}
	delete(s.profiles, tenantID)
	return nil
}

// Tenants returns all tenant ids with a stored profile, sorted.
func (s *BrandingStore) Tenants() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// baseProfile returns the current profile for tenantID, or a copy of the
// default profile rebased onto the tenant for first-time customization.
// Caller must hold the tenant write lock.
func (s *BrandingStore) baseProfile(tenantID string) BrandingProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[tenantID]; ok {
		return p.clone()
	}
	p := s.profiles[DefaultTenantID].clone()
	p.TenantID = tenantID
	p.Version = Version{Major: 1}
	return p
}

// tenantLock returns the write mutex for a tenant, creating it on first use.
func (s *BrandingStore) tenantLock(tenantID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.writeMu[tenantID]; ok {
		return m
	}
	m := &sync.Mutex{}
	s.writeMu[tenantID] = m
	return m
}
