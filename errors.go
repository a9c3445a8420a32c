package docbrand

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyContent = errors.New("document content cannot be empty")
	ErrEmptyTitle   = errors.New("document title cannot be empty")

	// Render option validation errors.
	ErrInvalidFormat = errors.New("invalid output format")

	// Administrative errors. ErrThemeNotFound is returned only by explicit
	// admin actions (ApplyTheme); the rendering path never fails on an
	// unknown theme and silently falls back to the default instead.
	ErrThemeNotFound  = errors.New("theme not found")
	ErrEmptyTenantID  = errors.New("tenant id cannot be empty")
	ErrDefaultTenant  = errors.New("default tenant profile cannot be deleted")
	ErrTenantNotFound = errors.New("tenant profile not found")
)
