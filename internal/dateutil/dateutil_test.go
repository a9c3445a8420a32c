package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testTime = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "iso", format: "YYYY-MM-DD", expected: "2006-01-02"},
		{name: "us slashes", format: "MM/DD/YYYY", expected: "01/02/2006"},
		{name: "long month", format: "MMMM D, YYYY", expected: "January 2, 2006"},
		{name: "short month", format: "DD MMM YY", expected: "02 Jan 06"},
		{name: "single digit tokens", format: "M/D/YY", expected: "1/2/06"},
		{name: "literals preserved", format: "YYYY.MM.DD!", expected: "2006.01.02!"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.format)
			if err != nil {
				t.Fatalf("ParseFormat(%q): %v", tt.format, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.format, got, tt.expected)
			}
		})
	}
}

func TestParseFormatErrors(t *testing.T) {
	t.Parallel()

	if _, err := ParseFormat(""); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("empty format error = %v, want ErrInvalidDateFormat", err)
	}
	if _, err := ParseFormat(strings.Repeat("Y", MaxFormatLength+1)); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("oversized format error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "plain auto", value: "auto", expected: "2026-01-15"},
		{name: "auto uppercase", value: "AUTO", expected: "2026-01-15"},
		{name: "auto with custom format", value: "auto:DD/MM/YYYY", expected: "15/01/2026"},
		{name: "auto with us preset", value: "auto:us", expected: "01/15/2026"},
		{name: "auto with long preset", value: "auto:long", expected: "January 15, 2026"},
		{name: "literal date untouched", value: "March 1, 2026", expected: "March 1, 2026"},
		{name: "empty value untouched", value: "", expected: ""},
		{name: "auto prefix without colon untouched", value: "automatic renewal", expected: "automatic renewal"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.value, testTime)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.value, err)
			}
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestResolveEmptyAutoFormat(t *testing.T) {
	t.Parallel()

	if _, err := Resolve("auto:", testTime); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("Resolve(auto:) error = %v, want ErrInvalidDateFormat", err)
	}
}
