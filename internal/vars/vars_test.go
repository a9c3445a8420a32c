package vars

import "testing"

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		layers   []map[string]string
		expected string
	}{
		{
			name:     "simple substitution",
			input:    "Hello {{name}}",
			layers:   []map[string]string{{"name": "Ada"}},
			expected: "Hello Ada",
		},
		{
			name:     "unresolved placeholder left verbatim",
			input:    "Hello {{name}}, {{missing}}",
			layers:   []map[string]string{{"name": "Ada"}},
			expected: "Hello Ada, {{missing}}",
		},
		{
			name:  "earlier layer wins",
			input: "{{company_name}}",
			layers: []map[string]string{
				{"company_name": "Override Inc"},
				{"company_name": "Base Corp"},
			},
			expected: "Override Inc",
		},
		{
			name:  "later layer fills gaps",
			input: "{{a}} {{b}}",
			layers: []map[string]string{
				{"a": "one"},
				{"a": "ignored", "b": "two"},
			},
			expected: "one two",
		},
		{
			name:     "no layers",
			input:    "{{anything}}",
			layers:   nil,
			expected: "{{anything}}",
		},
		{
			name:     "empty value is a valid substitution",
			input:    "[{{gone}}]",
			layers:   []map[string]string{{"gone": ""}},
			expected: "[]",
		},
		{
			name:     "malformed placeholders untouched",
			input:    "{{ spaced }} {{1digit}} {single}",
			layers:   []map[string]string{{"spaced": "x", "1digit": "y", "single": "z"}},
			expected: "{{ spaced }} {{1digit}} {single}",
		},
		{
			name:     "underscore identifiers",
			input:    "{{phone_main}} / {{_internal}}",
			layers:   []map[string]string{{"phone_main": "555-0100", "_internal": "ok"}},
			expected: "555-0100 / ok",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Substitute(tt.input, tt.layers...)
			if got != tt.expected {
				t.Errorf("Substitute(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSubstituteIdempotent(t *testing.T) {
	t.Parallel()

	layers := []map[string]string{
		{"name": "Ada", "company": "Acme"},
	}
	input := "{{name}} of {{company}} ({{missing}})"

	once := Substitute(input, layers...)
	twice := Substitute(once, layers...)
	if once != twice {
		t.Errorf("substitution not idempotent: first %q, second %q", once, twice)
	}
}

func TestSubstituteValueContainingBraces(t *testing.T) {
	t.Parallel()

	// Substituted values are not re-scanned within the same pass.
	got := Substitute("{{a}}", map[string]string{"a": "{{b}}", "b": "leak"})
	if got != "{{b}}" {
		t.Errorf("Substitute = %q, want %q", got, "{{b}}")
	}
}

func TestContainsPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "has placeholder", input: "x {{y}} z", expected: true},
		{name: "plain text", input: "x y z", expected: false},
		{name: "malformed braces", input: "{{ not one }}", expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ContainsPlaceholder(tt.input); got != tt.expected {
				t.Errorf("ContainsPlaceholder(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
