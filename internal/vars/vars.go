// Package vars resolves {{name}} placeholders against layered variable maps.
package vars

import "regexp"

// placeholderPattern matches {{identifier}} where identifier is a letter or
// underscore followed by letters, digits, or underscores.
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Substitute replaces placeholders in text using the first layer that
// defines each identifier. Unresolved placeholders are left verbatim so they
// stay visible in the output instead of being silently erased.
//
// Replacement is a single pass over the original text: substituted values
// are never re-scanned, which makes Substitute idempotent as long as layer
// values do not themselves introduce placeholder syntax.
func Substitute(text string, layers ...map[string]string) string {
	if len(layers) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		for _, layer := range layers {
			if v, ok := layer[name]; ok {
				return v
			}
		}
		return match
	})
}

// ContainsPlaceholder reports whether text still holds placeholder syntax.
// Useful for diagnosing unresolved substitutions in final output.
func ContainsPlaceholder(text string) bool {
	return placeholderPattern.MatchString(text)
}
