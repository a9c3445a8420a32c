package content

import (
	"strconv"
	"strings"
)

// Slugify lowercases text and replaces every run of non-alphanumeric
// characters with a single hyphen. Leading and trailing hyphens are trimmed.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// slugger produces unique anchor ids within one document. The first
// occurrence keeps the bare slug; duplicates get "-2", "-3", and so on.
type slugger struct {
	seen map[string]int
}

func newSlugger() *slugger {
	return &slugger{seen: map[string]int{}}
}

// anchor returns a unique anchor id for the heading text.
func (s *slugger) anchor(text string) string {
	slug := Slugify(text)
	if slug == "" {
		slug = "section"
	}

	s.seen[slug]++
	if n := s.seen[slug]; n > 1 {
		return slug + "-" + strconv.Itoa(n)
	}
	return slug
}
