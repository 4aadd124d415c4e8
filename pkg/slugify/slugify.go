package slugify

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	separators   = regexp.MustCompile(`[\s-]+`)
)

// Make converts free text into a URL-safe slug: lowercased, punctuation
// stripped, runs of whitespace and hyphens collapsed to a single hyphen.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
