// Package slug derives URL-safe identifiers and reading-time estimates
// from article text.
package slug

import (
	"strings"
	"unicode"
)

// wordsPerMinute is the reading speed assumed by EstimateReadTime.
const wordsPerMinute = 200

// Make turns a title into a slug: lowercase, non-alphanumerics dropped,
// runs of spaces/underscores/hyphens collapsed to a single hyphen, no
// leading or trailing hyphens. "Hello World!!" becomes "hello-world".
func Make(title string) string {
	lowered := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '_' || r == '-':
			b.WriteRune('-')
		}
		// everything else is dropped
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}

// EstimateReadTime estimates reading minutes for markdown content,
// never returning less than 1 for non-empty text.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return minutes
}
