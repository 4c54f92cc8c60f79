package utils

import (
	"regexp"
	"strings"
)

const maxSlugLength = 80

var (
	// Anything that is not a letter, digit, underscore, whitespace or hyphen
	nonSlugChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	// Whitespace and underscores become a single separator
	slugSeparators  = regexp.MustCompile(`[\s_]+`)
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a URL-friendly slug of at most 80 characters.
// Example: "Hello World" -> "hello-world"
func Slugify(text string) string {
	slug := strings.TrimSpace(strings.ToLower(text))
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	slug = multipleHyphens.ReplaceAllString(slug, "-")
	slug = TruncateRunes(slug, maxSlugLength)
	return strings.Trim(slug, "-")
}
