package services

import (
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives the URL-safe slug for a folder name: lowercase, whitespace
// runs collapsed to single hyphens, everything outside [a-z0-9-] stripped.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	return nonSlugChars.ReplaceAllString(slug, "")
}
