// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// Slugs are the stable public identifiers for faculties, departments, staff
// members and news items (e.g. "faculty-of-engineering", "jane-doe"). The
// numeric primary key remains the efficient internal identifier.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonSlug matches any character that cannot appear in a slug.
	nonSlug = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses runs of hyphens.
	multiHyphen = regexp.MustCompile(`-{2,}`)
	// valid matches a well-formed slug.
	valid = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
// Accented characters are decomposed and stripped of combining marks, the
// result is lowercased, and anything that is not a letter or digit becomes a
// hyphen.
func From(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = nonSlug.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// IsValid reports whether s is a well-formed slug: lowercase alphanumeric
// segments separated by single hyphens.
func IsValid(s string) bool {
	return valid.MatchString(s)
}
