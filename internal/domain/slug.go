package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

	// slugIDSuffix matches a trailing "--<uuid>" where the uuid is version 1-5 with an RFC 4122 variant.
	slugIDSuffix = regexp.MustCompile(`(?i)--([0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12})$`)
)

// slugSeparator joins the cosmetic prefix and the id.
const slugSeparator = "--"

// Slugify lower-cases text and reduces it to [a-z0-9] runs joined by single hyphens.
// Blank input yields "".
func Slugify(text string) string {
	s := reNonAlnum.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(s, "-")
}

// BuildSlug returns "<prefix>--<id>". The prefix comes from seoSlug when it is non-blank,
// otherwise from title, and may be empty.
func BuildSlug(id, title string, seoSlug *string) string {
	prefix := title
	if seoSlug != nil && strings.TrimSpace(*seoSlug) != "" {
		prefix = *seoSlug
	}
	return Slugify(prefix) + slugSeparator + id
}

// ExtractIDFromSlug recovers the event id from the trailing "--<uuid>" of a slug.
// The id is returned in canonical lower-case form.
func ExtractIDFromSlug(slug string) (string, bool) {
	m := slugIDSuffix.FindStringSubmatch(strings.TrimSpace(slug))
	if m == nil {
		return "", false
	}
	id, err := uuid.Parse(m[1])
	if err != nil {
		return "", false
	}
	return id.String(), true
}
