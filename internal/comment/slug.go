package comment

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches any run of characters that cannot appear in a slug.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// Quote and apostrophe variants are stripped, not hyphenated, so
	// "student's" slugs to "students" rather than "student-s".
	quoteVariants = strings.NewReplacer("'", "", "’", "", "‘", "", "`", "", "´", "", `"`, "", "“", "", "”", "")
)

// Slugify derives the canonical identifier for a human-readable label.
// "Self Regulation" -> "self-regulation".
// "Arts & Crafts" -> "arts-and-crafts".
// "  ---Weird!!Case--- " -> "weird-case".
//
// This is the one slugging algorithm used everywhere category identifiers
// are derived from labels. Persisted category tags depend on it, so the
// rules (including &→and) must not drift.
func Slugify(s string) string {
	// Decompose accented characters, then drop anything non-ASCII.
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = quoteVariants.Replace(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	return s
}
