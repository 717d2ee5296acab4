package comment

import (
	"regexp"
	"strings"
)

// Kind classifies a parsed tag. The set is closed: call sites switch on the
// kind instead of re-scanning string prefixes.
type Kind int

// Tag kinds.
const (
	KindOpaque Kind = iota // anything unrecognized, e.g. "email", "topic:fractions"
	KindLevel              // level:<L>
	KindCategory           // category:<slug>
	KindSkill              // ls:<Label>
	KindNextSteps          // next-steps
	KindOpener             // opener / opening
	KindJurisdiction       // ontario, uk, ...
)

// Tag is the typed form of one raw tag string.
// Raw preserves the original spelling; Value holds the payload after the
// prefix (level code, category slug, skill label, jurisdiction name).
type Tag struct {
	Kind  Kind
	Value string
	Raw   string
}

var jurisdictions = map[string]bool{
	"ontario":   true,
	"uk":        true,
	"us":        true,
	"australia": true,
	"nz":        true,
}

// ParseTag converts one raw tag string into its typed form.
// Matching is case-insensitive; unrecognized tags come back as KindOpaque
// with the trimmed raw string as value.
func ParseTag(raw string) Tag {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "level:"):
		return Tag{Kind: KindLevel, Value: strings.TrimSpace(trimmed[len("level:"):]), Raw: trimmed}
	case strings.HasPrefix(lower, "category:"):
		return Tag{Kind: KindCategory, Value: Slugify(trimmed[len("category:"):]), Raw: trimmed}
	case strings.HasPrefix(lower, "ls:"):
		return Tag{Kind: KindSkill, Value: strings.TrimSpace(trimmed[len("ls:"):]), Raw: trimmed}
	case lower == "next-steps" || lower == "nextsteps":
		return Tag{Kind: KindNextSteps, Value: lower, Raw: trimmed}
	case lower == "opener" || lower == "opening":
		return Tag{Kind: KindOpener, Value: lower, Raw: trimmed}
	case jurisdictions[lower]:
		return Tag{Kind: KindJurisdiction, Value: lower, Raw: trimmed}
	}
	return Tag{Kind: KindOpaque, Value: trimmed, Raw: trimmed}
}

// ParseTags parses every raw tag in order.
func ParseTags(raw []string) []Tag {
	out := make([]Tag, 0, len(raw))
	for _, r := range raw {
		out = append(out, ParseTag(r))
	}
	return out
}

// NormalizeTags trims, drops empties, and deduplicates case-insensitively
// while preserving first-seen order and casing. A single element containing
// commas is treated as a legacy CSV string and split first.
func NormalizeTags(raw []string) []string {
	if len(raw) == 1 && strings.Contains(raw[0], ",") {
		raw = strings.Split(raw[0], ",")
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		t := strings.TrimSpace(r)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// HasCategory reports whether tags associate a template with the given
// category. Matches an exact category: tag, an ls: tag whose slugified label
// equals the category, or — as a loose fallback for hand-entered legacy tags —
// any raw tag containing the category slug as a substring.
func HasCategory(tags []string, categoryID string) bool {
	want := Slugify(categoryID)
	if want == "" {
		return false
	}

	for _, t := range ParseTags(tags) {
		switch t.Kind {
		case KindCategory:
			if t.Value == want {
				return true
			}
		case KindSkill:
			if Slugify(t.Value) == want {
				return true
			}
		default:
			if strings.Contains(Slugify(t.Raw), want) {
				return true
			}
		}
	}
	return false
}

// CategorySlugs returns every category slug a template's tags carry, in tag
// order, deduplicated. Both category: and ls: tags contribute.
func CategorySlugs(tags []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range ParseTags(tags) {
		var slug string
		switch t.Kind {
		case KindCategory:
			slug = t.Value
		case KindSkill:
			slug = Slugify(t.Value)
		default:
			continue
		}
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out
}

var nextStepsText = regexp.MustCompile(`(?i)next|support|improv|goal|target|should|encouraged`)

// IsNextSteps reports whether a template is a next-steps suggestion, via an
// explicit next-steps tag, a level:nextsteps tag, or — for untagged legacy
// rows — a text heuristic.
func IsNextSteps(tags []string, text string) bool {
	for _, t := range ParseTags(tags) {
		switch t.Kind {
		case KindNextSteps:
			return true
		case KindLevel:
			if lvl, ok := ParseLevel(t.Value); ok && lvl == LevelNextSteps {
				return true
			}
		}
	}
	return nextStepsText.MatchString(text)
}

// IsOpener reports whether tags mark a template as an opening line.
func IsOpener(tags []string) bool {
	for _, t := range ParseTags(tags) {
		if t.Kind == KindOpener {
			return true
		}
	}
	return false
}
