// Package comment provides tag normalization, level inference, and the
// canonical slugging algorithm for the comment bank.
package comment

import "strings"

// Level is a report-card proficiency/purpose bucket.
type Level string

// Canonical levels. Anything outside this set is treated as absent.
const (
	LevelE         Level = "E"         // Exemplary
	LevelG         Level = "G"         // Good
	LevelS         Level = "S"         // Satisfactory
	LevelNS        Level = "NS"        // Needs support
	LevelNextSteps Level = "NextSteps" // Next-steps suggestions
	LevelEND       Level = "END"       // Year-end closers
	LevelNone      Level = ""          // Absent
)

// Levels returns the canonical levels in display order.
func Levels() []Level {
	return []Level{LevelE, LevelG, LevelS, LevelNS, LevelNextSteps, LevelEND}
}

// ParseLevel parses a level string case-insensitively.
// "NEXTSTEPS" and "next-steps" both map to LevelNextSteps.
// Returns LevelNone and false for anything outside the canonical set.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "E":
		return LevelE, true
	case "G":
		return LevelG, true
	case "S":
		return LevelS, true
	case "NS":
		return LevelNS, true
	case "NEXTSTEPS", "NEXT-STEPS", "NEXT_STEPS":
		return LevelNextSteps, true
	case "END":
		return LevelEND, true
	}
	return LevelNone, false
}

// ExtractLevel derives a template's level from its stored level column and
// its tags. The stored column wins when it is canonical; otherwise the first
// parseable level: tag wins. Returns the level and its display emoji, or
// (LevelNone, "") when nothing matches.
func ExtractLevel(stored string, tags []string, emoji EmojiMap) (Level, string) {
	if lvl, ok := ParseLevel(stored); ok {
		return lvl, emoji[lvl]
	}
	for _, raw := range tags {
		t := ParseTag(raw)
		if t.Kind != KindLevel {
			continue
		}
		if lvl, ok := ParseLevel(t.Value); ok {
			return lvl, emoji[lvl]
		}
	}
	return LevelNone, ""
}
