package comment

import "regexp"

// inferRule maps a text pattern to the level it suggests.
type inferRule struct {
	pattern *regexp.Regexp
	level   Level
}

// inferRules is checked in order; the first match wins. Most specific and
// least ambiguous phrasing comes first — "should" or "encouraged to" marks a
// next-steps suggestion even though such texts often also contain words the
// later rules would match.
var inferRules = []inferRule{
	{regexp.MustCompile(`(?i)next step|should|encouraged to|would benefit`), LevelNextSteps},
	{regexp.MustCompile(`(?i)needs|requires|finds it challenging|avoids|with modified timelines`), LevelNS},
	{regexp.MustCompile(`(?i)developing|with occasional reminders|emerging|benefits from`), LevelS},
	{regexp.MustCompile(`(?i)consistently|reliably|always|regularly`), LevelG},
	{regexp.MustCompile(`(?i)exemplary|outstanding|exceptional|beyond requirements|leader`), LevelE},
	{regexp.MustCompile(`(?i)best of luck|successful year|strong start`), LevelEND},
}

// InferLevelFromText guesses a level from a template body. The result is
// advisory: backfill uses it to fill missing levels and never overrides an
// explicitly stored one. No match returns LevelNone.
func InferLevelFromText(text string) Level {
	for _, rule := range inferRules {
		if rule.pattern.MatchString(text) {
			return rule.level
		}
	}
	return LevelNone
}
