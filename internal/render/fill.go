package render

import (
	"regexp"
	"strings"
	"unicode"
)

// placeholder matches {{name}} with optional whitespace inside the braces.
var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// legacyMarkers maps older single-brace placeholder spellings onto canonical
// double-brace tokens. Applied before substitution so templates written for
// earlier versions of the bank still fill.
var legacyMarkers = strings.NewReplacer(
	"{Name}", "{{First}}",
	"{name}", "{{first}}",
	"{HeSheThey}", "{{They}}",
	"{heSheThey}", "{{they}}",
	"{himherthem}", "{{them}}",
	"{himHerThem}", "{{them}}",
	"{hishertheir}", "{{their}}",
	"{hisHerTheir}", "{{their}}",
)

// NormalizePlaceholders rewrites legacy placeholder spellings to the
// canonical {{name}} form. Canonical tokens pass through untouched.
func NormalizePlaceholders(text string) string {
	return legacyMarkers.Replace(text)
}

// Fill substitutes every {{name}} token with ctx[name], or the empty string
// when the key is absent. A missing key is not an error: in a user-facing
// text tool, degraded output beats a failed render.
func Fill(text string, ctx Context) string {
	return placeholder.ReplaceAllStringFunc(text, func(tok string) string {
		m := placeholder.FindStringSubmatch(tok)
		return ctx[m[1]]
	})
}

// leadingMarker matches a bracketed level/type marker at the start of a
// resolved snippet, e.g. "[E] " or "[NextSteps] ".
var leadingMarker = regexp.MustCompile(`^\s*\[[^\]]*\]\s*`)

// StripMarker removes a leading bracketed marker and any leading run of
// non-alphanumeric glyphs (emoji, punctuation) from resolved text. These are
// visual aids in the bank, not part of the final comment.
func StripMarker(text string) string {
	text = leadingMarker.ReplaceAllString(text, "")
	return strings.TrimLeftFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
