package comment

import (
	"encoding/json"
	"fmt"
)

// EmojiMap maps each canonical level to a display glyph.
type EmojiMap map[Level]string

// DefaultEmoji returns the built-in level-to-glyph mapping.
func DefaultEmoji() EmojiMap {
	return EmojiMap{
		LevelE:         "🟢",
		LevelG:         "🟡",
		LevelS:         "🟠",
		LevelNS:        "🔴",
		LevelNextSteps: "🧭",
		LevelEND:       "🎓",
	}
}

// ParseEmojiJSON parses a JSON object of level→glyph overrides and merges it
// over the default mapping. Keys are parsed with ParseLevel; unknown keys are
// ignored. A parse failure returns the default mapping and the error so the
// caller can log and continue.
func ParseEmojiJSON(raw string) (EmojiMap, error) {
	m := DefaultEmoji()
	if raw == "" {
		return m, nil
	}

	var overrides map[string]string
	if err := json.Unmarshal([]byte(raw), &overrides); err != nil {
		return DefaultEmoji(), fmt.Errorf("parse level emoji json: %w", err)
	}

	for k, v := range overrides {
		lvl, ok := ParseLevel(k)
		if !ok || v == "" {
			continue
		}
		m[lvl] = v
	}
	return m, nil
}
