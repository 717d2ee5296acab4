package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
		ok    bool
	}{
		{"E", LevelE, true},
		{"g", LevelG, true},
		{"NS", LevelNS, true},
		{"NEXTSTEPS", LevelNextSteps, true},
		{"NextSteps", LevelNextSteps, true},
		{"next-steps", LevelNextSteps, true},
		{"end", LevelEND, true},
		{" S ", LevelS, true},
		{"A+", LevelNone, false},
		{"", LevelNone, false},
		{"excellent", LevelNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestExtractLevel(t *testing.T) {
	emoji := DefaultEmoji()

	t.Run("stored column wins", func(t *testing.T) {
		lvl, glyph := ExtractLevel("E", []string{"level:G"}, emoji)
		assert.Equal(t, LevelE, lvl)
		assert.Equal(t, "🟢", glyph)
	})

	t.Run("single level tag", func(t *testing.T) {
		for _, want := range Levels() {
			lvl, glyph := ExtractLevel("", []string{"level:" + string(want)}, emoji)
			assert.Equal(t, want, lvl)
			assert.Equal(t, emoji[want], glyph)
		}
	})

	t.Run("first level tag wins", func(t *testing.T) {
		lvl, _ := ExtractLevel("", []string{"category:organization", "level:S", "level:E"}, emoji)
		assert.Equal(t, LevelS, lvl)
	})

	t.Run("case insensitive tag", func(t *testing.T) {
		lvl, glyph := ExtractLevel("", []string{"LEVEL:nextsteps"}, emoji)
		assert.Equal(t, LevelNextSteps, lvl)
		assert.Equal(t, "🧭", glyph)
	})

	t.Run("invalid stored value treated as absent", func(t *testing.T) {
		lvl, glyph := ExtractLevel("A+", nil, emoji)
		assert.Equal(t, LevelNone, lvl)
		assert.Empty(t, glyph)
	})

	t.Run("unparseable level tag skipped", func(t *testing.T) {
		lvl, _ := ExtractLevel("", []string{"level:wat", "level:G"}, emoji)
		assert.Equal(t, LevelG, lvl)
	})

	t.Run("nothing found", func(t *testing.T) {
		lvl, glyph := ExtractLevel("", []string{"category:organization", "ontario"}, emoji)
		assert.Equal(t, LevelNone, lvl)
		assert.Empty(t, glyph)
	})
}

func TestParseEmojiJSON(t *testing.T) {
	t.Run("empty uses defaults", func(t *testing.T) {
		m, err := ParseEmojiJSON("")
		assert.NoError(t, err)
		assert.Equal(t, "🟡", m[LevelG])
	})

	t.Run("override merges over defaults", func(t *testing.T) {
		m, err := ParseEmojiJSON(`{"E":"⭐","nextsteps":"➡️"}`)
		assert.NoError(t, err)
		assert.Equal(t, "⭐", m[LevelE])
		assert.Equal(t, "➡️", m[LevelNextSteps])
		assert.Equal(t, "🟡", m[LevelG])
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		m, err := ParseEmojiJSON(`{not json`)
		assert.Error(t, err)
		assert.Equal(t, DefaultEmoji(), m)
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		m, err := ParseEmojiJSON(`{"A+":"❓"}`)
		assert.NoError(t, err)
		assert.Equal(t, DefaultEmoji(), m)
	})
}
