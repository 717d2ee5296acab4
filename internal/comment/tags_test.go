package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		raw   string
		kind  Kind
		value string
	}{
		{"level:E", KindLevel, "E"},
		{"LEVEL:g", KindLevel, "g"},
		{"category:organization", KindCategory, "organization"},
		{"category:Self Regulation", KindCategory, "self-regulation"},
		{"ls:Self Regulation", KindSkill, "Self Regulation"},
		{"next-steps", KindNextSteps, "next-steps"},
		{"opener", KindOpener, "opener"},
		{"opening", KindOpener, "opening"},
		{"ontario", KindJurisdiction, "ontario"},
		{"UK", KindJurisdiction, "uk"},
		{"email", KindOpaque, "email"},
		{"topic:fractions", KindOpaque, "topic:fractions"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseTag(tt.raw)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.value, got.Value)
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	t.Run("case insensitive dedupe preserves first casing", func(t *testing.T) {
		got := NormalizeTags([]string{"Level:G", "level:g", " ontario ", "ontario"})
		assert.Equal(t, []string{"Level:G", "ontario"}, got)
	})

	t.Run("legacy csv string splits", func(t *testing.T) {
		got := NormalizeTags([]string{"level:E, category:initiative, ontario"})
		assert.Equal(t, []string{"level:E", "category:initiative", "ontario"}, got)
	})

	t.Run("blanks dropped", func(t *testing.T) {
		got := NormalizeTags([]string{"", "  ", "email"})
		assert.Equal(t, []string{"email"}, got)
	})
}

func TestHasCategory(t *testing.T) {
	assert.True(t, HasCategory([]string{"ls:Self Regulation"}, "self-regulation"))
	assert.True(t, HasCategory([]string{"category:organization"}, "organization"))
	assert.True(t, HasCategory([]string{"category:Arts & Crafts"}, "arts-and-crafts"))
	assert.False(t, HasCategory([]string{"category:organization"}, "responsibility"))
	assert.False(t, HasCategory(nil, "organization"))
	assert.False(t, HasCategory([]string{"level:G"}, ""))

	// Loose fallback: hand-entered tag containing the slug.
	assert.True(t, HasCategory([]string{"grade3-self-regulation-bank"}, "self-regulation"))
}

func TestIsNextSteps(t *testing.T) {
	assert.True(t, IsNextSteps([]string{"next-steps"}, ""))
	assert.True(t, IsNextSteps([]string{"level:nextsteps"}, ""))
	assert.True(t, IsNextSteps(nil, "A goal for next term is neater work."))
	assert.True(t, IsNextSteps(nil, "{{first}} should review notes nightly."))
	assert.False(t, IsNextSteps([]string{"level:E"}, "A fine term."))
}

func TestIsOpener(t *testing.T) {
	assert.True(t, IsOpener([]string{"opener"}))
	assert.True(t, IsOpener([]string{"Opening"}))
	assert.False(t, IsOpener([]string{"level:E"}))
}

func TestCategorySlugs(t *testing.T) {
	got := CategorySlugs([]string{"category:organization", "ls:Self Regulation", "category:organization", "level:G"})
	assert.Equal(t, []string{"organization", "self-regulation"}, got)
}
