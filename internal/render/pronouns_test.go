package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePronouns(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Pronouns
	}{
		{"she", "she/her/her", Pronouns{"she", "her", "her", "hers"}},
		{"he", "he/him/his", Pronouns{"he", "him", "his", "his"}},
		{"they explicit", "they/them/their", Pronouns{"they", "them", "their", "theirs"}},
		{"neo pronouns default possessive", "ze/zir/zir", Pronouns{"ze", "zir", "zir", "theirs"}},
		{"empty defaults", "", Pronouns{"they", "them", "their", "theirs"}},
		{"malformed defaults", "she/her", Pronouns{"they", "them", "their", "theirs"}},
		{"uppercase normalized", "She/Her/Her", Pronouns{"she", "her", "her", "hers"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePronouns(tt.raw))
		})
	}
}

func TestPronounsForGender(t *testing.T) {
	assert.Equal(t, "he/him/his", PronounsForGender("male"))
	assert.Equal(t, "she/her/her", PronounsForGender("F"))
	assert.Equal(t, "they/them/their", PronounsForGender(""))
	assert.Equal(t, "they/them/their", PronounsForGender("nonbinary"))
}
