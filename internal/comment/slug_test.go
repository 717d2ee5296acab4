package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple label", "Self Regulation", "self-regulation"},
		{"ampersand becomes and", "Arts & Crafts", "arts-and-crafts"},
		{"punctuation collapses", "  ---Weird!!Case--- ", "weird-case"},
		{"already a slug", "independent-work", "independent-work"},
		{"apostrophe stripped", "Student's Work", "students-work"},
		{"curly apostrophe stripped", "Student’s Work", "students-work"},
		{"accents folded", "Régulation", "regulation"},
		{"mixed case", "Independent Work", "independent-work"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
