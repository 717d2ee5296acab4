package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate("tpl")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "tpl-"))
	assert.Len(t, got, len("tpl-")+21)
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id, err := Generate("tenant")
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
