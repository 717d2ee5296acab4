package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowRespectsBurst(t *testing.T) {
	krl := New(1, 2)
	defer krl.Stop()

	assert.True(t, krl.Allow("a"))
	assert.True(t, krl.Allow("a"))
	assert.False(t, krl.Allow("a"), "third immediate request should exceed burst")
}

func TestKeysAreIndependent(t *testing.T) {
	krl := New(1, 1)
	defer krl.Stop()

	assert.True(t, krl.Allow("a"))
	assert.False(t, krl.Allow("a"))
	assert.True(t, krl.Allow("b"), "a different key gets its own bucket")
}

func TestPerMinute(t *testing.T) {
	krl := PerMinute(60, 3)
	defer krl.Stop()

	for range 3 {
		assert.True(t, krl.Allow("ip"))
	}
	assert.False(t, krl.Allow("ip"))
}
