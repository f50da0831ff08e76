package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hemmelig")
	require.NoError(t, err)
	assert.NotEqual(t, "hemmelig", hash)
	assert.True(t, CheckPasswordHash("hemmelig", hash))
	assert.False(t, CheckPasswordHash("forkert", hash))
}

func TestActivationCode(t *testing.T) {
	code := ActivationCode(8)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), code)
	assert.NotEqual(t, code, ActivationCode(8))
	assert.Len(t, ActivationCode(0), 32)
	assert.Len(t, ActivationCode(64), 32)
}
