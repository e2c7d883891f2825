package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-value-1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-value-1", hash)

	assert.True(t, CheckPassword(hash, "secret-value-1"))
	assert.False(t, CheckPassword(hash, "wrong-value"))
	assert.False(t, CheckPassword("", "secret-value-1"))
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password1")
	require.NoError(t, err)
	h2, err := HashPassword("same-password1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
