package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CompareHashAndPassword(hash, "password123"))
	assert.False(t, CompareHashAndPassword(hash, "Password123"))

	// bcrypt salts per call, two hashes of the same input differ.
	other, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}
