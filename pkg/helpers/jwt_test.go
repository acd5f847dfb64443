package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndParse(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)

	token, exp, err := m.Generate(42, "alice@example.com", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("testsecret", -time.Minute)

	token, _, err := m.Generate(42, "alice@example.com", "Alice")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("testsecret", time.Hour)
	verifier := NewJWTManager("othersecret", time.Hour)

	token, _, err := issuer.Generate(42, "alice@example.com", "Alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
