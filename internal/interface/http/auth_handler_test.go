package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates a user and never leaks the password hash", func(t *testing.T) {
		r, _, _ := newAPIRouter()

		w := doJSON(r, http.MethodPost, "/api/auth/register",
			gin.H{"name": "Alice", "email": "alice@example.com", "password": "password123"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		env := decodeEnvelope(t, w)
		assert.True(t, env.Success)
		assert.NotContains(t, w.Body.String(), "password_hash")
		assert.NotContains(t, w.Body.String(), "password123")

		var u struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &u))
		assert.NotZero(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		r, _, _ := newAPIRouter()
		payload := gin.H{"name": "Alice", "email": "alice@example.com", "password": "password123"}

		w := doJSON(r, http.MethodPost, "/api/auth/register", payload, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(r, http.MethodPost, "/api/auth/register", payload, "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Email already registered", decodeEnvelope(t, w).Message)
	})

	t.Run("validation failures return field details", func(t *testing.T) {
		r, _, _ := newAPIRouter()

		w := doJSON(r, http.MethodPost, "/api/auth/register",
			gin.H{"name": "Alice", "email": "not-an-email"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
		details, ok := env.Error.(map[string]any)
		require.True(t, ok, "expected field details, got %v", env.Error)
		assert.Contains(t, details, "email")
		assert.Contains(t, details, "password")
	})
}

func TestLoginEndpoint(t *testing.T) {
	register := func(t *testing.T, r *gin.Engine) {
		t.Helper()
		w := doJSON(r, http.MethodPost, "/api/auth/register",
			gin.H{"name": "Alice", "email": "alice@example.com", "password": "password123"}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("valid credentials return a usable token", func(t *testing.T) {
		r, _, jwt := newAPIRouter()
		register(t, r)

		token := loginAs(t, r, "alice@example.com", "password123")
		claims, err := jwt.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("wrong password and unknown email return the same 401", func(t *testing.T) {
		r, _, _ := newAPIRouter()
		register(t, r)

		wWrong := doJSON(r, http.MethodPost, "/api/auth/login",
			gin.H{"email": "alice@example.com", "password": "wrongpass"}, "")
		wUnknown := doJSON(r, http.MethodPost, "/api/auth/login",
			gin.H{"email": "nobody@example.com", "password": "password123"}, "")

		assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
		assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
		assert.Equal(t, decodeEnvelope(t, wWrong).Message, decodeEnvelope(t, wUnknown).Message)
		assert.Equal(t, "Invalid credentials", decodeEnvelope(t, wWrong).Message)
	})

	t.Run("malformed payload returns 400", func(t *testing.T) {
		r, _, _ := newAPIRouter()
		w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{"email": "alice@example.com"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Covers the whole authentication round trip: register, login, then hit a
// protected route with and without the token.
func TestAuthFlow(t *testing.T) {
	r, _, _ := newAPIRouter()

	w := doJSON(r, http.MethodPost, "/api/auth/register",
		gin.H{"name": "Alice", "email": "alice@example.com", "password": "password123"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	token := loginAs(t, r, "alice@example.com", "password123")

	w = doJSON(r, http.MethodGet, "/api/users", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var users []json.RawMessage
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 1)

	w = doJSON(r, http.MethodGet, "/api/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
