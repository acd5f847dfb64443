package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwisetya/blockchain-api/pkg/helpers"
)

func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity(jwt))

	r.GET("/whoami", func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})

	protected := r.Group("/protected")
	protected.Use(RequireAuth())
	protected.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity(t *testing.T) {
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	r := newAuthRouter(jwt)

	token, _, err := jwt.Generate(1, "alice@example.com", "Alice")
	require.NoError(t, err)

	t.Run("valid token sets the identity", func(t *testing.T) {
		w := doGet(r, "/whoami", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice@example.com")
	})

	t.Run("scheme comparison is case-insensitive", func(t *testing.T) {
		w := doGet(r, "/whoami", "bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice@example.com")
	})

	t.Run("invalid token leaves the request anonymous", func(t *testing.T) {
		w := doGet(r, "/whoami", "Bearer garbage")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "anonymous")
	})

	t.Run("missing header leaves the request anonymous", func(t *testing.T) {
		w := doGet(r, "/whoami", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "anonymous")
	})
}

func TestRequireAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	r := newAuthRouter(jwt)

	token, _, err := jwt.Generate(1, "alice@example.com", "Alice")
	require.NoError(t, err)

	t.Run("passes authenticated requests through", func(t *testing.T) {
		w := doGet(r, "/protected", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects anonymous requests", func(t *testing.T) {
		w := doGet(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unauthorized")
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		expired := helpers.NewJWTManager("testsecret", -time.Minute)
		old, _, err := expired.Generate(1, "alice@example.com", "Alice")
		require.NoError(t, err)

		w := doGet(r, "/protected", "Bearer "+old)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
