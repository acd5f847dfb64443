package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dwisetya/blockchain-api/pkg/helpers"
	"github.com/dwisetya/blockchain-api/pkg/response"
)

// CtxClaimsKey is the gin context key holding the verified bearer claims.
const CtxClaimsKey = "authClaims"

// Identity derives the request's authenticated identity from the
// Authorization header. A missing, malformed, or expired token leaves the
// request anonymous; rejecting is the guard's job, not the derivation's.
func Identity(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			c.Next()
			return
		}
		c.Set(CtxClaimsKey, claims)
		c.Set("userID", claims.UserID)
		c.Next()
	}
}

// RequireAuth rejects requests that carry no verified identity. Protected
// handlers behind it can assume CurrentUser succeeds.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			response.AbortError(c, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the verified claims set by Identity, if any.
func CurrentUser(c *gin.Context) (*helpers.Claims, bool) {
	v, ok := c.Get(CtxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*helpers.Claims)
	return claims, ok
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
