package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dwisetya/blockchain-api/internal/container"
	handlers "github.com/dwisetya/blockchain-api/internal/interface/http"
	"github.com/dwisetya/blockchain-api/internal/interface/middleware"
)

// AuthModule wires the public login and registration endpoints.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
}
