package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dwisetya/blockchain-api/internal/container"
	handlers "github.com/dwisetya/blockchain-api/internal/interface/http"
	"github.com/dwisetya/blockchain-api/internal/interface/middleware"
)

// UserModule wires the bearer-protected user CRUD endpoints. Identity is
// derived globally; the guard here rejects anonymous requests.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.RequireAuth())
	users.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		users.GET("", m.Handler.List)
		users.GET("/:id", m.Handler.Get)
		users.POST("", m.Handler.Create)
		users.PUT("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
	}
}
