package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dwisetya/blockchain-api/internal/container"
	"github.com/dwisetya/blockchain-api/internal/interface/middleware"
	"github.com/dwisetya/blockchain-api/pkg/response"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Runtime metrics (expvar). Private networks only, rate-limited per IP.
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/debug/vars", privateOnly(), rl, gin.WrapH(expvar.Handler()))
}

func privateOnly() gin.HandlerFunc {
	allowed := middleware.AllowPrivateIP()
	return func(c *gin.Context) {
		if !allowed(c) {
			response.AbortError(c, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Next()
	}
}
