package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dwisetya/blockchain-api/internal/container"
	handlers "github.com/dwisetya/blockchain-api/internal/interface/http"
	"github.com/dwisetya/blockchain-api/internal/interface/middleware"
)

// EthereumModule wires the public blockchain query and transfer endpoints.
type EthereumModule struct {
	Handler *handlers.EthereumHandler
}

func NewEthereumModule(h *handlers.EthereumHandler) *EthereumModule {
	return &EthereumModule{Handler: h}
}

func (m *EthereumModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	sendLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	eth := rg.Group("/ethereum")
	{
		eth.GET("/balance/:address", readLimiter, m.Handler.GetBalance)
		eth.POST("/send", sendLimiter, m.Handler.Send)
		eth.GET("/tx/:hash", readLimiter, m.Handler.GetTransaction)
		eth.GET("/block/latest", readLimiter, m.Handler.GetBlockNumber)
		eth.GET("/gas-price", readLimiter, m.Handler.GetGasPrice)
	}
}
