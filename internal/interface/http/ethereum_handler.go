package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dwisetya/blockchain-api/internal/application"
	"github.com/dwisetya/blockchain-api/pkg/response"
	"github.com/dwisetya/blockchain-api/pkg/validation"
)

type EthereumHandler struct {
	Svc    *application.EthereumService
	Logger *logrus.Logger
}

func NewEthereumHandler(svc *application.EthereumService, logger *logrus.Logger) *EthereumHandler {
	return &EthereumHandler{Svc: svc, Logger: logger}
}

type sendRequest struct {
	To     string `json:"to" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// GetBalance handles GET /api/ethereum/balance/:address.
func (h *EthereumHandler) GetBalance(c *gin.Context) {
	res, err := h.Svc.GetBalance(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.fail(c, err, "get balance failed")
		return
	}
	response.Success(c, http.StatusOK, res, "balance", nil)
}

// Send handles POST /api/ethereum/send.
func (h *EthereumHandler) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.SendTransaction(c.Request.Context(), req.To, req.Amount)
	if err != nil {
		if errors.Is(err, application.ErrWalletNotConfigured) {
			response.Error(c, http.StatusInternalServerError, "Wallet is not configured", nil)
			return
		}
		h.fail(c, err, "send transaction failed")
		return
	}
	response.Success(c, http.StatusOK, res, "transaction confirmed", nil)
}

// GetTransaction handles GET /api/ethereum/tx/:hash.
func (h *EthereumHandler) GetTransaction(c *gin.Context) {
	res, err := h.Svc.GetTransaction(c.Request.Context(), c.Param("hash"))
	if err != nil {
		if errors.Is(err, application.ErrTxNotFound) {
			response.Error(c, http.StatusNotFound, "Transaction not found", nil)
			return
		}
		h.fail(c, err, "get transaction failed")
		return
	}
	response.Success(c, http.StatusOK, res, "transaction", nil)
}

// GetBlockNumber handles GET /api/ethereum/block/latest.
func (h *EthereumHandler) GetBlockNumber(c *gin.Context) {
	res, err := h.Svc.GetBlockNumber(c.Request.Context())
	if err != nil {
		h.fail(c, err, "get block number failed")
		return
	}
	response.Success(c, http.StatusOK, res, "latest block", nil)
}

// GetGasPrice handles GET /api/ethereum/gas-price.
func (h *EthereumHandler) GetGasPrice(c *gin.Context) {
	res, err := h.Svc.GetGasPrice(c.Request.Context())
	if err != nil {
		h.fail(c, err, "get gas price failed")
		return
	}
	response.Success(c, http.StatusOK, res, "gas price", nil)
}

// fail renders an upstream failure as a 500. The service already prefixed the
// error with the operation's context, so the message goes out as-is.
func (h *EthereumHandler) fail(c *gin.Context, err error, logMsg string) {
	h.Logger.WithError(err).Error(logMsg)
	response.Error(c, http.StatusInternalServerError, err.Error(), nil)
}
