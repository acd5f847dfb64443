package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dwisetya/blockchain-api/internal/application"
	"github.com/dwisetya/blockchain-api/pkg/response"
	"github.com/dwisetya/blockchain-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch users", err.Error())
		return
	}
	response.Success(c, http.StatusOK, users, "users", nil)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("get user failed")
		response.Error(c, http.StatusInternalServerError, "Failed to fetch user", err.Error())
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailAlreadyRegistered) {
			response.Error(c, http.StatusConflict, "Email already registered", nil)
			return
		}
		h.Logger.WithError(err).Error("create user failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, u, "user created", nil)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), id, application.UpdateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, application.ErrEmailAlreadyRegistered):
			response.Error(c, http.StatusConflict, "Email already registered", nil)
		default:
			h.Logger.WithError(err).WithField("user_id", id).Error("update user failed")
			response.Error(c, http.StatusInternalServerError, "Failed to update user", err.Error())
		}
		return
	}
	response.Success(c, http.StatusOK, u, "user updated", nil)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("delete user failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete user", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, nil, "User deleted successfully", nil)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid user id", nil)
		return 0, false
	}
	return id, true
}
