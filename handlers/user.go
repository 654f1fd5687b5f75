package handlers

import (
	"errors"
	"net/http"

	"smartmeet/middleware"
	"smartmeet/models"
	"smartmeet/services/user"
	"smartmeet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	svc user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) SignupHandler(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, user.ErrInvalidSignup):
		utils.JSONError(c, http.StatusBadRequest, "Invalid signup request", err.Error())
		return
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "Email already registered", "")
		return
	case err != nil:
		getLogger(c).Error("Signup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error during registration", err.Error())
		return
	}

	resp.Message = "User registered successfully"
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
		return
	case err != nil:
		getLogger(c).Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error during login", err.Error())
		return
	}

	resp.Message = "Login successful"
	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the user identified by the bearer token.
func (h *UserHandler) MeHandler(c *gin.Context) {
	id := c.GetString(middleware.ContextUserID)
	u, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
