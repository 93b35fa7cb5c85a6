package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/sundialapp/sundial-backend/internal/domain"
	"github.com/sundialapp/sundial-backend/internal/http/response"
	apperrors "github.com/sundialapp/sundial-backend/internal/pkg/errors"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
	"github.com/sundialapp/sundial-backend/internal/services"
)

type AuthHandler struct {
	log  *logger.Logger
	auth services.AuthService
}

func NewAuthHandler(baseLog *logger.Logger, auth services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:  baseLog.With("handler", "AuthHandler"),
		auth: auth,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TimeZone  string `json:"time_zone"`
}

type authResponse struct {
	User  *types.User `json:"user"`
	Token string      `json:"token"`
}

// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	u, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName, req.TimeZone)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidArgument) {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		h.log.Error("Register failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "register_failed", err)
		return
	}
	response.RespondOK(c, authResponse{User: u, Token: token})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	u, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", nil)
			return
		}
		h.log.Error("Login failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "login_failed", err)
		return
	}
	response.RespondOK(c, authResponse{User: u, Token: token})
}
