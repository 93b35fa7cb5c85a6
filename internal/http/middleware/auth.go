package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sundialapp/sundial-backend/internal/http/response"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
	"github.com/sundialapp/sundial-backend/internal/requestdata"
	"github.com/sundialapp/sundial-backend/internal/services"
)

type AuthMiddleware struct {
	log  *logger.Logger
	auth services.AuthService
}

func NewAuthMiddleware(baseLog *logger.Logger, auth services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		log:  baseLog.With("middleware", "AuthMiddleware"),
		auth: auth,
	}
}

// RequireAuth validates the Bearer token and stashes the caller's identity in
// the request context for handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.RespondError(c, http.StatusUnauthorized, "missing_bearer_token", nil)
			c.Abort()
			return
		}
		userID, err := m.auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.RespondError(c, http.StatusUnauthorized, "invalid_token", nil)
			c.Abort()
			return
		}

		rd := &requestdata.RequestData{
			UserID:   userID,
			TimeZone: strings.TrimSpace(c.GetHeader("X-Time-Zone")),
		}
		c.Request = c.Request.WithContext(requestdata.WithRequestData(c.Request.Context(), rd))
		c.Next()
	}
}
