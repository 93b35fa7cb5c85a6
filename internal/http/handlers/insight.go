package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userrepo "github.com/sundialapp/sundial-backend/internal/data/repos/user"
	"github.com/sundialapp/sundial-backend/internal/http/response"
	"github.com/sundialapp/sundial-backend/internal/insight"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
	"github.com/sundialapp/sundial-backend/internal/requestdata"
)

type InsightHandler struct {
	log    *logger.Logger
	engine *insight.Engine
	users  userrepo.UserRepo
}

func NewInsightHandler(baseLog *logger.Logger, engine *insight.Engine, users userrepo.UserRepo) *InsightHandler {
	return &InsightHandler{
		log:    baseLog.With("handler", "InsightHandler"),
		engine: engine,
		users:  users,
	}
}

// GET /api/insights/context
// The analysis runs fresh on every request from raw rows; nothing derived is
// persisted, so this is always "as of last fetch".
func (h *InsightHandler) GetContext(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	bundle := h.engine.Analyze(c.Request.Context(), rd.UserID, h.resolveTimeZone(c, rd))
	response.RespondOK(c, bundle)
}

// resolveTimeZone prefers an explicit query param, then the X-Time-Zone
// header, then the zone stored on the user's profile. An empty result is fine;
// the engine falls back to server-local days.
func (h *InsightHandler) resolveTimeZone(c *gin.Context, rd *requestdata.RequestData) string {
	if tz := strings.TrimSpace(c.Query("tz")); tz != "" {
		return tz
	}
	if rd.TimeZone != "" {
		return rd.TimeZone
	}
	u, err := h.users.GetByID(c.Request.Context(), nil, rd.UserID)
	if err != nil {
		h.log.Warn("load user for time zone failed", "error", err, "user_id", rd.UserID)
		return ""
	}
	if u == nil {
		return ""
	}
	return u.TimeZone
}
