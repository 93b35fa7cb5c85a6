package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sundialapp/sundial-backend/internal/http/response"
	"github.com/sundialapp/sundial-backend/internal/insight"
	apperrors "github.com/sundialapp/sundial-backend/internal/pkg/errors"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
	"github.com/sundialapp/sundial-backend/internal/requestdata"
	"github.com/sundialapp/sundial-backend/internal/services"
)

type CoachHandler struct {
	log   *logger.Logger
	coach services.CoachService
}

func NewCoachHandler(baseLog *logger.Logger, coach services.CoachService) *CoachHandler {
	return &CoachHandler{
		log:   baseLog.With("handler", "CoachHandler"),
		coach: coach,
	}
}

type coachReplyRequest struct {
	Score    int    `json:"score" binding:"required,min=1,max=10"`
	Note     string `json:"note"`
	TimeZone string `json:"time_zone"`
}

type coachReplyResponse struct {
	Reply   string                 `json:"reply"`
	Context *insight.ContextBundle `json:"context"`
}

// POST /api/coach/reply
func (h *CoachHandler) Reply(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req coachReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	tz := strings.TrimSpace(req.TimeZone)
	if tz == "" {
		tz = rd.TimeZone
	}

	reply, bundle, err := h.coach.Reply(c.Request.Context(), rd.UserID, tz, &insight.NewCheckIn{
		Score: req.Score,
		Note:  req.Note,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrRateLimited) {
			response.RespondError(c, http.StatusTooManyRequests, "rate_limited", nil)
			return
		}
		h.log.Error("Coach reply failed", "error", err, "user_id", rd.UserID)
		response.RespondError(c, http.StatusInternalServerError, "coach_reply_failed", err)
		return
	}
	response.RespondOK(c, coachReplyResponse{Reply: reply, Context: bundle})
}
