package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	checkinrepo "github.com/sundialapp/sundial-backend/internal/data/repos/checkin"
	types "github.com/sundialapp/sundial-backend/internal/domain"
	"github.com/sundialapp/sundial-backend/internal/http/response"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
	"github.com/sundialapp/sundial-backend/internal/requestdata"
)

const historyPageSize = 30

type CheckInHandler struct {
	log      *logger.Logger
	checkIns checkinrepo.CheckInRepo
}

func NewCheckInHandler(baseLog *logger.Logger, checkIns checkinrepo.CheckInRepo) *CheckInHandler {
	return &CheckInHandler{
		log:      baseLog.With("handler", "CheckInHandler"),
		checkIns: checkIns,
	}
}

type createCheckInRequest struct {
	Score int            `json:"score" binding:"required,min=1,max=10"`
	Note  string         `json:"note"`
	Meta  map[string]any `json:"meta"`
}

// POST /api/checkins
// Score is validated here, at the storage boundary; everything downstream of
// the raw rows assumes 1-10.
func (h *CheckInHandler) Create(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req createCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	entry := &types.CheckIn{
		UserID: rd.UserID,
		Score:  req.Score,
		Note:   req.Note,
	}
	if len(req.Meta) > 0 {
		raw, err := json.Marshal(req.Meta)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_meta", err)
			return
		}
		entry.Meta = datatypes.JSON(raw)
	}

	created, err := h.checkIns.Create(c.Request.Context(), nil, []*types.CheckIn{entry})
	if err != nil {
		h.log.Error("Create check-in failed", "error", err, "user_id", rd.UserID)
		response.RespondError(c, http.StatusInternalServerError, "create_check_in_failed", err)
		return
	}
	response.RespondOK(c, created[0])
}

// GET /api/checkins
func (h *CheckInHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	entries, err := h.checkIns.ListRecent(c.Request.Context(), nil, rd.UserID, historyPageSize)
	if err != nil {
		h.log.Error("List check-ins failed", "error", err, "user_id", rd.UserID)
		response.RespondError(c, http.StatusInternalServerError, "list_check_ins_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"check_ins": entries})
}
