package services

import (
	"context"

	"github.com/google/uuid"

	checkinrepo "github.com/sundialapp/sundial-backend/internal/data/repos/checkin"
	types "github.com/sundialapp/sundial-backend/internal/domain"
	"github.com/sundialapp/sundial-backend/internal/insight"
)

// entrySource adapts the check-in repo to the insight engine's ingestion
// boundary. The engine sees already-fetched rows only.
type entrySource struct {
	repo checkinrepo.CheckInRepo
}

func NewEntrySource(repo checkinrepo.CheckInRepo) insight.EntrySource {
	return &entrySource{repo: repo}
}

func (s *entrySource) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]types.CheckIn, error) {
	return s.repo.ListRecent(ctx, nil, userID, limit)
}
