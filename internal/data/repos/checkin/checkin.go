package checkin

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/sundialapp/sundial-backend/internal/domain"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

type CheckInRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.CheckIn) ([]*types.CheckIn, error)
	// ListRecent returns the user's newest entries first, capped at limit.
	ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]types.CheckIn, error)
	CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type checkInRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCheckInRepo(db *gorm.DB, baseLog *logger.Logger) CheckInRepo {
	return &checkInRepo{db: db, log: baseLog.With("repo", "CheckInRepo")}
}

func (r *checkInRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.CheckIn) ([]*types.CheckIn, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(entries) == 0 {
		return []*types.CheckIn{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *checkInRepo) ListRecent(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]types.CheckIn, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.CheckIn
	if userID == uuid.Nil || limit <= 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *checkInRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CheckIn{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
