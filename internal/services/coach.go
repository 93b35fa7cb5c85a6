package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sundialapp/sundial-backend/internal/insight"
	apperrors "github.com/sundialapp/sundial-backend/internal/pkg/errors"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
	"github.com/sundialapp/sundial-backend/internal/platform/openai"
	"github.com/sundialapp/sundial-backend/internal/platform/redis"
)

// CoachService turns a fresh check-in into a coaching reply: run the insight
// engine over the user's raw history, render its narrative payload, and hand
// that to the generative collaborator as grounding context.
type CoachService interface {
	Reply(ctx context.Context, userID uuid.UUID, timeZone string, newCheckIn *insight.NewCheckIn) (string, *insight.ContextBundle, error)
}

type coachService struct {
	log     *logger.Logger
	engine  *insight.Engine
	ai      openai.Client
	limiter redis.RateLimiter
}

func NewCoachService(baseLog *logger.Logger, engine *insight.Engine, ai openai.Client, limiter redis.RateLimiter) CoachService {
	return &coachService{
		log:     baseLog.With("service", "CoachService"),
		engine:  engine,
		ai:      ai,
		limiter: limiter,
	}
}

func (s *coachService) Reply(ctx context.Context, userID uuid.UUID, timeZone string, newCheckIn *insight.NewCheckIn) (string, *insight.ContextBundle, error) {
	allowed, _ := s.limiter.Allow(ctx, userID.String())
	if !allowed {
		return "", nil, apperrors.ErrRateLimited
	}

	bundle := s.engine.Analyze(ctx, userID, timeZone)
	narrative := insight.BuildNarrative(bundle, newCheckIn)

	system := narrative.SystemContext +
		"\n\nWhat we know about this user:\n" + narrative.HistoricalInsights +
		"\n\nCurrent situation:\n" + narrative.CurrentSituation +
		"\n\nSuggested approach: " + narrative.SuggestedApproach

	userMsg := "Write a brief, caring coaching reply to this check-in."
	if newCheckIn != nil && newCheckIn.Note != "" {
		userMsg = newCheckIn.Note
	}

	reply, err := s.ai.GenerateText(ctx, system, userMsg)
	if err != nil {
		return "", nil, fmt.Errorf("generate coaching reply: %w", err)
	}
	return reply, bundle, nil
}
