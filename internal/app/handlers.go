package app

import (
	"github.com/sundialapp/sundial-backend/internal/http/handlers"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	CheckIn *handlers.CheckInHandler
	Insight *handlers.InsightHandler
	Coach   *handlers.CoachHandler
}

func wireHandlers(log *logger.Logger, repos Repos, svcs Services) Handlers {
	return Handlers{
		Health:  handlers.NewHealthHandler(),
		Auth:    handlers.NewAuthHandler(log, svcs.Auth),
		CheckIn: handlers.NewCheckInHandler(log, repos.CheckIns),
		Insight: handlers.NewInsightHandler(log, svcs.Engine, repos.Users),
		Coach:   handlers.NewCoachHandler(log, svcs.Coach),
	}
}
