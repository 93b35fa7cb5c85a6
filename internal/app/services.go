package app

import (
	"github.com/sundialapp/sundial-backend/internal/insight"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
	"github.com/sundialapp/sundial-backend/internal/platform/openai"
	"github.com/sundialapp/sundial-backend/internal/platform/redis"
	"github.com/sundialapp/sundial-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Engine  *insight.Engine
	Coach   services.CoachService
	Limiter redis.RateLimiter
}

func wireServices(log *logger.Logger, cfg Config, repos Repos) (Services, error) {
	auth := services.NewAuthService(log, repos.Users, cfg.JWTSecretKey, cfg.AccessTokenTTL)

	engine := insight.NewEngine(services.NewEntrySource(repos.CheckIns), log)

	ai, err := openai.NewClient(log)
	if err != nil {
		return Services{}, err
	}

	limiter, err := redis.NewRateLimiter(log)
	if err != nil {
		log.Warn("redis unavailable, coach rate limiting disabled", "error", err)
		limiter = redis.NewNopRateLimiter()
	}

	return Services{
		Auth:    auth,
		Engine:  engine,
		Coach:   services.NewCoachService(log, engine, ai, limiter),
		Limiter: limiter,
	}, nil
}
