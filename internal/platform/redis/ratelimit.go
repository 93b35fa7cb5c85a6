package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sundialapp/sundial-backend/internal/platform/envutil"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

// RateLimiter gates the coaching endpoint; every reply costs a hosted-model
// call, so per-user volume is capped.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Close() error
}

type rateLimiter struct {
	log    *logger.Logger
	rdb    *goredis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(baseLog *logger.Logger) (RateLimiter, error) {
	addr := strings.TrimSpace(envutil.String("REDIS_ADDR", ""))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &rateLimiter{
		log:    baseLog.With("service", "RedisRateLimiter"),
		rdb:    rdb,
		limit:  envutil.Int("COACH_RATE_LIMIT", 30),
		window: envutil.Seconds("COACH_RATE_WINDOW_SECONDS", time.Hour),
	}, nil
}

// Allow counts requests per key in a fixed window. Fails open: a Redis error
// lets the request through so the coaching feature never hard-depends on the
// limiter being up.
func (l *rateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:coach:" + key
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		l.log.Warn("rate limit check failed, allowing request", "error", err)
		return true, err
	}
	if count == 1 {
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.log.Warn("rate limit expire failed", "error", err)
		}
	}
	return count <= int64(l.limit), nil
}

func (l *rateLimiter) Close() error {
	return l.rdb.Close()
}

// NewNopRateLimiter is used when no Redis is configured (local dev).
func NewNopRateLimiter() RateLimiter { return nopLimiter{} }

type nopLimiter struct{}

func (nopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
func (nopLimiter) Close() error                                { return nil }
