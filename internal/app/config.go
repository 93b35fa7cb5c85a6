package app

import (
	"time"

	"github.com/sundialapp/sundial-backend/internal/platform/envutil"
)

type Config struct {
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	HTTPAddr       string
}

func LoadConfig() Config {
	return Config{
		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", "defaultsecret"),
		AccessTokenTTL: envutil.Seconds("ACCESS_TOKEN_TTL", 24*time.Hour),
		HTTPAddr:       envutil.String("HTTP_ADDR", ":8080"),
	}
}
