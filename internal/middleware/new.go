package middleware

import (
	"task-tracker/pkg/log"
)

// Config holds the middleware settings read from config.
type Config struct {
	RateLimitPerMin     int
	TelegramSecretToken string
}

type Middleware struct {
	l           log.Logger
	limiter     *rateLimiter
	secretToken string
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:           l,
		limiter:     newRateLimiter(cfg.RateLimitPerMin),
		secretToken: cfg.TelegramSecretToken,
	}
}
