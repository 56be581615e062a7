package middleware

import (
	"voice-assistant/pkg/log"
	"voice-assistant/pkg/metrics"
)

// Config tunes the middleware set.
type Config struct {
	// RateLimitPerMin is the per-client request budget. Zero disables limiting.
	RateLimitPerMin int
	// TelegramSecret must match the X-Telegram-Bot-Api-Secret-Token header on
	// webhook calls. Empty disables the check.
	TelegramSecret string
}

type Middleware struct {
	l              log.Logger
	metrics        *metrics.Metrics
	limiter        *rateLimiter
	telegramSecret string
}

func New(l log.Logger, m *metrics.Metrics, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		metrics:        m,
		telegramSecret: cfg.TelegramSecret,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
