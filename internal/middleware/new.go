package middleware

import (
	"time"

	"task-intent/pkg/log"
)

// Config controls per-client rate limiting.
type Config struct {
	Enabled        bool
	RequestsPerMin int
	// MaxClients bounds how many client limiters are remembered at once.
	MaxClients int
	ClientTTL  time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the shared middleware set. A disabled config leaves RateLimit a no-op.
func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.Enabled {
		m.limiter = newRateLimiter(cfg)
	}
	return m
}
