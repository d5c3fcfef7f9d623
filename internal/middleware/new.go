package middleware

import (
	"smart-todo/pkg/log"
)

// Config is the edge policy applied by the middlewares.
type Config struct {
	AllowedOrigins   []string // "*" allows any origin
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l         log.Logger
	origins   map[string]struct{}
	anyOrigin bool
	limiter   *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		origins: make(map[string]struct{}, len(cfg.AllowedOrigins)),
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			mw.anyOrigin = true
			continue
		}
		mw.origins[origin] = struct{}{}
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
