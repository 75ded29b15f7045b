package middleware

import (
	"task-assistant/config"
	"task-assistant/pkg/log"
)

type Middleware struct {
	l           log.Logger
	origins     map[string]struct{}
	allowAll    bool
	rateLimiter *rateLimiter
}

func New(l log.Logger, cors config.CORSConfig, rl config.RateLimitConfig) Middleware {
	origins := make(map[string]struct{}, len(cors.AllowedOrigins))
	allowAll := false
	for _, o := range cors.AllowedOrigins {
		if o == "*" {
			allowAll = true
			continue
		}
		origins[o] = struct{}{}
	}

	return Middleware{
		l:           l,
		origins:     origins,
		allowAll:    allowAll,
		rateLimiter: newRateLimiter(rl.RequestsPerMin),
	}
}
