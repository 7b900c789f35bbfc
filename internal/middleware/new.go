package middleware

import (
	"task-management/pkg/log"
)

// Config configures the HTTP middleware chain.
type Config struct {
	JWTSecret       string
	Issuer          string
	AllowedOrigins  []string
	RateLimitPerMin int
}

type Middleware struct {
	l              log.Logger
	jwtSecret      []byte
	issuer         string
	allowedOrigins []string
	limiter        *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		jwtSecret:      []byte(cfg.JWTSecret),
		issuer:         cfg.Issuer,
		allowedOrigins: cfg.AllowedOrigins,
		limiter:        newRateLimiter(cfg.RateLimitPerMin),
	}
}
