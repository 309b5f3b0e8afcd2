package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"language-tutor/config"
	pkgLog "language-tutor/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares: session auth and
// per-user rate limiting.
type Middleware struct {
	l         pkgLog.Logger
	jwtSecret []byte
	limiters  *expirable.LRU[string, *rate.Limiter]
	rate      rate.Limit
	burst     int
}

// New creates the middleware set.
func New(l pkgLog.Logger, authCfg config.AuthConfig, rlCfg config.RateLimitConfig) Middleware {
	perMin := rlCfg.RequestsPerMin
	if perMin <= 0 {
		perMin = 60
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l:         l,
		jwtSecret: []byte(authCfg.JWTSecret),
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(perMin) / 60.0),
		burst: burst,
	}
}
