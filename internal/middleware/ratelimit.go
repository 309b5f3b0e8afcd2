package middleware

import (
	"golang.org/x/time/rate"

	"github.com/gin-gonic/gin"

	"language-tutor/pkg/response"
)

// RateLimit throttles requests per authenticated user, falling back to the
// client IP before authentication. Limiters expire with their LRU entry, so
// idle users cost nothing.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := GetScope(c); ok {
			key = sc.UserID
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
