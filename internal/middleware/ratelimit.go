package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/ratelimit"
)

// RateLimit counts every request per client IP under scope.
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Throttle(c, limiter, scope) {
			return
		}
		c.Next()
	}
}

// Throttle takes one hit for the client IP under scope. It answers 429 and
// returns false once the limit is reached. Limiter failures let the request
// through.
func Throttle(c *gin.Context, limiter ratelimit.Limiter, scope string) bool {
	if limiter == nil {
		return true
	}

	key := scope + ":" + c.ClientIP()
	ok, err := limiter.Allow(c.Request.Context(), key)
	if err != nil {
		logrus.WithError(err).WithField("scope", scope).Warn("rate limiter unavailable, allowing request")
		return true
	}
	if !ok {
		httperr.TooManyRequests(c, "too_many_requests", "Trop de tentatives, réessayez plus tard.")
		c.Abort()
		return false
	}
	return true
}
