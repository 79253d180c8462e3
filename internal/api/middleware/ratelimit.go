package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/trade-appraiser/internal/metrics"
)

// RateLimitedPrefix is the path prefix subject to rate limiting.
const RateLimitedPrefix = "/api/"

// RateLimit returns Echo middleware that applies a shared token bucket to
// API routes. Requests that find the bucket empty get 429 with a
// Retry-After header. Probes, metrics and docs are never limited.
func RateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, RateLimitedPrefix) {
				return next(c)
			}

			if !limiter.Allow() {
				metrics.RateLimitedTotal.Inc()
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}
