package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerMinute is what RateLimiter allows per client IP.
const DefaultRequestsPerMinute = 10

// RateLimiter limits the routes it is applied to to
// DefaultRequestsPerMinute per client IP, allowing that many in a burst.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterPerMinute(DefaultRequestsPerMinute)
}

// RateLimiterPerMinute limits requests to n per minute per client IP.
// Each limiter keeps its own in-memory counts. n below 1 is treated as 1.
func RateLimiterPerMinute(n int) echo.MiddlewareFunc {
	if n < 1 {
		n = 1
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(time.Minute / time.Duration(n)),
		Burst:     n,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "client", identifier, "path", c.Path())
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	})
}
