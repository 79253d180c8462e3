package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// probePaths log only state changes: the first success after start or after
// a failure, and every failure.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. 5xx responses log at error and 4xx
// at warn.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var healthy sync.Map // probe path -> struct{} while passing

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)
			if err != nil {
				// Let echo write the error response so the logged status is final.
				c.Error(err)
			}

			status := c.Response().Status
			path := c.Request().URL.Path

			if _, probe := probePaths[path]; probe {
				if status < 400 {
					if _, seen := healthy.LoadOrStore(path, struct{}{}); seen {
						return nil
					}
				} else {
					healthy.Delete(path)
				}
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			log.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int64("bytes", c.Response().Size),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("remote_ip", c.RealIP()),
				slog.String("request_id", reqID),
			)

			return nil
		}
	}
}

// RequestID returns the request ID stored by RequestLog, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
