// Package middleware provides Echo middleware for trade-appraiser.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/trade-appraiser/internal/metrics"
)

// metricsSkipPaths are operational endpoints excluded from request metrics.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// docsPrefixes serve the OpenAPI document and its UI.
var docsPrefixes = []string{"/swagger", "/openapi", "/schemas/"}

// healthGauges maps probe paths to the 0/1 gauge they drive.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// per route template. Probe paths only update their up/down gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if skipMetrics(path) {
				err := next(c)
				updateHealthGauge(path, c.Response().Status)
				return err
			}

			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok && !c.Response().Committed {
				status = he.Code
			}

			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			metrics.HTTPRequestDuration.
				WithLabelValues(labels...).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(labels...).
				Inc()

			return err
		}
	}
}

func skipMetrics(path string) bool {
	if _, ok := metricsSkipPaths[path]; ok {
		return true
	}
	for _, p := range docsPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
