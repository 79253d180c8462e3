package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	mw "github.com/donaldgifford/trade-appraiser/internal/api/middleware"
	"github.com/donaldgifford/trade-appraiser/internal/metrics"
)

func newLimitedEcho(perSecond float64, burst int) *echo.Echo {
	e := echo.New()
	e.Use(mw.RateLimit(perSecond, burst))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/api/v1/recon/rules", ok)
	e.GET("/healthz", ok)
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return rec
}

// Not parallel: asserts deltas on a global counter.
func TestRateLimit_RejectsOverBurst(t *testing.T) {
	before := ptestutil.ToFloat64(metrics.RateLimitedTotal)

	// A near-zero refill rate makes the burst the whole budget.
	e := newLimitedEcho(0.0001, 2)

	assert.Equal(t, http.StatusOK, serve(e, "/api/v1/recon/rules").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/api/v1/recon/rules").Code)

	rec := serve(e, "/api/v1/recon/rules")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")

	assert.InDelta(t, before+1, ptestutil.ToFloat64(metrics.RateLimitedTotal), 0.001)
}

func TestRateLimit_SkipsNonAPIPaths(t *testing.T) {
	t.Parallel()

	e := newLimitedEcho(0.0001, 1)

	assert.Equal(t, http.StatusOK, serve(e, "/api/v1/recon/rules").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, "/api/v1/recon/rules").Code)

	for range 5 {
		assert.Equal(t, http.StatusOK, serve(e, "/healthz").Code)
	}
}
