package cmd

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/trade-appraiser/internal/config"
	storeMocks "github.com/donaldgifford/trade-appraiser/internal/store/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Appraisal: config.AppraisalConfig{
			Concurrency:            2,
			MaxBatchSize:           10,
			OutlierStdDevThreshold: 2.0,
		},
	}
}

func TestNewServer_Routes(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ms := storeMocks.NewMockStore(t)
	cfg := testConfig()
	e := newServer(cfg, ms, newEngine(cfg, ms, log), log)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "ta_"},
		{name: "openapi document", method: http.MethodGet, path: "/openapi.json", wantStatus: http.StatusOK, wantBody: "/api/v1/appraisals"},
		{name: "swagger ui", method: http.MethodGet, path: "/swagger/index.html", wantStatus: http.StatusOK, wantBody: "/openapi.json"},
		{name: "recon rules", method: http.MethodGet, path: "/api/v1/recon/rules", wantStatus: http.StatusOK, wantBody: "curb_rash"},
		{
			name:       "recon estimate",
			method:     http.MethodPost,
			path:       "/api/v1/recon/estimate",
			body:       `{"tags":["scratches_bumper","seat_wear"]}`,
			wantStatus: http.StatusOK,
			wantBody:   `"total_repair_cost":700`,
		},
		{
			name:       "extract",
			method:     http.MethodPost,
			path:       "/api/v1/extract",
			body:       `{"text":"ISSUE_LIST_START['curb_rash']ISSUE_LIST_END"}`,
			wantStatus: http.StatusOK,
			wantBody:   "curb_rash",
		},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var body io.Reader = http.NoBody
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestNewServer_RateLimitEnabled(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ms := storeMocks.NewMockStore(t)
	cfg := testConfig()
	cfg.Server.RateLimit.Enabled = true
	cfg.Server.RateLimit.PerSecond = 0.0001
	cfg.Server.RateLimit.Burst = 1
	e := newServer(cfg, ms, newEngine(cfg, ms, log), log)

	do := func() int {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recon/rules", http.NoBody))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
