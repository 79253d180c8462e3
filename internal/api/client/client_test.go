package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

func jsonServer(t *testing.T, handler func(t *testing.T, r *http.Request) (int, any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, body := handler(t, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.Rules(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(_ *testing.T, _ *http.Request) (int, any) {
		return http.StatusInternalServerError, map[string]string{"error": "internal"}
	})

	c := New(srv.URL)
	_, err := c.Rules(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
	assert.False(t, IsNotFound(err))
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(_ *testing.T, _ *http.Request) (int, any) {
		return http.StatusNotFound, map[string]string{"detail": "appraisal not found"}
	})

	c := New(srv.URL + "/")
	_, err := c.GetAppraisal(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_WithTimeout(t *testing.T) {
	t.Parallel()

	c := New("http://example.invalid", WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
	assert.Equal(t, "http://example.invalid", c.baseURL)
}

func TestClient_EstimateRecon(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/recon/estimate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, []any{"scratches_bumper", "seat_wear"}, decodeBody(t, r)["tags"])
		return http.StatusOK, domain.CostBreakdown{TotalRepairCost: 700, NetAdjustment: -700, IssuesAnalyzed: 2}
	})

	c := New(srv.URL)
	got, err := c.EstimateRecon(context.Background(), []string{"scratches_bumper", "seat_wear"})
	require.NoError(t, err)
	assert.Equal(t, 700.0, got.TotalRepairCost)
	assert.Equal(t, 2, got.IssuesAnalyzed)
}

func TestClient_EstimateReconNilTagsSendsEmptyList(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, []any{}, decodeBody(t, r)["tags"])
		return http.StatusOK, domain.CostBreakdown{}
	})

	_, err := New(srv.URL).EstimateRecon(context.Background(), nil)
	require.NoError(t, err)
}

func TestClient_Rules(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, "/api/v1/recon/rules", r.URL.Path)
		return http.StatusOK, map[string]any{
			"rules": []domain.CostRule{{Tag: "curb_rash", RepairCost: 150}},
		}
	})

	rules, err := New(srv.URL).Rules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, domain.ConditionTag("curb_rash"), rules[0].Tag)
}

func TestClient_Scenarios(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, "/api/v1/offers/scenarios", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, 25000.0, body["market_avg_price"])
		assert.Equal(t, 400.0, body["recon_cost"])
		return http.StatusOK, domain.ScenarioSet{
			Balanced: domain.OfferScenario{Label: domain.ScenarioBalanced, OfferPrice: 24130},
		}
	})

	got, err := New(srv.URL).Scenarios(context.Background(), &ScenariosRequest{
		MarketAvgPrice:   25000,
		KBBInstantOffer:  23800,
		ReconCost:        400,
		AftermarketValue: 800,
	})
	require.NoError(t, err)
	assert.Equal(t, 24130.0, got.Balanced.OfferPrice)
}

func TestClient_Position(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, "/api/v1/offers/position", r.URL.Path)
		assert.Equal(t, 24500.0, decodeBody(t, r)["our_offer"])
		return http.StatusOK, domain.PositionAnalysis{Position: domain.PositionHighlyCompetitive}
	})

	got, err := New(srv.URL).Position(context.Background(), &PositionRequest{
		OurOffer: 24500, KBBInstantOffer: 23800, MarketAvg: 25000,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PositionHighlyCompetitive, got.Position)
}

func TestClient_Extract(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		body := decodeBody(t, r)
		assert.Equal(t, "detected_issues=['curb_rash']", body["text"])
		assert.Equal(t, true, body["canonicalize"])
		return http.StatusOK, ExtractResponse{
			Tags:     []domain.ConditionTag{"curb_rash"},
			Strategy: "assignment",
		}
	})

	got, err := New(srv.URL).Extract(context.Background(), "detected_issues=['curb_rash']", true)
	require.NoError(t, err)
	assert.Equal(t, "assignment", got.Strategy)
	assert.Equal(t, []domain.ConditionTag{"curb_rash"}, got.Tags)
}

func TestClient_SummarizeMarket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		threshold     float64
		wantThreshold bool
	}{
		{name: "server default threshold", threshold: 0},
		{name: "explicit threshold", threshold: 1.5, wantThreshold: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
				body := decodeBody(t, r)
				_, has := body["std_dev_threshold"]
				assert.Equal(t, tt.wantThreshold, has)
				return http.StatusOK, MarketSummaryResponse{Summary: domain.MarketSummary{AvgPrice: 25000}}
			})

			got, err := New(srv.URL).SummarizeMarket(context.Background(),
				[]domain.Comparable{{Price: 24000}, {Price: 26000}}, tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, 25000.0, got.Summary.AvgPrice)
		})
	}
}

func TestClient_CreateAppraisal(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/appraisals", r.URL.Path)
		body := decodeBody(t, r)
		_, hasTags := body["tags"]
		assert.False(t, hasTags, "nil tags are omitted so the server extracts them")
		return http.StatusCreated, domain.Appraisal{ID: "a-created", RecommendedOffer: 23940}
	})

	got, err := New(srv.URL).CreateAppraisal(context.Background(), &AppraisalRequest{
		VIN:             "1HGCM82633A004352",
		AnalysisText:    "ISSUE_LIST_START[]ISSUE_LIST_END",
		MarketAvgPrice:  25000,
		KBBInstantOffer: 23800,
	})
	require.NoError(t, err)
	assert.Equal(t, "a-created", got.ID)
}

func TestClient_BatchAppraise(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, "/api/v1/appraisals/batch", r.URL.Path)
		reqs, _ := decodeBody(t, r)["requests"].([]any)
		assert.Len(t, reqs, 2)
		return http.StatusOK, BatchResponse{
			Results:   []BatchItem{{Appraisal: &domain.Appraisal{ID: "a1"}}, {Error: "invalid input"}},
			Succeeded: 1,
			Failed:    1,
		}
	})

	got, err := New(srv.URL).BatchAppraise(context.Background(), []AppraisalRequest{
		{MarketAvgPrice: 20000, KBBInstantOffer: 19000},
		{MarketAvgPrice: 21000, KBBInstantOffer: 19000},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, "invalid input", got.Results[1].Error)
}

func TestClient_ListAppraisals(t *testing.T) {
	t.Parallel()

	since := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, "/api/v1/appraisals", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Below Market", q.Get("position"))
		assert.Equal(t, "20000.5", q.Get("min_offer"))
		assert.Equal(t, "2026-01-02T03:04:05Z", q.Get("since"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Empty(t, q.Get("offset"))
		return http.StatusOK, AppraisalsResponse{
			Appraisals: []domain.Appraisal{{ID: "a1"}},
			Total:      1,
			Limit:      10,
		}
	})

	got, err := New(srv.URL).ListAppraisals(context.Background(), &ListAppraisalsParams{
		Position: "Below Market",
		MinOffer: 20000.5,
		Since:    since,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, "a1", got.Appraisals[0].ID)
}

func TestClient_ListAppraisalsNoParams(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Empty(t, r.URL.RawQuery)
		return http.StatusOK, AppraisalsResponse{}
	})

	_, err := New(srv.URL).ListAppraisals(context.Background(), &ListAppraisalsParams{})
	require.NoError(t, err)
}

func TestClient_GetAppraisal(t *testing.T) {
	t.Parallel()

	srv := jsonServer(t, func(t *testing.T, r *http.Request) (int, any) {
		assert.Equal(t, "/api/v1/appraisals/a1", r.URL.Path)
		return http.StatusOK, domain.Appraisal{ID: "a1", VIN: "ABC"}
	})

	got, err := New(srv.URL).GetAppraisal(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got.VIN)
}
