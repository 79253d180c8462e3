package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/trade-appraiser/pkg/market"
	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// MarketHandler summarizes comparable listings.
type MarketHandler struct {
	threshold float64
}

// NewMarketHandler creates a MarketHandler using threshold when a request
// does not set one.
func NewMarketHandler(threshold float64) *MarketHandler {
	return &MarketHandler{threshold: threshold}
}

// MarketSummaryInput is the request body for the market summary endpoint.
type MarketSummaryInput struct {
	Body struct {
		Comparables     []domain.Comparable `json:"comparables" doc:"Comparable listings"`
		StdDevThreshold float64             `json:"std_dev_threshold,omitempty" doc:"Outlier cutoff in standard deviations" minimum:"0"`
	}
}

// MarketSummaryOutput is the response body for the market summary endpoint.
type MarketSummaryOutput struct {
	Body struct {
		Summary domain.MarketSummary `json:"summary"`
		Kept    []domain.Comparable  `json:"kept"`
	}
}

// Summarize filters outliers from the comparables and averages the rest.
func (h *MarketHandler) Summarize(_ context.Context, input *MarketSummaryInput) (*MarketSummaryOutput, error) {
	threshold := input.Body.StdDevThreshold
	if threshold == 0 {
		threshold = h.threshold
	}

	resp := &MarketSummaryOutput{}
	resp.Body.Summary = market.Summarize(input.Body.Comparables, threshold)
	resp.Body.Kept = market.Filter(input.Body.Comparables, threshold)
	if resp.Body.Kept == nil {
		resp.Body.Kept = []domain.Comparable{}
	}
	return resp, nil
}

// RegisterMarketRoutes registers market endpoints with the Huma API.
func RegisterMarketRoutes(api huma.API, h *MarketHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "summarize-market",
		Method:      http.MethodPost,
		Path:        "/api/v1/market/summary",
		Summary:     "Summarize comparable listings",
		Description: "Drops comparables more than the threshold standard deviations from the mean " +
			"and averages the rest. Sets of fewer than three are not filtered.",
		Tags: []string{"market"},
	}, h.Summarize)
}
