package client

import (
	"context"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// ScenariosRequest is the body of an offer scenarios call.
type ScenariosRequest struct {
	MarketAvgPrice   float64 `json:"market_avg_price"`
	KBBInstantOffer  float64 `json:"kbb_instant_offer"`
	ReconCost        float64 `json:"recon_cost,omitempty"`
	AftermarketValue float64 `json:"aftermarket_value,omitempty"`
}

// PositionRequest is the body of a competitive position call.
type PositionRequest struct {
	OurOffer        float64 `json:"our_offer"`
	KBBInstantOffer float64 `json:"kbb_instant_offer"`
	MarketAvg       float64 `json:"market_avg"`
}

// ExtractResponse is the result of an extraction call.
type ExtractResponse struct {
	Tags          []domain.ConditionTag `json:"tags"`
	Strategy      string                `json:"strategy"`
	CanonicalTags []domain.ConditionTag `json:"canonical_tags,omitempty"`
}

// MarketSummaryResponse is the result of a market summary call.
type MarketSummaryResponse struct {
	Summary domain.MarketSummary `json:"summary"`
	Kept    []domain.Comparable  `json:"kept"`
}

// EstimateRecon prices the given condition tags.
func (c *Client) EstimateRecon(ctx context.Context, tags []string) (*domain.CostBreakdown, error) {
	if tags == nil {
		tags = []string{}
	}
	var resp domain.CostBreakdown
	if err := c.post(ctx, "/api/v1/recon/estimate", map[string]any{"tags": tags}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Rules returns the reconditioning cost rule table.
func (c *Client) Rules(ctx context.Context) ([]domain.CostRule, error) {
	var resp struct {
		Rules []domain.CostRule `json:"rules"`
	}
	if err := c.get(ctx, "/api/v1/recon/rules", &resp); err != nil {
		return nil, err
	}
	return resp.Rules, nil
}

// Scenarios computes the three offer scenarios.
func (c *Client) Scenarios(ctx context.Context, req *ScenariosRequest) (*domain.ScenarioSet, error) {
	var resp domain.ScenarioSet
	if err := c.post(ctx, "/api/v1/offers/scenarios", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Position classifies an offer against KBB and the market average.
func (c *Client) Position(ctx context.Context, req *PositionRequest) (*domain.PositionAnalysis, error) {
	var resp domain.PositionAnalysis
	if err := c.post(ctx, "/api/v1/offers/position", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Extract pulls condition tags out of analysis text.
func (c *Client) Extract(ctx context.Context, text string, canonicalize bool) (*ExtractResponse, error) {
	body := map[string]any{"text": text, "canonicalize": canonicalize}
	var resp ExtractResponse
	if err := c.post(ctx, "/api/v1/extract", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SummarizeMarket filters outliers from comparables and averages the rest.
// A zero threshold uses the server default.
func (c *Client) SummarizeMarket(
	ctx context.Context,
	comps []domain.Comparable,
	threshold float64,
) (*MarketSummaryResponse, error) {
	if comps == nil {
		comps = []domain.Comparable{}
	}
	body := map[string]any{"comparables": comps}
	if threshold > 0 {
		body["std_dev_threshold"] = threshold
	}
	var resp MarketSummaryResponse
	if err := c.post(ctx, "/api/v1/market/summary", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
